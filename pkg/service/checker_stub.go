//go:build !linux && !windows

package service

func newPlatformChecker() Checker {
	return unsupportedChecker{}
}
