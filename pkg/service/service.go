// Package service answers "is this OS service running" through the
// platform service manager. Checks are read-only and never fail the
// run: anything the platform cannot answer comes back unknown.
package service

import "context"

// State classifies a service's run state.
type State string

const (
	StateRunning State = "running"
	StateStopped State = "stopped"
	StateUnknown State = "unknown"
)

// Status is the result of checking one named service.
type Status struct {
	Name   string
	State  State
	Detail string
}

// Checker queries one service's state. Implementations are selected
// per platform at startup.
type Checker interface {
	Name() string
	Check(ctx context.Context, name string) Status
	Close()
}

// NewChecker returns the checker for the current platform.
func NewChecker() Checker {
	return newPlatformChecker()
}

// CheckAll checks each named service in order.
func CheckAll(ctx context.Context, c Checker, names []string) []Status {
	if len(names) == 0 {
		return nil
	}
	out := make([]Status, 0, len(names))
	for _, name := range names {
		out = append(out, c.Check(ctx, name))
	}
	return out
}

// unsupportedChecker answers unknown for every service.
type unsupportedChecker struct{}

func (unsupportedChecker) Name() string { return "unsupported" }
func (unsupportedChecker) Close()       {}

func (unsupportedChecker) Check(_ context.Context, name string) Status {
	return Status{
		Name:   name,
		State:  StateUnknown,
		Detail: "service checks are not supported on this platform",
	}
}
