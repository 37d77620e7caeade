//go:build windows

package service

import (
	"context"
	"fmt"

	"golang.org/x/sys/windows/svc"
	"golang.org/x/sys/windows/svc/mgr"
)

// scmChecker queries the Windows service control manager.
type scmChecker struct {
	m       *mgr.Mgr
	connErr error
	dialed  bool
}

func newPlatformChecker() Checker {
	return &scmChecker{}
}

func (c *scmChecker) Name() string { return "scm" }

func (c *scmChecker) Close() {
	if c.m != nil {
		c.m.Disconnect()
		c.m = nil
	}
}

func (c *scmChecker) Check(_ context.Context, name string) Status {
	if err := c.dial(); err != nil {
		return Status{
			Name:   name,
			State:  StateUnknown,
			Detail: fmt.Sprintf("service manager unavailable: %v", err),
		}
	}

	s, err := c.m.OpenService(name)
	if err != nil {
		return Status{
			Name:   name,
			State:  StateUnknown,
			Detail: fmt.Sprintf("open service: %v", err),
		}
	}
	defer s.Close()

	status, err := s.Query()
	if err != nil {
		return Status{
			Name:   name,
			State:  StateUnknown,
			Detail: fmt.Sprintf("query service: %v", err),
		}
	}

	return Status{
		Name:   name,
		State:  mapServiceState(status.State),
		Detail: fmt.Sprintf("state=%d", status.State),
	}
}

func (c *scmChecker) dial() error {
	if !c.dialed {
		c.dialed = true
		c.m, c.connErr = mgr.Connect()
	}
	return c.connErr
}

func mapServiceState(s svc.State) State {
	switch s {
	case svc.Running, svc.StartPending, svc.ContinuePending:
		return StateRunning
	case svc.Stopped, svc.StopPending, svc.Paused, svc.PausePending:
		return StateStopped
	default:
		return StateUnknown
	}
}
