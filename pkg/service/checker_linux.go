//go:build linux

package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	sdbus "github.com/coreos/go-systemd/v22/dbus"
)

// systemdChecker reads unit state over the system D-Bus. The
// connection is opened lazily so hosts without systemd (or without a
// reachable bus) degrade to unknown instead of failing startup.
type systemdChecker struct {
	conn    *sdbus.Conn
	connErr error
	dialed  bool
}

func newPlatformChecker() Checker {
	return &systemdChecker{}
}

func (c *systemdChecker) Name() string { return "systemd" }

func (c *systemdChecker) Close() {
	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
}

func (c *systemdChecker) Check(ctx context.Context, name string) Status {
	if err := c.dial(ctx); err != nil {
		return Status{
			Name:   name,
			State:  StateUnknown,
			Detail: fmt.Sprintf("systemd bus unavailable: %v", err),
		}
	}

	unit := unitName(name)
	props, err := c.conn.GetUnitPropertiesContext(ctx, unit)
	if err != nil {
		return Status{
			Name:   name,
			State:  StateUnknown,
			Detail: fmt.Sprintf("query %s: %v", unit, err),
		}
	}

	active, _ := props["ActiveState"].(string)
	sub, _ := props["SubState"].(string)
	load, _ := props["LoadState"].(string)

	if load == "not-found" {
		return Status{Name: name, State: StateUnknown, Detail: "unit not found"}
	}

	st := Status{Name: name, State: mapActiveState(active)}
	if sub != "" {
		st.Detail = active + "/" + sub
	} else {
		st.Detail = active
	}
	return st
}

func (c *systemdChecker) dial(ctx context.Context) error {
	if !c.dialed {
		c.dialed = true
		c.conn, c.connErr = sdbus.NewSystemConnectionContext(ctx)
		if c.connErr != nil {
			log.Printf("systemd connection failed: %v", c.connErr)
		}
	}
	return c.connErr
}

// unitName appends .service to bare names; names that already carry
// a unit suffix pass through.
func unitName(name string) string {
	if strings.Contains(name, ".") {
		return name
	}
	return name + ".service"
}

func mapActiveState(active string) State {
	switch active {
	case "active", "reloading", "activating":
		return StateRunning
	case "inactive", "failed", "deactivating":
		return StateStopped
	default:
		return StateUnknown
	}
}
