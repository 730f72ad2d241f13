package notify

import (
	"context"
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	notificationsDest = "org.freedesktop.Notifications"
	notificationsPath = dbus.ObjectPath("/org/freedesktop/Notifications")
	notifyMethod      = notificationsDest + ".Notify"
)

// DBus sends desktop notifications through the freedesktop notification
// service on the session bus.
type DBus struct {
	AppName string
	// ExpireMillis is the display time hint; -1 lets the server decide.
	ExpireMillis int32
}

func (d DBus) Notify(ctx context.Context, a Alert) error {
	conn, err := dbus.SessionBus()
	if err != nil {
		return fmt.Errorf("connect session bus: %w", err)
	}

	obj := conn.Object(notificationsDest, notificationsPath)
	call := obj.CallWithContext(ctx, notifyMethod, 0,
		d.AppName,
		uint32(0), // replaces_id
		"",        // app_icon
		a.Summary,
		a.Body,
		[]string{},
		map[string]dbus.Variant{},
		d.ExpireMillis,
	)
	if call.Err != nil {
		return fmt.Errorf("%s: %w", notifyMethod, call.Err)
	}
	return nil
}
