// Package notice shows blocking messages to the user through the native
// dialog of the host desktop.
package notice

import (
	"github.com/sqweek/dialog"
	"go.uber.org/zap"
)

// Dialog shows error notices as native message boxes.
type Dialog struct {
	log *zap.Logger
}

// NewDialog returns a notifier that also records every notice in log.
func NewDialog(log *zap.Logger) *Dialog {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dialog{log: log}
}

// Notify blocks until the user dismisses the message.
func (d *Dialog) Notify(title, message string) {
	d.log.Debug("showing notice", zap.String("title", title))
	dialog.Message("%s", message).Title(title).Error()
}
