package log

import (
	"io"

	"gopkg.in/Sirupsen/logrus.v0"
)

type Level = logrus.Level

const (
	ErrorLevel = logrus.ErrorLevel
	WarnLevel  = logrus.WarnLevel
	InfoLevel  = logrus.InfoLevel
	DebugLevel = logrus.DebugLevel
)

var disabled bool

func init() {
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	logrus.SetLevel(logrus.WarnLevel)
}

// Disable turns off all logging, including warnings and errors.
func Disable() { disabled = true }

// SetOutput redirects log output to w.
func SetOutput(w io.Writer) { logrus.SetOutput(w) }

func raiseBackendLevel() {
	if modDebugMask != 0 {
		logrus.SetLevel(logrus.DebugLevel)
	}
}

func (mod Module) entry() *logrus.Entry {
	return logrus.StandardLogger().WithField("_mod", mod.String())
}

// Debugf is for dumps too bulky for fields. Callers guard the formatting
// work with Enabled.
func (mod Module) Debugf(format string, args ...any) {
	if mod.Enabled(DebugLevel) {
		mod.entry().Debugf(format, args...)
	}
}
