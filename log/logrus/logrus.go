package logrus

import (
	"github.com/sirupsen/logrus"

	kompresscache "github.com/utvyakta-public/kompress-cache"
)

var _ kompresscache.Logger = LogrusLogger{}

type LogrusLogger struct{ E *logrus.Entry }

func (l LogrusLogger) Debug(msg string, f kompresscache.Fields) {
	l.E.WithFields(logrus.Fields(f)).Debug(msg)
}
func (l LogrusLogger) Info(msg string, f kompresscache.Fields) {
	l.E.WithFields(logrus.Fields(f)).Info(msg)
}
func (l LogrusLogger) Warn(msg string, f kompresscache.Fields) {
	l.E.WithFields(logrus.Fields(f)).Warn(msg)
}
func (l LogrusLogger) Error(msg string, f kompresscache.Fields) {
	l.E.WithFields(logrus.Fields(f)).Error(msg)
}
