// Package logging constructs the repository's shared logrus logger.
package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New returns a text-formatted logger writing to stderr at the given
// level. Components take a *logrus.Logger rather than using the package
// logger, so the CLI and tests can configure output independently.
func New(level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l
}
