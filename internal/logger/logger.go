package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Setup configures a logger writing to stderr, keeping stdout free for
// the outcome lines the management server matches on.
func Setup(level, component string) *logrus.Entry {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{})

	log.SetLevel(logrus.InfoLevel)
	l, err := logrus.ParseLevel(level)
	if err != nil {
		log.Warnf("parse log level %s failed, using default level info", level)
	} else {
		log.SetLevel(l)
	}

	return log.WithField("component", component)
}
