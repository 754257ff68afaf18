package observability

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/charkit/pwgen/internal/conf"
)

var (
	loggingOnce sync.Once
)

// ConfigureLogging sets up the global logrus logger. Generated passwords
// are written to stdout directly and never pass through the logger.
func ConfigureLogging(config *conf.LoggingConfig) error {
	var err error

	loggingOnce.Do(func() {
		formatter := &logrus.TextFormatter{
			DisableColors:    config.DisableColors,
			QuoteEmptyFields: config.QuoteEmptyFields,
		}
		if config.TSFormat != "" {
			formatter.FullTimestamp = true
			formatter.TimestampFormat = config.TSFormat
		}
		logrus.SetFormatter(formatter)

		// diagnostics go to stderr so the password output stays clean
		logrus.SetOutput(os.Stderr)

		// use a file if you want
		if config.File != "" {
			f, errOpen := os.OpenFile(config.File, os.O_RDWR|os.O_APPEND|os.O_CREATE, 0660) //#nosec G302 -- Log files should be rw-rw-r--
			if errOpen != nil {
				err = errOpen
				return
			}
			logrus.SetOutput(f)
			logrus.SetFormatter(&logrus.JSONFormatter{})
			logrus.Infof("Set output file to %s", config.File)
		}

		if config.Level != "" {
			level, errParse := logrus.ParseLevel(config.Level)
			if errParse != nil {
				err = errParse
				return
			}
			logrus.SetLevel(level)
			logrus.Debug("Set log level to: " + logrus.GetLevel().String())
		}
	})

	return err
}
