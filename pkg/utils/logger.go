package utils

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// InitLogger configures the process-wide logrus logger.
func InitLogger(debug bool) {
	log.SetOutput(os.Stdout)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if debug {
		log.SetLevel(log.DebugLevel)
	}
}
