package bootstrap

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
)

func NewLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "soundhaven",
	})
}
