package logging

import (
	"io"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
)

const (
	LevelEnv   = "LOCO_LOG_LEVEL"
	JSONEnv    = "LOCO_JSON_LOG"
	linePrefix = "🚂 "
)

// NewLogger creates an hclog logger writing to output, stderr when output is nil.
func NewLogger(name string, level string, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}

	jsonFormat := os.Getenv(JSONEnv) == "1"
	if !jsonFormat {
		output = NewPrefixWriter(linePrefix, output)
	}

	opts := &hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(level),
		JSONFormat: jsonFormat,
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z",
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	}

	return hclog.New(opts)
}

// GetLogLevel returns the level set in the environment, warn by default.
func GetLogLevel() string {
	level := os.Getenv(LevelEnv)
	if level == "" {
		level = "warn"
	}
	return level
}
