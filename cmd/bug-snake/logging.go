package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/bug-snake/status"
)

const (
	logDir      = "logs"
	logFileName = "bug-snake.log"
	maxLogSize  = 10 * 1024 * 1024 // 10 MiB
)

// telemetryGroups are the counter prefixes written to the log when a run ends
var telemetryGroups = []string{"engine", "snake", "bug", "fruit", "powerup", "stats"}

// setupLogging routes the standard logger to logs/bug-snake.log when debug is set
// and discards it otherwise; stdout and stderr belong to the terminal while the game runs
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("bug-snake-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			log.SetOutput(io.Discard)
			return nil
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.Printf("[MAIN] session %s started", uuid.NewString())
	return f
}

// logTelemetry writes one [STATS] line per counter group
func logTelemetry(reg *status.Registry) {
	for _, group := range telemetryGroups {
		if line := reg.FormatInts(group + "."); line != "" {
			log.Printf("[STATS] %s: %s", group, line)
		}
	}
}
