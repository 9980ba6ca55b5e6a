// Package logging configures the process-wide logger. CLI runs log to
// stderr; GUI runs are switched to a rotating file so a windowed process
// still leaves a trail.
package logging

import (
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

const appName = "footgauge"

// Setup selects the log destination. With toFile set, output goes to a
// rotating log under the user cache directory; any failure to resolve the
// directory falls back to stderr.
func Setup(toFile bool) {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	if !toFile {
		log.SetOutput(os.Stderr)
		return
	}

	cacheDir, err := os.UserCacheDir()
	if err != nil {
		log.Printf("logging: no cache dir, keeping stderr: %v", err)
		return
	}
	logDir := filepath.Join(cacheDir, appName)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Printf("logging: cannot create %s, keeping stderr: %v", logDir, err)
		return
	}

	log.SetOutput(&lumberjack.Logger{
		Filename:   filepath.Join(logDir, appName+".log"),
		MaxSize:    10, // MB
		MaxBackups: 2,
		MaxAge:     28, // days
		Compress:   true,
	})
}
