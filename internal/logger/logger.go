package logger

import (
	"os"
	"path/filepath"
	"time"

	rotatelogs "github.com/mrnim94/file-rotatelogs"
	"github.com/rifflock/lfshook"
	log "github.com/sirupsen/logrus"
)

// Init configures the global logrus logger. The level comes from LOG_LEVEL
// (info when unset or unrecognized). When LOG_DIR is set, output is also
// written to daily-rotated files kept for a week.
func Init() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	log.SetOutput(os.Stdout)
	log.SetLevel(Level(os.Getenv("LOG_LEVEL")))

	if dir := os.Getenv("LOG_DIR"); dir != "" {
		hook, err := fileHook(dir)
		if err != nil {
			log.Warnf("File logging disabled: %v", err)
			return
		}
		log.AddHook(hook)
	}
}

// Level maps a LOG_LEVEL value to a logrus level, defaulting to info.
func Level(value string) log.Level {
	lvl, err := log.ParseLevel(value)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

func fileHook(dir string) (log.Hook, error) {
	writer, err := rotatelogs.New(
		filepath.Join(dir, "server.%Y%m%d.log"),
		rotatelogs.WithLinkName(filepath.Join(dir, "server.log")),
		rotatelogs.WithRotationTime(24*time.Hour),
		rotatelogs.WithMaxAge(7*24*time.Hour),
	)
	if err != nil {
		return nil, err
	}

	writers := lfshook.WriterMap{
		log.DebugLevel: writer,
		log.InfoLevel:  writer,
		log.WarnLevel:  writer,
		log.ErrorLevel: writer,
		log.FatalLevel: writer,
		log.PanicLevel: writer,
	}
	return lfshook.NewHook(writers, &log.JSONFormatter{TimestampFormat: "2006-01-02 15:04:05"}), nil
}
