package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	gormlogger "gorm.io/gorm/logger"
)

const (
	permission = 0664
)

// LogBuild collects logger options before Make
type LogBuild struct {
	writer io.Writer
	path   string
	level  string
	format string
}

// LogData is the built logger plus the file it may own
type LogData struct {
	LogFile *os.File
	Logger  zerolog.Logger
}

func New() *LogBuild {
	return &LogBuild{level: "info", format: "json"}
}

func (build *LogBuild) FromPath(path string) *LogBuild {
	build.path = path
	return build
}

func (build *LogBuild) FromBuffer(w io.Writer) *LogBuild {
	build.writer = w
	return build
}

func (build *LogBuild) WithLevel(level string) *LogBuild {
	if level != "" {
		build.level = level
	}
	return build
}

// WithFormat selects "json" or "console" output
func (build *LogBuild) WithFormat(format string) *LogBuild {
	if format != "" {
		build.format = format
	}
	return build
}

func (build *LogBuild) Make() (logData *LogData, err error) {
	logData = new(LogData)

	var writer io.Writer = os.Stdout
	if build.writer != nil {
		writer = build.writer
	}
	if build.path != "" {
		logData.LogFile, err = os.OpenFile(build.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, permission)
		if err != nil {
			return nil, err
		}
		writer = zerolog.SyncWriter(logData.LogFile)
	}
	if strings.EqualFold(build.format, "console") {
		writer = zerolog.ConsoleWriter{Out: writer, NoColor: build.path != ""}
	}

	level, err := zerolog.ParseLevel(strings.ToLower(build.level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	logData.Logger = zerolog.New(writer).Level(level).With().Timestamp().Logger()
	return logData, nil
}

// Close releases the log file, if any
func (logData *LogData) Close() error {
	if logData.LogFile == nil {
		return nil
	}
	return logData.LogFile.Close()
}

// GormLevel maps a zerolog level name onto the GORM logger level
func GormLevel(level string) gormlogger.LogLevel {
	switch strings.ToLower(level) {
	case "trace", "debug":
		return gormlogger.Info
	case "info", "warn":
		return gormlogger.Warn
	case "error", "fatal", "panic":
		return gormlogger.Error
	case "disabled":
		return gormlogger.Silent
	}
	return gormlogger.Warn
}
