package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/synclinehq/syncline/constants"
)

var logger zerolog.Logger

func init() {
	// usable before Init for early command errors
	logger = zerolog.New(console()).With().Timestamp().Logger()
}

func console() zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}
}

// Init attaches the rotating file sink under the configured folder; the
// console writer stays active either way.
func Init() {
	logsDir := filepath.Join(viper.GetString(constants.ConfigFolder), "logs")
	if err := os.MkdirAll(logsDir, os.ModePerm); err != nil {
		logger.Warn().Msgf("failed to create logs directory[%s]: %s", logsDir, err)
		return
	}

	fileSink := &lumberjack.Logger{
		Filename:   filepath.Join(logsDir, "syncline.log"),
		MaxSize:    100, // megabytes
		MaxBackups: 5,
		MaxAge:     30, // days
	}

	logger = zerolog.New(io.MultiWriter(console(), fileSink)).With().Timestamp().Logger()
}

func Info(v ...interface{}) {
	logger.Info().Msg(fmt.Sprint(v...))
}

func Infof(format string, v ...interface{}) {
	logger.Info().Msgf(format, v...)
}

func Debugf(format string, v ...interface{}) {
	logger.Debug().Msgf(format, v...)
}

func Warnf(format string, v ...interface{}) {
	logger.Warn().Msgf(format, v...)
}

func Error(v ...interface{}) {
	logger.Error().Msg(fmt.Sprint(v...))
}

func Errorf(format string, v ...interface{}) {
	logger.Error().Msgf(format, v...)
}

func Fatal(v ...interface{}) {
	logger.Fatal().Msg(fmt.Sprint(v...))
}

// FileLogger writes a JSON artifact next to the logs and echoes where it
// landed.
func FileLogger(content any, name, ext string) {
	path := filepath.Join(viper.GetString(constants.ConfigFolder), name+ext)
	data, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		Fatal(fmt.Errorf("failed to marshal %s artifact: %s", name, err))
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		Fatal(fmt.Errorf("failed to write %s artifact: %s", name, err))
	}

	Infof("%s file created at %s", name, path)
}

// LogJSON prints a protocol message row on stdout for machine consumption.
func LogJSON(v any) {
	data, err := json.Marshal(v)
	if err != nil {
		Fatal(fmt.Errorf("failed to marshal message row: %s", err))
	}

	fmt.Println(string(data))
}
