package pulse

import (
	"log/slog"
	"os"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
)

func init() {
	applyWGPULogLevel(os.Getenv("WGPU_LOG_LEVEL"), wgpu.SetLogLevel)
}

func applyWGPULogLevel(value string, setLogLevel func(wgpu.LogLevel)) {
	if wgpuLevel, _, ok := parseLogLevel(value); ok {
		setLogLevel(wgpuLevel)
	}
}

// LogLevelFromEnv returns the slog level matching WGPU_LOG_LEVEL, or
// slog.LevelInfo if the variable is unset or unknown.
func LogLevelFromEnv() slog.Level {
	_, level, ok := parseLogLevel(os.Getenv("WGPU_LOG_LEVEL"))
	if !ok {
		return slog.LevelInfo
	}

	return level
}

func parseLogLevel(value string) (wgpu.LogLevel, slog.Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "OFF":
		// nothing is logged below error, slog has no off level
		return wgpu.LogLevelOff, slog.LevelError, true
	case "ERROR":
		return wgpu.LogLevelError, slog.LevelError, true
	case "WARN":
		return wgpu.LogLevelWarn, slog.LevelWarn, true
	case "INFO":
		return wgpu.LogLevelInfo, slog.LevelInfo, true
	case "DEBUG":
		return wgpu.LogLevelDebug, slog.LevelDebug, true
	case "TRACE":
		return wgpu.LogLevelTrace, slog.LevelDebug - 4, true
	}

	return wgpu.LogLevelOff, slog.LevelInfo, false
}
