package assimp

/*
#include "include/assimp_shim.h"

// Implemented in Go by goAssimpLog.
extern void goAssimpLog(char* message);
*/
import "C"

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
)

var (
	nativeLogger atomic.Pointer[slog.Logger]

	// nativeReadMu is held shared by every native read and exclusively while
	// the library logger is replaced. Assimp keeps a raw pointer to its
	// logger for the whole read.
	nativeReadMu sync.RWMutex
)

// SetLogger routes the library's internal log to logger. verbose enables
// Assimp's debug output. A nil logger detaches the library logger again.
//
// The library logger is process-wide. SetLogger blocks until imports that are
// already running inside the library have returned, including imports whose
// ReadFile call gave up on a done context. It must not be called from a
// ProgressFunc.
func SetLogger(logger *slog.Logger, verbose bool) {
	nativeReadMu.Lock()
	defer nativeReadMu.Unlock()

	if logger == nil {
		C.assimp_shim_set_log_callback(nil, C.bool(false))
		nativeLogger.Store(nil)
		return
	}
	nativeLogger.Store(logger)
	C.assimp_shim_set_log_callback(C.assimp_log_callback(C.goAssimpLog), C.bool(verbose))
}

func forwardNativeLog(line string) {
	logger := nativeLogger.Load()
	if logger == nil {
		return
	}
	level, msg := parseNativeLogLine(line)
	if msg == "" {
		return
	}
	logger.Log(context.Background(), level, msg, "source", "assimp")
}

// parseNativeLogLine splits a DefaultLogger line such as
// "Warn,  T0: Ignoring unknown token" into a level and the message.
func parseNativeLogLine(line string) (slog.Level, string) {
	line = strings.TrimRight(line, "\r\n")

	level := slog.LevelInfo
	head, rest, found := strings.Cut(line, ",")
	if found {
		switch strings.TrimSpace(head) {
		case "Debug", "Verbose":
			level = slog.LevelDebug
		case "Info":
			level = slog.LevelInfo
		case "Warn":
			level = slog.LevelWarn
		case "Error":
			level = slog.LevelError
		default:
			return slog.LevelInfo, strings.TrimSpace(line)
		}
		line = rest
	}

	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, "T") {
		if idx := strings.Index(line, ": "); idx > 0 && isDigits(line[1:idx]) {
			line = line[idx+2:]
		}
	}
	return level, strings.TrimSpace(line)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
