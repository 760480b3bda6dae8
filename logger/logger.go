// Copyright (c) 2026, WSO2 LLC. (https://www.wso2.com).
//
// WSO2 LLC. licenses this file to you under the Apache License,
// Version 2.0 (the "License"); you may not use this file except
// in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package logger

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

type loggerKey struct{}

// GetLogger returns the logger stored in ctx, or the default logger
func GetLogger(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && l != nil {
			return l
		}
	}
	return slog.Default()
}

// WithLogger returns a copy of ctx carrying l
func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// ParseLevel maps DEBUG, INFO, WARN and ERROR to slog levels; anything else is INFO
func ParseLevel(name string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo // default to INFO
	}
}

// Setup installs a JSON logger writing to w as the default logger
func Setup(levelName string, w io.Writer) *slog.Logger {
	level := ParseLevel(levelName)
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	l := slog.New(handler)
	slog.SetDefault(l)

	l.Debug("Logger configured", "level", level.String())
	return l
}
