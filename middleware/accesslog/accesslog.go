// Copyright 2026 The Routebind Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package accesslog provides middleware that writes one structured log line
// per request: method, path, status, body size, duration, and the request id
// when the requestid middleware ran earlier in the chain.
//
//	root.Use(accesslog.New(accesslog.WithLogger(logger)))
package accesslog

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/routebind/routebind/engine"
	"github.com/routebind/routebind/logging"
	"github.com/routebind/routebind/middleware/requestid"
)

// Option configures the middleware.
type Option func(*config)

type config struct {
	logger *slog.Logger
	level  slog.Level
}

// WithLogger sets the logger. Default: [slog.Default].
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithLevel sets the level access lines are emitted at. Default: Info.
func WithLevel(level slog.Level) Option {
	return func(c *config) {
		c.level = level
	}
}

// New returns middleware that logs each completed request.
func New(opts ...Option) func(http.Handler) http.Handler {
	cfg := &config{
		logger: slog.Default(),
		level:  slog.LevelInfo,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := engine.Wrap(w)
			start := time.Now()

			next.ServeHTTP(rw, r)

			status := rw.Status()
			if status == 0 {
				status = http.StatusOK
			}

			args := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"bytes", rw.BytesWritten(),
				"duration", time.Since(start),
			}
			if id := requestid.FromContext(r.Context()); id != "" {
				args = append(args, "request_id", id)
			}

			logger := logging.FromContext(r.Context(), cfg.logger)
			logger.Log(r.Context(), cfg.level, "request", args...)
		})
	}
}
