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

// Package recovery provides middleware that converts handler panics into
// error responses instead of letting them crash the connection.
//
// The route-binding adapter deliberately does not recover panics (errors
// carried by results are forwarded to the error continuation; panics are
// programming errors). Hosts that want a response anyway install this
// middleware ahead of their bound routes:
//
//	root.Use(recovery.New(recovery.WithLogger(logger)))
//
// [http.ErrAbortHandler] is re-panicked so the server's own abort protocol
// keeps working.
package recovery

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime"
)

// Option configures the middleware.
type Option func(*config)

type config struct {
	logger     *slog.Logger
	stackTrace bool
	stackSize  int
	handler    func(w http.ResponseWriter, r *http.Request, v any)
}

func defaultConfig() *config {
	return &config{
		logger:     slog.Default(),
		stackTrace: true,
		stackSize:  4 << 10,
	}
}

// WithLogger sets the logger panics are reported to. Default: [slog.Default].
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithoutLogging disables panic logging. Useful in tests.
func WithoutLogging() Option {
	return func(c *config) {
		c.logger = nil
	}
}

// WithStackTrace enables or disables stack capture. Default: true.
func WithStackTrace(enabled bool) Option {
	return func(c *config) {
		c.stackTrace = enabled
	}
}

// WithStackSize sets the maximum captured stack size in bytes. Default: 4KB.
func WithStackSize(size int) Option {
	return func(c *config) {
		if size > 0 {
			c.stackSize = size
		}
	}
}

// WithHandler sets a custom response for recovered panics. The default sends
// a plain 500.
func WithHandler(h func(w http.ResponseWriter, r *http.Request, v any)) Option {
	return func(c *config) {
		c.handler = h
	}
}

// New returns middleware that recovers panics from downstream handlers.
func New(opts ...Option) func(http.Handler) http.Handler {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				if cfg.logger != nil {
					args := []any{
						"method", r.Method,
						"path", r.URL.Path,
						"panic", v,
					}
					if cfg.stackTrace {
						stack := make([]byte, cfg.stackSize)
						stack = stack[:runtime.Stack(stack, false)]
						args = append(args, "stack", string(stack))
					}
					cfg.logger.Error("panic recovered", args...)
				}

				if cfg.handler != nil {
					cfg.handler(w, r, v)
					return
				}
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
