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

package logging

import (
	"io"
	"log/slog"
	"os"
)

// HandlerType selects the slog handler implementation.
type HandlerType string

const (
	// JSONHandler outputs structured JSON logs.
	JSONHandler HandlerType = "json"
	// TextHandler outputs key=value text logs.
	TextHandler HandlerType = "text"
)

// Option configures [New].
type Option func(*config)

type config struct {
	level     slog.Leveler
	handler   HandlerType
	output    io.Writer
	addSource bool
}

func defaultConfig() *config {
	return &config{
		level:   slog.LevelInfo,
		handler: JSONHandler,
		output:  os.Stdout,
	}
}

// WithLevel sets the minimum level. Default: [slog.LevelInfo].
func WithLevel(level slog.Leveler) Option {
	return func(c *config) {
		c.level = level
	}
}

// WithHandlerType selects the output format. Default: [JSONHandler].
func WithHandlerType(t HandlerType) Option {
	return func(c *config) {
		c.handler = t
	}
}

// WithOutput sets the destination. Default: os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithSource adds source file and line to every record.
func WithSource() Option {
	return func(c *config) {
		c.addSource = true
	}
}

// New builds a slog logger from the options.
func New(opts ...Option) *slog.Logger {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	hopts := &slog.HandlerOptions{
		Level:     cfg.level,
		AddSource: cfg.addSource,
	}

	var h slog.Handler
	switch cfg.handler {
	case TextHandler:
		h = slog.NewTextHandler(cfg.output, hopts)
	default:
		h = slog.NewJSONHandler(cfg.output, hopts)
	}
	return slog.New(h)
}
