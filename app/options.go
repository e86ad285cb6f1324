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

package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/routebind/routebind/engine"
	"github.com/routebind/routebind/httperr"
	"github.com/routebind/routebind/metadata"
	"github.com/routebind/routebind/registry"
)

// Environment modes.
const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)

// Option defines functional options for application configuration.
type Option func(*config)

type config struct {
	serviceName     string
	serviceVersion  string
	environment     string
	engine          engine.Engine
	registry        *registry.Registry
	meta            *metadata.Store
	logger          *slog.Logger
	formatter       httperr.Formatter
	shutdownTimeout time.Duration
}

func defaultConfig() *config {
	return &config{
		serviceName:     "routebind",
		serviceVersion:  "dev",
		environment:     EnvironmentDevelopment,
		shutdownTimeout: 10 * time.Second,
	}
}

func (c *config) validate() error {
	if c.serviceName == "" {
		return fmt.Errorf("app: empty service name")
	}
	if c.environment != EnvironmentDevelopment && c.environment != EnvironmentProduction {
		return fmt.Errorf("app: invalid environment %q", c.environment)
	}
	return nil
}

// WithServiceName sets the service name shown in the startup banner and logs.
// An empty name causes validation to fail during [New].
func WithServiceName(name string) Option {
	return func(c *config) {
		c.serviceName = name
	}
}

// WithServiceVersion sets the service version shown in the startup banner.
func WithServiceVersion(version string) Option {
	return func(c *config) {
		c.serviceVersion = version
	}
}

// WithEnvironment sets the environment mode, "development" or "production".
// Development prints the startup banner with the route table on [App.Run];
// production prints nothing and strips colors. Invalid values cause
// validation to fail during [New].
func WithEnvironment(env string) Option {
	return func(c *config) {
		c.environment = env
	}
}

// WithEngine sets the host HTTP engine. Default: [engine.NewChi].
func WithEngine(eng engine.Engine) Option {
	return func(c *config) {
		c.engine = eng
	}
}

// WithRegistry sets the controller provider registry. Default: a fresh empty
// registry, which builds an application with no controller routes.
func WithRegistry(reg *registry.Registry) Option {
	return func(c *config) {
		c.registry = reg
	}
}

// WithMetadata sets the routing metadata store. Default: a fresh empty store.
func WithMetadata(store *metadata.Store) Option {
	return func(c *config) {
		c.meta = store
	}
}

// WithLogger sets the application logger. Default: a JSON logger from the
// logging package.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithErrorFormatter sets the formatter the default error continuation
// renders forwarded errors with. Default: [httperr.NewSimple].
func WithErrorFormatter(f httperr.Formatter) Option {
	return func(c *config) {
		c.formatter = f
	}
}

// WithShutdownTimeout bounds graceful shutdown in [App.Run]. Default: 10s.
func WithShutdownTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.shutdownTimeout = d
		}
	}
}
