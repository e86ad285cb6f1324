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
	"net/http"
	"sync"

	"github.com/routebind/routebind/binder"
	"github.com/routebind/routebind/controller"
	"github.com/routebind/routebind/engine"
	"github.com/routebind/routebind/httperr"
	"github.com/routebind/routebind/logging"
	"github.com/routebind/routebind/metadata"
	"github.com/routebind/routebind/registry"
)

// ConfigFunc mutates the application handle during [Builder.Build]. It is
// invoked for side effects only.
type ConfigFunc func(a *App)

// ErrorHandler is the error continuation forwarded handler errors reach.
type ErrorHandler = binder.ErrorHandler

// Builder assembles an [App]. The handle itself is created by [New]; Build
// configures and populates it.
type Builder struct {
	app       *App
	preConfig ConfigFunc
	errConfig ConfigFunc
}

// New creates a Builder and the application handle it will configure.
func New(opts ...Option) (*Builder, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.engine == nil {
		cfg.engine = engine.NewChi()
	}
	if cfg.registry == nil {
		cfg.registry = registry.New()
	}
	if cfg.meta == nil {
		cfg.meta = metadata.New()
	}
	if cfg.logger == nil {
		cfg.logger = logging.New()
	}
	if cfg.formatter == nil {
		cfg.formatter = httperr.NewSimple()
	}

	a := &App{
		config:   *cfg,
		engine:   cfg.engine,
		registry: cfg.registry,
		meta:     cfg.meta,
		logger:   cfg.logger,
	}
	a.onError = a.formatError

	// The binder forwards through the handle so OnError replacements made by
	// the error-config callback apply to already-bound routes.
	bnd, err := binder.New(cfg.engine, cfg.registry, cfg.meta,
		binder.WithLogger(cfg.logger),
		binder.WithErrorHandler(a.handleError),
	)
	if err != nil {
		return nil, err
	}
	a.binder = bnd

	return &Builder{app: a}, nil
}

// SetConfig stores the pre-configuration callback, invoked before any
// controller route is bound. Chainable.
func (b *Builder) SetConfig(fn ConfigFunc) *Builder {
	b.preConfig = fn
	return b
}

// SetErrorConfig stores the error-configuration callback, invoked after all
// controller routes are bound. Chainable.
func (b *Builder) SetErrorConfig(fn ConfigFunc) *Builder {
	b.errConfig = fn
	return b
}

// Build runs the startup sequence and returns the application handle:
// pre-config callback, one bind per registered identity in registration
// order, error-config callback. A bind failure aborts; routes registered
// before the failure are not rolled back.
func (b *Builder) Build() (*App, error) {
	if b.preConfig != nil {
		b.preConfig(b.app)
	}
	if err := b.app.binder.BindAll(); err != nil {
		return nil, fmt.Errorf("app: build: %w", err)
	}
	if b.errConfig != nil {
		b.errConfig(b.app)
	}
	return b.app, nil
}

// App is the mutable application handle shared by the config callbacks and
// every bound route. It serves HTTP via the engine's root router.
type App struct {
	config   config
	engine   engine.Engine
	registry *registry.Registry
	meta     *metadata.Store
	binder   *binder.Binder
	logger   *slog.Logger

	mu      sync.RWMutex
	onError ErrorHandler
}

// Use appends application-level middleware to the root router. Call it from
// the pre-config callback: host engines require middleware before the first
// route registration.
func (a *App) Use(middleware ...controller.Middleware) {
	a.engine.Root().Use(middleware...)
}

// OnError replaces the error continuation. Forwarded errors from every bound
// route reach the current handler, including routes bound before the call.
func (a *App) OnError(h ErrorHandler) {
	if h == nil {
		return
	}
	a.mu.Lock()
	a.onError = h
	a.mu.Unlock()
}

// Router returns the engine's root router.
func (a *App) Router() engine.Router { return a.engine.Root() }

// Registry returns the controller provider registry.
func (a *App) Registry() *registry.Registry { return a.registry }

// Metadata returns the routing metadata store.
func (a *App) Metadata() *metadata.Store { return a.meta }

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger { return a.logger }

// Routes returns every bound route in bind order.
func (a *App) Routes() []binder.Route { return a.binder.Routes() }

// ServeHTTP implements [http.Handler] on the root router.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.engine.Root().ServeHTTP(w, r)
}

// handleError is what bound routes call; it dispatches to the current
// continuation under the read lock.
func (a *App) handleError(w http.ResponseWriter, r *http.Request, err error) {
	a.mu.RLock()
	h := a.onError
	a.mu.RUnlock()
	h(w, r, err)
}

// formatError is the default continuation: log, then render through the
// configured formatter unless a response was already started.
func (a *App) formatError(w http.ResponseWriter, r *http.Request, err error) {
	logging.FromContext(r.Context(), a.logger).Error("handler error",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)

	rw := engine.Wrap(w)
	if rw.Written() {
		return
	}
	if werr := httperr.Write(rw, r, a.config.formatter, err); werr != nil {
		a.logger.Error("error response write failed", "error", werr)
	}
}
