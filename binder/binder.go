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

package binder

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/routebind/routebind/controller"
	"github.com/routebind/routebind/engine"
	"github.com/routebind/routebind/metadata"
	"github.com/routebind/routebind/registry"
)

// ErrorHandler receives errors forwarded by the request adapter: deferred
// results that settled with an error, and registry resolution failures.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// Route is one bound route, for banners and diagnostics.
type Route struct {
	// Identity is the controller the route belongs to.
	Identity string

	// Verb is the HTTP method.
	Verb string

	// Path is the full pattern, base path included.
	Path string

	// Key is the controller method key.
	Key string
}

// Binder builds the route table. Create one with [New].
type Binder struct {
	engine   engine.Engine
	registry *registry.Registry
	meta     *metadata.Store
	logger   *slog.Logger
	onError  ErrorHandler

	mu     sync.Mutex
	routes []Route
}

// Option configures a Binder.
type Option func(*Binder)

// WithLogger sets the logger used for bind-time debug logging.
// Defaults to [slog.Default].
func WithLogger(logger *slog.Logger) Option {
	return func(b *Binder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithErrorHandler sets the error continuation forwarded errors reach.
// The default writes a 500 JSON body with the error message.
func WithErrorHandler(h ErrorHandler) Option {
	return func(b *Binder) {
		if h != nil {
			b.onError = h
		}
	}
}

// New creates a Binder over an engine, a provider registry, and a metadata
// store. All three are required.
func New(eng engine.Engine, reg *registry.Registry, meta *metadata.Store, opts ...Option) (*Binder, error) {
	if eng == nil {
		return nil, fmt.Errorf("binder: nil engine")
	}
	if reg == nil {
		return nil, fmt.Errorf("binder: nil registry")
	}
	if meta == nil {
		return nil, fmt.Errorf("binder: nil metadata store")
	}

	b := &Binder{
		engine:   eng,
		registry: reg,
		meta:     meta,
		logger:   slog.Default(),
	}
	b.onError = b.defaultErrorHandler
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// BindAll binds every identity the registry knows, in registration order.
// The first bind failure aborts; routes already registered stay registered.
func (b *Binder) BindAll() error {
	for _, identity := range b.registry.Identities() {
		if err := b.Bind(identity); err != nil {
			return err
		}
	}
	return nil
}

// Bind binds one controller. A controller without a descriptor, or without
// any method descriptors, contributes nothing and Bind returns nil.
func (b *Binder) Bind(identity string) error {
	desc, ok := b.meta.Descriptor(identity)
	methods := b.meta.Methods(identity)
	if !ok || len(methods) == 0 {
		b.logger.Debug("controller skipped, no route metadata",
			"identity", identity,
			"described", ok,
			"methods", len(methods),
		)
		return nil
	}

	sub := b.engine.NewRouter()
	// Controller middleware must be attached before any route registration;
	// chi rejects Use after the first route.
	sub.Use(compact(desc.Middleware)...)

	basePath := normalizePattern(desc.BasePath)
	staged := make([]Route, 0, len(methods))
	for i, m := range methods {
		verb, err := normalizeVerb(m.Verb)
		if err != nil {
			return fmt.Errorf("binder: %s[%d] %q: %w", identity, i, m.Key, err)
		}
		if m.Invoke == nil {
			return fmt.Errorf("binder: %s[%d] %q: nil Invoke", identity, i, m.Key)
		}

		path := normalizePattern(m.Path)
		h := chain(m.Middleware, b.adapt(identity, m))
		sub.Method(verb, path, h)

		staged = append(staged, Route{
			Identity: identity,
			Verb:     verb,
			Path:     joinPattern(basePath, path),
			Key:      m.Key,
		})
	}

	b.engine.Root().Mount(basePath, sub)

	// Routes are committed only once the sub-router is mounted, so a bind
	// failure never leaves unreachable entries in the snapshot.
	b.mu.Lock()
	b.routes = append(b.routes, staged...)
	b.mu.Unlock()
	b.logger.Debug("controller mounted",
		"identity", identity,
		"base_path", basePath,
		"routes", len(methods),
	)
	return nil
}

// Routes returns a snapshot of every route bound so far, in bind order.
func (b *Binder) Routes() []Route {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Route, len(b.routes))
	copy(out, b.routes)
	return out
}

// verbs the host engines in scope accept.
var knownVerbs = map[string]struct{}{
	http.MethodGet:     {},
	http.MethodHead:    {},
	http.MethodPost:    {},
	http.MethodPut:     {},
	http.MethodPatch:   {},
	http.MethodDelete:  {},
	http.MethodConnect: {},
	http.MethodOptions: {},
	http.MethodTrace:   {},
}

func normalizeVerb(verb string) (string, error) {
	v := strings.ToUpper(strings.TrimSpace(verb))
	if _, ok := knownVerbs[v]; !ok {
		return "", fmt.Errorf("unsupported verb %q", verb)
	}
	return v, nil
}

// normalizePattern guarantees a leading slash and strips a trailing one, so
// "" and "/" both become "/", and "users/" becomes "/users".
func normalizePattern(p string) string {
	if p == "" || p == "/" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return strings.TrimSuffix(p, "/")
}

// joinPattern joins a base pattern and a relative pattern for display.
func joinPattern(base, path string) string {
	if base == "/" {
		return path
	}
	if path == "/" {
		return base
	}
	return base + path
}

// chain wraps h with middleware so the first element is outermost.
func chain(middleware []controller.Middleware, h http.Handler) http.Handler {
	for i := len(middleware) - 1; i >= 0; i-- {
		if mw := middleware[i]; mw != nil {
			h = mw(h)
		}
	}
	return h
}

// compact drops nil entries, which host engines reject.
func compact(middleware []controller.Middleware) []controller.Middleware {
	out := make([]controller.Middleware, 0, len(middleware))
	for _, mw := range middleware {
		if mw != nil {
			out = append(out, mw)
		}
	}
	return out
}
