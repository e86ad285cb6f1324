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

package engine

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Router is the subset of a host HTTP router the binder needs. *chi.Mux
// satisfies it without adaptation.
type Router interface {
	http.Handler

	// Use appends middleware to the router's chain. Hosts typically require
	// Use before any route registration (chi does).
	Use(middlewares ...func(http.Handler) http.Handler)

	// Method registers a handler for an HTTP method and pattern.
	Method(method, pattern string, handler http.Handler)

	// Mount attaches a handler (usually a sub-router) under a path prefix.
	Mount(pattern string, handler http.Handler)
}

// Engine supplies the application's root router and fresh sub-routers for
// controllers to be mounted from.
type Engine interface {
	// Root returns the application-level router. The same value is returned
	// on every call; it is the shared mutable application handle.
	Root() Router

	// NewRouter returns a fresh, empty sub-router compatible with Root.
	NewRouter() Router
}

// chiEngine is the default Engine, backed by go-chi.
type chiEngine struct {
	root *chi.Mux
}

// NewChi creates an engine backed by a fresh chi.Mux.
func NewChi() Engine {
	return &chiEngine{root: chi.NewRouter()}
}

func (e *chiEngine) Root() Router { return e.root }

func (e *chiEngine) NewRouter() Router { return chi.NewRouter() }
