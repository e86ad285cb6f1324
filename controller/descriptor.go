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

package controller

import "net/http"

// Middleware is the host-engine middleware shape: a function that wraps an
// [http.Handler] with additional behavior.
type Middleware = func(http.Handler) http.Handler

// Descriptor describes one controller: the identity used to resolve instances
// from the registry, the base path its routes are mounted under, and the
// middleware applied to every route it contributes.
//
// A Descriptor is attached once per controller at wiring time and is read-only
// afterwards.
type Descriptor struct {
	// Identity is the opaque token used for named lookup in the registry.
	// It must be non-empty and unique within one metadata store.
	Identity string

	// BasePath is the path prefix the controller's sub-router is mounted at.
	// An empty BasePath mounts at "/".
	BasePath string

	// Middleware runs for every route of this controller, in order, before
	// any method-level middleware.
	Middleware []Middleware
}

// Invoker dispatches a request to one handler method on a resolved controller
// instance. The ctrl argument is whatever the registry factory produced;
// implementations built with [Invoke] assert it to the concrete controller
// type.
type Invoker func(ctrl any, w http.ResponseWriter, r *http.Request) Result

// Method describes one handler method on a controller: which verb and
// relative path it serves, the key naming the method (used for route naming
// and logs), its middleware, and the [Invoker] that dispatches to it.
//
// Methods are registered in slice order, and that order is the route-matching
// precedence within the controller's sub-router.
type Method struct {
	// Verb is the HTTP method, for example [http.MethodGet].
	Verb string

	// Path is relative to the controller's BasePath and may contain
	// parameter segments in the host engine's syntax. An empty Path is
	// treated as "/".
	Path string

	// Key names the controller method this descriptor dispatches to.
	Key string

	// Middleware runs after the controller's middleware and before the
	// handler, in order.
	Middleware []Middleware

	// Invoke dispatches to the method on a resolved instance. It must be
	// non-nil; binding fails otherwise.
	Invoke Invoker
}

// Invoke adapts a typed handler function into an [Invoker]. The returned
// Invoker asserts the resolved instance to T, so the registry factory for the
// controller's identity must produce a T.
//
// Example:
//
//	controller.Invoke(func(c *UserController, w http.ResponseWriter, r *http.Request) controller.Result {
//	    return controller.Value(c.List(r.Context()))
//	})
func Invoke[T any](fn func(ctrl T, w http.ResponseWriter, r *http.Request) Result) Invoker {
	return func(ctrl any, w http.ResponseWriter, r *http.Request) Result {
		return fn(ctrl.(T), w, r)
	}
}
