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

// Package engine is the seam between the binder and the host HTTP engine.
//
// The binder consumes exactly three router operations: register a handler for
// a verb and pattern, apply middleware, and mount a sub-router under a path
// prefix. [Router] captures that surface and [Engine] supplies routers. The
// default engine ([NewChi]) is backed by github.com/go-chi/chi/v5, whose Mux
// satisfies [Router] directly, but any router with the same operations can be
// adapted.
//
// [ResponseWriter] wraps the host's writer so the binder can ask whether a
// handler already sent a response before writing a result value.
package engine
