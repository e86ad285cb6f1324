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

// Package binder translates controller metadata into live routes on the host
// HTTP engine.
//
// For each identity in the registry, in registration order, the binder reads
// the controller's descriptor and method descriptors from the metadata store.
// A controller binds only when both are present; otherwise it is silently
// skipped. Bound controllers get a fresh sub-router carrying the controller's
// middleware, one route per method descriptor in descriptor order, and are
// mounted on the root router at the controller's base path.
//
// # The request adapter
//
// Each route's terminal handler resolves the controller instance from the
// registry on every matched request, invokes the described method, and
// interprets its result:
//
//   - an already-written response is left untouched;
//   - an immediate value is written as the response body, unless the handler
//     already wrote one;
//   - a deferred result is awaited; a settled value is written under the same
//     rule, and a settled error is forwarded to the error handler without
//     writing a body.
//
// Errors carried by results are forwarded; panics are not recovered here. A
// handler that panics unwinds into the host engine's own machinery, the same
// way any http.Handler panic does. Hosts that want panics converted into
// error responses install recovery middleware (see middleware/recovery) ahead
// of the bound routes.
package binder
