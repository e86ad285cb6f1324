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

// Package app assembles a served application from controller metadata.
//
// [New] creates a [Builder] holding the application handle; [Builder.Build]
// runs the startup sequence in a fixed order:
//
//  1. the pre-configuration callback, where application-level middleware is
//     installed so it observes every request before any controller route;
//  2. one bind per registered controller identity, in registration order;
//  3. the error-configuration callback, where the error continuation is
//     replaced so it sits behind all controller routes;
//  4. the handle is returned.
//
// # Example
//
//	builder, err := app.New(
//	    app.WithServiceName("orders"),
//	    app.WithRegistry(reg),
//	    app.WithMetadata(store),
//	)
//	if err != nil {
//	    return err
//	}
//
//	a, err := builder.
//	    SetConfig(func(a *app.App) {
//	        a.Use(requestid.New(), accesslog.New(accesslog.WithLogger(a.Logger())))
//	    }).
//	    SetErrorConfig(func(a *app.App) {
//	        a.OnError(customErrorHandler)
//	    }).
//	    Build()
//	if err != nil {
//	    return err
//	}
//
//	return a.Run(ctx, ":8080")
//
// Build carries no idempotency guard: calling it again re-runs the callbacks
// and re-registers every route on the same handle, with whatever
// duplicate-registration behavior the host engine has.
package app
