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

// Package controller defines the declarative routing descriptors and the
// result contract shared by the binder and the application builder.
//
// A controller is any value that exposes request-handling methods. Instead of
// runtime introspection, controllers are described explicitly: a [Descriptor]
// names the controller's identity, base path, and middleware, and one [Method]
// per handler method names the verb, relative path, and a statically typed
// [Invoker] that dispatches to the method.
//
// # Describing a controller
//
//	desc := controller.Descriptor{
//	    Identity: "users",
//	    BasePath: "/users",
//	    Middleware: []controller.Middleware{authRequired},
//	}
//
//	list := controller.Method{
//	    Verb: http.MethodGet,
//	    Path: "/",
//	    Key:  "List",
//	    Invoke: controller.Invoke(func(c *UserController, w http.ResponseWriter, r *http.Request) controller.Result {
//	        return controller.Value(c.List(r.Context()))
//	    }),
//	}
//
// # Results
//
// A handler method reports its outcome as a [Result] with three variants:
//
//   - [Value] carries an immediate value to write as the response body.
//   - [Async] carries a [Future] that settles later with a value or an error.
//   - [Written] reports that the handler already wrote the response itself.
//
// The binder's request adapter owns the interpretation of each variant; see
// the binder package for the exact semantics.
package controller
