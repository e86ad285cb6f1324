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

// Package registry provides the provider registry the binder resolves
// controller instances from.
//
// The registry maps string identities to factories. Enumeration order equals
// registration order, which fixes the order controllers are mounted in.
// Resolution calls the factory every time, so a factory that returns a fresh
// value gives per-request controller instances:
//
//	reg := registry.New()
//	err := reg.Provide("users", func(ctx context.Context) (any, error) {
//	    return &UserController{DB: db}, nil
//	})
//
// Factories that return a shared instance are equally valid; the scoping
// decision belongs entirely to the factory.
package registry
