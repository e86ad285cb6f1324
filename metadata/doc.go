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

// Package metadata stores routing descriptors keyed by controller identity.
//
// The store is populated at wiring time ([Store.Describe], [Store.Handle])
// and read by the binder at bind time ([Store.Descriptor], [Store.Methods]).
// Absence is a valid outcome, not an error: a controller that has no
// descriptor, or a descriptor with no methods, simply contributes no routes.
package metadata
