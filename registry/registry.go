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

package registry

import (
	"context"
	"fmt"
	"sync"
)

// Factory produces one controller instance. It is called once per resolution,
// never at registration time.
type Factory func(ctx context.Context) (any, error)

// Sentinel errors returned by [Registry.Provide] and [Registry.Resolve].
var (
	// ErrEmptyIdentity is returned when Provide is called with an empty identity.
	ErrEmptyIdentity = fmt.Errorf("registry: empty identity")

	// ErrNilFactory is returned when Provide is called with a nil factory.
	ErrNilFactory = fmt.Errorf("registry: nil factory")

	// ErrDuplicateIdentity is returned when an identity is provided twice.
	// Overwriting silently would reorder mounted routes, so it is rejected.
	ErrDuplicateIdentity = fmt.Errorf("registry: duplicate identity")

	// ErrUnknownIdentity is returned by Resolve for an identity that was
	// never provided.
	ErrUnknownIdentity = fmt.Errorf("registry: unknown identity")
)

// Registry holds controller factories keyed by identity. The zero value is
// not usable; create one with [New].
//
// All methods are safe for concurrent use. Registration is expected to happen
// during wiring, before the registry is handed to the binder; Resolve is the
// only method on the request path.
type Registry struct {
	mu        sync.RWMutex
	order     []string
	factories map[string]Factory
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Provide registers a factory under an identity. The relative order of
// Provide calls is the order [Registry.Identities] reports, and therefore the
// order controllers are mounted in.
func (r *Registry) Provide(identity string, factory Factory) error {
	if identity == "" {
		return ErrEmptyIdentity
	}
	if factory == nil {
		return fmt.Errorf("%w: %q", ErrNilFactory, identity)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.factories[identity]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateIdentity, identity)
	}
	r.factories[identity] = factory
	r.order = append(r.order, identity)
	return nil
}

// MustProvide is like [Registry.Provide] but panics on error. Intended for
// wiring code where a registration failure is a programming mistake.
func (r *Registry) MustProvide(identity string, factory Factory) {
	if err := r.Provide(identity, factory); err != nil {
		panic(err)
	}
}

// Identities returns the registered identities in registration order.
// The returned slice is a copy.
func (r *Registry) Identities() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered identities.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Resolve produces one instance for the identity by calling its factory.
// Every call resolves freshly; the registry never caches instances.
func (r *Registry) Resolve(ctx context.Context, identity string) (any, error) {
	r.mu.RLock()
	factory, ok := r.factories[identity]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownIdentity, identity)
	}

	instance, err := factory(ctx)
	if err != nil {
		return nil, fmt.Errorf("registry: resolving %q: %w", identity, err)
	}
	return instance, nil
}
