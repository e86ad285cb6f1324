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

package metadata

import (
	"fmt"
	"sync"

	"github.com/routebind/routebind/controller"
)

// Sentinel errors returned by [Store.Describe].
var (
	// ErrEmptyIdentity is returned for a descriptor without an identity.
	ErrEmptyIdentity = fmt.Errorf("metadata: descriptor without identity")

	// ErrAlreadyDescribed is returned when an identity is described twice.
	ErrAlreadyDescribed = fmt.Errorf("metadata: identity already described")
)

// Store holds controller and method descriptors keyed by identity. The zero
// value is not usable; create one with [New].
//
// All methods are safe for concurrent use, though the expected pattern is
// write-at-wiring, read-at-bind.
type Store struct {
	mu          sync.RWMutex
	descriptors map[string]controller.Descriptor
	methods     map[string][]controller.Method
}

// New creates an empty store.
func New() *Store {
	return &Store{
		descriptors: make(map[string]controller.Descriptor),
		methods:     make(map[string][]controller.Method),
	}
}

// Describe attaches the controller-level descriptor for its identity.
// Each identity may be described once.
func (s *Store) Describe(d controller.Descriptor) error {
	if d.Identity == "" {
		return ErrEmptyIdentity
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.descriptors[d.Identity]; exists {
		return fmt.Errorf("%w: %q", ErrAlreadyDescribed, d.Identity)
	}
	s.descriptors[d.Identity] = d
	return nil
}

// Handle appends method descriptors for an identity. Call order across Handle
// calls, and slice order within one call, fix the registration order and
// therefore the match precedence of the controller's routes.
//
// Handle does not require the identity to be described: method metadata
// without a controller descriptor is legal and simply never binds.
func (s *Store) Handle(identity string, methods ...controller.Method) {
	if identity == "" || len(methods) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.methods[identity] = append(s.methods[identity], methods...)
}

// Descriptor returns the controller-level descriptor for an identity.
// The second return is false when the identity was never described.
func (s *Store) Descriptor(identity string) (controller.Descriptor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.descriptors[identity]
	return d, ok
}

// Methods returns the method descriptors for an identity in registration
// order. The returned slice is a copy; a nil result means no methods were
// registered.
func (s *Store) Methods(identity string) []controller.Method {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ms, ok := s.methods[identity]
	if !ok {
		return nil
	}
	out := make([]controller.Method, len(ms))
	copy(out, ms)
	return out
}
