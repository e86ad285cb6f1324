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

import (
	"context"
	"sync"
)

// Future represents work that has not completed yet. It settles exactly once
// with either a value or an error.
type Future interface {
	// Await blocks until the future settles or ctx is done. When ctx wins,
	// Await returns ctx's error; the producing work is not canceled.
	Await(ctx context.Context) (any, error)
}

// Promise is the writable side of a [Future]. The zero value is not usable;
// create one with [NewPromise].
//
// The first call to [Promise.Resolve] or [Promise.Reject] settles the
// promise; later calls are no-ops. All methods are safe for concurrent use.
type Promise struct {
	once  sync.Once
	done  chan struct{}
	value any
	err   error
}

// NewPromise creates an unsettled promise.
func NewPromise() *Promise {
	return &Promise{done: make(chan struct{})}
}

// Resolve settles the promise with a value. No-op if already settled.
func (p *Promise) Resolve(v any) {
	p.once.Do(func() {
		p.value = v
		close(p.done)
	})
}

// Reject settles the promise with an error. No-op if already settled.
func (p *Promise) Reject(err error) {
	p.once.Do(func() {
		p.err = err
		close(p.done)
	})
}

// Await implements [Future].
func (p *Promise) Await(ctx context.Context) (any, error) {
	select {
	case <-p.done:
		return p.value, p.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Defer runs fn in its own goroutine and returns a deferred [Result] that
// settles when fn returns. It is a convenience for handlers that want to free
// the request goroutine's caller immediately:
//
//	return controller.Defer(func() (any, error) {
//	    return svc.Lookup(id)
//	})
func Defer(fn func() (any, error)) Result {
	p := NewPromise()
	go func() {
		v, err := fn()
		if err != nil {
			p.Reject(err)
			return
		}
		p.Resolve(v)
	}()
	return Async(p)
}
