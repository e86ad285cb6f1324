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

// Kind discriminates the three result variants.
type Kind uint8

const (
	// KindWritten reports that the handler wrote the response itself and
	// there is nothing left for the adapter to do.
	KindWritten Kind = iota

	// KindImmediate carries a concrete value to write as the response body.
	KindImmediate

	// KindDeferred carries a [Future] that settles later.
	KindDeferred
)

// String returns the kind name for logs and test failure messages.
func (k Kind) String() string {
	switch k {
	case KindWritten:
		return "written"
	case KindImmediate:
		return "immediate"
	case KindDeferred:
		return "deferred"
	default:
		return "unknown"
	}
}

// Result is the tagged outcome of one handler invocation. Construct one with
// [Written], [Value], [Async], or [Defer]; the zero Result is equivalent to
// Written().
type Result struct {
	kind   Kind
	value  any
	future Future
}

// Written reports that the handler already sent the response. The adapter
// leaves the response untouched.
func Written() Result {
	return Result{kind: KindWritten}
}

// Value carries an immediate value. The adapter writes it as the response
// body unless the handler already wrote one; a nil value writes nothing.
func Value(v any) Result {
	return Result{kind: KindImmediate, value: v}
}

// Async carries a future that settles later with a value or an error. A nil
// future is equivalent to Written().
func Async(f Future) Result {
	if f == nil {
		return Written()
	}
	return Result{kind: KindDeferred, future: f}
}

// Kind returns the result variant.
func (r Result) Kind() Kind { return r.kind }

// Body returns the immediate value, or nil for other variants.
func (r Result) Body() any { return r.value }

// Future returns the deferred future, or nil for other variants.
func (r Result) Future() Future { return r.future }
