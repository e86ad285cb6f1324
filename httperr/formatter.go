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

package httperr

import (
	"encoding/json"
	"net/http"
)

// Formatter converts an error into the components of an HTTP error response.
// Implementations are framework-agnostic and work with any handler.
type Formatter interface {
	Format(req *http.Request, err error) Response
}

// Response is a formatted error response.
type Response struct {
	// Status is the HTTP status code.
	Status int

	// ContentType is the Content-Type header value.
	ContentType string

	// Body is the response body, marshaled as JSON by [Write].
	Body any
}

// ErrorType lets domain errors declare their own HTTP status code.
//
// Example:
//
//	type NotFoundError struct{ ID string }
//
//	func (e NotFoundError) Error() string   { return "no such record: " + e.ID }
//	func (e NotFoundError) HTTPStatus() int { return http.StatusNotFound }
type ErrorType interface {
	error
	HTTPStatus() int
}

// ErrorCode lets domain errors attach a machine-readable code.
type ErrorCode interface {
	error
	Code() string
}

// ErrorDetails lets domain errors expose structured details.
type ErrorDetails interface {
	error
	Details() any
}

// Write formats err through f and writes the result to w. It is the default
// body of the application's error continuation.
func Write(w http.ResponseWriter, r *http.Request, f Formatter, err error) error {
	resp := f.Format(r, err)
	w.Header().Set("Content-Type", resp.ContentType)
	w.WriteHeader(resp.Status)
	return json.NewEncoder(w).Encode(resp.Body)
}
