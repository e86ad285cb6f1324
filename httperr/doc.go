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

// Package httperr formats forwarded handler errors as HTTP responses.
//
// Errors a handler's deferred result settles with are forwarded to the
// application's error continuation, which renders them through a [Formatter]:
//
//   - [Simple]: {"error": "...", "code": "...", "details": {...}} as
//     application/json
//   - [RFC9457]: RFC 9457 Problem Details as application/problem+json
//
// Domain errors can implement the optional [ErrorType], [ErrorCode], and
// [ErrorDetails] interfaces to control the status code and enrich the body.
//
// # Usage
//
//	formatter := httperr.NewSimple()
//	resp := formatter.Format(r, err)
//	w.Header().Set("Content-Type", resp.ContentType)
//	w.WriteHeader(resp.Status)
//	json.NewEncoder(w).Encode(resp.Body)
//
// or, equivalently, [Write].
package httperr
