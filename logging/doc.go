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

// Package logging constructs the structured loggers used across the module.
//
// It is a thin layer over log/slog: [New] builds a logger with a JSON or
// text handler, and [FromContext] derives a request-scoped logger carrying
// trace_id and span_id fields when the context holds an active OpenTelemetry
// span.
//
//	logger := logging.New(
//	    logging.WithLevel(slog.LevelDebug),
//	    logging.WithHandlerType(logging.TextHandler),
//	)
package logging
