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

package engine

import "net/http"

// ResponseWriter wraps an [http.ResponseWriter] and records whether a
// response has been started, which status was sent, and how many body bytes
// were written. The binder uses it to honor the "never overwrite an
// already-sent response" contract; the accesslog middleware uses it for
// status and size fields.
type ResponseWriter struct {
	http.ResponseWriter
	status  int
	bytes   int
	written bool
}

// Wrap wraps w. If w is already a *ResponseWriter it is returned as-is so
// nested wrapping shares one written flag.
func Wrap(w http.ResponseWriter) *ResponseWriter {
	if rw, ok := w.(*ResponseWriter); ok {
		return rw
	}
	return &ResponseWriter{ResponseWriter: w}
}

// WriteHeader records the status and marks the response written.
func (rw *ResponseWriter) WriteHeader(status int) {
	if rw.written {
		return
	}
	rw.status = status
	rw.written = true
	rw.ResponseWriter.WriteHeader(status)
}

// Write marks the response written (an implicit 200 if WriteHeader was not
// called first) and counts body bytes.
func (rw *ResponseWriter) Write(p []byte) (int, error) {
	if !rw.written {
		rw.status = http.StatusOK
		rw.written = true
	}
	n, err := rw.ResponseWriter.Write(p)
	rw.bytes += n
	return n, err
}

// Written reports whether any part of the response has been sent.
func (rw *ResponseWriter) Written() bool { return rw.written }

// Status returns the response status, or 0 if nothing was written yet.
func (rw *ResponseWriter) Status() int { return rw.status }

// BytesWritten returns the number of body bytes written so far.
func (rw *ResponseWriter) BytesWritten() int { return rw.bytes }

// Flush implements [http.Flusher] when the underlying writer does.
func (rw *ResponseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Unwrap returns the underlying writer. It lets [http.ResponseController]
// reach interfaces the wrapper does not re-export.
func (rw *ResponseWriter) Unwrap() http.ResponseWriter { return rw.ResponseWriter }
