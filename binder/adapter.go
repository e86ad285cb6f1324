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

package binder

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/routebind/routebind/controller"
	"github.com/routebind/routebind/engine"
	"github.com/routebind/routebind/httperr"
)

// adapt produces the terminal handler for one (identity, method) pair. The
// closure retains only the identity and the descriptor, never an instance:
// every matched request resolves a fresh controller from the registry.
func (b *Binder) adapt(identity string, m controller.Method) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := engine.Wrap(w)

		instance, err := b.registry.Resolve(r.Context(), identity)
		if err != nil {
			b.forward(rw, r, err)
			return
		}

		// A panicking Invoke unwinds into the host engine uncaught.
		res := m.Invoke(instance, rw, r)

		switch res.Kind() {
		case controller.KindWritten:
			// Handler owns the response.
		case controller.KindImmediate:
			b.writeBody(rw, r, res.Body())
		case controller.KindDeferred:
			v, err := res.Future().Await(r.Context())
			if err != nil {
				b.forward(rw, r, err)
				return
			}
			b.writeBody(rw, r, v)
		}
	})
}

// writeBody writes v as the response body unless the handler already sent a
// response or v is nil. Raw bytes pass through, strings go out as text,
// everything else is JSON.
func (b *Binder) writeBody(rw *engine.ResponseWriter, r *http.Request, v any) {
	if v == nil || rw.Written() {
		return
	}

	switch body := v.(type) {
	case []byte:
		if _, err := rw.Write(body); err != nil {
			b.logWriteError(r, err)
		}
	case string:
		rw.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if _, err := io.WriteString(rw, body); err != nil {
			b.logWriteError(r, err)
		}
	default:
		rw.Header().Set("Content-Type", "application/json; charset=utf-8")
		if err := json.NewEncoder(rw).Encode(v); err != nil {
			b.logWriteError(r, err)
		}
	}
}

func (b *Binder) logWriteError(r *http.Request, err error) {
	b.logger.Error("response write failed",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)
}

// forward hands an error to the configured continuation. It never writes a
// body itself and never re-raises.
func (b *Binder) forward(w http.ResponseWriter, r *http.Request, err error) {
	b.onError(w, r, err)
}

// defaultErrorHandler writes the error through the Simple formatter, unless a
// response was already started.
func (b *Binder) defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	rw := engine.Wrap(w)
	if rw.Written() {
		b.logger.Error("handler failed after response started",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		return
	}
	if werr := httperr.Write(rw, r, httperr.NewSimple(), err); werr != nil {
		b.logWriteError(r, werr)
	}
}
