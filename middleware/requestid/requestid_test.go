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

package requestid

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capture runs the middleware around a handler that records the context id.
func capture(mw func(http.Handler) http.Handler, r *http.Request) (string, *httptest.ResponseRecorder) {
	var fromCtx string
	h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromCtx = FromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	return fromCtx, rec
}

func TestNew_GeneratesUUIDv7(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	fromCtx, rec := capture(New(), req)

	id, err := uuid.Parse(fromCtx)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
	assert.Equal(t, fromCtx, rec.Header().Get("X-Request-ID"))
}

func TestNew_AcceptsClientIDByDefault(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "client-supplied")
	fromCtx, rec := capture(New(), req)

	assert.Equal(t, "client-supplied", fromCtx)
	assert.Equal(t, "client-supplied", rec.Header().Get("X-Request-ID"))
}

func TestNew_RejectsClientIDWhenDisallowed(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "client-supplied")
	fromCtx, _ := capture(New(WithAllowClientID(false)), req)

	assert.NotEqual(t, "client-supplied", fromCtx)
	assert.NotEmpty(t, fromCtx)
}

func TestNew_ULIDGenerator(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	fromCtx, _ := capture(New(WithULID()), req)

	_, err := ulid.Parse(fromCtx)
	require.NoError(t, err)
	assert.Len(t, fromCtx, 26)
}

func TestNew_CustomHeaderAndGenerator(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	fromCtx, rec := capture(New(
		WithHeader("X-Trace-Token"),
		WithGenerator(func() string { return "fixed" }),
	), req)

	assert.Equal(t, "fixed", fromCtx)
	assert.Equal(t, "fixed", rec.Header().Get("X-Trace-Token"))
	assert.Empty(t, rec.Header().Get("X-Request-ID"))
}

func TestFromContext_MissingReturnsEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, FromContext(context.Background()))
}
