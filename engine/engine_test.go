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

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChi_RootIsStable(t *testing.T) {
	t.Parallel()

	eng := NewChi()
	assert.Same(t, eng.Root(), eng.Root())
}

func TestNewChi_NewRouterIsFresh(t *testing.T) {
	t.Parallel()

	eng := NewChi()
	assert.NotSame(t, eng.NewRouter(), eng.NewRouter())
	assert.NotSame(t, eng.Root(), eng.NewRouter())
}

func TestNewChi_MethodAndMount(t *testing.T) {
	t.Parallel()

	eng := NewChi()
	sub := eng.NewRouter()
	sub.Method(http.MethodGet, "/items", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("items"))
	}))
	eng.Root().Mount("/api", sub)

	rec := httptest.NewRecorder()
	eng.Root().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/items", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "items", rec.Body.String())
}

func TestNewChi_UseAppliesToMountedRoutes(t *testing.T) {
	t.Parallel()

	eng := NewChi()
	eng.Root().Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Marker", "root")
			next.ServeHTTP(w, r)
		})
	})

	sub := eng.NewRouter()
	sub.Method(http.MethodGet, "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	eng.Root().Mount("/ping", sub)

	rec := httptest.NewRecorder()
	eng.Root().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "root", rec.Header().Get("X-Marker"))
}
