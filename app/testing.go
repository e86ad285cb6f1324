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

package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"
)

// Test executes one request against the application without starting a
// server and returns the recorded response. Intended for handler and
// middleware tests.
//
// The request runs with a one-second timeout context unless the request
// already carries a deadline.
//
// Example:
//
//	req := httptest.NewRequest(http.MethodGet, "/users/123", nil)
//	resp, err := a.Test(req)
//	require.NoError(t, err)
//	assert.Equal(t, http.StatusOK, resp.StatusCode)
func (a *App) Test(req *http.Request) (*http.Response, error) {
	if _, ok := req.Context().Deadline(); !ok {
		ctx, cancel := context.WithTimeout(req.Context(), time.Second)
		defer cancel()
		req = req.WithContext(ctx)
	}

	rec := httptest.NewRecorder()
	a.ServeHTTP(rec, req)
	return rec.Result(), nil
}
