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
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routebind/routebind/controller"
	"github.com/routebind/routebind/metadata"
	"github.com/routebind/routebind/registry"
)

type greetController struct{}

func (c *greetController) Greet() string { return "hello" }

// newGreetWorld returns a registry and store with one controller bound to
// GET /greet, whose handler returns the given result.
func newGreetWorld(t *testing.T, result func() controller.Result) (*registry.Registry, *metadata.Store) {
	t.Helper()

	reg := registry.New()
	reg.MustProvide("greet", func(ctx context.Context) (any, error) {
		return &greetController{}, nil
	})

	meta := metadata.New()
	require.NoError(t, meta.Describe(controller.Descriptor{Identity: "greet", BasePath: "/greet"}))
	meta.Handle("greet", controller.Method{
		Verb: http.MethodGet, Path: "/", Key: "Greet",
		Invoke: controller.Invoke(func(c *greetController, w http.ResponseWriter, r *http.Request) controller.Result {
			return result()
		}),
	})
	return reg, meta
}

func quietLogger() Option {
	return WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestNew_DefaultsBuildEmptyApp(t *testing.T) {
	t.Parallel()

	b, err := New(quietLogger())
	require.NoError(t, err)

	a, err := b.Build()
	require.NoError(t, err)
	assert.Empty(t, a.Routes())

	resp, err := a.Test(httptest.NewRequest(http.MethodGet, "/anything", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestNew_ValidatesOptions(t *testing.T) {
	t.Parallel()

	_, err := New(WithServiceName(""))
	assert.ErrorContains(t, err, "empty service name")

	_, err = New(WithEnvironment("staging"))
	assert.ErrorContains(t, err, `invalid environment "staging"`)
}

func TestBuild_BindsRegisteredControllers(t *testing.T) {
	t.Parallel()

	reg, meta := newGreetWorld(t, func() controller.Result {
		return controller.Value("hello")
	})
	b, err := New(quietLogger(), WithRegistry(reg), WithMetadata(meta))
	require.NoError(t, err)

	a, err := b.Build()
	require.NoError(t, err)

	routes := a.Routes()
	require.Len(t, routes, 1)
	assert.Equal(t, "/greet", routes[0].Path)
	assert.Equal(t, http.MethodGet, routes[0].Verb)

	resp, err := a.Test(httptest.NewRequest(http.MethodGet, "/greet", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(body))
}

func TestBuild_ConfigRunsBeforeBinding(t *testing.T) {
	t.Parallel()

	reg, meta := newGreetWorld(t, func() controller.Result {
		return controller.Value("hello")
	})
	b, err := New(quietLogger(), WithRegistry(reg), WithMetadata(meta))
	require.NoError(t, err)

	// Root middleware can only be installed before routes exist, so the
	// pre-config callback observing its marker on a bound route proves
	// ordering.
	b.SetConfig(func(a *App) {
		a.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("X-Configured", "yes")
				next.ServeHTTP(w, r)
			})
		})
	})

	a, err := b.Build()
	require.NoError(t, err)

	resp, err := a.Test(httptest.NewRequest(http.MethodGet, "/greet", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "yes", resp.Header.Get("X-Configured"))
}

func TestBuild_ErrorConfigRunsAfterBinding(t *testing.T) {
	t.Parallel()

	reg, meta := newGreetWorld(t, func() controller.Result {
		return controller.Value("hello")
	})
	b, err := New(quietLogger(), WithRegistry(reg), WithMetadata(meta))
	require.NoError(t, err)

	var routesAtErrConfig int
	b.SetErrorConfig(func(a *App) {
		routesAtErrConfig = len(a.Routes())
	})

	_, err = b.Build()
	require.NoError(t, err)
	assert.Equal(t, 1, routesAtErrConfig)
}

func TestBuild_ErrorConfigHandlerAppliesToBoundRoutes(t *testing.T) {
	t.Parallel()

	boom := errors.New("deferred failure")
	reg, meta := newGreetWorld(t, func() controller.Result {
		return controller.Defer(func() (any, error) {
			return nil, boom
		})
	})
	b, err := New(quietLogger(), WithRegistry(reg), WithMetadata(meta))
	require.NoError(t, err)

	var forwarded error
	b.SetErrorConfig(func(a *App) {
		a.OnError(func(w http.ResponseWriter, r *http.Request, err error) {
			forwarded = err
			w.WriteHeader(http.StatusBadGateway)
		})
	})

	a, err := b.Build()
	require.NoError(t, err)

	resp, err := a.Test(httptest.NewRequest(http.MethodGet, "/greet", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.ErrorIs(t, forwarded, boom)
}

func TestBuild_BindFailureAborts(t *testing.T) {
	t.Parallel()

	reg := registry.New()
	reg.MustProvide("bad", func(ctx context.Context) (any, error) {
		return &greetController{}, nil
	})
	meta := metadata.New()
	require.NoError(t, meta.Describe(controller.Descriptor{Identity: "bad", BasePath: "/bad"}))
	meta.Handle("bad", controller.Method{Verb: "FETCH", Path: "/", Key: "Bad",
		Invoke: controller.Invoke(func(c *greetController, w http.ResponseWriter, r *http.Request) controller.Result {
			return controller.Written()
		}),
	})

	b, err := New(quietLogger(), WithRegistry(reg), WithMetadata(meta))
	require.NoError(t, err)

	errConfigRan := false
	b.SetErrorConfig(func(a *App) { errConfigRan = true })

	_, err = b.Build()
	assert.ErrorContains(t, err, "app: build")
	assert.False(t, errConfigRan, "error config must not run after a bind failure")
}

func TestApp_DefaultErrorContinuationRendersJSON(t *testing.T) {
	t.Parallel()

	reg, meta := newGreetWorld(t, func() controller.Result {
		return controller.Defer(func() (any, error) {
			return nil, errors.New("backend down")
		})
	})
	b, err := New(quietLogger(), WithRegistry(reg), WithMetadata(meta))
	require.NoError(t, err)
	a, err := b.Build()
	require.NoError(t, err)

	resp, err := a.Test(httptest.NewRequest(http.MethodGet, "/greet", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "application/json; charset=utf-8", resp.Header.Get("Content-Type"))
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"backend down"}`, string(body))
}

func TestApp_OnErrorNilIsIgnored(t *testing.T) {
	t.Parallel()

	b, err := New(quietLogger())
	require.NoError(t, err)
	a, err := b.Build()
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		a.OnError(nil)
	})
}

func TestApp_AccessorsExposeCollaborators(t *testing.T) {
	t.Parallel()

	reg := registry.New()
	meta := metadata.New()
	b, err := New(quietLogger(), WithRegistry(reg), WithMetadata(meta))
	require.NoError(t, err)
	a, err := b.Build()
	require.NoError(t, err)

	assert.Same(t, reg, a.Registry())
	assert.Same(t, meta, a.Metadata())
	assert.NotNil(t, a.Router())
	assert.NotNil(t, a.Logger())
}
