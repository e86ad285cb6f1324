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
	"errors"
	"net/http"
	"strings"
)

// RFC9457 formats errors as RFC 9457 Problem Details with Content-Type
// "application/problem+json".
type RFC9457 struct {
	// BaseURL is prepended to problem type slugs derived from error codes,
	// for example "https://api.example.com/problems" + "/not-found".
	BaseURL string

	// TypeResolver maps an error to a problem type URI. If nil, the
	// [ErrorCode] interface supplies a slug under BaseURL, falling back to
	// "about:blank".
	TypeResolver func(err error) string

	// StatusResolver determines the HTTP status for an error. If nil, the
	// [ErrorType] interface is consulted, then 500.
	StatusResolver func(err error) int
}

// NewRFC9457 creates an RFC9457 formatter rooted at baseURL.
func NewRFC9457(baseURL string) *RFC9457 {
	return &RFC9457{BaseURL: strings.TrimSuffix(baseURL, "/")}
}

// Problem is an RFC 9457 problem detail. Extensions are marshaled inline,
// with the five reserved member names protected.
type Problem struct {
	Type       string         `json:"type"`
	Title      string         `json:"title"`
	Status     int            `json:"status"`
	Detail     string         `json:"detail,omitempty"`
	Instance   string         `json:"instance,omitempty"`
	Extensions map[string]any `json:"-"`
}

// MarshalJSON merges extension members into the problem object.
func (p Problem) MarshalJSON() ([]byte, error) {
	m := map[string]any{
		"type":   p.Type,
		"title":  p.Title,
		"status": p.Status,
	}
	if p.Detail != "" {
		m["detail"] = p.Detail
	}
	if p.Instance != "" {
		m["instance"] = p.Instance
	}
	for k, v := range p.Extensions {
		switch k {
		case "type", "title", "status", "detail", "instance":
		default:
			m[k] = v
		}
	}
	return json.Marshal(m)
}

// Format converts an error into a Problem Details response. The request path
// becomes the instance URI; codes and details from the optional interfaces
// become extension members.
func (f *RFC9457) Format(req *http.Request, err error) Response {
	status := f.status(err)

	p := Problem{
		Type:       f.problemType(err),
		Title:      http.StatusText(status),
		Status:     status,
		Detail:     err.Error(),
		Extensions: make(map[string]any),
	}
	if req != nil && req.URL != nil {
		p.Instance = req.URL.Path
	}

	var coded ErrorCode
	if errors.As(err, &coded) {
		p.Extensions["code"] = coded.Code()
	}
	var detailed ErrorDetails
	if errors.As(err, &detailed) {
		p.Extensions["errors"] = detailed.Details()
	}

	return Response{
		Status:      status,
		ContentType: "application/problem+json; charset=utf-8",
		Body:        p,
	}
}

func (f *RFC9457) problemType(err error) string {
	if f.TypeResolver != nil {
		return f.TypeResolver(err)
	}
	var coded ErrorCode
	if errors.As(err, &coded) && f.BaseURL != "" {
		return f.BaseURL + "/" + slugify(coded.Code())
	}
	return "about:blank"
}

func (f *RFC9457) status(err error) int {
	if f.StatusResolver != nil {
		return f.StatusResolver(err)
	}
	var typed ErrorType
	if errors.As(err, &typed) {
		return typed.HTTPStatus()
	}
	return http.StatusInternalServerError
}

// slugify lowercases a code and replaces separators with hyphens.
func slugify(code string) string {
	code = strings.ToLower(code)
	code = strings.ReplaceAll(code, "_", "-")
	code = strings.ReplaceAll(code, " ", "-")
	return code
}
