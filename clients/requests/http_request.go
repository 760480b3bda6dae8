// Copyright (c) 2026, WSO2 LLC. (https://www.wso2.com).
//
// WSO2 LLC. licenses this file to you under the Apache License,
// Version 2.0 (the "License"); you may not use this file except
// in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package requests

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

type queryParam struct {
	key   string
	value string
}

// HttpRequest describes an outbound request. Query parameters keep the order
// in which they were added.
type HttpRequest struct {
	Name   string
	URL    string
	Method string
	// NonIdempotent marks a request with side effects even when sent as GET
	NonIdempotent bool

	headers map[string]string
	query   []queryParam
	body    []byte
	err     error
}

// SetHeader sets a request header
func (r *HttpRequest) SetHeader(key, value string) *HttpRequest {
	if r.headers == nil {
		r.headers = make(map[string]string)
	}
	r.headers[key] = value
	return r
}

// SetQuery appends a query parameter
func (r *HttpRequest) SetQuery(key, value string) *HttpRequest {
	r.query = append(r.query, queryParam{key: key, value: value})
	return r
}

// SetJson marshals body as the JSON request payload
func (r *HttpRequest) SetJson(body any) *HttpRequest {
	data, err := json.Marshal(body)
	if err != nil {
		r.err = fmt.Errorf("failed to marshal request body: %w", err)
		return r
	}
	r.body = data
	return r.SetHeader("Content-Type", "application/json")
}

// FullURL returns the URL with the encoded query string appended
func (r *HttpRequest) FullURL() string {
	if len(r.query) == 0 {
		return r.URL
	}
	sep := "?"
	if strings.Contains(r.URL, "?") {
		sep = "&"
	}
	return r.URL + sep + encodeQuery(r.query)
}

func (r *HttpRequest) buildHttpRequest(ctx context.Context) (*http.Request, error) {
	if r.err != nil {
		return nil, r.err
	}
	method := r.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if r.body != nil {
		body = bytes.NewReader(r.body)
	}
	if r.NonIdempotent {
		ctx = withNonIdempotent(ctx)
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, r.FullURL(), body)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Accept", "application/json")
	for k, v := range r.headers {
		httpReq.Header.Set(k, v)
	}
	return httpReq, nil
}

// encodeQuery encodes params in order. Spaces become %20 rather than +.
func encodeQuery(params []queryParam) string {
	var b strings.Builder
	for i, p := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(escape(p.key))
		b.WriteByte('=')
		b.WriteString(escape(p.value))
	}
	return b.String()
}

func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
