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
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"time"

	"github.com/google/uuid"

	"github.com/isatdatapro/isatdatapro-api/logger"
)

// HttpClient interface for making HTTP requests.
// Use RetryableHTTPClient for retry support.
type HttpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Compile-time check that http.Client implements HttpClient
var _ HttpClient = (*http.Client)(nil)

// SendRequest builds and sends an HTTP request, returning a Result for response handling.
// Transport failures are reported as *TransportError.
func SendRequest(ctx context.Context, client HttpClient, req *HttpRequest) *Result {
	log := logger.GetLogger(ctx).With(
		slog.String("request", req.Name),
		slog.String("requestId", uuid.NewString()),
	)

	httpReq, err := req.buildHttpRequest(ctx)
	if err != nil {
		return &Result{err: fmt.Errorf("failed to build http request: %w", err)}
	}
	log.Debug("sending request",
		slog.String("method", httpReq.Method),
		slog.String("url", RedactURL(httpReq.URL.String())))

	start := time.Now()
	resp, err := client.Do(httpReq)
	if err != nil {
		transportErr := classifyError(redactError(err))
		log.Error("request failed",
			slog.String("kind", string(transportErr.Kind)),
			slog.Duration("duration", time.Since(start)),
			slog.String("error", err.Error()))
		return &Result{err: transportErr}
	}

	// Read response body and close immediately to avoid resource leaks
	respBody, err := io.ReadAll(resp.Body)
	closeErr := resp.Body.Close()
	if closeErr != nil {
		log.Warn("failed to close response body", slog.String("error", closeErr.Error()))
	}
	if err != nil {
		return &Result{err: classifyError(fmt.Errorf("failed to read response body: %w", err))}
	}

	log.Debug("received response",
		slog.Int("status", resp.StatusCode),
		slog.Int("bytes", len(respBody)),
		slog.Duration("duration", time.Since(start)))
	return &Result{response: resp, responseBody: respBody}
}

// Result holds the response from SendRequest.
type Result struct {
	responseBody []byte
	response     *http.Response
	err          error
}

// Body returns the response body if the status matches successStatus.
// Any other status is reported as a TransportError of kind KindHTTPStatus.
func (r *Result) Body(successStatus int) ([]byte, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.response == nil {
		return nil, fmt.Errorf("unexpected nil response")
	}
	if r.response.StatusCode != successStatus {
		return nil, newStatusError(r.response.StatusCode, r.responseBody)
	}
	return r.responseBody, nil
}

// ScanResponse unmarshals the response body into the provided struct if status matches.
func (r *Result) ScanResponse(body any, successStatus int) error {
	if body == nil || reflect.ValueOf(body).Kind() != reflect.Ptr {
		return fmt.Errorf("non-nil pointer expected for decoding response body")
	}
	data, err := r.Body(successStatus)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, body); err != nil {
		return fmt.Errorf("failed to decode response body for status %d: %w", r.response.StatusCode, err)
	}
	return nil
}

// StatusCode returns the response status, or 0 if the request failed
func (r *Result) StatusCode() int {
	if r.err != nil || r.response == nil {
		return 0
	}
	return r.response.StatusCode
}
