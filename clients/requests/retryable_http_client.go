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
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// RetryableHTTPClient wraps an http.Client with retry logic.
// It implements HttpClient. With RetryAttemptsMax == 0 every request is sent exactly once.
type RetryableHTTPClient struct {
	client *retryablehttp.Client
	config RequestRetryConfig
}

// NewRetryableHTTPClient creates a new RetryableHTTPClient.
// Config is optional - defaults will be used if not provided.
func NewRetryableHTTPClient(client *http.Client, config ...RequestRetryConfig) *RetryableHTTPClient {
	var cfg RequestRetryConfig
	if len(config) > 0 {
		cfg = config[0]
	}
	cfg = cfg.withDefaults()

	if client == nil {
		client = &http.Client{}
	}
	if client.Timeout == 0 {
		// http.Client.Timeout bounds each attempt, not the whole retry sequence
		c := *client
		c.Timeout = cfg.AttemptTimeout
		client = &c
	}

	rc := retryablehttp.NewClient()
	rc.HTTPClient = client
	rc.RetryMax = cfg.RetryAttemptsMax
	rc.RetryWaitMin = cfg.RetryWaitMin
	rc.RetryWaitMax = cfg.RetryWaitMax
	rc.CheckRetry = cfg.checkRetry
	rc.Backoff = equalJitterBackoff
	// hand the last response back so the caller can classify the status
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	rc.Logger = redactingLogger{log: slog.Default()}

	return &RetryableHTTPClient{client: rc, config: cfg}
}

// Do executes the HTTP request with retry logic.
func (c *RetryableHTTPClient) Do(req *http.Request) (*http.Response, error) {
	retryReq, err := retryablehttp.FromRequest(req)
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	return c.client.Do(retryReq)
}

// Config returns the effective retry configuration
func (c *RetryableHTTPClient) Config() RequestRetryConfig {
	return c.config
}

func (cfg RequestRetryConfig) checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if err != nil {
		// the default policy refuses to retry TLS and malformed URL errors
		return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
	}
	method := http.MethodGet
	if resp.Request != nil {
		method = resp.Request.Method
		if isNonIdempotent(resp.Request.Context()) {
			// treated like a POST: not retried on 500
			method = http.MethodPost
		}
	}
	return cfg.RetryOnStatus(method, resp.StatusCode), nil
}

// equalJitterBackoff honors Retry-After when present and otherwise uses equal jitter
func equalJitterBackoff(min, max time.Duration, attemptNum int, resp *http.Response) time.Duration {
	if resp != nil && resp.Header.Get("Retry-After") != "" {
		return retryablehttp.DefaultBackoff(min, max, attemptNum, resp)
	}
	return calculateBackoff(min, max, attemptNum+1)
}

// calculateBackoff returns an exponential backoff duration with jitter, capped by max.
// Uses "equal jitter" strategy: base/2 + random(0, base/2), giving a range of [base/2, base].
func calculateBackoff(min, max time.Duration, attempt int) time.Duration {
	base := min * time.Duration(1<<uint(attempt-1))
	if base > max || base <= 0 {
		base = max
	}
	halfBase := base / 2
	if halfBase <= 0 {
		return base
	}
	return halfBase + time.Duration(rand.Int64N(int64(halfBase)))
}

// redactingLogger adapts slog to retryablehttp.LeveledLogger and masks credentials in logged URLs
type redactingLogger struct {
	log *slog.Logger
}

var _ retryablehttp.LeveledLogger = redactingLogger{}

func (l redactingLogger) Error(msg string, keysAndValues ...interface{}) {
	l.log.Error(msg, redactArgs(keysAndValues)...)
}

func (l redactingLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Info(msg, redactArgs(keysAndValues)...)
}

func (l redactingLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.log.Debug(msg, redactArgs(keysAndValues)...)
}

func (l redactingLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.log.Warn(msg, redactArgs(keysAndValues)...)
}

func redactArgs(keysAndValues []interface{}) []any {
	out := make([]any, len(keysAndValues))
	for i, v := range keysAndValues {
		switch u := v.(type) {
		case *url.URL:
			out[i] = RedactURL(u.String())
		case string:
			out[i] = RedactURL(u)
		case error:
			out[i] = redactError(u)
		default:
			out[i] = v
		}
	}
	return out
}
