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
	"errors"
	"fmt"
	"net"
)

// HttpError is returned when the response status is not the expected one
type HttpError struct {
	StatusCode int
	Body       string
}

func (e *HttpError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}

// TransportErrorKind classifies why a request did not produce a usable response
type TransportErrorKind string

const (
	KindConnectTimeout TransportErrorKind = "connect-timeout"
	KindReadTimeout    TransportErrorKind = "read-timeout"
	KindHTTPStatus     TransportErrorKind = "http-status"
	KindNetwork        TransportErrorKind = "network"
)

// TransportError is returned for failed requests and unexpected status codes.
// StatusCode is only set for KindHTTPStatus.
type TransportError struct {
	Kind       TransportErrorKind
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	switch e.Kind {
	case KindConnectTimeout:
		return fmt.Sprintf("TIMEOUT_CONNECT: %v", e.Err)
	case KindReadTimeout:
		return fmt.Sprintf("TIMEOUT_READ: %v", e.Err)
	case KindHTTPStatus:
		return fmt.Sprintf("HTTP %d", e.StatusCode)
	default:
		return fmt.Sprintf("transport error: %v", e.Err)
	}
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsTimeout reports whether the request timed out while connecting or reading
func (e *TransportError) IsTimeout() bool {
	return e.Kind == KindConnectTimeout || e.Kind == KindReadTimeout
}

func newStatusError(statusCode int, body []byte) *TransportError {
	return &TransportError{
		Kind:       KindHTTPStatus,
		StatusCode: statusCode,
		Err:        &HttpError{StatusCode: statusCode, Body: string(body)},
	}
}

func classifyError(err error) *TransportError {
	var opErr *net.OpError
	dialing := errors.As(err, &opErr) && opErr.Op == "dial"

	var netErr net.Error
	timedOut := errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout())

	switch {
	case timedOut && dialing:
		return &TransportError{Kind: KindConnectTimeout, Err: err}
	case timedOut:
		return &TransportError{Kind: KindReadTimeout, Err: err}
	default:
		return &TransportError{Kind: KindNetwork, Err: err}
	}
}
