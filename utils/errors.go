// Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
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

package utils

import "errors"

var (
	// Input errors
	ErrInvalidInput       = errors.New("invalid input")
	ErrMissingCredentials = errors.New("mailbox access id and password are required")
	ErrMissingFilter      = errors.New("a start message id or start time is required")
	ErrEmptyMessageIDs    = errors.New("at least one forward message id is required")
	ErrInvalidPayload     = errors.New("forward message needs exactly one of a raw or a JSON payload")

	// Configuration errors
	ErrUnknownGateway  = errors.New("unknown gateway")
	ErrMailboxNotFound = errors.New("mailbox not found")
)
