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

package idptime

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidFormat       = errors.New("invalid gateway timestamp")
	ErrInternalConsistency = errors.New("unexpected date conversion error")
)

// FormatError is returned when a string is not a valid gateway timestamp
type FormatError struct {
	Value string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("value must be a valid IDP timestamp yyyy-mm-dd HH:MM:SS, got %q", e.Value)
}

func (e *FormatError) Unwrap() error {
	return ErrInvalidFormat
}
