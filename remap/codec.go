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

package remap

import (
	"encoding/json"
	"fmt"
)

// Encode turns a typed value into the generic JSON shape that Unmap walks
func Encode(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return generic, nil
}

// Decode fills out from a generic normalized value, typically the result of Remap
func Decode(normalized any, out any) error {
	data, err := json.Marshal(normalized)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nil
}

// RemapJSON decodes a gateway response body and remaps it with table
func RemapJSON(body []byte, table Table) (any, error) {
	var generic any
	if err := json.Unmarshal(body, &generic); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return Remap(generic, table)
}
