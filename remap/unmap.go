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
	"maps"
	"slices"
)

// Unmap renames normalized keys back to gateway keys using the reverse of
// table. Keys without a reverse entry are kept. Timestamps are not converted.
//
// Unmap is used to build request bodies, so a top-level sequence may carry
// non-object elements; they pass through unchanged.
func Unmap(value any, table Table) any {
	switch v := value.(type) {
	case map[string]any:
		return unmapObject(v, table)
	case []any:
		out := make([]any, len(v))
		for i, elem := range v {
			if obj, ok := elem.(map[string]any); ok {
				out[i] = unmapObject(obj, table)
			} else {
				out[i] = deepCopy(elem)
			}
		}
		return out
	default:
		return value
	}
}

func unmapObject(obj map[string]any, table Table) map[string]any {
	out := make(map[string]any, len(obj))
	for _, key := range slices.Sorted(maps.Keys(obj)) {
		gatewayKey, ok := table.Reverse(key)
		if !ok {
			gatewayKey = key
		}

		switch v := obj[key].(type) {
		case []any:
			if isRawKey(key) || isRawKey(gatewayKey) || !allObjects(v) {
				out[gatewayKey] = copySequence(v)
				continue
			}
			items := make([]any, len(v))
			for i, elem := range v {
				items[i] = unmapObject(elem.(map[string]any), table)
			}
			out[gatewayKey] = items
		case map[string]any:
			out[gatewayKey] = unmapObject(v, table)
		default:
			out[gatewayKey] = v
		}
	}
	return out
}
