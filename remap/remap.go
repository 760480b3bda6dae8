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

// Package remap renames gateway JSON keys to the normalized vocabulary and
// back again.
//
// Values are the generic shapes produced by encoding/json: map[string]any,
// []any, string, float64, bool and nil. Remap and Unmap never modify their
// input; every container in the result is freshly allocated.
package remap

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/isatdatapro/isatdatapro-api/idptime"
)

const (
	rawMarker = "Raw"
	utcMarker = "UTC"
)

// Remap renames the keys of value using table, recursing into nested objects
// and sequences of objects.
//
// Sequences under a key containing "Raw" are copied as-is. Non-empty strings
// under a key containing "UTC" are converted from gateway time to ISO-8601; a
// malformed timestamp fails the whole remap. A top-level sequence must hold
// only objects. Any other value is returned unchanged.
func Remap(value any, table Table) (any, error) {
	switch v := value.(type) {
	case map[string]any:
		return remapObject(v, table)
	case []any:
		out := make([]any, len(v))
		for i, elem := range v {
			obj, ok := elem.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: element %d of top-level sequence is %T", ErrUnsupportedShape, i, elem)
			}
			remapped, err := remapObject(obj, table)
			if err != nil {
				return nil, err
			}
			out[i] = remapped
		}
		return out, nil
	default:
		return value, nil
	}
}

func remapObject(obj map[string]any, table Table) (map[string]any, error) {
	out := make(map[string]any, len(obj))
	// sorted so that colliding output keys resolve the same way every time
	for _, key := range slices.Sorted(maps.Keys(obj)) {
		newKey := table.normalizedKey(key)

		switch v := obj[key].(type) {
		case []any:
			if isRawKey(key) || !allObjects(v) {
				out[newKey] = copySequence(v)
				continue
			}
			items := make([]any, len(v))
			for i, elem := range v {
				remapped, err := remapObject(elem.(map[string]any), table)
				if err != nil {
					return nil, err
				}
				items[i] = remapped
			}
			out[newKey] = items
		case map[string]any:
			nested, err := remapObject(v, table)
			if err != nil {
				return nil, err
			}
			out[newKey] = nested
		case string:
			if v != "" && isUTCKey(key) {
				iso, err := idptime.GatewayToISO(v)
				if err != nil {
					return nil, fmt.Errorf("remap.Remap: key %s: %w", key, err)
				}
				out[newKey] = iso
				continue
			}
			out[newKey] = v
		default:
			out[newKey] = v
		}
	}
	return out, nil
}

func isRawKey(key string) bool {
	return strings.Contains(key, rawMarker)
}

func isUTCKey(key string) bool {
	return strings.Contains(key, utcMarker)
}

func allObjects(seq []any) bool {
	for _, elem := range seq {
		if _, ok := elem.(map[string]any); !ok {
			return false
		}
	}
	return true
}

// copySequence copies seq deeply so the result shares no containers with the input
func copySequence(seq []any) []any {
	out := make([]any, len(seq))
	for i, elem := range seq {
		out[i] = deepCopy(elem)
	}
	return out
}

func deepCopy(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, elem := range v {
			out[k] = deepCopy(elem)
		}
		return out
	case []any:
		return copySequence(v)
	default:
		return v
	}
}
