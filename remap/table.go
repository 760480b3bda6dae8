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

// Fragment is a partial key table used to compose a Table.
type Fragment map[string]string

// Table maps gateway-native keys to normalized keys.
// A Table is immutable once built by Merge and safe for concurrent use.
type Table struct {
	name    string
	forward map[string]string
	reverse map[string]string
}

// Merge builds a Table from fragments applied left to right; on a key
// collision the later fragment wins.
//
// The reverse index prefers the lexicographically smallest gateway key when
// several gateway keys share one normalized key.
func Merge(name string, fragments ...Fragment) Table {
	forward := make(map[string]string)
	for _, f := range fragments {
		maps.Copy(forward, f)
	}

	reverse := make(map[string]string, len(forward))
	for _, gatewayKey := range slices.Sorted(maps.Keys(forward)) {
		normalizedKey := forward[gatewayKey]
		if _, exists := reverse[normalizedKey]; !exists {
			reverse[normalizedKey] = gatewayKey
		}
	}

	return Table{name: name, forward: forward, reverse: reverse}
}

// Name returns the name the table was built with
func (t Table) Name() string {
	return t.name
}

// Lookup returns the normalized key for a gateway key
func (t Table) Lookup(gatewayKey string) (string, bool) {
	k, ok := t.forward[gatewayKey]
	return k, ok
}

// Reverse returns the gateway key for a normalized key
func (t Table) Reverse(normalizedKey string) (string, bool) {
	k, ok := t.reverse[normalizedKey]
	return k, ok
}

func (t Table) Len() int {
	return len(t.forward)
}

// Keys returns the gateway keys in sorted order
func (t Table) Keys() []string {
	return slices.Sorted(maps.Keys(t.forward))
}

// Fragment returns a copy of the table contents
func (t Table) Fragment() Fragment {
	return maps.Clone(Fragment(t.forward))
}

// normalizedKey applies the table first and the default camel-casing second
func (t Table) normalizedKey(gatewayKey string) string {
	if k, ok := t.forward[gatewayKey]; ok {
		return k
	}
	return Camelize(gatewayKey)
}
