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
	"strings"
	"unicode"
	"unicode/utf8"
)

// Camelize converts a gateway key to camelCase. It is the fallback for keys
// that no table names.
//
//	"MobileID"       -> "mobileId"
//	"NextStartUTC"   -> "nextStartUtc"
//	"OTAMessageSize" -> "otaMessageSize"
//	"ID"             -> "id"
//	"Region Name"    -> "regionName"
func Camelize(key string) string {
	tokens := strings.Fields(key)
	if len(tokens) == 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(len(key))
	b.WriteString(titleTrailing(lowerLeading(tokens[0])))
	for _, tok := range tokens[1:] {
		tok = titleTrailing(tok)
		r, size := utf8.DecodeRuneInString(tok)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(tok[size:])
	}
	return b.String()
}

// titleTrailing rewrites an abbreviation closing a word, so "MobileID" ends
// in "Id" and "NextStartUTC" in "Utc". A token that is all capitals is left
// for lowerLeading.
func titleTrailing(s string) string {
	runes := []rune(s)
	start := len(runes)
	for start > 0 && unicode.IsUpper(runes[start-1]) {
		start--
	}
	if len(runes)-start < 2 || start == 0 || !unicode.IsLower(runes[start-1]) {
		return s
	}

	for i := start + 1; i < len(runes); i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}

// lowerLeading lowercases the leading run of capitals. When the run is
// followed by a lowercase letter its last capital begins the next word and
// keeps its case.
func lowerLeading(s string) string {
	runes := []rune(s)
	n := 0
	for n < len(runes) && unicode.IsUpper(runes[n]) {
		n++
	}

	switch {
	case n == 0:
		return s
	case n == len(runes):
		return strings.ToLower(s)
	case n > 1 && unicode.IsLower(runes[n]):
		n--
	}

	for i := 0; i < n; i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}
