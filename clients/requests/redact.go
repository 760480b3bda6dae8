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
	"errors"
	"net/url"
	"slices"
	"strings"
)

const redactedValue = "***"

// SensitiveQueryParams are masked whenever a URL is logged
var SensitiveQueryParams = []string{"access_id", "password"}

// RedactURL replaces the values of sensitive query parameters with ***,
// keeping parameter order and everything else byte for byte.
func RedactURL(rawURL string) string {
	base, query, found := strings.Cut(rawURL, "?")
	if !found {
		return rawURL
	}

	params := strings.Split(query, "&")
	for i, p := range params {
		key, _, _ := strings.Cut(p, "=")
		if slices.Contains(SensitiveQueryParams, key) {
			params[i] = key + "=" + redactedValue
		}
	}
	return base + "?" + strings.Join(params, "&")
}

// redactError masks credentials in the URL carried by a *url.Error
func redactError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		urlErr.URL = RedactURL(urlErr.URL)
	}
	return err
}
