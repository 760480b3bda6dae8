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

package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/isatdatapro/isatdatapro-api/idptime"
	"github.com/isatdatapro/isatdatapro-api/utils"
)

// parseIDs accepts ids as separate arguments, comma separated, or both
func parseIDs(args []string) ([]int64, error) {
	var ids []int64
	for _, arg := range args {
		for _, part := range strings.Split(arg, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: message id %q", utils.ErrInvalidInput, part)
			}
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// parseTime accepts ISO-8601 (2020-06-24T19:33:00Z) or gateway (2020-06-24 19:33:00) timestamps
func parseTime(value string) (time.Time, error) {
	if idptime.IsValidGatewayTime(value) {
		return idptime.FromGatewayTime(value)
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: time %q", utils.ErrInvalidInput, value)
	}
	return t, nil
}

// parseBytes parses a comma separated list of decimal byte values
func parseBytes(value string) ([]int, error) {
	var payload []int
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		b, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%w: payload byte %q", utils.ErrInvalidPayload, part)
		}
		payload = append(payload, b)
	}
	return payload, nil
}
