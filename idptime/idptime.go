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

// Package idptime converts between the IsatData Pro gateway timestamp format
// ("YYYY-MM-DD hh:mm:ss", UTC implied) and time.Time / ISO-8601 strings.
//
// The gateway only resolves whole seconds, so conversions truncate any
// sub-second component.
package idptime

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"time"
)

const (
	// GatewayLayout is the time layout used by the gateway on the wire
	GatewayLayout = "2006-01-02 15:04:05"
	// ISOLayout is the normalized representation handed to callers
	ISOLayout = "2006-01-02T15:04:05Z"
	// EpochSentinel is returned for input that cannot be interpreted as a time
	EpochSentinel = "1970-01-01 00:00:00"

	gatewayTimeLength = 19
	minYear           = 1970
	maxYear           = 9999
)

// isoPattern matches ISO-8601 extended UTC timestamps, e.g. 2020-06-24T19:33:00.123Z
var isoPattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})T(\d{2}):(\d{2}):(\d{2})(\.\d+)?Z$`)

// Feb is always allowed 29 days; leap years are not checked.
var daysInMonth = [12]int{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// ToGatewayTime returns the gateway representation of input.
//
// Accepted inputs are time.Time, *time.Time and ISO-8601 strings with a
// trailing Z. Anything else yields EpochSentinel and a warning log entry; it is
// not an error. The returned error is only set if the produced value fails
// validation, which indicates a bug in this package.
func ToGatewayTime(input any) (string, error) {
	gatewayTime, ok := toGatewayTime(input)
	if !ok {
		slog.Warn("idptime: input is not a recognized time, using epoch",
			slog.String("input", fmt.Sprintf("%v", input)),
			slog.String("result", EpochSentinel))
		gatewayTime = EpochSentinel
	}
	if !IsValidGatewayTime(gatewayTime) {
		return "", fmt.Errorf("%w: produced %q", ErrInternalConsistency, gatewayTime)
	}
	return gatewayTime, nil
}

func toGatewayTime(input any) (string, bool) {
	switch v := input.(type) {
	case time.Time:
		return formatTime(v)
	case *time.Time:
		if v == nil {
			return "", false
		}
		return formatTime(*v)
	case string:
		return convertISO(v)
	default:
		return "", false
	}
}

func formatTime(t time.Time) (string, bool) {
	utc := t.UTC()
	if utc.Year() < minYear || utc.Year() > maxYear {
		return "", false
	}
	// Format drops the fractional part, which truncates toward zero
	return utc.Format(GatewayLayout), true
}

func convertISO(s string) (string, bool) {
	m := isoPattern.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	// the pattern guarantees digits, Atoi cannot fail here
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	hour, _ := strconv.Atoi(m[4])
	minute, _ := strconv.Atoi(m[5])
	second, _ := strconv.Atoi(m[6])

	if year < minYear || month < 1 || month > 12 {
		return "", false
	}
	if day < 1 || day > daysInMonth[month-1] {
		return "", false
	}
	if hour > 23 || minute > 59 || second > 59 {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d", year, month, day, hour, minute, second), true
}

// IsValidGatewayTime reports whether s has the gateway timestamp format.
// The day of month is only checked against 1..31, not against the month length.
func IsValidGatewayTime(s string) bool {
	_, ok := parseGatewayTime(s)
	return ok
}

// FromGatewayTime parses a gateway timestamp into a UTC time.Time.
// Days beyond the end of a month roll over into the next month.
func FromGatewayTime(s string) (time.Time, error) {
	p, ok := parseGatewayTime(s)
	if !ok {
		return time.Time{}, &FormatError{Value: s}
	}
	return time.Date(p.year, time.Month(p.month), p.day, p.hour, p.minute, p.second, 0, time.UTC), nil
}

// GatewayToISO rewrites a gateway timestamp into the normalized ISO-8601 form
// by swapping the separator for T and appending Z.
func GatewayToISO(s string) (string, error) {
	if !IsValidGatewayTime(s) {
		return "", &FormatError{Value: s}
	}
	return s[:10] + "T" + s[11:] + "Z", nil
}

// ToISO formats t as a second precision ISO-8601 UTC string.
func ToISO(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}

type gatewayTimeParts struct {
	year, month, day     int
	hour, minute, second int
}

func parseGatewayTime(s string) (gatewayTimeParts, bool) {
	var p gatewayTimeParts
	if len(s) != gatewayTimeLength || s[10] != ' ' {
		return p, false
	}
	if s[4] != '-' || s[7] != '-' || s[13] != ':' || s[16] != ':' {
		return p, false
	}

	fields := []struct {
		dst        *int
		start, end int
	}{
		{&p.year, 0, 4},
		{&p.month, 5, 7},
		{&p.day, 8, 10},
		{&p.hour, 11, 13},
		{&p.minute, 14, 16},
		{&p.second, 17, 19},
	}
	for _, f := range fields {
		v, ok := parseDigits(s[f.start:f.end])
		if !ok {
			return p, false
		}
		*f.dst = v
	}

	switch {
	case p.year < minYear || p.year > maxYear:
		return p, false
	case p.month < 1 || p.month > 12:
		return p, false
	case p.day < 1 || p.day > 31:
		return p, false
	case p.hour > 23 || p.minute > 59 || p.second > 59:
		return p, false
	}
	return p, true
}

// parseDigits accepts only ASCII digits, unlike strconv.Atoi which also takes signs
func parseDigits(s string) (int, bool) {
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, len(s) > 0
}
