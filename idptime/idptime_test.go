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
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// latest instant the gateway format can express: 9999-12-31 23:59:59
const maxGatewayUnix = 253402300799

func TestToGatewayTime(t *testing.T) {
	t.Run("Formats a time.Time in UTC", func(t *testing.T) {
		d := time.Date(2020, 6, 24, 19, 33, 0, 0, time.UTC)
		got, err := ToGatewayTime(d)
		require.NoError(t, err)
		assert.Equal(t, "2020-06-24 19:33:00", got)
	})

	t.Run("Converts non-UTC locations to UTC", func(t *testing.T) {
		loc := time.FixedZone("UTC+2", 2*60*60)
		d := time.Date(2020, 6, 24, 21, 33, 0, 0, loc)
		got, err := ToGatewayTime(d)
		require.NoError(t, err)
		assert.Equal(t, "2020-06-24 19:33:00", got)
	})

	t.Run("Truncates sub-second precision", func(t *testing.T) {
		d := time.Date(2020, 6, 24, 19, 33, 59, 999_999_999, time.UTC)
		got, err := ToGatewayTime(&d)
		require.NoError(t, err)
		assert.Equal(t, "2020-06-24 19:33:59", got)
	})

	t.Run("Converts ISO-8601 strings", func(t *testing.T) {
		got, err := ToGatewayTime("2020-06-24T19:33:00.987Z")
		require.NoError(t, err)
		assert.Equal(t, "2020-06-24 19:33:00", got)

		got, err = ToGatewayTime("2020-06-24T19:33:00Z")
		require.NoError(t, err)
		assert.Equal(t, "2020-06-24 19:33:00", got)
	})

	t.Run("Accepts February 29 in any year", func(t *testing.T) {
		got, err := ToGatewayTime("2021-02-29T00:00:00Z")
		require.NoError(t, err)
		assert.Equal(t, "2021-02-29 00:00:00", got)
	})

	t.Run("Falls back to epoch for unrecognized input", func(t *testing.T) {
		inputs := []any{
			"not a date",
			"other",
			"2020-06-24 19:33:00",
			"2020-06-31T00:00:00Z",
			"1969-12-31T23:59:59Z",
			"2020-13-01T00:00:00Z",
			"2020-01-01T24:00:00Z",
			42,
			nil,
			(*time.Time)(nil),
			time.Time{},
		}
		for _, in := range inputs {
			got, err := ToGatewayTime(in)
			require.NoError(t, err, "input %v", in)
			assert.Equal(t, EpochSentinel, got, "input %v", in)
		}
	})

	t.Run("Logs a warning when falling back", func(t *testing.T) {
		var buf bytes.Buffer
		previous := slog.Default()
		slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
		defer slog.SetDefault(previous)

		got, err := ToGatewayTime("not a date")
		require.NoError(t, err)
		assert.Equal(t, EpochSentinel, got)
		assert.Contains(t, buf.String(), `"level":"WARN"`)
		assert.Contains(t, buf.String(), "not a date")
	})
}

func TestIsValidGatewayTime(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "valid timestamp", value: "2020-06-24 19:33:00", want: true},
		{name: "epoch", value: "1970-01-01 00:00:00", want: true},
		{name: "end of range", value: "9999-12-31 23:59:59", want: true},
		{name: "day 31 in a 30 day month is not cross-checked", value: "2020-06-31 00:00:00", want: true},
		{name: "empty", value: "", want: false},
		{name: "too short", value: "2020-06-24 19:33", want: false},
		{name: "too long", value: "2020-06-24 19:33:00Z", want: false},
		{name: "ISO separator", value: "2020-06-24T19:33:00", want: false},
		{name: "month zero", value: "2020-00-24 19:33:00", want: false},
		{name: "month 13", value: "2020-13-24 19:33:00", want: false},
		{name: "day zero", value: "2020-06-00 19:33:00", want: false},
		{name: "day 32", value: "2020-06-32 19:33:00", want: false},
		{name: "hour 24", value: "2020-06-24 24:00:00", want: false},
		{name: "minute 60", value: "2020-06-24 19:60:00", want: false},
		{name: "second 60", value: "2020-06-24 19:33:60", want: false},
		{name: "before 1970", value: "1969-12-31 23:59:59", want: false},
		{name: "signed component", value: "2020-+6-24 19:33:00", want: false},
		{name: "wrong date separators", value: "2020/06/24 19:33:00", want: false},
		{name: "letters", value: "abcd-ef-gh ij:kl:mn", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidGatewayTime(tt.value))
		})
	}
}

func TestFromGatewayTime(t *testing.T) {
	t.Run("Parses a valid timestamp as UTC", func(t *testing.T) {
		got, err := FromGatewayTime("2020-06-24 19:33:00")
		require.NoError(t, err)
		assert.True(t, got.Equal(time.Date(2020, 6, 24, 19, 33, 0, 0, time.UTC)))
		assert.Equal(t, time.UTC, got.Location())
	})

	t.Run("Rolls days past the month end into the next month", func(t *testing.T) {
		got, err := FromGatewayTime("2021-02-30 10:00:00")
		require.NoError(t, err)
		assert.True(t, got.Equal(time.Date(2021, 3, 2, 10, 0, 0, 0, time.UTC)))
	})

	t.Run("Fails with a FormatError on invalid input", func(t *testing.T) {
		_, err := FromGatewayTime("2020-06-24T19:33:00Z")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidFormat)

		var formatErr *FormatError
		require.ErrorAs(t, err, &formatErr)
		assert.Equal(t, "2020-06-24T19:33:00Z", formatErr.Value)
	})
}

func TestGatewayToISO(t *testing.T) {
	got, err := GatewayToISO("2020-06-24 19:33:00")
	require.NoError(t, err)
	assert.Equal(t, "2020-06-24T19:33:00Z", got)

	_, err = GatewayToISO("yesterday")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestToISO(t *testing.T) {
	d := time.Date(2020, 6, 24, 19, 33, 0, 500, time.UTC)
	assert.Equal(t, "2020-06-24T19:33:00Z", ToISO(d))
}

// Property-based test: any second-resolution instant survives a round trip
func TestGatewayTime_PropertyRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("FromGatewayTime(ToGatewayTime(d)) == d", prop.ForAll(
		func(sec int64) bool {
			d := time.Unix(sec, 0).UTC()
			s, err := ToGatewayTime(d)
			if err != nil {
				return false
			}
			back, err := FromGatewayTime(s)
			if err != nil {
				return false
			}
			return back.Equal(d)
		},
		gen.Int64Range(0, maxGatewayUnix),
	))

	properties.Property("ISO strings convert to the same gateway time as their instant", prop.ForAll(
		func(sec int64, nanos int64) bool {
			d := time.Unix(sec, nanos).UTC()
			fromTime, err := ToGatewayTime(d)
			if err != nil {
				return false
			}
			fromISO, err := ToGatewayTime(d.Format(time.RFC3339Nano))
			if err != nil {
				return false
			}
			return fromTime == fromISO
		},
		gen.Int64Range(0, maxGatewayUnix),
		gen.Int64Range(0, 999_999_999),
	))

	properties.Property("every produced value validates", prop.ForAll(
		func(sec int64) bool {
			s, err := ToGatewayTime(time.Unix(sec, 0))
			return err == nil && IsValidGatewayTime(s)
		},
		gen.Int64Range(-maxGatewayUnix, 2*maxGatewayUnix),
	))

	properties.TestingRun(t)
}
