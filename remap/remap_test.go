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
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isatdatapro/isatdatapro-api/idptime"
)

func TestRemap_RawPayload(t *testing.T) {
	input := map[string]any{"RawPayload": []any{0.0, 72.0}}

	got, err := Remap(input, GetReturnMessagesTable)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"payloadRaw": []any{0.0, 72.0}}, got)
}

func TestRemap_RawArrayUnderUnknownKey(t *testing.T) {
	// key not in any table: camelized but still copied verbatim
	input := map[string]any{"ExtraRawBytes": []any{map[string]any{"ID": 1.0}}}

	got, err := Remap(input, ErrorDefinitionTable)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"extraRawBytes": []any{map[string]any{"ID": 1.0}}}, got)
}

func TestRemap_UTCFields(t *testing.T) {
	t.Run("Converts gateway timestamps to ISO-8601", func(t *testing.T) {
		got, err := Remap(map[string]any{"ReceiveUTC": "2020-06-24 19:33:00"}, ReturnMessageTable)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"receiveTimeUtc": "2020-06-24T19:33:00Z"}, got)
	})

	t.Run("Leaves null and empty values alone", func(t *testing.T) {
		got, err := Remap(map[string]any{"ReceiveUTC": nil}, ReturnMessageTable)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"receiveTimeUtc": nil}, got)

		got, err = Remap(map[string]any{"ReceiveUTC": ""}, ReturnMessageTable)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"receiveTimeUtc": ""}, got)
	})

	t.Run("Fails on a malformed timestamp", func(t *testing.T) {
		_, err := Remap(map[string]any{"ReceiveUTC": "yesterday"}, ReturnMessageTable)
		require.Error(t, err)
		assert.ErrorIs(t, err, idptime.ErrInvalidFormat)
	})

	t.Run("Ignores UTC keys holding non-strings", func(t *testing.T) {
		got, err := Remap(map[string]any{"StateUTC": 12.0}, SubmitOrCancelTable)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"stateTimeUtc": 12.0}, got)
	})
}

func TestRemap_EndToEndReturnMessages(t *testing.T) {
	body := []byte(`{"ErrorID":0,"Messages":[{"ID":1,"MobileID":"X","ReceiveUTC":"2020-01-01 00:00:00","RawPayload":[1,2]}],"More":false,"NextStartID":-1}`)

	got, err := RemapJSON(body, GetReturnMessagesTable)
	require.NoError(t, err)

	want := map[string]any{
		"errorId": 0.0,
		"messages": []any{
			map[string]any{
				"messageId":      1.0,
				"mobileId":       "X",
				"receiveTimeUtc": "2020-01-01T00:00:00Z",
				"payloadRaw":     []any{1.0, 2.0},
			},
		},
		"more":        false,
		"nextStartId": -1.0,
	}
	assert.Equal(t, want, got)
}

func TestRemap_ReturnMessageTableFallback(t *testing.T) {
	body := []byte(`{"ErrorID":0,"Messages":[{"ID":1,"MobileID":"X","ReceiveUTC":"2020-01-01 00:00:00","RawPayload":[1,2]}],"More":false,"NextStartID":-1}`)

	got, err := RemapJSON(body, ReturnMessageTable)
	require.NoError(t, err)

	want := map[string]any{
		"errorId": 0.0,
		"messages": []any{
			map[string]any{
				"messageId":      1.0,
				"mobileId":       "X",
				"receiveTimeUtc": "2020-01-01T00:00:00Z",
				"payloadRaw":     []any{1.0, 2.0},
			},
		},
		"more":        false,
		"nextStartId": -1.0,
	}
	assert.Equal(t, want, got)
}

func TestRemap_NestedPayload(t *testing.T) {
	input := map[string]any{
		"Payload": map[string]any{
			"Name": "getTerminalStatus",
			"SIN":  16.0,
			"MIN":  72.0,
			"Fields": []any{
				map[string]any{"Name": "latitude", "Type": "signedint", "Value": "2739"},
				map[string]any{
					"Name": "entries",
					"Type": "array",
					"Elements": []any{
						map[string]any{
							"Index":  0.0,
							"Fields": []any{map[string]any{"Name": "id", "Value": "1"}},
						},
					},
				},
			},
		},
	}

	got, err := Remap(input, ReturnMessageTable)
	require.NoError(t, err)

	want := map[string]any{
		"payloadJson": map[string]any{
			"name":           "getTerminalStatus",
			"codecServiceId": 16.0,
			"codecMessageId": 72.0,
			"fields": []any{
				map[string]any{"name": "latitude", "dataType": "signedint", "stringValue": "2739"},
				map[string]any{
					"name":     "entries",
					"dataType": "array",
					"arrayElements": []any{
						map[string]any{
							"index":  0.0,
							"fields": []any{map[string]any{"name": "id", "stringValue": "1"}},
						},
					},
				},
			},
		},
	}
	assert.Equal(t, want, got)
}

func TestRemap_Shapes(t *testing.T) {
	t.Run("Remaps a top-level sequence of objects", func(t *testing.T) {
		got, err := Remap([]any{map[string]any{"ID": 5.0}}, ErrorDefinitionTable)
		require.NoError(t, err)
		assert.Equal(t, []any{map[string]any{"errorId": 5.0}}, got)
	})

	t.Run("Rejects scalars in a top-level sequence", func(t *testing.T) {
		_, err := Remap([]any{map[string]any{"ID": 5.0}, 3.0}, ErrorDefinitionTable)
		assert.ErrorIs(t, err, ErrUnsupportedShape)
	})

	t.Run("Returns scalars unchanged", func(t *testing.T) {
		got, err := Remap("plain", ErrorDefinitionTable)
		require.NoError(t, err)
		assert.Equal(t, "plain", got)
	})

	t.Run("Copies non-object sequences under unmarked keys", func(t *testing.T) {
		got, err := Remap(map[string]any{"Tags": []any{"a", "b"}}, ErrorDefinitionTable)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"tags": []any{"a", "b"}}, got)
	})

	t.Run("Camelizes keys missing from the table", func(t *testing.T) {
		got, err := Remap(map[string]any{"OTAMessageSize": 10.0, "Region Name": "AMERRB16"}, ErrorDefinitionTable)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"otaMessageSize": 10.0, "regionName": "AMERRB16"}, got)
	})
}

func TestRemap_DoesNotMutateInput(t *testing.T) {
	raw := []any{1.0, 2.0}
	input := map[string]any{
		"Messages": []any{map[string]any{"ID": 1.0, "RawPayload": raw, "MessageUTC": "2020-01-01 00:00:00"}},
	}

	got, err := Remap(input, GetReturnMessagesTable)
	require.NoError(t, err)

	// mutate the output and check the input is untouched
	out := got.(map[string]any)["messages"].([]any)[0].(map[string]any)
	out["payloadRaw"].([]any)[0] = 99.0
	out["messageId"] = 42.0

	msg := input["Messages"].([]any)[0].(map[string]any)
	assert.Equal(t, 1.0, msg["ID"])
	assert.Equal(t, "2020-01-01 00:00:00", msg["MessageUTC"])
	assert.Equal(t, []any{1.0, 2.0}, raw)
}

func TestUnmap(t *testing.T) {
	t.Run("Reverses table entries and keeps unknown keys", func(t *testing.T) {
		input := []any{
			map[string]any{
				"mobileId":      "01097623SKY2C68",
				"userMessageId": 7.0,
				"payloadRaw":    []any{16.0, 1.0},
				"priority":      "high",
			},
		}

		got := Unmap(input, ForwardMessageTable)

		want := []any{
			map[string]any{
				"DestinationID": "01097623SKY2C68",
				"UserMessageID": 7.0,
				"RawPayload":    []any{16.0, 1.0},
				"priority":      "high",
			},
		}
		assert.Equal(t, want, got)
	})

	t.Run("Recurses into payloads", func(t *testing.T) {
		input := map[string]any{
			"payloadJson": map[string]any{
				"codecServiceId": 16.0,
				"codecMessageId": 1.0,
				"fields":         []any{map[string]any{"name": "x", "stringValue": "1", "dataType": "unsignedint"}},
			},
		}

		got := Unmap(input, ForwardMessageTable)

		want := map[string]any{
			"Payload": map[string]any{
				"SIN":    16.0,
				"MIN":    1.0,
				"Fields": []any{map[string]any{"Name": "x", "Value": "1", "Type": "unsignedint"}},
			},
		}
		assert.Equal(t, want, got)
	})

	t.Run("Does not convert timestamps", func(t *testing.T) {
		got := Unmap(map[string]any{"stateTimeUtc": "2020-06-24T19:33:00Z"}, SubmitOrCancelTable)
		assert.Equal(t, map[string]any{"StateUTC": "2020-06-24T19:33:00Z"}, got)
	})

	t.Run("Passes scalars through", func(t *testing.T) {
		assert.Equal(t, 3.0, Unmap(3.0, ForwardMessageTable))
		assert.Equal(t, []any{"a"}, Unmap([]any{"a"}, ForwardMessageTable))
	})
}

func TestEncodeDecode(t *testing.T) {
	type forward struct {
		MobileID   string `json:"mobileId"`
		PayloadRaw []int  `json:"payloadRaw,omitempty"`
	}

	generic, err := Encode([]forward{{MobileID: "X", PayloadRaw: []int{0, 1}}})
	require.NoError(t, err)
	assert.Equal(t, []any{map[string]any{"mobileId": "X", "payloadRaw": []any{0.0, 1.0}}}, generic)

	var back []forward
	require.NoError(t, Decode(generic, &back))
	assert.Equal(t, []forward{{MobileID: "X", PayloadRaw: []int{0, 1}}}, back)

	_, err = Encode(make(chan int))
	assert.ErrorIs(t, err, ErrEncode)

	var wrong []forward
	assert.ErrorIs(t, Decode("not a list", &wrong), ErrDecode)

	_, err = RemapJSON([]byte("{"), ErrorDefinitionTable)
	assert.ErrorIs(t, err, ErrDecode)
}

// Property-based tests over byte payloads and forward/reverse key mapping
func TestRemap_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("raw payloads are copied element for element", prop.ForAll(
		func(payload []uint8) bool {
			raw := make([]any, len(payload))
			for i, b := range payload {
				raw[i] = float64(b)
			}
			got, err := Remap(map[string]any{"RawPayload": raw}, ForwardMessageTable)
			if err != nil {
				return false
			}
			return assert.ObjectsAreEqual(map[string]any{"payloadRaw": raw}, got)
		},
		gen.SliceOf(gen.UInt8()),
	))

	properties.Property("unmap restores tabled keys with a unique reverse entry", prop.ForAll(
		func(value string) bool {
			input := map[string]any{"DestinationID": value, "UserMessageID": value}
			remapped, err := Remap(input, ForwardMessageTable)
			if err != nil {
				return false
			}
			return assert.ObjectsAreEqual(input, Unmap(remapped, ForwardMessageTable))
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
