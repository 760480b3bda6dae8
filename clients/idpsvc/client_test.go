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

package idpsvc

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isatdatapro/isatdatapro-api/clients/requests"
	"github.com/isatdatapro/isatdatapro-api/idptime"
	"github.com/isatdatapro/isatdatapro-api/metrics"
	"github.com/isatdatapro/isatdatapro-api/models"
	"github.com/isatdatapro/isatdatapro-api/remap"
	"github.com/isatdatapro/isatdatapro-api/utils"
)

var testMailbox = models.Mailbox{Name: "test", AccessID: "70000934", Password: "s3cr3t!"}

const returnMessagesBody = `{
	"ErrorID": 0,
	"More": false,
	"NextStartUTC": "2020-06-24 19:33:00",
	"NextStartID": 8012,
	"Messages": [{
		"ID": 8011,
		"MessageUTC": "2020-06-24 19:32:13",
		"ReceiveUTC": "2020-06-24 19:32:12",
		"SIN": 0,
		"MobileID": "01097623SKY2C68",
		"RawPayload": [0, 72, 0, 1],
		"Payload": {
			"Name": "modemRegistration",
			"SIN": 0,
			"MIN": 72,
			"Fields": [{"Name": "hardwareMajorVersion", "Value": "5", "Type": "unsignedint"}]
		},
		"RegionName": "AMERRB16",
		"OTAMessageSize": 4
	}]
}`

// gatewayStub records the last request and answers with body
type gatewayStub struct {
	server   *httptest.Server
	calls    atomic.Int32
	lastPath atomic.Value
	rawQuery atomic.Value
	reqBody  atomic.Value
}

func newGatewayStub(t *testing.T, status int, body string) *gatewayStub {
	t.Helper()
	stub := &gatewayStub{}
	stub.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stub.calls.Add(1)
		stub.lastPath.Store(r.URL.Path)
		stub.rawQuery.Store(r.URL.RawQuery)
		data, _ := io.ReadAll(r.Body)
		stub.reqBody.Store(string(data))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(stub.server.Close)
	return stub
}

func (s *gatewayStub) query(t *testing.T) string {
	t.Helper()
	q, _ := s.rawQuery.Load().(string)
	return q
}

func (s *gatewayStub) client(recorder *metrics.Recorder) IdpGatewayClient {
	return NewIdpGatewayClient(Config{BaseURL: s.server.URL}, s.server.Client(), recorder)
}

func TestGetReturnMessages(t *testing.T) {
	ctx := context.Background()

	t.Run("Remaps the response into normalized messages", func(t *testing.T) {
		stub := newGatewayStub(t, http.StatusOK, returnMessagesBody)
		start := time.Date(2020, 6, 23, 19, 33, 0, 0, time.UTC)

		result, err := stub.client(nil).GetReturnMessages(ctx, testMailbox, models.ReturnMessageFilter{StartTime: start})
		require.NoError(t, err)

		assert.Equal(t, "/get_return_messages.json/", stub.lastPath.Load())
		query := stub.query(t)
		assert.True(t, strings.HasPrefix(query, "access_id=70000934&password=s3cr3t%21&"), query)
		assert.Contains(t, query, "include_raw_payload=true")
		assert.Contains(t, query, "include_type=true")
		assert.Contains(t, query, "start_utc=2020-06-23%2019%3A33%3A00")

		assert.False(t, result.Failed())
		assert.False(t, result.More)
		assert.Equal(t, "2020-06-24T19:33:00Z", result.NextStartTimeUTC)
		assert.Equal(t, int64(8012), result.NextStartID)
		require.Len(t, result.Messages, 1)

		msg := result.Messages[0]
		assert.Equal(t, int64(8011), msg.MessageID)
		assert.Equal(t, "01097623SKY2C68", msg.MobileID)
		assert.Equal(t, []int{0, 72, 0, 1}, msg.PayloadRaw)
		assert.Equal(t, "2020-06-24T19:32:12Z", msg.ReceiveTimeUTC)
		assert.Equal(t, "2020-06-24T19:32:13Z", msg.MailboxTimeUTC)
		assert.Equal(t, "AMERRB16", msg.SatelliteRegion)
		assert.Equal(t, 4, msg.Size)
		require.NotNil(t, msg.PayloadJSON)
		assert.Equal(t, "modemRegistration", msg.PayloadJSON.Name)
		assert.Equal(t, 72, msg.PayloadJSON.CodecMessageID)
		require.Len(t, msg.PayloadJSON.Fields, 1)
		assert.Equal(t, models.Field{Name: "hardwareMajorVersion", DataType: "unsignedint", StringValue: "5"}, msg.PayloadJSON.Fields[0])
	})

	t.Run("Prefers the start message id over a start time", func(t *testing.T) {
		stub := newGatewayStub(t, http.StatusOK, `{"ErrorID":0,"Messages":null}`)
		id := int64(8012)

		_, err := stub.client(nil).GetReturnMessages(ctx, testMailbox, models.ReturnMessageFilter{
			StartMessageID: &id,
			StartTime:      time.Now(),
			MobileID:       "01097623SKY2C68",
			OmitRawPayload: true,
		})
		require.NoError(t, err)

		query := stub.query(t)
		assert.Contains(t, query, "from_id=8012")
		assert.NotContains(t, query, "start_utc")
		assert.Contains(t, query, "include_raw_payload=false")
		assert.Contains(t, query, "mobile_id=01097623SKY2C68")
	})

	t.Run("Rejects a filter without a start", func(t *testing.T) {
		stub := newGatewayStub(t, http.StatusOK, `{}`)

		_, err := stub.client(nil).GetReturnMessages(ctx, testMailbox, models.ReturnMessageFilter{})
		assert.ErrorIs(t, err, utils.ErrInvalidInput)
		assert.ErrorIs(t, err, utils.ErrMissingFilter)
		assert.Equal(t, int32(0), stub.calls.Load())
	})

	t.Run("Rejects incomplete credentials", func(t *testing.T) {
		stub := newGatewayStub(t, http.StatusOK, `{}`)

		_, err := stub.client(nil).GetReturnMessages(ctx, models.Mailbox{AccessID: "70000934"}, models.ReturnMessageFilter{StartTime: time.Now()})
		assert.ErrorIs(t, err, utils.ErrInvalidInput)
		assert.ErrorIs(t, err, utils.ErrMissingCredentials)
		assert.Equal(t, int32(0), stub.calls.Load())
	})

	t.Run("Returns a gateway error code as data", func(t *testing.T) {
		stub := newGatewayStub(t, http.StatusOK, `{"ErrorID":21785,"Messages":null}`)
		reg := prometheus.NewRegistry()
		recorder, err := metrics.NewRecorder(reg)
		require.NoError(t, err)

		result, err := stub.client(recorder).GetReturnMessages(ctx, testMailbox, models.ReturnMessageFilter{StartTime: time.Now()})
		require.NoError(t, err)
		assert.True(t, result.Failed())
		assert.Equal(t, 21785, result.ErrorID)

		count, err := testutil.GatherAndCount(reg, "idpgw_gateway_application_errors_total")
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("Reports HTTP failures as transport errors", func(t *testing.T) {
		stub := newGatewayStub(t, http.StatusInternalServerError, `oops`)

		_, err := stub.client(nil).GetReturnMessages(ctx, testMailbox, models.ReturnMessageFilter{StartTime: time.Now()})
		var transportErr *requests.TransportError
		require.ErrorAs(t, err, &transportErr)
		assert.Equal(t, requests.KindHTTPStatus, transportErr.Kind)
		assert.Equal(t, http.StatusInternalServerError, transportErr.StatusCode)
		assert.NotContains(t, err.Error(), testMailbox.Password)
	})

	t.Run("Fails on malformed gateway timestamps", func(t *testing.T) {
		stub := newGatewayStub(t, http.StatusOK, `{"ErrorID":0,"NextStartUTC":"24/06/2020","Messages":[]}`)

		_, err := stub.client(nil).GetReturnMessages(ctx, testMailbox, models.ReturnMessageFilter{StartTime: time.Now()})
		assert.ErrorIs(t, err, idptime.ErrInvalidFormat)
	})

	t.Run("Fails on a body that is not JSON", func(t *testing.T) {
		stub := newGatewayStub(t, http.StatusOK, `<html></html>`)

		_, err := stub.client(nil).GetReturnMessages(ctx, testMailbox, models.ReturnMessageFilter{StartTime: time.Now()})
		assert.ErrorIs(t, err, remap.ErrDecode)
	})
}

func TestSubmitForwardMessages(t *testing.T) {
	ctx := context.Background()

	t.Run("Posts gateway keys and decodes the result envelope", func(t *testing.T) {
		stub := newGatewayStub(t, http.StatusOK, `{"SubmitForwardMessages_JResult":{
			"ErrorID": 0,
			"Submissions": [{
				"ForwardMessageID": 5133,
				"UserMessageID": 12,
				"DestinationID": "01097623SKY2C68",
				"OTAMessageSize": 4,
				"StateUTC": "2020-06-24 19:40:00",
				"TerminalWakeupPeriod": 2,
				"ScheduledSendUTC": "2020-06-24 19:41:00",
				"ErrorID": 0
			}]
		}}`)

		result, err := stub.client(nil).SubmitForwardMessages(ctx, testMailbox, []models.ForwardMessage{{
			MobileID:      "01097623SKY2C68",
			UserMessageID: 12,
			PayloadRaw:    []int{0, 72, 255, 1},
		}})
		require.NoError(t, err)

		assert.Equal(t, "/submit_messages.json/", stub.lastPath.Load())
		assert.Empty(t, stub.query(t))
		var sent map[string]any
		require.NoError(t, json.Unmarshal([]byte(stub.reqBody.Load().(string)), &sent))
		assert.Equal(t, "70000934", sent["accessID"])
		assert.Equal(t, "s3cr3t!", sent["password"])
		assert.Equal(t, []any{map[string]any{
			"DestinationID": "01097623SKY2C68",
			"UserMessageID": 12.0,
			"RawPayload":    []any{0.0, 72.0, 255.0, 1.0},
		}}, sent["messages"])

		require.Len(t, result.Submissions, 1)
		sub := result.Submissions[0]
		assert.Equal(t, int64(5133), sub.MessageID)
		assert.Equal(t, "01097623SKY2C68", sub.MobileID)
		assert.Equal(t, "2020-06-24T19:40:00Z", sub.StateTimeUTC)
		assert.Equal(t, "2020-06-24T19:41:00Z", sub.ScheduledSendTimeUTC)
		assert.Equal(t, models.WakeupSeconds60, sub.MobileWakeupPeriod)
	})

	t.Run("Unmaps codec payloads", func(t *testing.T) {
		stub := newGatewayStub(t, http.StatusOK, `{"SubmitForwardMessages_JResult":{"ErrorID":0,"Submissions":[]}}`)

		_, err := stub.client(nil).SubmitForwardMessages(ctx, testMailbox, []models.ForwardMessage{{
			MobileID: "01097623SKY2C68",
			PayloadJSON: &models.Message{
				IsForward:      true,
				CodecServiceID: 16,
				CodecMessageID: 1,
				Name:           "ping",
				Fields:         []models.Field{{Name: "token", DataType: "unsignedint", StringValue: "7"}},
			},
		}})
		require.NoError(t, err)

		body := stub.reqBody.Load().(string)
		assert.Contains(t, body, `"Payload":{`)
		assert.Contains(t, body, `"SIN":16`)
		assert.Contains(t, body, `"MIN":1`)
		assert.Contains(t, body, `"Fields":[{"Name":"token","Type":"unsignedint","Value":"7"}]`)
	})

	t.Run("Rejects invalid payloads without sending", func(t *testing.T) {
		stub := newGatewayStub(t, http.StatusOK, `{}`)
		client := stub.client(nil)

		cases := map[string][]models.ForwardMessage{
			"no messages":       nil,
			"no mobile":         {{PayloadRaw: []int{1}}},
			"no payload":        {{MobileID: "m"}},
			"both payloads":     {{MobileID: "m", PayloadRaw: []int{1}, PayloadJSON: &models.Message{}}},
			"byte out of range": {{MobileID: "m", PayloadRaw: []int{0, 256}}},
			"negative byte":     {{MobileID: "m", PayloadRaw: []int{-1}}},
		}
		for name, messages := range cases {
			t.Run(name, func(t *testing.T) {
				_, err := client.SubmitForwardMessages(ctx, testMailbox, messages)
				assert.ErrorIs(t, err, utils.ErrInvalidInput)
				assert.ErrorIs(t, err, utils.ErrInvalidPayload)
			})
		}
		assert.Equal(t, int32(0), stub.calls.Load())
	})

	t.Run("Fails when the result envelope is missing", func(t *testing.T) {
		stub := newGatewayStub(t, http.StatusOK, `{"ErrorID":0}`)

		_, err := stub.client(nil).SubmitForwardMessages(ctx, testMailbox, []models.ForwardMessage{{MobileID: "m", PayloadRaw: []int{1}}})
		assert.ErrorIs(t, err, remap.ErrDecode)
	})
}

func TestForwardMessageQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("Gets forward messages by id", func(t *testing.T) {
		stub := newGatewayStub(t, http.StatusOK, `{"ErrorID":0,"Messages":[{
			"ID": 5133, "DestinationID": "01097623SKY2C68", "RawPayload": [16, 1],
			"CreateUTC": "2020-06-24 19:40:00", "StatusUTC": "2020-06-24 19:45:00",
			"State": 1, "IsClosed": true, "ReferenceNumber": 3, "ErrorID": 0
		}]}`)

		result, err := stub.client(nil).GetForwardMessages(ctx, testMailbox, []int64{5133, 5134})
		require.NoError(t, err)
		assert.Contains(t, stub.query(t), "fwIDs=5133%2C5134")
		require.Len(t, result.Messages, 1)
		msg := result.Messages[0]
		assert.Equal(t, int64(5133), msg.MessageID)
		assert.Equal(t, "2020-06-24T19:40:00Z", msg.MailboxTimeUTC)
		assert.Equal(t, "2020-06-24T19:45:00Z", msg.StateTimeUTC)
		assert.Equal(t, models.ForwardStateReceived, msg.State)
		assert.True(t, msg.IsClosed)
	})

	t.Run("Requires ids to get or cancel", func(t *testing.T) {
		stub := newGatewayStub(t, http.StatusOK, `{}`)
		client := stub.client(nil)

		_, err := client.GetForwardMessages(ctx, testMailbox, nil)
		assert.ErrorIs(t, err, utils.ErrEmptyMessageIDs)
		_, err = client.CancelForwardMessages(ctx, testMailbox, []int64{})
		assert.ErrorIs(t, err, utils.ErrEmptyMessageIDs)
		assert.Equal(t, int32(0), stub.calls.Load())
	})

	t.Run("Gets statuses by id and time range", func(t *testing.T) {
		stub := newGatewayStub(t, http.StatusOK, `{"ErrorID":0,"More":true,"NextStartUTC":"2020-06-25 00:00:00","Statuses":[{
			"ForwardMessageID": 5133, "IsClosed": false, "ReferenceNumber": 3,
			"StateUTC": "2020-06-24 19:40:00", "State": 0, "ErrorID": 0
		}]}`)

		result, err := stub.client(nil).GetForwardStatuses(ctx, testMailbox, models.ForwardStatusFilter{
			IDs:       []int64{5133},
			StartTime: time.Date(2020, 6, 24, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)

		query := stub.query(t)
		assert.Contains(t, query, "fwIDs=5133")
		assert.Contains(t, query, "start_utc=2020-06-24%2000%3A00%3A00")
		assert.NotContains(t, query, "end_utc")
		assert.True(t, result.More)
		assert.Equal(t, "2020-06-25T00:00:00Z", result.NextStartTimeUTC)
		require.Len(t, result.Statuses, 1)
		assert.Equal(t, models.ForwardStateSubmitted, result.Statuses[0].State)
	})

	t.Run("Requires ids or a start time for statuses", func(t *testing.T) {
		stub := newGatewayStub(t, http.StatusOK, `{}`)

		_, err := stub.client(nil).GetForwardStatuses(ctx, testMailbox, models.ForwardStatusFilter{EndTime: time.Now()})
		assert.ErrorIs(t, err, utils.ErrMissingFilter)
		assert.Equal(t, int32(0), stub.calls.Load())
	})

	t.Run("Cancels by id", func(t *testing.T) {
		stub := newGatewayStub(t, http.StatusOK, `{"ErrorID":0,"Submissions":[{"ForwardMessageID":5140,"DestinationID":"01097623SKY2C68","StateUTC":"2020-06-24 19:50:00","ErrorID":0}]}`)

		result, err := stub.client(nil).CancelForwardMessages(ctx, testMailbox, []int64{5133})
		require.NoError(t, err)
		assert.Equal(t, "/submit_cancelations.json/", stub.lastPath.Load())
		assert.Contains(t, stub.query(t), "fwIDs=5133")
		require.Len(t, result.Submissions, 1)
		assert.Equal(t, int64(5140), result.Submissions[0].MessageID)
	})

	t.Run("Cancellations are not retried on 500", func(t *testing.T) {
		stub := newGatewayStub(t, http.StatusInternalServerError, `{}`)
		retrying := requests.NewRetryableHTTPClient(stub.server.Client(), requests.RequestRetryConfig{
			RetryWaitMin:     time.Millisecond,
			RetryWaitMax:     time.Millisecond,
			RetryAttemptsMax: 3,
		})
		client := NewIdpGatewayClient(Config{BaseURL: stub.server.URL}, retrying, nil)

		_, err := client.CancelForwardMessages(ctx, testMailbox, []int64{5133})
		var transportErr *requests.TransportError
		require.ErrorAs(t, err, &transportErr)
		assert.Equal(t, int32(1), stub.calls.Load())

		_, err = client.GetForwardMessages(ctx, testMailbox, []int64{5133})
		require.ErrorAs(t, err, &transportErr)
		assert.Equal(t, int32(5), stub.calls.Load())
	})
}

func TestMobiles(t *testing.T) {
	ctx := context.Background()

	t.Run("Pages mobiles with a default size", func(t *testing.T) {
		stub := newGatewayStub(t, http.StatusOK, `{"ErrorID":0,"Mobiles":[{
			"ID": "01097623SKY2C68", "Description": "truck 7",
			"LastRegistrationUTC": "2020-06-24 19:32:13", "RegionName": "AMERRB16"
		}]}`)

		result, err := stub.client(nil).GetMobileIDs(ctx, testMailbox, models.MobileFilter{PageSize: 5000, SinceMobileID: "01097623SKY2C67"})
		require.NoError(t, err)

		query := stub.query(t)
		assert.Contains(t, query, "page_size=1000")
		assert.Contains(t, query, "since_mobile=01097623SKY2C67")
		require.Len(t, result.Mobiles, 1)
		assert.Equal(t, models.Mobile{
			MobileID:                "01097623SKY2C68",
			Description:             "truck 7",
			LastRegistrationTimeUTC: "2020-06-24T19:32:13Z",
			SatelliteRegion:         "AMERRB16",
		}, result.Mobiles[0])
	})

	t.Run("Lists broadcast groups", func(t *testing.T) {
		stub := newGatewayStub(t, http.StatusOK, `{"ErrorID":0,"BroadcastInfos":[{"ID":"BC0000A1","Description":"fleet"}]}`)

		result, err := stub.client(nil).GetBroadcastIDs(ctx, testMailbox)
		require.NoError(t, err)
		assert.Equal(t, []models.BroadcastGroup{{MobileID: "BC0000A1", Description: "fleet"}}, result.BroadcastGroups)
	})
}

func TestInfo(t *testing.T) {
	ctx := context.Background()

	t.Run("Gets the version", func(t *testing.T) {
		stub := newGatewayStub(t, http.StatusOK, `"2.2.0.1"`)

		version, err := stub.client(nil).GetVersion(ctx)
		require.NoError(t, err)
		assert.Equal(t, "2.2.0.1", version)
		assert.Empty(t, stub.query(t))
	})

	t.Run("Gets the gateway clock", func(t *testing.T) {
		stub := newGatewayStub(t, http.StatusOK, `"2020-06-24 19:33:00"`)

		now, err := stub.client(nil).GetUTCTime(ctx)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2020, 6, 24, 19, 33, 0, 0, time.UTC), now)
	})

	t.Run("Resolves error names", func(t *testing.T) {
		stub := newGatewayStub(t, http.StatusOK, `[
			{"ID": 0, "Name": "NO_ERRORS", "Description": "No errors"},
			{"ID": 21785, "Name": "ERR_INVALID_CREDENTIALS", "Description": "Bad credentials"}
		]`)
		client := stub.client(nil)

		catalog, err := client.GetErrorDefinitions(ctx)
		require.NoError(t, err)
		require.Len(t, catalog, 2)
		assert.Equal(t, models.ErrorDefinition{ErrorID: 21785, Name: "ERR_INVALID_CREDENTIALS", Description: "Bad credentials"}, catalog[1])

		name, err := client.GetErrorName(ctx, 21785)
		require.NoError(t, err)
		assert.Equal(t, "ERR_INVALID_CREDENTIALS", name)

		name, err = client.GetErrorName(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, models.UndefinedErrorName, name)
	})

	t.Run("Overrides the base URL per call", func(t *testing.T) {
		stub := newGatewayStub(t, http.StatusOK, `"2.2.0.1"`)
		client := NewIdpGatewayClient(Config{BaseURL: "http://127.0.0.1:1/unused"}, stub.server.Client(), nil)

		version, err := client.GetVersion(ctx, WithBaseURL(stub.server.URL+"/GLGW/GWServices_v1/RestMessages.svc"))
		require.NoError(t, err)
		assert.Equal(t, "2.2.0.1", version)
		assert.Equal(t, "/GLGW/GWServices_v1/RestMessages.svc/info_version.json/", stub.lastPath.Load())
	})
}

func TestMetricsOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	recorder, err := metrics.NewRecorder(reg)
	require.NoError(t, err)

	stub := newGatewayStub(t, http.StatusOK, returnMessagesBody)
	client := stub.client(recorder)
	ctx := context.Background()

	_, err = client.GetReturnMessages(ctx, testMailbox, models.ReturnMessageFilter{StartTime: time.Now()})
	require.NoError(t, err)
	_, err = client.GetReturnMessages(ctx, testMailbox, models.ReturnMessageFilter{})
	require.Error(t, err)

	count, err := testutil.GatherAndCount(reg, "idpgw_gateway_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count) // success and invalid_input series
	count, err = testutil.GatherAndCount(reg, "idpgw_gateway_items_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
