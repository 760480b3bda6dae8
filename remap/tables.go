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

// Normalized names for the first two payload bytes
const (
	CodecServiceID = "codecServiceId" // SIN
	CodecMessageID = "codecMessageId" // MIN
)

var errorDefinitionFragment = Fragment{
	"ID":          "errorId",
	"Name":        "name",
	"Description": "description",
}

// messagePayloadFragment covers codec-decoded payloads shared by return and forward messages
var messagePayloadFragment = Fragment{
	"IsForward": "isForward",
	"SIN":       CodecServiceID,
	"MIN":       CodecMessageID,
	"Name":      "name",
	"Type":      "dataType",
	"Value":     "stringValue",
	"Elements":  "arrayElements",
	"Index":     "index",
	"Fields":    "fields",
	"Message":   "message",
}

var returnMessageFragment = Fragment{
	"ID":             "messageId",
	"MobileID":       "mobileId",
	"SIN":            CodecServiceID,
	"RawPayload":     "payloadRaw",
	"Payload":        "payloadJson",
	"ReceiveUTC":     "receiveTimeUtc",
	"MessageUTC":     "mailboxTimeUtc",
	"RegionName":     "satelliteRegion",
	"OTAMessageSize": "size",
}

var getReturnFragment = Fragment{
	"ErrorID":      "errorId",
	"More":         "more",
	"NextStartUTC": "nextStartTimeUtc",
	"NextStartID":  "nextStartId",
	"Messages":     "messages",
}

var forwardMessageFragment = Fragment{
	"DestinationID": "mobileId",
	"UserMessageID": "userMessageId",
	"RawPayload":    "payloadRaw",
	"Payload":       "payloadJson",
}

var submitOrCancelFragment = Fragment{
	"ErrorID":              "errorId",
	"Submissions":          "submissions",
	"ForwardMessageID":     "messageId",
	"UserMessageID":        "userMessageId",
	"DestinationID":        "mobileId",
	"OTAMessageSize":       "size",
	"StateUTC":             "stateTimeUtc",
	"TerminalWakeupPeriod": "mobileWakeupPeriod",
	"ScheduledSendUTC":     "scheduledSendTimeUtc",
}

var getForwardFragment = Fragment{
	"ErrorID":         "errorId",
	"Messages":        "messages",
	"DestinationID":   "mobileId",
	"ID":              "messageId",
	"RawPayload":      "payloadRaw",
	"Payload":         "payloadJson",
	"CreateUTC":       "mailboxTimeUtc",
	"StatusUTC":       "stateTimeUtc",
	"State":           "state",
	"IsClosed":        "isClosed",
	"ReferenceNumber": "referenceNumber",
}

var getStatusesFragment = Fragment{
	"ErrorID":          "errorId",
	"More":             "more",
	"NextStartUTC":     "nextStartTimeUtc",
	"Statuses":         "statuses",
	"ForwardMessageID": "messageId",
	"IsClosed":         "isClosed",
	"ReferenceNumber":  "referenceNumber",
	"StateUTC":         "stateTimeUtc",
	"State":            "state",
}

var mobileOrBroadcastFragment = Fragment{
	"ErrorID":             "errorId",
	"Mobiles":             "mobiles",
	"BroadcastInfos":      "broadcastGroups",
	"ID":                  "mobileId",
	"Description":         "description",
	"LastRegistrationUTC": "lastRegistrationTimeUtc",
	"RegionName":          "satelliteRegion",
}

// Operation tables, built once at package initialization.
var (
	ErrorDefinitionTable    = Merge("error_definition", errorDefinitionFragment)
	ReturnMessageTable      = Merge("return_message", returnMessageFragment, messagePayloadFragment)
	GetReturnMessagesTable  = Merge("get_return_messages", getReturnFragment, returnMessageFragment, messagePayloadFragment)
	ForwardMessageTable     = Merge("forward_message", forwardMessageFragment, messagePayloadFragment)
	SubmitOrCancelTable     = Merge("submit_or_cancel", submitOrCancelFragment)
	GetForwardMessagesTable = Merge("get_forward_messages", getForwardFragment, messagePayloadFragment)
	GetStatusesTable        = Merge("get_forward_statuses", getStatusesFragment)
	MobileOrBroadcastTable  = Merge("mobile_or_broadcast", mobileOrBroadcastFragment)
)
