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

package models

// Field data types reported by the gateway codec
const (
	FieldTypeEnum        = "enum"
	FieldTypeBoolean     = "boolean"
	FieldTypeUnsignedInt = "unsignedint"
	FieldTypeSignedInt   = "signedint"
	FieldTypeString      = "string"
	FieldTypeData        = "data"
	FieldTypeArray       = "array"
	FieldTypeMessage     = "message"
)

// Message is a codec-decoded payload
type Message struct {
	IsForward      bool    `json:"isForward,omitempty"`
	CodecServiceID int     `json:"codecServiceId"`
	CodecMessageID int     `json:"codecMessageId"`
	Name           string  `json:"name,omitempty"`
	Fields         []Field `json:"fields,omitempty"`
}

// Field is one named value of a codec-decoded payload.
// Arrays carry ArrayElements and nested messages carry Message instead of StringValue.
type Field struct {
	Name          string    `json:"name"`
	DataType      string    `json:"dataType,omitempty"`
	StringValue   string    `json:"stringValue,omitempty"`
	ArrayElements []Element `json:"arrayElements,omitempty"`
	Message       *Message  `json:"message,omitempty"`
}

type Element struct {
	Index  int     `json:"index"`
	Fields []Field `json:"fields"`
}

// ReturnMessage is a message sent by a mobile and retrieved from a mailbox
type ReturnMessage struct {
	MessageID       int64    `json:"messageId"`
	MobileID        string   `json:"mobileId"`
	CodecServiceID  int      `json:"codecServiceId"`
	PayloadRaw      []int    `json:"payloadRaw,omitempty"`
	PayloadJSON     *Message `json:"payloadJson,omitempty"`
	ReceiveTimeUTC  string   `json:"receiveTimeUtc"`
	MailboxTimeUTC  string   `json:"mailboxTimeUtc"`
	SatelliteRegion string   `json:"satelliteRegion,omitempty"`
	Size            int      `json:"size"`
}

// ForwardMessage is a message submitted for delivery to a mobile or broadcast group.
// Exactly one of PayloadRaw and PayloadJSON must be set.
type ForwardMessage struct {
	MobileID      string   `json:"mobileId"`
	UserMessageID int64    `json:"userMessageId,omitempty"`
	PayloadRaw    []int    `json:"payloadRaw,omitempty"`
	PayloadJSON   *Message `json:"payloadJson,omitempty"`
}

// ForwardSubmission describes an accepted submission or cancellation
type ForwardSubmission struct {
	GatewayStatus
	MessageID            int64        `json:"messageId"`
	UserMessageID        int64        `json:"userMessageId,omitempty"`
	MobileID             string       `json:"mobileId"`
	Size                 int          `json:"size"`
	StateTimeUTC         string       `json:"stateTimeUtc"`
	MobileWakeupPeriod   WakeupPeriod `json:"mobileWakeupPeriod"`
	ScheduledSendTimeUTC string       `json:"scheduledSendTimeUtc,omitempty"`
}

// ForwardMessageRecord is a previously submitted forward message as stored by the gateway
type ForwardMessageRecord struct {
	GatewayStatus
	MessageID       int64               `json:"messageId"`
	MobileID        string              `json:"mobileId"`
	PayloadRaw      []int               `json:"payloadRaw,omitempty"`
	PayloadJSON     *Message            `json:"payloadJson,omitempty"`
	MailboxTimeUTC  string              `json:"mailboxTimeUtc"`
	StateTimeUTC    string              `json:"stateTimeUtc"`
	State           ForwardMessageState `json:"state"`
	IsClosed        bool                `json:"isClosed"`
	ReferenceNumber int64               `json:"referenceNumber"`
}

type ForwardStatus struct {
	GatewayStatus
	MessageID       int64               `json:"messageId"`
	IsClosed        bool                `json:"isClosed"`
	ReferenceNumber int64               `json:"referenceNumber"`
	StateTimeUTC    string              `json:"stateTimeUtc"`
	State           ForwardMessageState `json:"state"`
}

// Mobile describes a terminal provisioned on a mailbox
type Mobile struct {
	MobileID                string `json:"mobileId"`
	Description             string `json:"description"`
	LastRegistrationTimeUTC string `json:"lastRegistrationTimeUtc,omitempty"`
	SatelliteRegion         string `json:"satelliteRegion,omitempty"`
}

type BroadcastGroup struct {
	MobileID    string `json:"mobileId"`
	Description string `json:"description"`
}

// ErrorDefinition is an entry of the gateway error catalog
type ErrorDefinition struct {
	ErrorID     int    `json:"errorId"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
