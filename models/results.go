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

// UndefinedErrorName is reported for error ids missing from the gateway catalog
const UndefinedErrorName = "UNDEFINED"

// GatewayStatus carries the application error code the gateway returns with
// HTTP 200. A non-zero ErrorID is data for the caller, not a Go error.
type GatewayStatus struct {
	ErrorID int `json:"errorId"`
}

// Failed reports whether the gateway rejected the operation
func (s GatewayStatus) Failed() bool {
	return s.ErrorID != 0
}

// Status lets callers inspect any result's gateway status uniformly
func (s GatewayStatus) Status() GatewayStatus {
	return s
}

type GetReturnMessagesResult struct {
	GatewayStatus
	More             bool            `json:"more"`
	NextStartTimeUTC string          `json:"nextStartTimeUtc,omitempty"`
	NextStartID      int64           `json:"nextStartId"`
	Messages         []ReturnMessage `json:"messages"`
}

// SubmissionResult is returned by both submissions and cancellations
type SubmissionResult struct {
	GatewayStatus
	Submissions []ForwardSubmission `json:"submissions"`
}

type GetForwardMessagesResult struct {
	GatewayStatus
	Messages []ForwardMessageRecord `json:"messages"`
}

type GetForwardStatusesResult struct {
	GatewayStatus
	More             bool            `json:"more"`
	NextStartTimeUTC string          `json:"nextStartTimeUtc,omitempty"`
	Statuses         []ForwardStatus `json:"statuses"`
}

type GetMobilesResult struct {
	GatewayStatus
	Mobiles []Mobile `json:"mobiles"`
}

type GetBroadcastGroupsResult struct {
	GatewayStatus
	BroadcastGroups []BroadcastGroup `json:"broadcastGroups"`
}

// ErrorCatalog is the list of error definitions published by the gateway
type ErrorCatalog []ErrorDefinition

// NameOf returns the name registered for errorID, or UndefinedErrorName
func (c ErrorCatalog) NameOf(errorID int) string {
	for _, def := range c {
		if def.ErrorID == errorID {
			return def.Name
		}
	}
	return UndefinedErrorName
}
