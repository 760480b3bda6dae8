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

import "time"

const (
	MaxMobilesPageSize     = 1000
	DefaultMobilesPageSize = MaxMobilesPageSize
)

// ReturnMessageFilter selects mobile-originated messages.
// StartMessageID takes precedence over StartTime; one of the two is required.
type ReturnMessageFilter struct {
	// StartMessageID is the high water mark from a prior NextStartID
	StartMessageID *int64
	// StartTime is the high water mark from a prior NextStartTimeUTC
	StartTime time.Time
	EndTime   time.Time
	MobileID  string

	// Raw payloads and field types are requested unless omitted
	OmitRawPayload bool
	OmitFieldType  bool
}

// ForwardStatusFilter selects forward message statuses by id, by time range or both.
// At least one of IDs or StartTime is required.
type ForwardStatusFilter struct {
	IDs       []int64
	StartTime time.Time
	EndTime   time.Time
}

// MobileFilter pages through the mobiles provisioned on a mailbox
type MobileFilter struct {
	SinceMobileID string
	// PageSize outside 1..1000 falls back to the default
	PageSize int
}
