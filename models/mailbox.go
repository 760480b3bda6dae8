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

// Mailbox holds the credentials of a gateway mailbox
type Mailbox struct {
	Name     string `json:"name,omitempty"`
	AccessID string `json:"accessId"`
	Password string `json:"password"`
}

// IsComplete reports whether both credentials are set
func (m Mailbox) IsComplete() bool {
	return m.AccessID != "" && m.Password != ""
}

// String never includes the password
func (m Mailbox) String() string {
	if m.Name != "" {
		return m.Name + " (" + m.AccessID + ")"
	}
	return m.AccessID
}
