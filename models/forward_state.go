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

import "fmt"

// ForwardMessageState represents the delivery state of a forward message
type ForwardMessageState int

const (
	ForwardStateSubmitted ForwardMessageState = iota
	ForwardStateReceived
	ForwardStateError
	ForwardStateDeliveryFailed
	ForwardStateTimedOut
	ForwardStateCancelled
)

var forwardMessageStateNames = [...]string{
	"SUBMITTED",
	"RECEIVED",
	"ERROR",
	"DELIVERY_FAILED",
	"TIMED_OUT",
	"CANCELLED",
}

// ForwardMessageStateName returns the name for a forward message state code.
// An unknown code yields ok == false.
func ForwardMessageStateName(code int) (string, bool) {
	if code < 0 || code >= len(forwardMessageStateNames) {
		return "", false
	}
	return forwardMessageStateNames[code], true
}

// ParseForwardMessageState returns the state with the given name
func ParseForwardMessageState(name string) (ForwardMessageState, bool) {
	for code, n := range forwardMessageStateNames {
		if n == name {
			return ForwardMessageState(code), true
		}
	}
	return 0, false
}

func (s ForwardMessageState) String() string {
	if name, ok := ForwardMessageStateName(int(s)); ok {
		return name
	}
	return fmt.Sprintf("ForwardMessageState(%d)", int(s))
}

// IsClosed reports whether the message is no longer pending, delivered or failed
func (s ForwardMessageState) IsClosed() bool {
	_, known := ForwardMessageStateName(int(s))
	return known && s != ForwardStateSubmitted
}
