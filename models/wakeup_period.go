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

import (
	"fmt"
	"time"
)

// WakeupPeriod is the low power sleep interval configured on a mobile.
// The gateway reports it as TerminalWakeupPeriod on submissions.
type WakeupPeriod int

const (
	WakeupNone WakeupPeriod = iota
	WakeupSeconds30
	WakeupSeconds60
	WakeupMinutes3
	WakeupMinutes10
	WakeupMinutes30
	WakeupMinutes60
	WakeupMinutes2
	WakeupMinutes5
	WakeupMinutes15
)

var wakeupPeriodNames = [...]string{
	"None",
	"Seconds30",
	"Seconds60",
	"Minutes3",
	"Minutes10",
	"Minutes30",
	"Minutes60",
	"Minutes2",
	"Minutes5",
	"Minutes15",
}

// codes are not in duration order
var wakeupPeriodDurations = [...]time.Duration{
	0,
	30 * time.Second,
	60 * time.Second,
	3 * time.Minute,
	10 * time.Minute,
	30 * time.Minute,
	60 * time.Minute,
	2 * time.Minute,
	5 * time.Minute,
	15 * time.Minute,
}

// WakeupPeriodName returns the name for a wakeup period code.
// An unknown code yields ok == false.
func WakeupPeriodName(code int) (string, bool) {
	if code < 0 || code >= len(wakeupPeriodNames) {
		return "", false
	}
	return wakeupPeriodNames[code], true
}

// ParseWakeupPeriod returns the wakeup period with the given name
func ParseWakeupPeriod(name string) (WakeupPeriod, bool) {
	for code, n := range wakeupPeriodNames {
		if n == name {
			return WakeupPeriod(code), true
		}
	}
	return 0, false
}

// WakeupPeriodFromSeconds returns the wakeup period matching an interval in seconds, e.g. 30 -> WakeupSeconds30
func WakeupPeriodFromSeconds(seconds int) (WakeupPeriod, bool) {
	d := time.Duration(seconds) * time.Second
	for code, period := range wakeupPeriodDurations {
		if period == d {
			return WakeupPeriod(code), true
		}
	}
	return 0, false
}

func (p WakeupPeriod) String() string {
	if name, ok := WakeupPeriodName(int(p)); ok {
		return name
	}
	return fmt.Sprintf("WakeupPeriod(%d)", int(p))
}

// Duration returns the sleep interval, or zero for an unknown code
func (p WakeupPeriod) Duration() time.Duration {
	if p < 0 || int(p) >= len(wakeupPeriodDurations) {
		return 0
	}
	return wakeupPeriodDurations[p]
}
