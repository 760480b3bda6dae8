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

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/isatdatapro/isatdatapro-api/idptime"
	"github.com/isatdatapro/isatdatapro-api/models"
	"github.com/isatdatapro/isatdatapro-api/utils"
)

func newConvertTimeCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "convert-time <timestamp>",
		Short:       "Convert between gateway and ISO-8601 timestamps",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{offlineAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			value := args[0]
			if idptime.IsValidGatewayTime(value) {
				iso, err := idptime.GatewayToISO(value)
				if err != nil {
					return err
				}
				return writeJSON(cmd, map[string]string{"gateway": value, "utc": iso})
			}
			// unrecognized input converts to the epoch sentinel, like the client does
			gatewayTime, err := idptime.ToGatewayTime(value)
			if err != nil {
				return err
			}
			iso, err := idptime.GatewayToISO(gatewayTime)
			if err != nil {
				return err
			}
			return writeJSON(cmd, map[string]string{"gateway": gatewayTime, "utc": iso})
		},
	}
}

type wakeupPeriodInfo struct {
	Code    int    `json:"code"`
	Name    string `json:"name"`
	Seconds int    `json:"seconds"`
}

func newWakeupCmd() *cobra.Command {
	var fromSeconds bool

	cmd := &cobra.Command{
		Use:         "wakeup <code|name>",
		Short:       "Resolve a terminal wakeup period",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{offlineAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			period, ok := resolveWakeupPeriod(args[0], fromSeconds)
			if !ok {
				return fmt.Errorf("%w: unknown wakeup period %q", utils.ErrInvalidInput, args[0])
			}
			return writeJSON(cmd, wakeupPeriodInfo{
				Code:    int(period),
				Name:    period.String(),
				Seconds: int(period.Duration().Seconds()),
			})
		},
	}
	cmd.Flags().BoolVar(&fromSeconds, "seconds", false, "treat a numeric argument as an interval in seconds")
	return cmd
}

func resolveWakeupPeriod(value string, fromSeconds bool) (models.WakeupPeriod, bool) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return models.ParseWakeupPeriod(value)
	}
	if fromSeconds {
		return models.WakeupPeriodFromSeconds(n)
	}
	if _, ok := models.WakeupPeriodName(n); !ok {
		return 0, false
	}
	return models.WakeupPeriod(n), true
}

type forwardStateInfo struct {
	Code   int    `json:"code"`
	Name   string `json:"name"`
	Closed bool   `json:"closed"`
}

func newStateCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "state <code|name>",
		Short:       "Resolve a forward message state",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{offlineAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var state models.ForwardMessageState
			if n, err := strconv.Atoi(args[0]); err == nil {
				if _, ok := models.ForwardMessageStateName(n); !ok {
					return fmt.Errorf("%w: unknown forward message state %d", utils.ErrInvalidInput, n)
				}
				state = models.ForwardMessageState(n)
			} else {
				var ok bool
				if state, ok = models.ParseForwardMessageState(args[0]); !ok {
					return fmt.Errorf("%w: unknown forward message state %q", utils.ErrInvalidInput, args[0])
				}
			}
			return writeJSON(cmd, forwardStateInfo{
				Code:   int(state),
				Name:   state.String(),
				Closed: state.IsClosed(),
			})
		},
	}
}
