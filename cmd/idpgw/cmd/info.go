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
	"github.com/isatdatapro/isatdatapro-api/utils"
)

func (a *app) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the gateway software version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			version, err := a.params.GatewayClient.GetVersion(cmd.Context())
			if err != nil {
				return err
			}
			return writeJSON(cmd, map[string]string{"version": version})
		},
	}
}

func (a *app) newTimeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "time",
		Short: "Show the gateway clock",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := a.params.GatewayClient.GetUTCTime(cmd.Context())
			if err != nil {
				return err
			}
			gatewayTime, err := idptime.ToGatewayTime(now)
			if err != nil {
				return err
			}
			return writeJSON(cmd, map[string]string{
				"utc":     idptime.ToISO(now),
				"gateway": gatewayTime,
			})
		},
	}
}

func (a *app) newErrorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "errors",
		Short: "List the gateway error catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := a.params.GatewayClient.GetErrorDefinitions(cmd.Context())
			if err != nil {
				return err
			}
			return writeJSON(cmd, catalog)
		},
	}
}

func (a *app) newErrorNameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "error-name <error-id>",
		Short: "Resolve a gateway error code to its name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			errorID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: error id %q", utils.ErrInvalidInput, args[0])
			}
			name, err := a.params.GatewayClient.GetErrorName(cmd.Context(), errorID)
			if err != nil {
				return err
			}
			return writeJSON(cmd, map[string]any{"errorId": errorID, "name": name})
		},
	}
}
