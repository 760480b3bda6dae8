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
	"github.com/spf13/cobra"

	"github.com/isatdatapro/isatdatapro-api/models"
)

func (a *app) newMobilesCmd() *cobra.Command {
	var filter models.MobileFilter

	cmd := &cobra.Command{
		Use:   "mobiles",
		Short: "List the mobiles provisioned on a mailbox",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mailbox, err := a.mailbox()
			if err != nil {
				return err
			}
			result, err := a.params.GatewayClient.GetMobileIDs(cmd.Context(), mailbox, filter)
			if err != nil {
				return err
			}
			return writeJSON(cmd, result)
		},
	}
	cmd.Flags().IntVar(&filter.PageSize, "page-size", models.DefaultMobilesPageSize, "mobiles per page (1-1000)")
	cmd.Flags().StringVar(&filter.SinceMobileID, "since-mobile", "", "start after this mobile id (last id of the previous page)")
	return cmd
}

func (a *app) newBroadcastsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "broadcasts",
		Short: "List the broadcast groups of a mailbox",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mailbox, err := a.mailbox()
			if err != nil {
				return err
			}
			result, err := a.params.GatewayClient.GetBroadcastIDs(cmd.Context(), mailbox)
			if err != nil {
				return err
			}
			return writeJSON(cmd, result)
		},
	}
}
