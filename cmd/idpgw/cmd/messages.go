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
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/isatdatapro/isatdatapro-api/models"
	"github.com/isatdatapro/isatdatapro-api/utils"
)

// defaultLookback matches the usual first retrieval window of a new mailbox poller
const defaultLookback = 24 * time.Hour

func (a *app) newReturnMessagesCmd() *cobra.Command {
	var (
		since    time.Duration
		start    string
		end      string
		fromID   int64
		mobileID string
		noRaw    bool
		noType   bool
	)

	cmd := &cobra.Command{
		Use:   "return-messages",
		Short: "Retrieve mobile-originated messages from a mailbox",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mailbox, err := a.mailbox()
			if err != nil {
				return err
			}

			filter := models.ReturnMessageFilter{
				MobileID:       mobileID,
				OmitRawPayload: noRaw,
				OmitFieldType:  noType,
			}
			switch {
			case cmd.Flags().Changed("from-id"):
				filter.StartMessageID = &fromID
			case start != "":
				if filter.StartTime, err = parseTime(start); err != nil {
					return err
				}
			default:
				filter.StartTime = time.Now().UTC().Add(-since)
			}
			if end != "" {
				if filter.EndTime, err = parseTime(end); err != nil {
					return err
				}
			}

			result, err := a.params.GatewayClient.GetReturnMessages(cmd.Context(), mailbox, filter)
			if err != nil {
				return err
			}
			return writeJSON(cmd, result)
		},
	}
	cmd.Flags().DurationVar(&since, "since", defaultLookback, "retrieve messages received within this window")
	cmd.Flags().StringVar(&start, "start", "", "start time (ISO-8601 or gateway format), overrides --since")
	cmd.Flags().StringVar(&end, "end", "", "end time (ISO-8601 or gateway format)")
	cmd.Flags().Int64Var(&fromID, "from-id", 0, "start after this message id (NextStartID of a previous call)")
	cmd.Flags().StringVar(&mobileID, "mobile", "", "only messages from this mobile")
	cmd.Flags().BoolVar(&noRaw, "no-raw", false, "do not request raw payloads")
	cmd.Flags().BoolVar(&noType, "no-type", false, "do not request field types")
	return cmd
}

func (a *app) newSubmitCmd() *cobra.Command {
	var (
		mobileID      string
		raw           string
		userMessageID int64
		file          string
	)

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit forward messages to mobiles or broadcast groups",
		Long: `Submit a single raw message with --mobile and --raw, or a JSON array of
forward messages (mobileId, userMessageId, payloadRaw or payloadJson) with --file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mailbox, err := a.mailbox()
			if err != nil {
				return err
			}

			var messages []models.ForwardMessage
			switch {
			case file != "":
				data, err := os.ReadFile(file)
				if err != nil {
					return err
				}
				if err := json.Unmarshal(data, &messages); err != nil {
					return fmt.Errorf("%w: %s: %w", utils.ErrInvalidPayload, file, err)
				}
			case mobileID != "" && raw != "":
				payload, err := parseBytes(raw)
				if err != nil {
					return err
				}
				messages = []models.ForwardMessage{{MobileID: mobileID, UserMessageID: userMessageID, PayloadRaw: payload}}
			default:
				return fmt.Errorf("%w: use --file, or --mobile with --raw", utils.ErrInvalidInput)
			}

			result, err := a.params.GatewayClient.SubmitForwardMessages(cmd.Context(), mailbox, messages)
			if err != nil {
				return err
			}
			return writeJSON(cmd, result)
		},
	}
	cmd.Flags().StringVar(&mobileID, "mobile", "", "destination mobile or broadcast id")
	cmd.Flags().StringVar(&raw, "raw", "", "raw payload as comma separated decimal bytes, e.g. 16,1,0")
	cmd.Flags().Int64Var(&userMessageID, "user-message-id", 0, "optional id to correlate with the assigned message id")
	cmd.Flags().StringVar(&file, "file", "", "JSON file with an array of forward messages")
	return cmd
}

func (a *app) newForwardMessagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "forward-messages <id>...",
		Short: "Retrieve submitted forward messages by id",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mailbox, err := a.mailbox()
			if err != nil {
				return err
			}
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}
			result, err := a.params.GatewayClient.GetForwardMessages(cmd.Context(), mailbox, ids)
			if err != nil {
				return err
			}
			return writeJSON(cmd, result)
		},
	}
}

func (a *app) newForwardStatusesCmd() *cobra.Command {
	var (
		since time.Duration
		start string
		end   string
	)

	cmd := &cobra.Command{
		Use:   "forward-statuses [id]...",
		Short: "Retrieve forward message states by id or time range",
		RunE: func(cmd *cobra.Command, args []string) error {
			mailbox, err := a.mailbox()
			if err != nil {
				return err
			}
			filter := models.ForwardStatusFilter{}
			if filter.IDs, err = parseIDs(args); err != nil {
				return err
			}
			switch {
			case start != "":
				if filter.StartTime, err = parseTime(start); err != nil {
					return err
				}
			case len(filter.IDs) == 0 || cmd.Flags().Changed("since"):
				filter.StartTime = time.Now().UTC().Add(-since)
			}
			if end != "" {
				if filter.EndTime, err = parseTime(end); err != nil {
					return err
				}
			}

			result, err := a.params.GatewayClient.GetForwardStatuses(cmd.Context(), mailbox, filter)
			if err != nil {
				return err
			}
			return writeJSON(cmd, result)
		},
	}
	cmd.Flags().DurationVar(&since, "since", defaultLookback, "statuses changed within this window (default when no ids are given)")
	cmd.Flags().StringVar(&start, "start", "", "start time (ISO-8601 or gateway format), overrides --since")
	cmd.Flags().StringVar(&end, "end", "", "end time (ISO-8601 or gateway format)")
	return cmd
}

func (a *app) newCancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <id>...",
		Short: "Request cancellation of forward messages",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mailbox, err := a.mailbox()
			if err != nil {
				return err
			}
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}
			result, err := a.params.GatewayClient.CancelForwardMessages(cmd.Context(), mailbox, ids)
			if err != nil {
				return err
			}
			return writeJSON(cmd, result)
		},
	}
}
