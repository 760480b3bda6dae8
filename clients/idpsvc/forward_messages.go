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

package idpsvc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/isatdatapro/isatdatapro-api/logger"
	"github.com/isatdatapro/isatdatapro-api/models"
	"github.com/isatdatapro/isatdatapro-api/remap"
	"github.com/isatdatapro/isatdatapro-api/utils"
)

// submitEnvelope is the POST body of submit_messages; credentials travel in the body
type submitEnvelope struct {
	AccessID string `json:"accessID"`
	Password string `json:"password"`
	Messages any    `json:"messages"`
}

// submitResponse unwraps the SubmitForwardMessages_JResult envelope of a submission
type submitResponse struct {
	models.SubmissionResult
}

func (r *submitResponse) UnmarshalJSON(data []byte) error {
	var envelope struct {
		Result json.RawMessage `json:"SubmitForwardMessages_JResult"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}
	if len(envelope.Result) == 0 || string(envelope.Result) == "null" {
		return errors.New("missing SubmitForwardMessages_JResult")
	}
	return decodeBody(envelope.Result, &remap.SubmitOrCancelTable, &r.SubmissionResult)
}

func validateForwardMessages(messages []models.ForwardMessage) error {
	if len(messages) == 0 {
		return fmt.Errorf("%w: no messages to submit", utils.ErrInvalidPayload)
	}
	for i, m := range messages {
		if m.MobileID == "" {
			return fmt.Errorf("%w: message %d has no mobile id", utils.ErrInvalidPayload, i)
		}
		if (len(m.PayloadRaw) > 0) == (m.PayloadJSON != nil) {
			return fmt.Errorf("%w: message %d", utils.ErrInvalidPayload, i)
		}
		for _, b := range m.PayloadRaw {
			if b < 0 || b > 255 {
				return fmt.Errorf("%w: message %d has raw value %d outside 0..255", utils.ErrInvalidPayload, i, b)
			}
		}
	}
	return nil
}

// SubmitForwardMessages sends messages to mobiles or broadcast groups
func (c *idpGatewayClient) SubmitForwardMessages(ctx context.Context, mailbox models.Mailbox, messages []models.ForwardMessage, opts ...CallOption) (*models.SubmissionResult, error) {
	if err := checkMailbox(mailbox); err != nil {
		return nil, fmt.Errorf("idpsvc.SubmitForwardMessages: %w", c.rejectInput(OpSubmitForwardMessages, err))
	}
	if err := validateForwardMessages(messages); err != nil {
		return nil, fmt.Errorf("idpsvc.SubmitForwardMessages: %w", c.rejectInput(OpSubmitForwardMessages, err))
	}

	generic, err := remap.Encode(messages)
	if err != nil {
		return nil, fmt.Errorf("idpsvc.SubmitForwardMessages: %w", err)
	}

	req := c.newPostRequest("idpsvc.SubmitForwardMessages", endpointSubmitMessages, opts).
		SetJson(submitEnvelope{
			AccessID: mailbox.AccessID,
			Password: mailbox.Password,
			Messages: remap.Unmap(generic, remap.ForwardMessageTable),
		})

	var response submitResponse
	if err := c.do(ctx, OpSubmitForwardMessages, req, nil, &response); err != nil {
		return nil, fmt.Errorf("idpsvc.SubmitForwardMessages: %w", err)
	}
	result := response.SubmissionResult
	c.metrics.RecordItems(OpSubmitForwardMessages, len(result.Submissions))
	logger.GetLogger(ctx).Debug("forward messages submitted",
		slog.String("mailbox", mailbox.String()),
		slog.Int("count", len(result.Submissions)))
	return &result, nil
}

// GetForwardMessages retrieves previously submitted forward messages by id
func (c *idpGatewayClient) GetForwardMessages(ctx context.Context, mailbox models.Mailbox, ids []int64, opts ...CallOption) (*models.GetForwardMessagesResult, error) {
	if err := checkMailbox(mailbox); err != nil {
		return nil, fmt.Errorf("idpsvc.GetForwardMessages: %w", c.rejectInput(OpGetForwardMessages, err))
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("idpsvc.GetForwardMessages: %w", c.rejectInput(OpGetForwardMessages, utils.ErrEmptyMessageIDs))
	}

	req := c.newMailboxRequest("idpsvc.GetForwardMessages", endpointGetForwardMessages, mailbox, opts).
		SetQuery("fwIDs", joinIDs(ids))

	var result models.GetForwardMessagesResult
	if err := c.do(ctx, OpGetForwardMessages, req, &remap.GetForwardMessagesTable, &result); err != nil {
		return nil, fmt.Errorf("idpsvc.GetForwardMessages: %w", err)
	}
	c.metrics.RecordItems(OpGetForwardMessages, len(result.Messages))
	logger.GetLogger(ctx).Debug("forward messages retrieved",
		slog.String("mailbox", mailbox.String()),
		slog.Int("count", len(result.Messages)))
	return &result, nil
}

// GetForwardStatuses retrieves delivery states by id, by time range or both
func (c *idpGatewayClient) GetForwardStatuses(ctx context.Context, mailbox models.Mailbox, filter models.ForwardStatusFilter, opts ...CallOption) (*models.GetForwardStatusesResult, error) {
	if err := checkMailbox(mailbox); err != nil {
		return nil, fmt.Errorf("idpsvc.GetForwardStatuses: %w", c.rejectInput(OpGetForwardStatuses, err))
	}

	req := c.newMailboxRequest("idpsvc.GetForwardStatuses", endpointGetForwardStatuses, mailbox, opts)
	if err := applyForwardStatusFilter(req, filter); err != nil {
		return nil, fmt.Errorf("idpsvc.GetForwardStatuses: %w", c.rejectInput(OpGetForwardStatuses, err))
	}

	var result models.GetForwardStatusesResult
	if err := c.do(ctx, OpGetForwardStatuses, req, &remap.GetStatusesTable, &result); err != nil {
		return nil, fmt.Errorf("idpsvc.GetForwardStatuses: %w", err)
	}
	c.metrics.RecordItems(OpGetForwardStatuses, len(result.Statuses))
	logger.GetLogger(ctx).Debug("forward statuses retrieved",
		slog.String("mailbox", mailbox.String()),
		slog.Int("count", len(result.Statuses)))
	return &result, nil
}

// CancelForwardMessages requests cancellation of forward messages not yet delivered
func (c *idpGatewayClient) CancelForwardMessages(ctx context.Context, mailbox models.Mailbox, ids []int64, opts ...CallOption) (*models.SubmissionResult, error) {
	if err := checkMailbox(mailbox); err != nil {
		return nil, fmt.Errorf("idpsvc.CancelForwardMessages: %w", c.rejectInput(OpCancelForwardMessages, err))
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("idpsvc.CancelForwardMessages: %w", c.rejectInput(OpCancelForwardMessages, utils.ErrEmptyMessageIDs))
	}

	req := c.newMailboxRequest("idpsvc.CancelForwardMessages", endpointCancelMessages, mailbox, opts).
		SetQuery("fwIDs", joinIDs(ids))
	req.NonIdempotent = true

	var result models.SubmissionResult
	if err := c.do(ctx, OpCancelForwardMessages, req, &remap.SubmitOrCancelTable, &result); err != nil {
		return nil, fmt.Errorf("idpsvc.CancelForwardMessages: %w", err)
	}
	c.metrics.RecordItems(OpCancelForwardMessages, len(result.Submissions))
	logger.GetLogger(ctx).Debug("cancellations requested",
		slog.String("mailbox", mailbox.String()),
		slog.Int("count", len(result.Submissions)))
	return &result, nil
}
