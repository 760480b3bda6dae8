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
	"fmt"
	"log/slog"

	"github.com/isatdatapro/isatdatapro-api/logger"
	"github.com/isatdatapro/isatdatapro-api/models"
	"github.com/isatdatapro/isatdatapro-api/remap"
)

// GetReturnMessages retrieves mobile-originated messages from a mailbox.
// Callers page with NextStartID (or NextStartTimeUTC) while More is true.
func (c *idpGatewayClient) GetReturnMessages(ctx context.Context, mailbox models.Mailbox, filter models.ReturnMessageFilter, opts ...CallOption) (*models.GetReturnMessagesResult, error) {
	if err := checkMailbox(mailbox); err != nil {
		return nil, fmt.Errorf("idpsvc.GetReturnMessages: %w", c.rejectInput(OpGetReturnMessages, err))
	}

	req := c.newMailboxRequest("idpsvc.GetReturnMessages", endpointGetReturnMessages, mailbox, opts)
	if err := applyReturnMessageFilter(req, filter); err != nil {
		return nil, fmt.Errorf("idpsvc.GetReturnMessages: %w", c.rejectInput(OpGetReturnMessages, err))
	}

	var result models.GetReturnMessagesResult
	if err := c.do(ctx, OpGetReturnMessages, req, &remap.GetReturnMessagesTable, &result); err != nil {
		return nil, fmt.Errorf("idpsvc.GetReturnMessages: %w", err)
	}

	c.metrics.RecordItems(OpGetReturnMessages, len(result.Messages))
	logger.GetLogger(ctx).Debug("return messages retrieved",
		slog.String("mailbox", mailbox.String()),
		slog.Int("count", len(result.Messages)),
		slog.Bool("more", result.More))
	return &result, nil
}
