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

// GetMobileIDs lists the mobiles provisioned on a mailbox, one page at a time.
// The next page starts after the last MobileID of the previous one.
func (c *idpGatewayClient) GetMobileIDs(ctx context.Context, mailbox models.Mailbox, filter models.MobileFilter, opts ...CallOption) (*models.GetMobilesResult, error) {
	if err := checkMailbox(mailbox); err != nil {
		return nil, fmt.Errorf("idpsvc.GetMobileIDs: %w", c.rejectInput(OpGetMobileIDs, err))
	}

	req := c.newMailboxRequest("idpsvc.GetMobileIDs", endpointGetMobiles, mailbox, opts)
	applyMobileFilter(req, filter)

	var result models.GetMobilesResult
	if err := c.do(ctx, OpGetMobileIDs, req, &remap.MobileOrBroadcastTable, &result); err != nil {
		return nil, fmt.Errorf("idpsvc.GetMobileIDs: %w", err)
	}
	c.metrics.RecordItems(OpGetMobileIDs, len(result.Mobiles))
	logger.GetLogger(ctx).Debug("mobiles retrieved",
		slog.String("mailbox", mailbox.String()),
		slog.Int("count", len(result.Mobiles)))
	return &result, nil
}

func (c *idpGatewayClient) GetBroadcastIDs(ctx context.Context, mailbox models.Mailbox, opts ...CallOption) (*models.GetBroadcastGroupsResult, error) {
	if err := checkMailbox(mailbox); err != nil {
		return nil, fmt.Errorf("idpsvc.GetBroadcastIDs: %w", c.rejectInput(OpGetBroadcastIDs, err))
	}

	req := c.newMailboxRequest("idpsvc.GetBroadcastIDs", endpointGetBroadcastInfos, mailbox, opts)

	var result models.GetBroadcastGroupsResult
	if err := c.do(ctx, OpGetBroadcastIDs, req, &remap.MobileOrBroadcastTable, &result); err != nil {
		return nil, fmt.Errorf("idpsvc.GetBroadcastIDs: %w", err)
	}
	c.metrics.RecordItems(OpGetBroadcastIDs, len(result.BroadcastGroups))
	return &result, nil
}
