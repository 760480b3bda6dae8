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
	"net/http"
	"time"

	"github.com/isatdatapro/isatdatapro-api/clients/requests"
	"github.com/isatdatapro/isatdatapro-api/idptime"
	"github.com/isatdatapro/isatdatapro-api/logger"
	"github.com/isatdatapro/isatdatapro-api/models"
	"github.com/isatdatapro/isatdatapro-api/remap"
)

func (c *idpGatewayClient) newInfoRequest(name, endpoint string, opts []CallOption) *requests.HttpRequest {
	return &requests.HttpRequest{
		Name:   name,
		URL:    c.endpointURL(endpoint, opts),
		Method: http.MethodGet,
	}
}

// GetVersion returns the gateway software version
func (c *idpGatewayClient) GetVersion(ctx context.Context, opts ...CallOption) (string, error) {
	req := c.newInfoRequest("idpsvc.GetVersion", endpointVersion, opts)

	var version string
	if err := c.do(ctx, OpGetVersion, req, nil, &version); err != nil {
		return "", fmt.Errorf("idpsvc.GetVersion: %w", err)
	}
	return version, nil
}

// GetUTCTime returns the current gateway clock
func (c *idpGatewayClient) GetUTCTime(ctx context.Context, opts ...CallOption) (time.Time, error) {
	req := c.newInfoRequest("idpsvc.GetUTCTime", endpointUTCTime, opts)

	var raw string
	if err := c.do(ctx, OpGetUTCTime, req, nil, &raw); err != nil {
		return time.Time{}, fmt.Errorf("idpsvc.GetUTCTime: %w", err)
	}
	t, err := idptime.FromGatewayTime(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("idpsvc.GetUTCTime: %w", err)
	}
	return t, nil
}

// GetErrorDefinitions returns the gateway error catalog
func (c *idpGatewayClient) GetErrorDefinitions(ctx context.Context, opts ...CallOption) (models.ErrorCatalog, error) {
	req := c.newInfoRequest("idpsvc.GetErrorDefinitions", endpointErrors, opts)

	var catalog models.ErrorCatalog
	if err := c.do(ctx, OpGetErrorDefinitions, req, &remap.ErrorDefinitionTable, &catalog); err != nil {
		return nil, fmt.Errorf("idpsvc.GetErrorDefinitions: %w", err)
	}
	c.metrics.RecordItems(OpGetErrorDefinitions, len(catalog))
	logger.GetLogger(ctx).Debug("error definitions retrieved", slog.Int("count", len(catalog)))
	return catalog, nil
}

// GetErrorName looks errorID up in the gateway catalog.
// Unknown ids resolve to models.UndefinedErrorName.
func (c *idpGatewayClient) GetErrorName(ctx context.Context, errorID int, opts ...CallOption) (string, error) {
	catalog, err := c.GetErrorDefinitions(ctx, opts...)
	if err != nil {
		return "", fmt.Errorf("idpsvc.GetErrorName: %w", err)
	}
	return catalog.NameOf(errorID), nil
}
