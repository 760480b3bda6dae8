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
	"strconv"
	"strings"
	"time"

	"github.com/isatdatapro/isatdatapro-api/clients/requests"
	"github.com/isatdatapro/isatdatapro-api/idptime"
	"github.com/isatdatapro/isatdatapro-api/models"
	"github.com/isatdatapro/isatdatapro-api/utils"
)

func setTimeQuery(req *requests.HttpRequest, key string, t time.Time) error {
	value, err := idptime.ToGatewayTime(t)
	if err != nil {
		return err
	}
	req.SetQuery(key, value)
	return nil
}

func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}

// applyReturnMessageFilter adds the filter parameters after the credentials.
// A start message id takes precedence over a start time.
func applyReturnMessageFilter(req *requests.HttpRequest, filter models.ReturnMessageFilter) error {
	req.SetQuery("include_raw_payload", strconv.FormatBool(!filter.OmitRawPayload)).
		SetQuery("include_type", strconv.FormatBool(!filter.OmitFieldType))

	switch {
	case filter.StartMessageID != nil:
		req.SetQuery("from_id", strconv.FormatInt(*filter.StartMessageID, 10))
	case !filter.StartTime.IsZero():
		if err := setTimeQuery(req, "start_utc", filter.StartTime); err != nil {
			return err
		}
	default:
		return utils.ErrMissingFilter
	}

	if !filter.EndTime.IsZero() {
		if err := setTimeQuery(req, "end_utc", filter.EndTime); err != nil {
			return err
		}
	}
	if filter.MobileID != "" {
		req.SetQuery("mobile_id", filter.MobileID)
	}
	return nil
}

func applyForwardStatusFilter(req *requests.HttpRequest, filter models.ForwardStatusFilter) error {
	if len(filter.IDs) == 0 && filter.StartTime.IsZero() {
		return utils.ErrMissingFilter
	}
	if len(filter.IDs) > 0 {
		req.SetQuery("fwIDs", joinIDs(filter.IDs))
	}
	if !filter.StartTime.IsZero() {
		if err := setTimeQuery(req, "start_utc", filter.StartTime); err != nil {
			return err
		}
	}
	if !filter.EndTime.IsZero() {
		if err := setTimeQuery(req, "end_utc", filter.EndTime); err != nil {
			return err
		}
	}
	return nil
}

func applyMobileFilter(req *requests.HttpRequest, filter models.MobileFilter) {
	pageSize := filter.PageSize
	if pageSize < 1 || pageSize > models.MaxMobilesPageSize {
		pageSize = models.DefaultMobilesPageSize
	}
	req.SetQuery("page_size", strconv.Itoa(pageSize))
	if filter.SinceMobileID != "" {
		req.SetQuery("since_mobile", filter.SinceMobileID)
	}
}
