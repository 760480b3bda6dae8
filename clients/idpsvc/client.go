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

// Package idpsvc is the client for the IsatData Pro gateway REST API (v1).
//
// Responses are renamed into the normalized vocabulary by the remap package
// and decoded into models types. A non-zero ErrorID in a successful response
// is returned as data; callers check Failed() on the result.
package idpsvc

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/isatdatapro/isatdatapro-api/clients/requests"
	"github.com/isatdatapro/isatdatapro-api/logger"
	"github.com/isatdatapro/isatdatapro-api/metrics"
	"github.com/isatdatapro/isatdatapro-api/models"
	"github.com/isatdatapro/isatdatapro-api/remap"
	"github.com/isatdatapro/isatdatapro-api/utils"
)

// Gateway endpoints, relative to the base URL
const (
	endpointVersion            = "info_version.json/"
	endpointUTCTime            = "info_utc_time.json/"
	endpointErrors             = "info_errors.json/"
	endpointGetReturnMessages  = "get_return_messages.json/"
	endpointSubmitMessages     = "submit_messages.json/"
	endpointGetForwardMessages = "get_forward_messages.json/"
	endpointGetForwardStatuses = "get_forward_statuses.json/"
	endpointCancelMessages     = "submit_cancelations.json/"
	endpointGetMobiles         = "get_mobiles_paged.json/"
	endpointGetBroadcastInfos  = "get_broadcast_infos.json/"
)

// Operation names used for logs and metrics
const (
	OpGetVersion            = "get_version"
	OpGetUTCTime            = "get_utc_time"
	OpGetErrorDefinitions   = "get_error_definitions"
	OpGetReturnMessages     = "get_return_messages"
	OpSubmitForwardMessages = "submit_forward_messages"
	OpGetForwardMessages    = "get_forward_messages"
	OpGetForwardStatuses    = "get_forward_statuses"
	OpCancelForwardMessages = "cancel_forward_messages"
	OpGetMobileIDs          = "get_mobile_ids"
	OpGetBroadcastIDs       = "get_broadcast_ids"
)

//go:generate moq -rm -fmt goimports -skip-ensure -pkg clientmocks -out ../clientmocks/idp_gateway_client_fake.go . IdpGatewayClient:IdpGatewayClientMock

type IdpGatewayClient interface {
	GetVersion(ctx context.Context, opts ...CallOption) (string, error)
	GetUTCTime(ctx context.Context, opts ...CallOption) (time.Time, error)
	GetErrorDefinitions(ctx context.Context, opts ...CallOption) (models.ErrorCatalog, error)
	GetErrorName(ctx context.Context, errorID int, opts ...CallOption) (string, error)
	GetReturnMessages(ctx context.Context, mailbox models.Mailbox, filter models.ReturnMessageFilter, opts ...CallOption) (*models.GetReturnMessagesResult, error)
	SubmitForwardMessages(ctx context.Context, mailbox models.Mailbox, messages []models.ForwardMessage, opts ...CallOption) (*models.SubmissionResult, error)
	GetForwardMessages(ctx context.Context, mailbox models.Mailbox, ids []int64, opts ...CallOption) (*models.GetForwardMessagesResult, error)
	GetForwardStatuses(ctx context.Context, mailbox models.Mailbox, filter models.ForwardStatusFilter, opts ...CallOption) (*models.GetForwardStatusesResult, error)
	CancelForwardMessages(ctx context.Context, mailbox models.Mailbox, ids []int64, opts ...CallOption) (*models.SubmissionResult, error)
	GetMobileIDs(ctx context.Context, mailbox models.Mailbox, filter models.MobileFilter, opts ...CallOption) (*models.GetMobilesResult, error)
	GetBroadcastIDs(ctx context.Context, mailbox models.Mailbox, opts ...CallOption) (*models.GetBroadcastGroupsResult, error)
}

// Config holds the client settings
type Config struct {
	// BaseURL is used unless a call passes WithBaseURL
	BaseURL string
}

type callOptions struct {
	baseURL string
}

// CallOption adjusts a single gateway call
type CallOption func(*callOptions)

// WithBaseURL sends one call to a different gateway
func WithBaseURL(baseURL string) CallOption {
	return func(o *callOptions) {
		o.baseURL = baseURL
	}
}

type idpGatewayClient struct {
	baseURL    string
	httpClient requests.HttpClient
	metrics    *metrics.Recorder
}

// NewIdpGatewayClient creates a gateway client. A nil httpClient sends
// requests with http.DefaultClient; a nil recorder disables metrics.
func NewIdpGatewayClient(cfg Config, httpClient requests.HttpClient, recorder *metrics.Recorder) IdpGatewayClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &idpGatewayClient{
		baseURL:    cfg.BaseURL,
		httpClient: httpClient,
		metrics:    recorder,
	}
}

func (c *idpGatewayClient) endpointURL(endpoint string, opts []CallOption) string {
	o := callOptions{baseURL: c.baseURL}
	for _, opt := range opts {
		opt(&o)
	}
	base := o.baseURL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + endpoint
}

// newMailboxRequest creates a GET request whose first two parameters are the mailbox credentials
func (c *idpGatewayClient) newMailboxRequest(name, endpoint string, mailbox models.Mailbox, opts []CallOption) *requests.HttpRequest {
	return (&requests.HttpRequest{
		Name:   name,
		URL:    c.endpointURL(endpoint, opts),
		Method: http.MethodGet,
	}).
		SetQuery("access_id", mailbox.AccessID).
		SetQuery("password", mailbox.Password)
}

func (c *idpGatewayClient) newPostRequest(name, endpoint string, opts []CallOption) *requests.HttpRequest {
	return &requests.HttpRequest{
		Name:   name,
		URL:    c.endpointURL(endpoint, opts),
		Method: http.MethodPost,
	}
}

type statusCarrier interface {
	Status() models.GatewayStatus
}

// do sends req and decodes a 200 response into out. With a table the body is
// remapped first; without one it is decoded as is.
func (c *idpGatewayClient) do(ctx context.Context, op string, req *requests.HttpRequest, table *remap.Table, out any) error {
	start := time.Now()
	outcome := metrics.OutcomeSuccess
	defer func() {
		c.metrics.ObserveRequest(op, outcome, time.Since(start))
	}()

	body, err := requests.SendRequest(ctx, c.httpClient, req).Body(http.StatusOK)
	if err != nil {
		outcome = metrics.OutcomeTransportError
		return err
	}

	if err := decodeBody(body, table, out); err != nil {
		outcome = metrics.OutcomeDecodeError
		return err
	}

	if s, ok := out.(statusCarrier); ok && s.Status().Failed() {
		outcome = metrics.OutcomeGatewayError
		c.metrics.RecordGatewayError(op, s.Status().ErrorID)
		logger.GetLogger(ctx).Warn("gateway reported an error",
			slog.String("operation", op),
			slog.Int("errorId", s.Status().ErrorID))
	}
	return nil
}

func decodeBody(body []byte, table *remap.Table, out any) error {
	if table == nil {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("%w: %w", remap.ErrDecode, err)
		}
		return nil
	}
	normalized, err := remap.RemapJSON(body, *table)
	if err != nil {
		return err
	}
	return remap.Decode(normalized, out)
}

func (c *idpGatewayClient) rejectInput(op string, err error) error {
	c.metrics.ObserveRequest(op, metrics.OutcomeInvalidInput, 0)
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", utils.ErrInvalidInput, err)
}

func checkMailbox(mailbox models.Mailbox) error {
	if !mailbox.IsComplete() {
		return utils.ErrMissingCredentials
	}
	return nil
}
