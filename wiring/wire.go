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

//go:build wireinject
// +build wireinject

package wiring

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/isatdatapro/isatdatapro-api/clients/idpsvc"
	"github.com/isatdatapro/isatdatapro-api/clients/requests"
	"github.com/isatdatapro/isatdatapro-api/config"
	"github.com/isatdatapro/isatdatapro-api/metrics"
)

var configProviderSet = wire.NewSet(
	ProvideConfigFromPtr,
)

var loggerProviderSet = wire.NewSet(
	ProvideLogger,
)

var metricsProviderSet = wire.NewSet(
	ProvideRegistry,
	ProvideRecorder,
)

var clientProviderSet = wire.NewSet(
	ProvideHTTPClient,
	ProvideGatewayClient,
)

var testClientProviderSet = wire.NewSet(
	ProvideTestGatewayClient,
)

// ProvideLogger provides the configured slog.Logger instance
func ProvideLogger() *slog.Logger {
	return slog.Default()
}

// ProvideRegistry creates the registry served on /metrics, with runtime collectors
func ProvideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// ProvideRecorder registers the gateway metrics when METRICS_ENABLED is set
func ProvideRecorder(cfg config.Config, reg *prometheus.Registry) (*metrics.Recorder, error) {
	if !cfg.Metrics.Enabled {
		return nil, nil
	}
	return metrics.NewRecorder(reg)
}

// ProvideHTTPClient creates the transport. With HTTP_RETRY_ATTEMPTS_MAX=0 each request is sent once.
func ProvideHTTPClient(cfg config.Config) requests.HttpClient {
	timeout := time.Duration(cfg.HTTP.TimeoutSeconds) * time.Second
	return requests.NewRetryableHTTPClient(&http.Client{Timeout: timeout}, requests.RequestRetryConfig{
		RetryWaitMin:     time.Duration(cfg.HTTP.RetryWaitMinMs) * time.Millisecond,
		RetryWaitMax:     time.Duration(cfg.HTTP.RetryWaitMaxMs) * time.Millisecond,
		RetryAttemptsMax: cfg.HTTP.RetryAttemptsMax,
		AttemptTimeout:   timeout,
	})
}

// ProvideGatewayClient creates the gateway client for the configured gateway
func ProvideGatewayClient(cfg config.Config, httpClient requests.HttpClient, recorder *metrics.Recorder) (idpsvc.IdpGatewayClient, error) {
	baseURL, err := cfg.Gateway.BaseURL()
	if err != nil {
		return nil, err
	}
	return idpsvc.NewIdpGatewayClient(idpsvc.Config{BaseURL: baseURL}, httpClient, recorder), nil
}

// ProvideTestGatewayClient extracts the gateway client from TestClients
func ProvideTestGatewayClient(testClients TestClients) idpsvc.IdpGatewayClient {
	return testClients.GatewayClient
}

func InitializeCLIParams(cfg *config.Config) (*CLIParams, error) {
	wire.Build(
		configProviderSet,
		loggerProviderSet,
		metricsProviderSet,
		clientProviderSet,
		wire.Struct(new(CLIParams), "*"),
	)
	return &CLIParams{}, nil
}

func InitializeTestCLIParamsWithClientMocks(cfg *config.Config, testClients TestClients) (*CLIParams, error) {
	wire.Build(
		configProviderSet,
		loggerProviderSet,
		metricsProviderSet,
		testClientProviderSet,
		wire.Struct(new(CLIParams), "*"),
	)
	return &CLIParams{}, nil
}
