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

package wiring

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/isatdatapro/isatdatapro-api/clients/idpsvc"
	"github.com/isatdatapro/isatdatapro-api/config"
	"github.com/isatdatapro/isatdatapro-api/metrics"
)

// CLIParams contains all wired dependencies of the command line tool
type CLIParams struct {
	Config config.Config
	Logger *slog.Logger

	// Clients
	GatewayClient idpsvc.IdpGatewayClient

	// Metrics; Recorder is nil when metrics are disabled
	Registry *prometheus.Registry
	Recorder *metrics.Recorder
}

// TestClients contains the mock clients needed for testing
type TestClients struct {
	GatewayClient idpsvc.IdpGatewayClient
}

func ProvideConfigFromPtr(config *config.Config) config.Config {
	return *config
}
