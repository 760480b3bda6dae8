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

package config

// Version is set at build time with -ldflags "-X ...config.Version=..."
var Version = "dev"

// Config holds all configuration for the application
type Config struct {
	PackageVersion      string
	LogLevel            string
	AutoMaxProcsEnabled bool

	Gateway GatewayConfig
	// Mailbox holds the default credentials, used when no mailbox is named
	Mailbox MailboxConfig
	HTTP    HTTPClientConfig
	Metrics MetricsConfig
}

type GatewayConfig struct {
	// Name selects a preset: inmarsat, orbcomm or simulator
	Name string
	// APIURL overrides the preset base URL when set
	APIURL string
	// SimulatorAddress is the host of a modem simulator, used by the simulator preset
	SimulatorAddress string
}

type MailboxConfig struct {
	AccessID string
	Password string
	// MailboxesFile is an optional YAML list of named mailboxes
	MailboxesFile string
}

// HTTPClientConfig configures the outbound transport.
// RetryAttemptsMax of 0 sends every request exactly once.
type HTTPClientConfig struct {
	TimeoutSeconds   int
	RetryAttemptsMax int
	RetryWaitMinMs   int
	RetryWaitMaxMs   int
}

type MetricsConfig struct {
	Enabled bool
	// Address is where the poll command serves /metrics
	Address string
}
