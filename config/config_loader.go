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

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// Override adjusts the configuration read from the environment. Overrides run
// before validation.
type Override func(cfg *Config)

// Load reads the configuration from the environment, after loading the
// optional .env file named by ENV_FILE_PATH.
func Load(overrides ...Override) (*Config, error) {
	envFilePath := os.Getenv("ENV_FILE_PATH")
	if envFilePath != "" {
		if err := godotenv.Load(envFilePath); err != nil {
			return nil, fmt.Errorf("config.Load: %w", err)
		}
	}

	cfg := &Config{}
	r := &configReader{}
	cfg.PackageVersion = r.readOptionalString("IDPGW_VERSION", Version)
	cfg.LogLevel = r.readOptionalString("LOG_LEVEL", "INFO")
	cfg.AutoMaxProcsEnabled = r.readOptionalBool("AUTO_MAX_PROCS_ENABLED", true)

	cfg.Gateway = GatewayConfig{
		Name:             r.readOptionalString("IDP_GATEWAY", GatewayInmarsat),
		APIURL:           r.readOptionalString("IDP_API_URL", ""),
		SimulatorAddress: r.readOptionalString("IDP_SIMULATOR_ADDRESS", ""),
	}
	cfg.Mailbox = MailboxConfig{
		AccessID:      r.readOptionalString("IDP_ACCESS_ID", ""),
		Password:      r.readOptionalString("IDP_PASSWORD", ""),
		MailboxesFile: r.readOptionalString("IDP_MAILBOXES_FILE", ""),
	}

	// HTTP client configuration
	cfg.HTTP = HTTPClientConfig{
		TimeoutSeconds:   int(r.readOptionalInt64("HTTP_TIMEOUT_SECONDS", 30)),
		RetryAttemptsMax: int(r.readOptionalInt64("HTTP_RETRY_ATTEMPTS_MAX", 0)),
		RetryWaitMinMs:   int(r.readOptionalInt64("HTTP_RETRY_WAIT_MIN_MS", 500)),
		RetryWaitMaxMs:   int(r.readOptionalInt64("HTTP_RETRY_WAIT_MAX_MS", 5000)),
	}

	cfg.Metrics = MetricsConfig{
		Enabled: r.readOptionalBool("METRICS_ENABLED", false),
		Address: r.readOptionalString("METRICS_ADDRESS", ":9090"),
	}

	for _, override := range overrides {
		override(cfg)
	}

	validateGatewayConfig(cfg, r)
	validateHTTPClientConfig(cfg, r)

	if err := r.err(); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	slog.Debug("configReader: configs loaded", slog.String("gateway", cfg.Gateway.Name))
	return cfg, nil
}

func validateGatewayConfig(cfg *Config, r *configReader) {
	if _, err := cfg.Gateway.BaseURL(); err != nil {
		r.errors = append(r.errors, err)
	}
	if (cfg.Mailbox.AccessID == "") != (cfg.Mailbox.Password == "") {
		r.errors = append(r.errors, fmt.Errorf("IDP_ACCESS_ID and IDP_PASSWORD must be set together"))
	}
}

func validateHTTPClientConfig(cfg *Config, r *configReader) {
	if cfg.HTTP.TimeoutSeconds <= 0 {
		r.errors = append(r.errors, fmt.Errorf("HTTP_TIMEOUT_SECONDS must be greater than 0, got %d", cfg.HTTP.TimeoutSeconds))
	}
	if cfg.HTTP.RetryAttemptsMax < 0 {
		r.errors = append(r.errors, fmt.Errorf("HTTP_RETRY_ATTEMPTS_MAX must not be negative, got %d", cfg.HTTP.RetryAttemptsMax))
	}
	if cfg.HTTP.RetryWaitMinMs <= 0 {
		r.errors = append(r.errors, fmt.Errorf("HTTP_RETRY_WAIT_MIN_MS must be greater than 0, got %d", cfg.HTTP.RetryWaitMinMs))
	}
	if cfg.HTTP.RetryWaitMinMs > cfg.HTTP.RetryWaitMaxMs {
		r.errors = append(r.errors, fmt.Errorf("HTTP_RETRY_WAIT_MIN_MS (%d) must be <= HTTP_RETRY_WAIT_MAX_MS (%d)",
			cfg.HTTP.RetryWaitMinMs, cfg.HTTP.RetryWaitMaxMs))
	}
}
