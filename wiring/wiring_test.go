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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isatdatapro/isatdatapro-api/clients/clientmocks"
	"github.com/isatdatapro/isatdatapro-api/clients/requests"
	"github.com/isatdatapro/isatdatapro-api/config"
	"github.com/isatdatapro/isatdatapro-api/utils"
)

func testConfig() *config.Config {
	return &config.Config{
		LogLevel: "INFO",
		Gateway:  config.GatewayConfig{Name: config.GatewayOrbcomm},
		HTTP: config.HTTPClientConfig{
			TimeoutSeconds:   5,
			RetryAttemptsMax: 2,
			RetryWaitMinMs:   100,
			RetryWaitMaxMs:   400,
		},
	}
}

func TestInitializeCLIParams(t *testing.T) {
	t.Run("Wires the gateway client without metrics", func(t *testing.T) {
		params, err := InitializeCLIParams(testConfig())
		require.NoError(t, err)
		assert.NotNil(t, params.GatewayClient)
		assert.NotNil(t, params.Logger)
		assert.NotNil(t, params.Registry)
		assert.Nil(t, params.Recorder)
	})

	t.Run("Registers metrics when enabled", func(t *testing.T) {
		cfg := testConfig()
		cfg.Metrics.Enabled = true

		params, err := InitializeCLIParams(cfg)
		require.NoError(t, err)
		require.NotNil(t, params.Recorder)

		families, err := params.Registry.Gather()
		require.NoError(t, err)
		assert.NotEmpty(t, families)
	})

	t.Run("Fails on an unknown gateway", func(t *testing.T) {
		cfg := testConfig()
		cfg.Gateway.Name = "iridium"

		_, err := InitializeCLIParams(cfg)
		assert.ErrorIs(t, err, utils.ErrUnknownGateway)
	})

	t.Run("Uses the mock client in tests", func(t *testing.T) {
		mock := &clientmocks.IdpGatewayClientMock{}

		params, err := InitializeTestCLIParamsWithClientMocks(testConfig(), TestClients{GatewayClient: mock})
		require.NoError(t, err)
		assert.Same(t, mock, params.GatewayClient)
	})
}

func TestProvideHTTPClient(t *testing.T) {
	client, ok := ProvideHTTPClient(*testConfig()).(*requests.RetryableHTTPClient)
	require.True(t, ok)

	cfg := client.Config()
	assert.Equal(t, 2, cfg.RetryAttemptsMax)
	assert.Equal(t, int64(100), cfg.RetryWaitMin.Milliseconds())
	assert.Equal(t, int64(400), cfg.RetryWaitMax.Milliseconds())
	assert.Equal(t, int64(5), int64(cfg.AttemptTimeout.Seconds()))
}
