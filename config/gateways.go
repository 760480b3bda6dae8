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
	"strings"

	"github.com/isatdatapro/isatdatapro-api/utils"
)

// Gateway presets
const (
	GatewayInmarsat  = "inmarsat"
	GatewayOrbcomm   = "orbcomm"
	GatewaySimulator = "simulator"
)

const (
	InmarsatBaseURL = "https://api.inmarsat.com/v1/idp/gateway/rest/"
	OrbcommBaseURL  = "https://isatdatapro.skywave.com/GLGW/GWServices_v1/RestMessages.svc/"

	simulatorPort = 8080
	simulatorPath = "/GLGW/GWServices_v1/RestMessages.svc/"
)

// SimulatorBaseURL returns the REST root of a modem simulator running on host
func SimulatorBaseURL(host string) string {
	return fmt.Sprintf("http://%s:%d%s", host, simulatorPort, simulatorPath)
}

// BaseURL resolves the gateway base URL. APIURL wins over the preset.
func (g GatewayConfig) BaseURL() (string, error) {
	if g.APIURL != "" {
		return g.APIURL, nil
	}
	switch strings.ToLower(g.Name) {
	case GatewayInmarsat, "":
		return InmarsatBaseURL, nil
	case GatewayOrbcomm:
		return OrbcommBaseURL, nil
	case GatewaySimulator:
		if g.SimulatorAddress == "" {
			return "", fmt.Errorf("%w: IDP_SIMULATOR_ADDRESS is required for the simulator gateway", utils.ErrUnknownGateway)
		}
		return SimulatorBaseURL(g.SimulatorAddress), nil
	default:
		return "", fmt.Errorf("%w: %q", utils.ErrUnknownGateway, g.Name)
	}
}
