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

// Package cmd implements the idpgw command line tool. Results are written to
// stdout as JSON; logs go to stderr.
package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/isatdatapro/isatdatapro-api/config"
	"github.com/isatdatapro/isatdatapro-api/logger"
	"github.com/isatdatapro/isatdatapro-api/models"
	"github.com/isatdatapro/isatdatapro-api/wiring"
)

// offlineAnnotation marks commands that never contact the gateway
const offlineAnnotation = "offline"

type paramsInitializer func(cfg *config.Config) (*wiring.CLIParams, error)

type app struct {
	initParams paramsInitializer
	params     *wiring.CLIParams

	mailboxName string
	logLevel    string
	apiURL      string
}

// Execute runs the idpgw command line
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the idpgw command tree
func NewRootCommand() *cobra.Command {
	return newRootCommand(wiring.InitializeCLIParams)
}

func newRootCommand(initParams paramsInitializer) *cobra.Command {
	a := &app{initParams: initParams}

	rootCmd := &cobra.Command{
		Use:               "idpgw",
		Short:             "IsatData Pro gateway client",
		Long:              `idpgw talks to an IsatData Pro message gateway: it retrieves return messages, submits and tracks forward messages, and lists mobiles.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	rootCmd.PersistentFlags().StringVar(&a.mailboxName, "mailbox", "", "mailbox name from IDP_MAILBOXES_FILE (default: IDP_ACCESS_ID/IDP_PASSWORD)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (DEBUG, INFO, WARN, ERROR), overrides LOG_LEVEL")
	rootCmd.PersistentFlags().StringVar(&a.apiURL, "api-url", "", "gateway base URL, overrides IDP_GATEWAY and IDP_API_URL")

	rootCmd.AddCommand(
		a.newVersionCmd(),
		a.newTimeCmd(),
		a.newErrorsCmd(),
		a.newErrorNameCmd(),
		a.newReturnMessagesCmd(),
		a.newSubmitCmd(),
		a.newForwardMessagesCmd(),
		a.newForwardStatusesCmd(),
		a.newCancelCmd(),
		a.newMobilesCmd(),
		a.newBroadcastsCmd(),
		a.newPollCmd(),
		newConvertTimeCmd(),
		newWakeupCmd(),
		newStateCmd(),
	)
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if cmd.Annotations[offlineAnnotation] == "true" {
		return nil
	}

	cfg, err := config.Load(a.flagOverrides)
	if err != nil {
		return err
	}

	logger.Setup(cfg.LogLevel, cmd.ErrOrStderr())

	if cfg.AutoMaxProcsEnabled {
		if _, err := maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			// Convert printf-style format string to plain message for structured logging
			slog.Debug(fmt.Sprintf(format, args...))
		})); err != nil {
			return fmt.Errorf("failed to set maxprocs: %w", err)
		}
	}

	params, err := a.initParams(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	a.params = params
	return nil
}

// flagOverrides applies the persistent flags on top of the environment
func (a *app) flagOverrides(cfg *config.Config) {
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if a.apiURL != "" {
		cfg.Gateway.APIURL = a.apiURL
	}
}

func (a *app) mailbox() (models.Mailbox, error) {
	return a.params.Config.ResolveMailbox(a.mailboxName)
}

func writeJSON(cmd *cobra.Command, v any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
