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

package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/isatdatapro/isatdatapro-api/clients/idpsvc"
	"github.com/isatdatapro/isatdatapro-api/idptime"
	"github.com/isatdatapro/isatdatapro-api/logger"
	"github.com/isatdatapro/isatdatapro-api/metrics"
	"github.com/isatdatapro/isatdatapro-api/models"
)

func (a *app) newPollCmd() *cobra.Command {
	var (
		interval    time.Duration
		since       time.Duration
		fromID      int64
		maxPolls    int
		metricsAddr string
	)

	cmd := &cobra.Command{
		Use:   "poll",
		Short: "Poll a mailbox for return messages and print them as JSON lines",
		Long: `Poll retrieves return messages repeatedly, following the NextStartID high water
mark. Pages flagged with more are fetched immediately while the mark advances. With METRICS_ENABLED the
gateway metrics are served on /metrics while polling.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mailbox, err := a.mailbox()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if a.params.Config.Metrics.Enabled {
				if !cmd.Flags().Changed("metrics-addr") {
					metricsAddr = a.params.Config.Metrics.Address
				}
				shutdown := serveMetrics(metricsAddr, a.params.Registry)
				defer shutdown()
			}

			filter := models.ReturnMessageFilter{StartTime: time.Now().UTC().Add(-since)}
			if cmd.Flags().Changed("from-id") {
				filter.StartMessageID = &fromID
			}

			p := &poller{
				client:   a.params.GatewayClient,
				mailbox:  mailbox,
				interval: interval,
				out:      cmd.OutOrStdout(),
			}
			return p.run(ctx, filter, maxPolls)
		},
	}
	cmd.Flags().DurationVar(&interval, "interval", time.Minute, "wait between polls when no more messages are pending")
	cmd.Flags().DurationVar(&since, "since", defaultLookback, "initial retrieval window")
	cmd.Flags().Int64Var(&fromID, "from-id", 0, "start after this message id instead of --since")
	cmd.Flags().IntVar(&maxPolls, "max-polls", 0, "stop after this many requests (0 polls until interrupted)")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", ":9090", "listen address for /metrics, overrides METRICS_ADDRESS")
	return cmd
}

type poller struct {
	client   idpsvc.IdpGatewayClient
	mailbox  models.Mailbox
	interval time.Duration
	out      io.Writer
}

// run polls until ctx is done or maxPolls requests were sent. Failed polls are
// logged and retried after the interval with the same high water mark.
func (p *poller) run(ctx context.Context, filter models.ReturnMessageFilter, maxPolls int) error {
	log := logger.GetLogger(ctx).With(slog.String("mailbox", p.mailbox.String()))
	encoder := json.NewEncoder(p.out)

	for polls := 0; maxPolls == 0 || polls < maxPolls; polls++ {
		result, err := p.client.GetReturnMessages(ctx, p.mailbox, filter)
		switch {
		case err != nil:
			if ctx.Err() != nil {
				return nil
			}
			log.Warn("poll failed", slog.String("error", err.Error()))
		case result.Failed():
			log.Warn("gateway rejected poll", slog.Int("errorId", result.ErrorID))
		default:
			for _, message := range result.Messages {
				if err := encoder.Encode(message); err != nil {
					return err
				}
			}
			advanced := advance(&filter, result)
			log.Debug("poll complete", slog.Int("count", len(result.Messages)), slog.Bool("more", result.More))
			if result.More && advanced {
				continue
			}
		}

		if maxPolls != 0 && polls+1 >= maxPolls {
			break
		}
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(p.interval):
		}
	}
	return nil
}

// advance moves filter past result and reports whether the high water mark
// moved. NextStartID is preferred; NextStartTimeUTC is used only while
// polling by time.
func advance(filter *models.ReturnMessageFilter, result *models.GetReturnMessagesResult) bool {
	if result.NextStartID > 0 {
		if filter.StartMessageID != nil && *filter.StartMessageID == result.NextStartID {
			return false
		}
		next := result.NextStartID
		filter.StartMessageID = &next
		return true
	}
	if filter.StartMessageID != nil || result.NextStartTimeUTC == "" {
		return false
	}
	next, err := time.Parse(idptime.ISOLayout, result.NextStartTimeUTC)
	if err != nil || !next.After(filter.StartTime) {
		return false
	}
	filter.StartTime = next
	return true
}

// serveMetrics serves reg on addr/metrics and returns a function that stops the server
func serveMetrics(addr string, reg *prometheus.Registry) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(reg))
	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("metrics server is running", slog.String("address", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("metrics server failed", slog.String("error", err.Error()))
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("metrics server forced shutdown after timeout", slog.String("error", err.Error()))
		}
	}
}
