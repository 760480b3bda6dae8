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

// Package metrics instruments gateway operations with Prometheus collectors.
// A nil *Recorder is valid and records nothing.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "idpgw"
	subsystem = "gateway"
)

// Outcome labels for a finished gateway operation
const (
	OutcomeSuccess        = "success"
	OutcomeGatewayError   = "gateway_error"
	OutcomeTransportError = "transport_error"
	OutcomeDecodeError    = "decode_error"
	OutcomeInvalidInput   = "invalid_input"
)

// Recorder holds Prometheus metrics for gateway operations
type Recorder struct {
	requestsTotal   *prometheus.CounterVec   // By operation and outcome
	requestDuration *prometheus.HistogramVec // By operation
	gatewayErrors   *prometheus.CounterVec   // By operation and error_id
	itemsTotal      *prometheus.CounterVec   // By operation - messages, statuses, mobiles
}

// NewRecorder creates and registers the collectors with reg.
// A nil reg disables metrics and returns a nil Recorder.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	if reg == nil {
		return nil, nil // Metrics disabled
	}

	r := &Recorder{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "requests_total",
			Help:      "Total number of gateway operations by outcome",
		}, []string{"operation", "outcome"}),

		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "request_duration_seconds",
			Help:      "Gateway operation duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"operation"}),

		gatewayErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "application_errors_total",
			Help:      "Total number of non-zero ErrorID values returned by the gateway",
		}, []string{"operation", "error_id"}),

		itemsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "items_total",
			Help:      "Total number of records returned or submitted",
		}, []string{"operation"}),
	}

	for _, c := range []prometheus.Collector{r.requestsTotal, r.requestDuration, r.gatewayErrors, r.itemsTotal} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// ObserveRequest records a finished operation
func (r *Recorder) ObserveRequest(operation, outcome string, duration time.Duration) {
	if r == nil {
		return
	}

	r.requestsTotal.WithLabelValues(operation, outcome).Inc()
	r.requestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordGatewayError records an application error code reported in a 200 response
func (r *Recorder) RecordGatewayError(operation string, errorID int) {
	if r == nil {
		return
	}

	r.gatewayErrors.WithLabelValues(operation, strconv.Itoa(errorID)).Inc()
}

func (r *Recorder) RecordItems(operation string, n int) {
	if r == nil || n <= 0 {
		return
	}

	r.itemsTotal.WithLabelValues(operation).Add(float64(n))
}

// Handler exposes the metrics gathered by g
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}
