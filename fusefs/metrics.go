//
// Copyright 2026 The psfs Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package fusefs

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
	log "github.com/sirupsen/logrus"
)

const (
	metricsPushJob      = "psfs"
	metricsPushInterval = 15 * time.Second

	metricLabelOp = "op"
)

var (
	metricsRegistry = prometheus.NewRegistry()

	fuseOperations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "psfs_fuse_operations_total",
		Help: "Count of FUSE operations handled, by operation",
	}, []string{metricLabelOp})
)

func init() {
	metricsRegistry.MustRegister(fuseOperations)
}

func observe(op string) {
	fuseOperations.WithLabelValues(op).Inc()
}

// StartMetricsPusher periodically pushes the operation counters to a
// Prometheus push gateway until ctx is done.
func StartMetricsPusher(ctx context.Context, gatewayUri string) {
	go runMetricsPusher(ctx, gatewayUri)
}

func runMetricsPusher(ctx context.Context, gatewayUri string) {
	log.WithField("uri", gatewayUri).Info("Pushing metrics to Prometheus gateway")
	defer log.Debug("Metrics pusher exiting")

	pusher := push.New(gatewayUri, metricsPushJob).Gatherer(metricsRegistry)

	ticker := time.NewTicker(metricsPushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := pusher.Push(); err != nil {
				log.WithFields(log.Fields{
					"err": err,
					"uri": gatewayUri,
				}).Warn("Failed to push metrics")
			}
		}
	}
}
