/*
Copyright (c) Facebook, Inc. and its affiliates.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package stats

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/facebook/wintime/systime"
)

// PrometheusExporter polls the system clock and serves the values on /metrics
type PrometheusExporter struct {
	registry   *prometheus.Registry
	source     systime.Source
	listenAddr string
	interval   time.Duration
}

// NewPrometheusExporter creates a new instance of PrometheusExporter
func NewPrometheusExporter(src systime.Source, listenAddr string, scrapeInterval time.Duration) *PrometheusExporter {
	return &PrometheusExporter{
		registry:   prometheus.NewRegistry(),
		source:     src,
		listenAddr: listenAddr,
		interval:   scrapeInterval,
	}
}

// Start runs the poller and the metrics HTTP server until ctx is done or
// either of them fails.
func (e *PrometheusExporter) Start(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(
		e.registry,
		promhttp.HandlerOpts{
			// Opt into OpenMetrics to support exemplars.
			EnableOpenMetrics: true,
		},
	))
	server := &http.Server{Addr: e.listenAddr, Handler: mux}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return server.ListenAndServe()
	})
	eg.Go(func() error {
		defer server.Close()
		ticker := time.NewTicker(e.interval)
		defer ticker.Stop()
		for {
			if err := e.scrape(); err != nil {
				log.Errorf("Failed to collect clock stats: %v", err)
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
			}
		}
	})
	return eg.Wait()
}

func (e *PrometheusExporter) scrape() error {
	snapshot, err := Collect(e.source)
	if err != nil {
		return err
	}
	for mkey, mval := range snapshot.Counters() {
		promCollector := prometheus.NewGauge(prometheus.GaugeOpts{
			Name: mkey,
			Help: mkey,
		})
		if err := e.registry.Register(promCollector); err != nil {
			are := &prometheus.AlreadyRegisteredError{}
			if errors.As(err, are) {
				promCollector = are.ExistingCollector.(prometheus.Gauge)
			} else {
				log.Errorf("failed to register metric %s %v", mkey, err)
				continue
			}
		}
		promCollector.Set(mval)
	}
	return nil
}
