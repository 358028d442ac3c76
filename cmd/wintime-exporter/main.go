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

package main

import (
	"context"
	"flag"
	"net/http"
	"time"

	_ "net/http/pprof"

	log "github.com/sirupsen/logrus"

	"github.com/facebook/wintime/stats"
	"github.com/facebook/wintime/systime"
)

func main() {
	var (
		verboseFlag    bool
		configFlag     string
		listenAddrFlag string
		intervalFlag   time.Duration
		pprofFlag      string
	)

	flag.BoolVar(&verboseFlag, "verbose", false, "verbose output")
	flag.StringVar(&configFlag, "config", "", "path to yaml config, overrides listenaddr and interval flags")
	flag.StringVar(&listenAddrFlag, "listenaddr", ":6942", "address prometheus metrics http server is listening on")
	flag.DurationVar(&intervalFlag, "interval", time.Second, "how often to read the system clock")
	flag.StringVar(&pprofFlag, "pprof", "", "Address to have the profiler listen on, disabled if empty.")

	flag.Parse()

	log.SetLevel(log.InfoLevel)
	if verboseFlag {
		log.SetLevel(log.DebugLevel)
	}
	if pprofFlag != "" {
		go func() {
			err := http.ListenAndServe(pprofFlag, nil)
			if err != nil {
				log.Errorf("Failed to start pprof. Err: %v", err)
			}
		}()
	}

	listenAddr := listenAddrFlag
	interval := intervalFlag
	if configFlag != "" {
		c, err := stats.ReadConfig(configFlag)
		if err != nil {
			log.Fatalf("Failed to read config %q: %v", configFlag, err)
		}
		listenAddr = c.ListenAddr
		interval = c.Interval
	}

	exporter := stats.NewPrometheusExporter(systime.OSSource(), listenAddr, interval)
	log.Fatal(exporter.Start(context.Background()))
}
