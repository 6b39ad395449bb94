/*
 * Copyright 2019-2020 by Nedim Sabic Sabic
 * https://www.fibratus.io
 * All Rights Reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package bootstrap

import (
	"os"

	"github.com/YongxingMou/qualcomm-linux/pkg/api"
	"github.com/YongxingMou/qualcomm-linux/pkg/config"
	"github.com/YongxingMou/qualcomm-linux/pkg/dram"
	kerrors "github.com/YongxingMou/qualcomm-linux/pkg/errors"
	"github.com/YongxingMou/qualcomm-linux/pkg/smem"
	"github.com/YongxingMou/qualcomm-linux/pkg/util/signals"
	"github.com/YongxingMou/qualcomm-linux/pkg/util/version"
	log "github.com/sirupsen/logrus"
)

// App decodes the DRAM info once at startup, publishes it and serves it
// over the API until a termination signal arrives.
type App struct {
	config  *config.Config
	open    func(config.SMEMConfig) (smem.Provider, error)
	info    *dram.Info
	signals chan struct{}
}

// Option enables changing the behaviour of the bootstrap application.
type Option func(*opts)

type opts struct {
	installSignals bool
	provider       smem.Provider
}

// WithSignals installs signal handlers.
func WithSignals() Option {
	return func(o *opts) {
		o.installSignals = true
	}
}

// WithProvider overrides the SMEM provider derived from the configuration.
func WithProvider(p smem.Provider) Option {
	return func(o *opts) {
		o.provider = p
	}
}

// NewApp constructs a new bootstrap application with the specified configuration
// and a list of options. The configuration is passed from individual command work
// functions.
func NewApp(cfg *config.Config, options ...Option) (*App, error) {
	if err := InitConfigAndLogger(cfg); err != nil {
		return nil, err
	}
	var opts opts
	for _, opt := range options {
		opt(&opts)
	}
	app := &App{
		config: cfg,
		open:   OpenProvider,
	}
	if opts.provider != nil {
		p := opts.provider
		app.open = func(config.SMEMConfig) (smem.Provider, error) { return p, nil }
	}
	if opts.installSignals {
		app.signals = signals.Install()
	}
	return app, nil
}

// Run builds the DRAM info and starts the API server. Failing to build the
// DRAM info doesn't prevent the server from starting, in which case the
// queries report the data is not available.
func (f *App) Run() error {
	cfg := f.config

	log.Infof("bootstrapping with pid %d. Version: %s", os.Getpid(), version.Get())
	log.Infof("configuration dump %s", cfg.Print())

	f.info = f.buildInfo()

	return api.StartServer(cfg)
}

// Info returns the DRAM info built during Run.
func (f *App) Info() *dram.Info { return f.info }

func (f *App) buildInfo() *dram.Info {
	p, err := f.open(f.config.SMEM)
	if err != nil {
		if kerrors.IsAllocation(err) {
			log.Errorf("unable to allocate smem region: %v", err)
		} else {
			log.Warnf("unable to open %s smem source: %v", f.config.SMEM.Source, err)
		}
		return nil
	}
	defer func() {
		if err := p.Close(); err != nil {
			log.Warnf("unable to close smem provider: %v", err)
		}
	}()
	info, err := dram.Init(p)
	switch {
	case err == nil:
		return info
	case kerrors.IsNoData(err):
		log.Info("DRAM info is not available on this platform")
	case kerrors.IsUnsupportedFormat(err):
		// already reported by the decoder
	default:
		log.Errorf("unable to build DRAM info: %v", err)
	}
	return nil
}

// Wait waits for the app to receive the termination signal.
func (f *App) Wait() {
	if f.signals != nil {
		<-f.signals
	}
}

// Shutdown stops the API server and invalidates the published DRAM info.
func (f *App) Shutdown() error {
	err := api.CloseServer()
	dram.Teardown()
	f.info = nil
	return err
}
