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

package app

import (
	"github.com/YongxingMou/qualcomm-linux/internal/bootstrap"
	"github.com/YongxingMou/qualcomm-linux/pkg/config"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:     "run",
	Short:   "Decode the DRAM info and serve it until terminated",
	Aliases: []string{"start"},
	RunE:    run,
	Example: `
	# Map the SMEM region discovered from the device tree
	dramc run

	# Decode the items from a region dump
	dramc run --smem.source=image --smem.path=/tmp/smem.bin

	# Serve the API on the unix domain socket
	dramc run --api.transport=unix:///run/dramc.sock
	`,
}

var (
	// the run command config
	cfg = config.NewWithOpts(config.WithRun())
)

func init() {
	// initialize flags
	cfg.MustViperize(runCmd)
}

func run(cmd *cobra.Command, args []string) error {
	app, err := bootstrap.NewApp(cfg, bootstrap.WithSignals())
	if err != nil {
		return err
	}
	if err := app.Run(); err != nil {
		return err
	}
	app.Wait()
	return app.Shutdown()
}
