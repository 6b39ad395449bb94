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
	"fmt"
	"os"

	"github.com/YongxingMou/qualcomm-linux/internal/bootstrap"
	"github.com/YongxingMou/qualcomm-linux/pkg/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective config",
	RunE:  printConfig,
}

var configConfig = config.NewWithOpts(config.WithRun())

func init() {
	configConfig.MustViperize(configCmd)
}

func printConfig(cmd *cobra.Command, args []string) error {
	if err := bootstrap.InitConfigAndLogger(configConfig); err != nil {
		return err
	}
	_, err := fmt.Fprintln(os.Stdout, configConfig.Print())
	return err
}
