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
	"errors"
	"runtime"

	"github.com/spf13/cobra"
)

// RootCmd is the entrance to dramc CLI
var RootCmd = &cobra.Command{
	Use:   "dramc",
	Short: "DRAM configuration decoder for Qualcomm platforms",
	Long: `
	dramc decodes the DRAM info record the boot firmware leaves in the shared
	memory (SMEM) region. It publishes the supported DDR frequencies and the
	highest bank address bit to the memory-aware subsystems through a local API,
	and lets you inspect every field of the record.
	`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "run" && runtime.GOOS != "linux" {
			return errors.New("dramc can only serve DRAM info on Linux")
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(runCmd)
	RootCmd.AddCommand(inspectCmd)
	RootCmd.AddCommand(freqsCmd)
	RootCmd.AddCommand(hbbCmd)
	RootCmd.AddCommand(configCmd)
	RootCmd.AddCommand(versionCmd)
}
