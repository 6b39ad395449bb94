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
	"io"
	"os"

	"github.com/YongxingMou/qualcomm-linux/internal/bootstrap"
	"github.com/YongxingMou/qualcomm-linux/pkg/config"
	"github.com/YongxingMou/qualcomm-linux/pkg/dram"
	"github.com/YongxingMou/qualcomm-linux/pkg/smem"
	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Dump every field of the DRAM info record",
	RunE:  inspect,
	Example: `
	# Inspect the record straight from SMEM
	dramc inspect

	# Inspect the record extracted to a file
	dramc inspect -r /tmp/dram-info.bin
	`,
}

var inspectConfig = config.NewWithOpts(config.WithInspect())

func init() {
	inspectConfig.MustViperize(inspectCmd)
}

func inspect(cmd *cobra.Command, args []string) error {
	if err := bootstrap.InitConfigAndLogger(inspectConfig); err != nil {
		return err
	}
	b, err := readRecord(inspectConfig)
	if err != nil {
		return err
	}
	d, err := dram.Inspect(b)
	if err != nil {
		return err
	}
	renderDetails(os.Stdout, d, len(b))
	return nil
}

func readRecord(c *config.Config) ([]byte, error) {
	if c.RecordFile != "" {
		return os.ReadFile(c.RecordFile)
	}
	p, err := bootstrap.OpenProvider(c.SMEM)
	if err != nil {
		return nil, err
	}
	defer p.Close()
	return p.Get(smem.HostAny, dram.ItemID)
}

func renderDetails(w io.Writer, d *dram.Details, size int) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle("DRAM info")

	t.AppendRow(table.Row{"Layout", d.Version})
	t.AppendRow(table.Row{"Record size", humanize.IBytes(uint64(size))})
	t.AppendRow(table.Row{"Manufacturer ID", fmt.Sprintf("0x%02x", d.ManufacturerID)})
	t.AppendRow(table.Row{"DDR type", d.Type})
	t.AppendRow(table.Row{"Channels", d.Channels})
	t.AppendRow(table.Row{"Frequencies", fmt.Sprintf("%d advertised, %d enabled", d.NumFreqs, d.EnabledFreqs())})
	t.AppendRow(table.Row{"Clock period address", fmt.Sprintf("0x%x", d.ClkPeriodAddr)})
	if d.MaxNomFreq != 0 {
		t.AppendRow(table.Row{"Max nominal frequency", humanize.SI(float64(d.MaxNomFreq)*1000, "Hz")})
	}
	t.Render()

	freqs := table.NewWriter()
	freqs.SetOutputMirror(w)
	freqs.SetStyle(table.StyleLight)
	freqs.SetTitle("Frequency table")
	freqs.AppendHeader(table.Row{"#", "kHz", "Frequency", "Enabled"})
	for i, f := range d.Freqs {
		freqs.AppendRow(table.Row{i, f.KHz, humanize.SI(float64(f.KHz)*1000, "Hz"), f.Enabled})
	}
	freqs.Render()

	parts := table.NewWriter()
	parts.SetOutputMirror(w)
	parts.SetStyle(table.StyleLight)
	parts.SetTitle("Channels")
	header := table.Row{"Channel", "Revision ID 1", "Revision ID 2", "Width", "Density"}
	if d.Version == dram.V4 {
		header = append(header, "Ranks", "HBB (rank 0)", "HBB (rank 1)")
	}
	parts.AppendHeader(header)
	for ch := 0; ch < int(d.Channels) && ch < dram.MaxChannels; ch++ {
		p := d.Parts[ch]
		row := table.Row{ch, p.RevisionID1, p.RevisionID2, p.Width, p.Density}
		if d.Version == dram.V4 {
			row = append(row, d.Ranks[ch], d.HBB[ch][0], d.HBB[ch][1])
		}
		parts.AppendRow(row)
	}
	parts.Render()

	if d.Regions == nil {
		return
	}
	r := d.Regions
	regions := table.NewWriter()
	regions.SetOutputMirror(w)
	regions.SetStyle(table.StyleLight)
	regions.SetTitle(fmt.Sprintf("Regions (advertised %d, HBB %d)", r.Count, r.HBB))
	regions.AppendHeader(table.Row{"#", "Start", "Size", "Controller address", "Granule", "Ranks", "Segment"})
	for i, region := range r.Regions {
		regions.AppendRow(table.Row{
			i,
			fmt.Sprintf("0x%x", region.Start),
			humanize.IBytes(region.Size),
			fmt.Sprintf("0x%x", region.MemControllerAddr),
			humanize.IBytes(uint64(region.GranuleSize) << 20),
			region.Ranks.String(),
			fmt.Sprintf("%d+0x%x", region.SegmentStartIndex, region.SegmentStartOff),
		})
	}
	regions.AppendFooter(table.Row{"", "Total", humanize.IBytes(r.TotalSize())})
	regions.Render()

	ranks := table.NewWriter()
	ranks.SetOutputMirror(w)
	ranks.SetStyle(table.StyleLight)
	ranks.AppendHeader(table.Row{"Rank", "Size", "Chip select start"})
	ranks.AppendRow(table.Row{0, humanize.IBytes(r.Rank0Size), fmt.Sprintf("0x%x", r.CS0Start)})
	ranks.AppendRow(table.Row{1, humanize.IBytes(r.Rank1Size), fmt.Sprintf("0x%x", r.CS1Start)})
	ranks.Render()
}
