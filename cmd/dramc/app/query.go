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
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/YongxingMou/qualcomm-linux/internal/bootstrap"
	"github.com/YongxingMou/qualcomm-linux/pkg/config"
	kerrors "github.com/YongxingMou/qualcomm-linux/pkg/errors"
	"github.com/YongxingMou/qualcomm-linux/pkg/util/rest"
	"github.com/YongxingMou/qualcomm-linux/pkg/util/spinner"
	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var freqsCmd = &cobra.Command{
	Use:     "frequencies",
	Short:   "Show the DDR frequencies served by the running instance",
	Aliases: []string{"freqs"},
	RunE:    freqs,
}

var hbbCmd = &cobra.Command{
	Use:   "hbb",
	Short: "Show the highest bank address bit served by the running instance",
	RunE:  hbb,
}

var (
	freqsConfig = config.NewWithOpts(config.WithQuery())
	hbbConfig   = config.NewWithOpts(config.WithQuery())
)

func init() {
	freqsConfig.MustViperize(freqsCmd)
	hbbConfig.MustViperize(hbbCmd)
}

// query fetches the resource from the API server. The server replies with
// the service unavailable status when the DRAM info wasn't published.
func query(c *config.Config, uri string) ([]byte, error) {
	if err := bootstrap.InitConfigAndLogger(c); err != nil {
		return nil, err
	}
	sp := spinner.Show("Querying " + c.API.Transport)
	body, err := rest.Get(
		rest.WithTransport(c.API.Transport),
		rest.WithURI(uri),
		rest.WithContentType("text/plain"),
		rest.WithTimeout(c.API.Timeout),
		rest.WithRetries(c.API.Timeout),
	)
	sp.Stop()
	if err != nil {
		var serr rest.StatusError
		if errors.As(err, &serr) && serr.Code == http.StatusServiceUnavailable {
			return nil, kerrors.ErrNoData
		}
		return nil, kerrors.ErrHTTPServerUnavailable(c.API.Transport, err)
	}
	return body, nil
}

func freqs(cmd *cobra.Command, args []string) error {
	body, err := query(freqsConfig, "dram/frequencies")
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Frequency (Hz)", "Frequency"})

	scanner := bufio.NewScanner(bytes.NewReader(body))
	var n int
	for scanner.Scan() {
		hz, err := strconv.ParseUint(scanner.Text(), 10, 64)
		if err != nil {
			return fmt.Errorf("malformed frequency %q: %v", scanner.Text(), err)
		}
		n++
		t.AppendRow(table.Row{n, hz, humanize.SI(float64(hz), "Hz")})
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	t.AppendFooter(table.Row{"", "Total", n})
	t.Render()
	return nil
}

func hbb(cmd *cobra.Command, args []string) error {
	body, err := query(hbbConfig, "dram/hbb")
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(os.Stdout, string(body))
	return err
}
