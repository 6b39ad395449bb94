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

package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/YongxingMou/qualcomm-linux/pkg/config"
	"github.com/YongxingMou/qualcomm-linux/pkg/dram"
	log "github.com/sirupsen/logrus"
)

// NoData is the body of responses issued when the DRAM info is not available.
const NoData = "no data\n"

// get rejects requests with methods other than GET.
func get(h http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		h(w, r)
	})
}

func unavailable(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusServiceUnavailable)
	fmt.Fprint(w, NoData)
}

// frequencies lists the DRAM frequencies in Hz, one per line.
func frequencies(w http.ResponseWriter, r *http.Request) {
	info, ok := dram.Published()
	if !ok {
		unavailable(w)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := info.WriteTo(w); err != nil {
		log.Warnf("unable to write DRAM frequencies: %v", err)
	}
}

func hbb(w http.ResponseWriter, r *http.Request) {
	v, err := dram.HighestBankBit()
	if err != nil {
		unavailable(w)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "%d\n", v)
}

func dramInfo(w http.ResponseWriter, r *http.Request) {
	info, ok := dram.Published()
	if !ok {
		unavailable(w)
		return
	}
	writeJSON(w, info)
}

func settings(c *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, c.Settings())
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(b)
}
