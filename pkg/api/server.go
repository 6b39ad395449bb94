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
	"context"
	"expvar"
	"net"
	"net/http"
	"time"

	"github.com/YongxingMou/qualcomm-linux/pkg/config"
	log "github.com/sirupsen/logrus"
)

var (
	listener net.Listener
	srv      *http.Server
)

// StartServer starts the HTTP server exposing the DRAM info with the specified configuration.
func StartServer(c *config.Config) error {
	var err error
	apiConfig := c.API
	if IsUnixSocket(apiConfig.Transport) {
		listener, err = makeUnixListener(apiConfig.Transport)
	} else {
		listener, err = makeTCPListener(apiConfig.Transport)
	}
	if err != nil {
		return err
	}

	s := &http.Server{
		Handler:      newMux(c),
		ReadTimeout:  apiConfig.Timeout,
		WriteTimeout: apiConfig.Timeout,
	}
	srv = s

	go func(l net.Listener) {
		if err := s.Serve(l); err != nil && err != http.ErrServerClosed {
			log.Errorf("unable to bind the API server: %v", err)
		}
	}(listener)

	log.Infof("API server listening on %s", listener.Addr())

	return nil
}

// Addr returns the address the server is bound to.
func Addr() net.Addr {
	if listener == nil {
		return nil
	}
	return listener.Addr()
}

// CloseServer shutdowns the server waiting for in-flight requests to complete.
func CloseServer() error {
	if srv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := srv.Shutdown(ctx)
	srv, listener = nil, nil
	return err
}

func newMux(c *config.Config) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/dram", get(dramInfo))
	mux.Handle("/dram/frequencies", get(frequencies))
	mux.Handle("/dram/hbb", get(hbb))
	mux.Handle("/config", get(settings(c)))
	mux.Handle("/debug/vars", expvar.Handler())
	return mux
}
