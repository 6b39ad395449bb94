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

package rest

import (
	"fmt"
	"io"
	"net"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/YongxingMou/qualcomm-linux/pkg/api"
	"github.com/YongxingMou/qualcomm-linux/pkg/util/version"
	"github.com/cenkalti/backoff/v4"
	log "github.com/sirupsen/logrus"
)

type opts struct {
	addr        string
	uri         string
	contentType string
	timeout     time.Duration
	retryFor    time.Duration
	transport   *http.Transport
}

// Option represents the option for the HTTP client.
type Option func(o *opts)

// StatusError is returned when the server replies with a non-successful status code.
type StatusError struct {
	Code int
	Body string
}

// Error returns the error message.
func (e StatusError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.Code, http.StatusText(e.Code), strings.TrimSpace(e.Body))
}

// WithTransport sets the preferred transport for the HTTP client.
func WithTransport(addr string) Option {
	return func(o *opts) {
		o.addr = addr
		if api.IsUnixSocket(addr) {
			o.transport = &http.Transport{
				DialContext: api.DialUnix(addr),
			}
		} else {
			o.transport = &http.Transport{
				DialContext: (&net.Dialer{}).DialContext,
			}
		}
	}
}

// WithURI initializes the URI where the request is sent.
func WithURI(uri string) Option {
	return func(o *opts) {
		o.uri = uri
	}
}

// WithContentType sets the content type header for the HTTP requests.
func WithContentType(contentType string) Option {
	return func(o *opts) {
		o.contentType = contentType
	}
}

// WithTimeout sets the timeout of the request.
func WithTimeout(timeout time.Duration) Option {
	return func(o *opts) {
		o.timeout = timeout
	}
}

// WithRetries keeps redialing the server for the given amount of time when
// the connection can't be established. Responses with error status codes are
// not retried.
func WithRetries(d time.Duration) Option {
	return func(o *opts) {
		o.retryFor = d
	}
}

// Get performs the GET request.
func Get(opts ...Option) ([]byte, error) {
	return request(http.MethodGet, opts...)
}

func request(method string, options ...Option) ([]byte, error) {
	var opts opts
	for _, opt := range options {
		opt(&opts)
	}

	if opts.transport == nil {
		return nil, fmt.Errorf("transport is not initialized")
	}
	defer opts.transport.CloseIdleConnections()

	timeout := opts.timeout
	if timeout == 0 {
		timeout = time.Second * 10
	}

	contentType := opts.contentType
	if contentType == "" {
		contentType = "application/json"
	}

	client := http.Client{
		Transport: opts.transport,
		Timeout:   timeout,
	}

	// the host is irrelevant when dialing the unix socket
	addr := opts.addr
	if api.IsUnixSocket(addr) {
		addr = "unix"
	}

	url := "http://" + path.Join(addr, opts.uri)
	resp, err := do(&client, method, url, contentType)
	if err != nil && opts.retryFor > 0 {
		b := &backoff.ExponentialBackOff{
			InitialInterval:     time.Millisecond * 100,
			RandomizationFactor: backoff.DefaultRandomizationFactor,
			Multiplier:          backoff.DefaultMultiplier,
			MaxInterval:         time.Second * 2,
			MaxElapsedTime:      opts.retryFor,
			Stop:                backoff.Stop,
			Clock:               backoff.SystemClock,
		}
		b.Reset()
		for err != nil {
			backoffTime := b.NextBackOff()
			if backoffTime == backoff.Stop {
				break
			}
			log.Debugf("unable to reach %s: %v. Retrying in %v...", opts.addr, err, backoffTime)
			time.Sleep(backoffTime)
			resp, err = do(&client, method, url, contentType)
		}
	}
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, StatusError{Code: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}

func do(client *http.Client, method, url, contentType string) (*http.Response, error) {
	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Add("Content-Type", contentType)
	req.Header.Set("User-Agent", version.ProductToken())
	return client.Do(req)
}
