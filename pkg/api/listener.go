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
	"fmt"
	"net"
	"os"
	"strings"
)

// unixScheme prefixes the transport designating the unix domain socket.
const unixScheme = "unix://"

// IsUnixSocket determines whether the transport designates the unix domain socket.
func IsUnixSocket(transport string) bool { return strings.HasPrefix(transport, unixScheme) }

// socketPath strips the scheme from the unix transport.
func socketPath(transport string) string { return strings.TrimPrefix(transport, unixScheme) }

// makeUnixListener produces a new listener for receiving requests over the unix domain socket.
// Stale socket files left behind by a previous instance are removed.
func makeUnixListener(transport string) (net.Listener, error) {
	path := socketPath(transport)
	if path == "" {
		return nil, fmt.Errorf("empty unix socket path in %q", transport)
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("unable to remove stale %s socket: %v", path, err)
	}
	l, err := net.Listen("unix", path)
	if err != nil {
		return nil, fmt.Errorf("fail to listen on the %q socket: %v", path, err)
	}
	if err := os.Chmod(path, 0o600); err != nil {
		l.Close()
		return nil, err
	}
	return l, nil
}

// makeTCPListener produces a new listener for receiving requests over TCP.
func makeTCPListener(addr string) (net.Listener, error) {
	return net.Listen("tcp", addr)
}

// DialUnix creates a dialer to be used with the http.Client to connect to the unix domain socket.
func DialUnix(transport string) func(context.Context, string, string) (net.Conn, error) {
	path := socketPath(transport)
	return func(ctx context.Context, _, _ string) (net.Conn, error) {
		var d net.Dialer
		return d.DialContext(ctx, "unix", path)
	}
}
