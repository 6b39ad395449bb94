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

// Package smem retrieves items from the Qualcomm shared memory (SMEM) region
// that firmware and the application processor use to exchange boot-time data.
package smem

import (
	"errors"
	"fmt"
)

// Host identifies the remote processor owning an SMEM partition.
type Host int

const (
	// HostAny looks the item up in the global partition, or the global heap
	// on older firmware, without restricting the owner.
	HostAny Host = -1
	// HostApps is the application processor.
	HostApps Host = 0
	// GlobalHost is the host id both partition ends carry in the global partition.
	GlobalHost = 0xfffe
)

// Item is the numeric identifier of the SMEM item.
type Item uint32

// MaxItemSize bounds the size of items handed out by providers.
const MaxItemSize = 1 << 20

var (
	// ErrItemNotFound is returned when the item is not allocated in SMEM
	ErrItemNotFound = errors.New("smem item not found")
	// ErrInvalidImage signals a corrupted or unrecognized SMEM region
	ErrInvalidImage = errors.New("invalid smem image")
)

// Provider retrieves raw SMEM items. The returned buffer is owned by the caller.
type Provider interface {
	// Get returns the content of the item allocated by the host.
	Get(host Host, item Item) ([]byte, error)
	// Close releases the resources held by the provider.
	Close() error
}

// String returns the host name.
func (h Host) String() string {
	switch h {
	case HostAny:
		return "any"
	case HostApps:
		return "apps"
	case GlobalHost:
		return "global"
	default:
		return fmt.Sprintf("host%d", int(h))
	}
}

// Items is the in-memory provider of SMEM items. The host is ignored.
type Items map[Item][]byte

// Get returns a copy of the item.
func (items Items) Get(host Host, item Item) ([]byte, error) {
	b, ok := items[item]
	if !ok {
		return nil, ErrItemNotFound
	}
	return append([]byte(nil), b...), nil
}

// Close is a no-op.
func (Items) Close() error { return nil }
