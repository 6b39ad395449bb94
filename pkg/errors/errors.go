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

package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrNoData signals the DRAM info record is absent or too short to match any known layout.
	// Platforms that don't publish the record legitimately end up here.
	ErrNoData = errors.New("no DRAM info data available")

	// ErrUnsupportedFormat designates a DRAM info record whose size doesn't match any known layout
	ErrUnsupportedFormat = errors.New("unsupported DRAM info format")

	// ErrAllocation is returned when the buffers backing the DRAM info couldn't be acquired
	ErrAllocation = errors.New("couldn't allocate DRAM info")

	// ErrAlreadyPublished is returned on attempts to publish DRAM info more than once
	ErrAlreadyPublished = errors.New("DRAM info already published")

	// ErrHTTPServerUnavailable signals that the HTTP server is not running on the specified transport
	ErrHTTPServerUnavailable = func(transport string, err error) error {
		return fmt.Errorf("dramc API server up and running on %s? %v", transport, err)
	}
)

// ErrUnknownLayout is returned when the DRAM info record size matches none of the known layouts.
type ErrUnknownLayout struct {
	Size int
}

// Error returns the error message.
func (e ErrUnknownLayout) Error() string {
	return fmt.Sprintf("found an unknown type of DRAM info struct (size = %d)", e.Size)
}

// Is makes ErrUnknownLayout match ErrUnsupportedFormat.
func (e ErrUnknownLayout) Is(target error) bool { return target == ErrUnsupportedFormat }

// IsNoData determines if the error, or any error in its chain, is ErrNoData.
func IsNoData(err error) bool { return errors.Is(err, ErrNoData) }

// IsUnsupportedFormat returns true if the error denotes an unrecognized DRAM info layout.
func IsUnsupportedFormat(err error) bool { return errors.Is(err, ErrUnsupportedFormat) }

// IsAllocation returns true if the error is ErrAllocation.
func IsAllocation(err error) bool { return errors.Is(err, ErrAllocation) }
