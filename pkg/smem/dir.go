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

package smem

import (
	kerrors "github.com/YongxingMou/qualcomm-linux/pkg/errors"
	"github.com/pkg/errors"
	"os"
	"path/filepath"
	"strconv"
)

// Dir serves items exported as individual files named after the decimal
// item id, e.g. 603. The host is ignored.
type Dir struct {
	path string
}

// OpenDir returns the provider backed by the directory.
func OpenDir(path string) (*Dir, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !fi.IsDir() {
		return nil, errors.Errorf("%s is not a directory", path)
	}
	return &Dir{path: path}, nil
}

// Get reads the item file.
func (d *Dir) Get(host Host, item Item) ([]byte, error) {
	file := filepath.Join(d.path, strconv.FormatUint(uint64(item), 10))
	fi, err := os.Stat(file)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	if fi.Size() > MaxItemSize {
		return nil, errors.Wrapf(kerrors.ErrAllocation, "item %d is %d bytes long", item, fi.Size())
	}
	return os.ReadFile(file)
}

// Close is a no-op.
func (d *Dir) Close() error { return nil }

// copyItem detaches the item from the region backing it.
func copyItem(b []byte) ([]byte, error) {
	if len(b) > MaxItemSize {
		return nil, errors.Wrapf(kerrors.ErrAllocation, "item is %d bytes long", len(b))
	}
	return append(make([]byte, 0, len(b)), b...), nil
}
