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
	"fmt"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestUnknownLayout(t *testing.T) {
	err := fmt.Errorf("parse: %w", ErrUnknownLayout{Size: 333})
	assert.True(t, IsUnsupportedFormat(err))
	assert.False(t, IsNoData(err))
	assert.EqualError(t, ErrUnknownLayout{Size: 333}, "found an unknown type of DRAM info struct (size = 333)")
}

func TestIsNoData(t *testing.T) {
	assert.True(t, IsNoData(fmt.Errorf("smem: %w", ErrNoData)))
	assert.False(t, IsNoData(ErrAllocation))
	assert.True(t, IsAllocation(ErrAllocation))
	assert.False(t, IsNoData(nil))
}
