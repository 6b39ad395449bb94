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

package version

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestNew(t *testing.T) {
	v, err := New("1.4.2", "a2c9e1f", "2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.Major)
	assert.Equal(t, int64(4), v.Minor)
	assert.Equal(t, int64(2), v.Patch)
	assert.Equal(t, "1.4.2", v.String())

	v, err = New("2.0.0-rc1", "", "")
	require.NoError(t, err)
	assert.Equal(t, "2.0.0-rc1", v.String())

	v, err = New("", "a2c9e1f", "")
	require.NoError(t, err)
	assert.Equal(t, "dev", v.String())

	_, err = New("not-a-version", "", "")
	require.Error(t, err)
}

func TestRender(t *testing.T) {
	v, err := New("1.4.2", "a2c9e1f", "2024-05-01")
	require.NoError(t, err)
	var b bytes.Buffer
	v.Render(&b)
	assert.Contains(t, b.String(), "1.4.2")
	assert.Contains(t, b.String(), "a2c9e1f")
	assert.Contains(t, b.String(), "Go compiler")
}

func TestProductToken(t *testing.T) {
	Set("")
	assert.Equal(t, "dramc/dev", ProductToken())
	Set("1.0.0")
	defer Set("")
	assert.Equal(t, "dramc/1.0.0", ProductToken())
}
