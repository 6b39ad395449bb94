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

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromYamlFile(t *testing.T) {
	c := NewWithOpts(WithRun())

	err := c.flags.Parse([]string{"--config-file=_fixtures/dramc.yml"})
	require.NoError(t, c.viper.BindPFlags(c.flags))
	require.NoError(t, err)
	require.NoError(t, c.TryLoadFile(c.File()))

	require.NoError(t, c.Init())
	require.NoError(t, c.Validate())

	assert.Equal(t, Image, c.SMEM.Source)
	assert.Equal(t, "/var/lib/dramc/smem.bin", c.SMEM.Path)
	assert.Equal(t, 2097152, c.SMEM.Size)
	assert.Equal(t, uint64(0), c.SMEM.Base)

	assert.Equal(t, "unix:///run/dramc.sock", c.API.Transport)
	assert.Equal(t, time.Second*5, c.API.Timeout)

	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, "text", c.Log.Formatter)
	assert.Equal(t, 5, c.Log.MaxBackups)
	assert.True(t, c.Log.LogStdout)
}

func TestNewFromJsonFile(t *testing.T) {
	c := NewWithOpts(WithRun())

	err := c.flags.Parse([]string{"--config-file=_fixtures/dramc.json"})
	require.NoError(t, c.viper.BindPFlags(c.flags))
	require.NoError(t, err)
	require.NoError(t, c.TryLoadFile(c.File()))

	require.NoError(t, c.Init())
	require.NoError(t, c.Validate())

	assert.Equal(t, DevMem, c.SMEM.Source)
	assert.Equal(t, uint64(0x86000000), c.SMEM.Base)
	assert.Equal(t, "localhost:9091", c.API.Transport)
	assert.Equal(t, time.Second*3, c.API.Timeout)
	assert.Equal(t, "warn", c.Log.Level)
}

func TestInvalidConfigFile(t *testing.T) {
	c := NewWithOpts(WithRun())

	require.NoError(t, c.flags.Parse([]string{"--config-file=_fixtures/invalid.yml"}))
	require.NoError(t, c.viper.BindPFlags(c.flags))
	require.NoError(t, c.TryLoadFile(c.File()))

	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "smem.source: ")
	assert.Contains(t, err.Error(), "logging.formatter: ")
	assert.Contains(t, err.Error(), "smem.size: ")
	require.Error(t, c.Init())
}

func TestValidateNamesOptions(t *testing.T) {
	settings := map[interface{}]interface{}{"bogus": true}
	settings["smem"] = map[interface{}]interface{}{"source": "flash"}
	valid, errs := validate(settings)
	require.False(t, valid)
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), "dramc: ")
	assert.Contains(t, errs[0].Error(), "bogus")
	assert.Contains(t, errs[1].Error(), "smem.source: ")
	assert.Contains(t, errs[1].Error(), "flash")

	_, errs = validate(map[interface{}]interface{}{1: "x"})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "malformed dramc settings")
}

func TestDefaults(t *testing.T) {
	c := NewWithOpts(WithRun())
	require.NoError(t, c.viper.BindPFlags(c.flags))
	require.NoError(t, c.Init())

	assert.Equal(t, DevMem, c.SMEM.Source)
	assert.Equal(t, DefaultTransport, c.API.Transport)
	assert.Equal(t, time.Second*15, c.API.Timeout)
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, DefaultConfigFile, c.File())
}

func TestFlagsPerCommand(t *testing.T) {
	c := NewWithOpts(WithQuery())
	assert.Nil(t, c.flags.Lookup(smemSource))
	assert.NotNil(t, c.flags.Lookup(transport))

	c = NewWithOpts(WithInspect())
	assert.NotNil(t, c.flags.Lookup(smemSource))
	assert.NotNil(t, c.flags.Lookup(recordFile))
	assert.Nil(t, c.flags.Lookup(transport))
}

func TestSMEMSourceRequiresPath(t *testing.T) {
	c := NewWithOpts(WithInspect())
	require.NoError(t, c.flags.Parse([]string{"--smem.source=dir"}))
	require.NoError(t, c.viper.BindPFlags(c.flags))
	require.Error(t, c.Init())

	c = NewWithOpts(WithInspect())
	require.NoError(t, c.flags.Parse([]string{"--smem.base=0xzz"}))
	require.NoError(t, c.viper.BindPFlags(c.flags))
	require.Error(t, c.Init())
}

func TestLoadEnvFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(file, []byte("DRAMC_SMEM_SOURCE=dir\nDRAMC_SMEM_PATH=/sys/kernel/debug/smem\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("DRAMC_SMEM_SOURCE")
		os.Unsetenv("DRAMC_SMEM_PATH")
	})

	c := NewWithOpts(WithRun())
	require.NoError(t, c.flags.Parse([]string{"--env-file=" + file}))
	require.NoError(t, c.viper.BindPFlags(c.flags))
	require.NoError(t, c.LoadEnvFile())
	require.NoError(t, c.Init())

	assert.Equal(t, Dir, c.SMEM.Source)
	assert.Equal(t, "/sys/kernel/debug/smem", c.SMEM.Path)
}

func TestPrint(t *testing.T) {
	c := NewWithOpts(WithRun())
	require.NoError(t, c.flags.Parse([]string{"--config-file=_fixtures/dramc.yml"}))
	require.NoError(t, c.viper.BindPFlags(c.flags))
	require.NoError(t, c.TryLoadFile(c.File()))

	out := c.Print()
	assert.Contains(t, out, "smem.path")
	assert.Contains(t, out, "/var/lib/dramc/smem.bin")
	assert.Contains(t, out, "api.transport")

	settings := c.Settings()
	assert.Equal(t, "image", settings["smem.source"])
}
