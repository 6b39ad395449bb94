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
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/YongxingMou/qualcomm-linux/pkg/util/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	configFile = "config-file"
	envFile    = "env-file"
	recordFile = "record-file"

	envPrefix = "dramc"
)

// DefaultConfigFile is the configuration file looked up when none is given.
const DefaultConfigFile = "/etc/dramc/dramc.yml"

// Config stores configuration options for fine-tuning the behaviour of dramc.
type Config struct {
	// SMEM designates where the shared memory items are read from.
	SMEM SMEMConfig `json:"smem" yaml:"smem"`
	// API stores global HTTP API preferences
	API APIConfig `json:"api" yaml:"api"`
	// Log contains log-specific configuration options
	Log log.Config `json:"logging" yaml:"logging"`

	// RecordFile is the file holding the raw DRAM info record. When set, the
	// record is decoded from the file instead of SMEM.
	RecordFile string `json:"record-file" yaml:"record-file"`

	flags *pflag.FlagSet
	viper *viper.Viper
	opts  *Options
}

// Options determines which config flags are toggled depending on the command type.
type Options struct {
	run     bool
	inspect bool
	query   bool
}

// Option is the type alias for the config option.
type Option func(*Options)

// WithRun determines the main command is executed.
func WithRun() Option {
	return func(o *Options) {
		o.run = true
	}
}

// WithInspect determines the inspect command is executed.
func WithInspect() Option {
	return func(o *Options) {
		o.inspect = true
	}
}

// WithQuery determines one of the commands querying the API server is executed.
func WithQuery() Option {
	return func(o *Options) {
		o.query = true
	}
}

// NewWithOpts builds a new configuration store from a variety of supplied options.
func NewWithOpts(options ...Option) *Config {
	opts := &Options{}

	for _, opt := range options {
		opt(opts)
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	c := &Config{
		SMEM:  SMEMConfig{},
		API:   APIConfig{},
		Log:   log.Config{},
		viper: v,
		flags: new(pflag.FlagSet),
		opts:  opts,
	}

	c.addFlags()

	return c
}

// Init sets up the configuration values from flags, env variables and the config file.
func (c *Config) Init() error {
	if c.opts.run || c.opts.inspect {
		if err := c.SMEM.initFromViper(c.viper); err != nil {
			return err
		}
	}
	c.API.initFromViper(c.viper)
	c.Log.InitFromViper(c.viper)
	c.RecordFile = c.viper.GetString(recordFile)
	return nil
}

// MustViperize adds the flag set to the Cobra command and binds them within the Viper flags.
func (c *Config) MustViperize(cmd *cobra.Command) {
	cmd.PersistentFlags().AddFlagSet(c.flags)
	if err := c.viper.BindPFlags(cmd.PersistentFlags()); err != nil {
		panic(err)
	}
}

// File returns the path of the configuration file.
func (c *Config) File() string { return c.viper.GetString(configFile) }

// EnvFile returns the path of the dotenv file.
func (c *Config) EnvFile() string { return c.viper.GetString(envFile) }

// TryLoadFile attempts to load the configuration file from specified path on the file system.
func (c *Config) TryLoadFile(file string) error {
	c.viper.SetConfigFile(file)
	return c.viper.ReadInConfig()
}

// LoadEnvFile populates the process environment from the dotenv file. Variables
// already present in the environment take precedence.
func (c *Config) LoadEnvFile() error {
	file := c.EnvFile()
	if file == "" {
		return nil
	}
	return godotenv.Load(file)
}

// Validate ensures that all configuration options provided by user have the expected values. It returns
// a list of validation errors prefixed with the offending configuration property/flag.
func (c *Config) Validate() error {
	file := c.File()
	var out interface{}
	b, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	switch filepath.Ext(file) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &out)
	case ".json":
		err = json.Unmarshal(b, &out)
	default:
		return fmt.Errorf("%s is not a supported config file extension", filepath.Ext(file))
	}
	if err != nil {
		return fmt.Errorf("couldn't read the config file: %v", err)
	}
	if valid, errs := validate(out); !valid || len(errs) > 0 {
		return fmt.Errorf("invalid config: %v", errors.Join(errs...))
	}
	if valid, errs := validate(c.viper.AllSettings()); !valid || len(errs) > 0 {
		return fmt.Errorf("invalid config: %v", errors.Join(errs...))
	}
	return nil
}

func (c *Config) addFlags() {
	c.flags.String(configFile, DefaultConfigFile, "Indicates the location of the configuration file")
	c.flags.String(envFile, "", "Specifies the dotenv file whose variables are loaded into the environment before reading the configuration")
	if c.opts.run || c.opts.inspect {
		c.SMEM.addFlags(c.flags)
	}
	if c.opts.inspect {
		c.flags.StringP(recordFile, "r", "", "Decodes the raw DRAM info record stored in the file instead of reading it from SMEM")
	}
	if c.opts.run || c.opts.query {
		c.flags.String(transport, DefaultTransport, "Specifies the underlying transport protocol for the API HTTP server")
		c.flags.Duration(timeout, time.Second*15, "Determines the timeout for the API server responses")
	}
	c.Log.AddFlags(c.flags)
}
