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
	"fmt"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// flatten collapses nested settings into dotted keys.
func flatten(prefix string, m map[string]interface{}, out map[string]interface{}) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]interface{}); ok {
			flatten(key, nested, out)
			continue
		}
		out[key] = v
	}
}

func format(v interface{}) string {
	switch val := v.(type) {
	case []interface{}:
		s := make([]string, len(val))
		for i, e := range val {
			s[i] = fmt.Sprintf("%v", e)
		}
		return strings.Join(s, ";")
	case []string:
		return strings.Join(val, ";")
	default:
		return fmt.Sprintf("%v", val)
	}
}

// Settings returns the effective settings keyed by their dotted names.
func (c *Config) Settings() map[string]interface{} {
	settings := make(map[string]interface{})
	flatten("", c.viper.AllSettings(), settings)
	return settings
}

// Print returns the string with all the config options pretty-printed.
func (c *Config) Print() string {
	settings := c.Settings()
	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Option", "Value"})
	for _, k := range keys {
		v := format(settings[k])
		if v == "" {
			continue
		}
		t.AppendRow(table.Row{k, v})
	}
	return t.Render()
}
