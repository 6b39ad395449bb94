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

	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
)

// validate checks the settings against the config schema. Each violation is
// reported under the dotted option name, e.g. `smem.source`, so it can be
// matched with the flag or the DRAMC_ environment variable that set it.
func validate(settings interface{}) (bool, []error) {
	doc, err := stringKeys(settings, "")
	if err != nil {
		return false, []error{fmt.Errorf("malformed dramc settings: %v", err)}
	}
	r, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(interpolateSchema()),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return false, []error{fmt.Errorf("unable to validate dramc settings: %v", err)}
	}
	errs := make([]error, 0, len(r.Errors()))
	for _, e := range r.Errors() {
		errs = append(errs, optionError(e))
	}
	sort.Slice(errs, func(i, j int) bool { return errs[i].Error() < errs[j].Error() })
	return r.Valid(), errs
}

// optionError names the offending option. Violations of the top-level object,
// such as unknown options, have no field of their own.
func optionError(e gojsonschema.ResultError) error {
	field := e.Field()
	if field == "(root)" {
		field = "dramc"
	}
	if v := e.Value(); v != nil && e.Type() != "additional_property_not_allowed" {
		return errors.Errorf("%s: %s (got %v)", field, e.Description(), v)
	}
	return errors.Errorf("%s: %s", field, e.Description())
}

// stringKeys converts the decoded settings into a document with string keys.
// yaml.v3 decodes mappings as map[string]interface{}, yet nested mappings
// coming from viper may still carry interface keys.
func stringKeys(v interface{}, path string) (interface{}, error) {
	switch val := v.(type) {
	case map[string]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, e := range val {
			conv, err := stringKeys(e, join(path, k))
			if err != nil {
				return nil, err
			}
			m[k] = conv
		}
		return m, nil
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, e := range val {
			key, ok := k.(string)
			if !ok {
				return nil, errors.Errorf("option %q has non-string key %#v", path, k)
			}
			conv, err := stringKeys(e, join(path, key))
			if err != nil {
				return nil, err
			}
			m[key] = conv
		}
		return m, nil
	case []interface{}:
		l := make([]interface{}, len(val))
		for i, e := range val {
			conv, err := stringKeys(e, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			l[i] = conv
		}
		return l, nil
	}
	return v, nil
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
