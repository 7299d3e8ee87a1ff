// Copyright 2025 Greenmask
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"testing"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
	Columns []string      `mapstructure:"columns"`
}

func decode(t *testing.T, input map[string]any) (*testConfig, error) {
	t.Helper()
	res := &testConfig{}
	cfg := &mapstructure.DecoderConfig{Result: res}
	DecoderConfig(cfg)
	decoder, err := mapstructure.NewDecoder(cfg)
	require.NoError(t, err)
	return res, decoder.Decode(input)
}

func TestStringToDurationHookFunc(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected time.Duration
	}{
		{name: "go syntax", value: "1m30s", expected: 90 * time.Second},
		{name: "days", value: "1d12h", expected: 36 * time.Hour},
		{name: "weeks", value: "1w", expected: 7 * 24 * time.Hour},
		{name: "empty", value: "", expected: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := decode(t, map[string]any{"timeout": tt.value})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, res.Timeout)
		})
	}

	_, err := decode(t, map[string]any{"timeout": "soon"})
	require.Error(t, err)
}

func TestStringToSliceHooks(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected []string
	}{
		{name: "comma separated", value: "id,name", expected: []string{"id", "name"}},
		{name: "json array", value: `["first, last","age"]`, expected: []string{"first, last", "age"}},
		{name: "empty", value: "", expected: []string{}},
		{name: "list", value: []any{"id"}, expected: []string{"id"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := decode(t, map[string]any{"columns": tt.value})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, res.Columns)
		})
	}
}
