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

package domains

import (
	"sync"
	"time"
)

var (
	Cfg  *Config
	once sync.Once
)

const (
	defaultEngine    = "postgres"
	defaultFormat    = "table"
	defaultNullValue = "NULL"
	defaultMaxWidth  = 40
)

func NewConfig() *Config {
	once.Do(
		func() {
			Cfg = &Config{
				Connection: Connection{
					Engine: defaultEngine,
				},
				Query: Query{
					Format:    defaultFormat,
					NullValue: defaultNullValue,
					MaxWidth:  defaultMaxWidth,
				},
			}
		},
	)
	return Cfg
}

type Config struct {
	Log        LogConfig  `mapstructure:"log" yaml:"log" json:"log"`
	Connection Connection `mapstructure:"connection" yaml:"connection" json:"connection"`
	Query      Query      `mapstructure:"query" yaml:"query" json:"query"`
	HasColumn  HasColumn  `mapstructure:"has_column" yaml:"has_column" json:"has_column"`
}

type LogConfig struct {
	Format string `mapstructure:"format" yaml:"format" json:"format,omitempty"`
	Level  string `mapstructure:"level" yaml:"level" json:"level,omitempty"`
}

// Connection - the database the rows are read from. Engine is one of
// postgres, mysql or sqlite. DSN is passed to the driver as is.
type Connection struct {
	Engine string `mapstructure:"engine" yaml:"engine" json:"engine,omitempty"`
	DSN    string `mapstructure:"dsn" yaml:"dsn" json:"dsn,omitempty"`
}

type Query struct {
	// SQL - the raw query. When set Table, Columns and Limit are ignored.
	SQL     string   `mapstructure:"sql" yaml:"sql" json:"sql,omitempty"`
	Table   string   `mapstructure:"table" yaml:"table" json:"table,omitempty"`
	Columns []string `mapstructure:"columns" yaml:"columns" json:"columns,omitempty"`
	Limit   int      `mapstructure:"limit" yaml:"limit" json:"limit,omitempty"`
	// Timeout - the whole query deadline, including the reading of every value.
	// Zero means no deadline.
	Timeout   time.Duration `mapstructure:"timeout" yaml:"timeout" json:"timeout,omitempty"`
	NullValue string        `mapstructure:"null_value" yaml:"null_value" json:"null_value,omitempty"`
	Format    string        `mapstructure:"format" yaml:"format" json:"format,omitempty"`
	MaxWidth  int           `mapstructure:"max_width" yaml:"max_width" json:"max_width,omitempty"`
	// Template - text/template executed for every row when Format is template.
	Template string `mapstructure:"template" yaml:"template" json:"template,omitempty"`
	// Filter - boolean expression evaluated against every fetched row. The
	// rows it returns false for are not rendered.
	Filter string `mapstructure:"filter" yaml:"filter" json:"filter,omitempty"`
}

type HasColumn struct {
	Columns []string `mapstructure:"columns" yaml:"columns" json:"columns,omitempty"`
}
