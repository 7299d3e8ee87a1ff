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

package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/greenmaskio/recordext/cmd/recordext/cmd/has_column"
	"github.com/greenmaskio/recordext/cmd/recordext/cmd/query"
	"github.com/greenmaskio/recordext/internal/domains"
	configUtils "github.com/greenmaskio/recordext/internal/utils/config"
)

const (
	appName           = "recordext"
	defaultConfigName = "config.yml"
)

var (
	Version    string
	Commit     string
	CommitDate string

	RootCmd = &cobra.Command{
		Use:   appName,
		Short: "Read query results through the null-safe column accessors",
		Long: "recordext runs a query against PostgreSQL, MySQL or SQLite and reads every " +
			"value through the null-safe accessors: NULL values are replaced with the " +
			"provided default and the column lookup is case-insensitive.",
		SilenceUsage: true,
	}
	cfgFile string
	Config  = domains.NewConfig()

	// envKeys - viper does not look up the environment for the keys it knows
	// nothing about, so every config key is bound explicitly.
	envKeys = []string{
		"log.format", "log.level",
		"connection.engine", "connection.dsn",
		"query.sql", "query.table", "query.columns", "query.limit", "query.timeout",
		"query.null_value", "query.format", "query.max_width", "query.filter", "query.template",
		"has_column.columns",
	}
)

func Execute() error {
	return RootCmd.Execute()
}

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				Commit = setting.Value
			}
			if setting.Key == "vcs.time" {
				CommitDate = setting.Value
			}
		}
	}
	if Version != "" {
		RootCmd.Version = fmt.Sprintf("%s %s %s", Version, Commit, CommitDate)
	} else {
		RootCmd.Version = fmt.Sprintf("%s %s", Commit, CommitDate)
	}

	cobra.OnInitialize(initConfig)
	// Removing short help flag from default
	RootCmd.PersistentFlags().BoolP("help", "", false, "help for recordext")
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	RootCmd.PersistentFlags().StringP("log-format", "", "text", "logging format [text|json]")
	RootCmd.PersistentFlags().StringP("log-level", "", zerolog.LevelInfoValue,
		fmt.Sprintf(
			"logging level %s|%s|%s|%s",
			zerolog.LevelDebugValue,
			zerolog.LevelInfoValue,
			zerolog.LevelWarnValue,
			zerolog.LevelErrorValue,
		),
	)
	RootCmd.PersistentFlags().String("engine", Config.Connection.Engine, "database engine [postgres|mysql|sqlite]")
	RootCmd.PersistentFlags().String("dsn", "", "connection string passed to the driver")
	RootCmd.PersistentFlags().String("sql", "", "query to run, overrides --table")
	RootCmd.PersistentFlags().String("table", "", "table to select from when --sql is not set")
	RootCmd.PersistentFlags().String("timeout", "", "query deadline, e.g. 30s, 1m or 1d")

	RootCmd.AddCommand(query.Cmd)
	RootCmd.AddCommand(has_column.Cmd)

	bindings := map[string]string{
		"log.format":        "log-format",
		"log.level":         "log-level",
		"connection.engine": "engine",
		"connection.dsn":    "dsn",
		"query.sql":         "sql",
		"query.table":       "table",
		"query.timeout":     "timeout",
	}
	for key, flagName := range bindings {
		if err := viper.BindPFlag(key, RootCmd.PersistentFlags().Lookup(flagName)); err != nil {
			log.Fatal().Err(err).Msg("")
		}
	}

	RootCmd.InitDefaultCompletionCmd()
	RootCmd.InitDefaultHelpCmd()
	RootCmd.InitDefaultVersionFlag()

	for _, c := range RootCmd.Commands() {
		if c.Name() == "completion" || c.Name() == "help" {
			c.DisableFlagParsing = true
			for _, subc := range c.Commands() {
				subc.DisableFlagParsing = true
			}
		}
	}
}

// defaultConfigFile - the config in the user config directory if it exists.
func defaultConfigFile() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(configDir, appName, defaultConfigName)
	if _, err = os.Stat(path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Warn().Err(err).Str("path", path).Msg("cannot access default config file")
		}
		return ""
	}
	return path
}

func initConfig() {
	if cfgFile == "" {
		cfgFile = defaultConfigFile()
	}
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			log.Fatal().Err(err).Msg("error reading from config file")
		}
	}

	viper.SetEnvPrefix(appName)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	for _, key := range envKeys {
		if err := viper.BindEnv(key); err != nil {
			log.Fatal().Err(err).Str("key", key).Msg("cannot bind environment variable")
		}
	}

	if err := viper.Unmarshal(Config, configUtils.DecoderConfig); err != nil {
		log.Fatal().Err(err).Msg("")
	}
}
