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

package query

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/greenmaskio/recordext/internal/domains"
	"github.com/greenmaskio/recordext/internal/inspect"
	"github.com/greenmaskio/recordext/internal/utils/logger"
)

var (
	Cmd = &cobra.Command{
		Use:   "query",
		Short: "run the query and print the rows with NULL replaced by --null-value",
		Run: func(cmd *cobra.Command, args []string) {
			if err := logger.SetLogLevel(Config.Log.Level, Config.Log.Format); err != nil {
				log.Err(err).Msg("")
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			if err := inspect.Query(ctx, Config, cmd.OutOrStdout()); err != nil {
				log.Fatal().Err(err).Msg("")
			}
		},
	}
	Config = domains.NewConfig()
)

func init() {
	columnsFlagName := "columns"
	Cmd.Flags().StringSlice(
		columnsFlagName, nil, "columns to select from --table, all columns by default",
	)
	flag := Cmd.Flags().Lookup(columnsFlagName)
	if err := viper.BindPFlag("query.columns", flag); err != nil {
		log.Fatal().Err(err).Msg("fatal")
	}

	limitFlagName := "limit"
	Cmd.Flags().Int(
		limitFlagName, 0, "limit the rows selected from --table, 0 means no limit",
	)
	flag = Cmd.Flags().Lookup(limitFlagName)
	if err := viper.BindPFlag("query.limit", flag); err != nil {
		log.Fatal().Err(err).Msg("fatal")
	}

	nullValueFlagName := "null-value"
	Cmd.Flags().String(
		nullValueFlagName, Config.Query.NullValue, "text printed instead of NULL in table format",
	)
	flag = Cmd.Flags().Lookup(nullValueFlagName)
	if err := viper.BindPFlag("query.null_value", flag); err != nil {
		log.Fatal().Err(err).Msg("fatal")
	}

	formatFlagName := "format"
	Cmd.Flags().String(
		formatFlagName, Config.Query.Format,
		fmt.Sprintf(
			"output format [%s|%s|%s|%s]",
			inspect.FormatTable, inspect.FormatJSON, inspect.FormatYAML, inspect.FormatTemplate,
		),
	)
	flag = Cmd.Flags().Lookup(formatFlagName)
	if err := viper.BindPFlag("query.format", flag); err != nil {
		log.Fatal().Err(err).Msg("fatal")
	}

	maxWidthFlagName := "max-width"
	Cmd.Flags().Int(
		maxWidthFlagName, Config.Query.MaxWidth, "wrap table cells longer than this, 0 disables wrapping",
	)
	flag = Cmd.Flags().Lookup(maxWidthFlagName)
	if err := viper.BindPFlag("query.max_width", flag); err != nil {
		log.Fatal().Err(err).Msg("fatal")
	}

	filterFlagName := "filter"
	Cmd.Flags().String(
		filterFlagName, "", "boolean expression over the row columns, only matching rows are printed",
	)
	flag = Cmd.Flags().Lookup(filterFlagName)
	if err := viper.BindPFlag("query.filter", flag); err != nil {
		log.Fatal().Err(err).Msg("fatal")
	}

	templateFlagName := "template"
	Cmd.Flags().String(
		templateFlagName, "", "go template executed for every row in template format",
	)
	flag = Cmd.Flags().Lookup(templateFlagName)
	if err := viper.BindPFlag("query.template", flag); err != nil {
		log.Fatal().Err(err).Msg("fatal")
	}
}
