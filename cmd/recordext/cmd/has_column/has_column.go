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

package has_column

import (
	"context"
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
		Use:   "has-column",
		Short: "check whether the query result contains the columns (case-insensitive)",
		Run: func(cmd *cobra.Command, args []string) {
			if err := logger.SetLogLevel(Config.Log.Level, Config.Log.Format); err != nil {
				log.Err(err).Msg("")
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			if err := inspect.HasColumn(ctx, Config, cmd.OutOrStdout()); err != nil {
				log.Fatal().Err(err).Msg("")
			}
		},
	}
	Config = domains.NewConfig()
)

func init() {
	columnFlagName := "column"
	Cmd.Flags().StringSlice(
		columnFlagName, nil, "column name to look for, can be repeated",
	)
	flag := Cmd.Flags().Lookup(columnFlagName)
	if err := viper.BindPFlag("has_column.columns", flag); err != nil {
		log.Fatal().Err(err).Msg("fatal")
	}
}
