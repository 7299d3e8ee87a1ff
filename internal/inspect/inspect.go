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

package inspect

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/greenmaskio/recordext/internal/db"
	"github.com/greenmaskio/recordext/internal/domains"
	"github.com/greenmaskio/recordext/internal/utils/countwriter"
)

var (
	ErrNoColumns = errors.New("at least one column must be provided")
)

// Query - run the configured query and render every row into w.
func Query(ctx context.Context, cfg *domains.Config, w io.Writer) error {
	filter, err := NewRowFilter(cfg.Query.Filter)
	if err != nil {
		return err
	}
	ctx, cancel := withTimeout(ctx, cfg.Query)
	defer cancel()

	return withRows(ctx, cfg, func(rows db.Rows) error {
		res, err := Fetch(ctx, rows)
		if err != nil {
			return err
		}
		log.Debug().
			Int("rows", len(res.Rows)).
			Int("columns", len(res.Columns)).
			Msg("fetched")
		res, err = filter.Apply(res)
		if err != nil {
			return err
		}
		cw := countwriter.NewWriter(w)
		if err = Render(cw, res, cfg.Query); err != nil {
			return err
		}
		log.Debug().
			Int("rows", len(res.Rows)).
			Int64("bytes", cw.GetCount()).
			Str("format", cfg.Query.Format).
			Msg("rendered")
		return nil
	})
}

// HasColumn - run the configured query and report the presence of every
// configured column in its result set. No row is read.
func HasColumn(ctx context.Context, cfg *domains.Config, w io.Writer) error {
	if len(cfg.HasColumn.Columns) == 0 {
		return ErrNoColumns
	}
	ctx, cancel := withTimeout(ctx, cfg.Query)
	defer cancel()

	return withRows(ctx, cfg, func(rows db.Rows) error {
		presence, err := HasColumns(rows, cfg.HasColumn.Columns)
		if err != nil {
			return err
		}
		return RenderColumnPresence(w, presence)
	})
}

func withTimeout(ctx context.Context, cfg domains.Query) (context.Context, context.CancelFunc) {
	if cfg.Timeout > 0 {
		return context.WithTimeout(ctx, cfg.Timeout)
	}
	return context.WithCancel(ctx)
}

func withRows(ctx context.Context, cfg *domains.Config, f func(rows db.Rows) error) error {
	src, err := db.Open(ctx, cfg.Connection)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := src.Close(ctx); closeErr != nil {
			log.Warn().Err(closeErr).Msg("error closing connection")
		}
	}()

	query, args, err := BuildQuery(cfg.Query, src.Flavor())
	if err != nil {
		return err
	}
	log.Debug().
		Str("query", query).
		Any("args", args).
		Msg("executing query")

	rows, err := src.Query(ctx, query, args...)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("error closing rows")
		}
	}()
	if err = f(rows); err != nil {
		return fmt.Errorf("process query result: %w", err)
	}
	return nil
}
