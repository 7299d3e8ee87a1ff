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

package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/huandu/go-sqlbuilder"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"github.com/greenmaskio/recordext/pkg/recordext/sqlrecord"
)

type sqlSource struct {
	db     *sql.DB
	flavor sqlbuilder.Flavor
}

func openSQL(ctx context.Context, driverName, dsn string, flavor sqlbuilder.Flavor) (Source, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s connection: %w", driverName, err)
	}
	if flavor == sqlbuilder.SQLite {
		// Every connection to an in-memory database opens its own database.
		db.SetMaxOpenConns(1)
	}
	if err = db.PingContext(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("error closing connection")
		}
		return nil, fmt.Errorf("ping %s: %w", driverName, err)
	}
	return &sqlSource{db: db, flavor: flavor}, nil
}

func (s *sqlSource) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("execute query: %w", err)
	}
	r, err := sqlrecord.New(rows)
	if err != nil {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("error closing rows")
		}
		return nil, err
	}
	return r, nil
}

func (s *sqlSource) Flavor() sqlbuilder.Flavor {
	return s.flavor
}

func (s *sqlSource) Close(_ context.Context) error {
	return s.db.Close()
}
