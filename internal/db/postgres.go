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
	"fmt"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jackc/pgx/v5"

	"github.com/greenmaskio/recordext/internal/utils/pgerrors"
	"github.com/greenmaskio/recordext/pkg/recordext/pgxrecord"
)

type pgSource struct {
	conn *pgx.Conn
}

func openPostgres(ctx context.Context, dsn string) (Source, error) {
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to postgres: %w", err)
	}
	pgxrecord.RegisterTypes(conn.TypeMap())
	return &pgSource{conn: conn}, nil
}

func (s *pgSource) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	rows, err := s.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("execute query: %w", pgerrors.Wrap(err))
	}
	return &pgRows{Record: pgxrecord.New(rows)}, nil
}

func (s *pgSource) Flavor() sqlbuilder.Flavor {
	return sqlbuilder.PostgreSQL
}

func (s *pgSource) Close(ctx context.Context) error {
	return s.conn.Close(ctx)
}

type pgRows struct {
	*pgxrecord.Record
}

func (r *pgRows) Err() error {
	return pgerrors.Wrap(r.Record.Err())
}

func (r *pgRows) Close() error {
	r.Record.Close()
	return nil
}
