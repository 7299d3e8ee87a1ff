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
// Package pgxrecord adapts pgx rows to recordext.Reader. Values are taken from
// pgx.Rows.Values, so the record returns whatever the connection type map
// decodes. Call RegisterTypes on the connection type map to receive
// decimal.Decimal for numeric columns.
package pgxrecord

import (
	"context"
	"fmt"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/greenmaskio/recordext/pkg/recordext"
	"github.com/greenmaskio/recordext/pkg/recordext/memrecord"
)

var (
	_ recordext.Reader = (*Record)(nil)
)

// RegisterTypes - register the types the record relies on in the connection
// type map.
func RegisterTypes(m *pgtype.Map) {
	pgxdecimal.Register(m)
}

type Record struct {
	*memrecord.Record
	rows pgx.Rows
	err  error
}

func New(rows pgx.Rows) *Record {
	fields := rows.FieldDescriptions()
	columns := make([]string, len(fields))
	for i := range fields {
		columns[i] = fields[i].Name
	}
	return &Record{
		Record: memrecord.New(columns...),
		rows:   rows,
	}
}

func (r *Record) Next() bool {
	if r.err != nil {
		return false
	}
	if !r.rows.Next() {
		return false
	}
	values, err := r.rows.Values()
	if err != nil {
		r.err = fmt.Errorf("decode row values: %w", err)
		return false
	}
	if err = r.Record.SetRow(values); err != nil {
		r.err = err
		return false
	}
	return true
}

func (r *Record) NextContext(ctx context.Context) bool {
	if err := ctx.Err(); err != nil {
		if r.err == nil {
			r.err = err
		}
		return false
	}
	return r.Next()
}

func (r *Record) Err() error {
	if r.err != nil {
		return r.err
	}
	return r.rows.Err()
}

func (r *Record) Close() {
	r.rows.Close()
}
