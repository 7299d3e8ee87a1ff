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
// Package sqlrecord adapts database/sql rows to recordext.Reader.
//
//	rows, err := db.QueryContext(ctx, "SELECT id, name FROM users")
//	if err != nil {
//		return err
//	}
//	r, err := sqlrecord.New(rows)
//	if err != nil {
//		return err
//	}
//	defer r.Close()
//	for r.Next() {
//		name, err := recordext.GetNullableStringByName(r, "name", nil)
//		...
//	}
//	return r.Err()
package sqlrecord

import (
	"context"
	"fmt"

	"github.com/greenmaskio/recordext/pkg/recordext"
	"github.com/greenmaskio/recordext/pkg/recordext/memrecord"
)

var (
	_ recordext.Reader = (*Record)(nil)
)

// Rows - the subset of *sql.Rows the record needs.
type Rows interface {
	Columns() ([]string, error)
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

// Record - positioned on the row fetched by the last successful Next call.
// The record owns the rows: Close closes them.
type Record struct {
	*memrecord.Record
	rows   Rows
	values []any
	dest   []any
	err    error
}

func New(rows Rows) (*Record, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("get columns: %w", err)
	}
	values := make([]any, len(columns))
	dest := make([]any, len(columns))
	for i := range values {
		dest[i] = &values[i]
	}
	return &Record{
		Record: memrecord.New(columns...),
		rows:   rows,
		values: values,
		dest:   dest,
	}, nil
}

// Next - advance to the next row and buffer its values.
func (r *Record) Next() bool {
	if r.err != nil {
		return false
	}
	if !r.rows.Next() {
		return false
	}
	if err := r.rows.Scan(r.dest...); err != nil {
		r.err = fmt.Errorf("scan row: %w", err)
		return false
	}
	if err := r.Record.SetRow(r.values); err != nil {
		r.err = err
		return false
	}
	return true
}

// NextContext - the same as Next but stops once the context is done. The
// context error is reported by Err.
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

func (r *Record) Close() error {
	return r.rows.Close()
}
