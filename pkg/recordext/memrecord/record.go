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
// Package memrecord provides a Record that keeps the current row in memory as
// a slice of driver values. It is the base of the database/sql and pgx records
// and can be used on its own when the values are already at hand.
package memrecord

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/greenmaskio/recordext/internal/convert"
	"github.com/greenmaskio/recordext/pkg/recordext"
)

var (
	_ recordext.Reader = (*Record)(nil)
)

type Record struct {
	columns []string
	// row - values of the current row. nil value is NULL.
	row []any
}

func New(columns ...string) *Record {
	return &Record{
		columns: columns,
		row:     make([]any, len(columns)),
	}
}

// NewWithRow - create record with the provided columns positioned on the row.
func NewWithRow(columns []string, row []any) (*Record, error) {
	r := New(columns...)
	if err := r.SetRow(row); err != nil {
		return nil, err
	}
	return r, nil
}

// SetRow - replace the current row. The length of the row must be equal to the
// columns count.
func (r *Record) SetRow(row []any) error {
	if len(row) != len(r.columns) {
		return fmt.Errorf(
			"row length %d is not equal to columns count %d: %w",
			len(row), len(r.columns), ErrRowLengthMismatch,
		)
	}
	copy(r.row, row)
	return nil
}

func (r *Record) GetRow() []any {
	return r.row
}

func (r *Record) ColumnCount() int {
	return len(r.columns)
}

func (r *Record) ColumnName(idx int) (string, error) {
	if err := r.checkIdx(idx); err != nil {
		return "", err
	}
	return r.columns[idx], nil
}

// ColumnIdx - find the column by exact name first and then case-insensitively.
func (r *Record) ColumnIdx(name string) (int, error) {
	for idx, c := range r.columns {
		if c == name {
			return idx, nil
		}
	}
	for idx, c := range r.columns {
		if recordext.EqualNames(c, name) {
			return idx, nil
		}
	}
	return 0, fmt.Errorf("column \"%s\": %w", name, recordext.ErrColumnNotFound)
}

func (r *Record) IsNull(idx int) (bool, error) {
	if err := r.checkIdx(idx); err != nil {
		return false, err
	}
	return r.row[idx] == nil, nil
}

func (r *Record) IsNullContext(ctx context.Context, idx int) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return r.IsNull(idx)
}

func (r *Record) GetValue(idx int) (any, error) {
	if err := r.checkIdx(idx); err != nil {
		return nil, err
	}
	return r.row[idx], nil
}

func (r *Record) Scan(idx int, dest any) error {
	if err := r.checkIdx(idx); err != nil {
		return err
	}
	if err := convert.Assign(dest, r.row[idx]); err != nil {
		return fmt.Errorf("column \"%s\": %w", r.columns[idx], err)
	}
	return nil
}

func (r *Record) ScanContext(ctx context.Context, idx int, dest any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.Scan(idx, dest)
}

func (r *Record) GetBool(idx int) (bool, error) {
	return get(r, idx, convert.ToBool)
}

func (r *Record) GetByte(idx int) (uint8, error) {
	return get(r, idx, convert.ToByte)
}

func (r *Record) GetChar(idx int) (rune, error) {
	return get(r, idx, convert.ToChar)
}

func (r *Record) GetDateTime(idx int) (time.Time, error) {
	return get(r, idx, convert.ToDateTime)
}

func (r *Record) GetDecimal(idx int) (decimal.Decimal, error) {
	return get(r, idx, convert.ToDecimal)
}

func (r *Record) GetDouble(idx int) (float64, error) {
	return get(r, idx, convert.ToDouble)
}

func (r *Record) GetFloat(idx int) (float32, error) {
	return get(r, idx, convert.ToFloat)
}

func (r *Record) GetGUID(idx int) (uuid.UUID, error) {
	return get(r, idx, convert.ToGUID)
}

func (r *Record) GetInt16(idx int) (int16, error) {
	return get(r, idx, convert.ToInt16)
}

func (r *Record) GetInt32(idx int) (int32, error) {
	return get(r, idx, convert.ToInt32)
}

func (r *Record) GetInt64(idx int) (int64, error) {
	return get(r, idx, convert.ToInt64)
}

func (r *Record) GetString(idx int) (string, error) {
	return get(r, idx, convert.ToString)
}

func (r *Record) checkIdx(idx int) error {
	if idx < 0 || idx >= len(r.columns) {
		return fmt.Errorf(
			"column index %d out of range [0, %d): %w",
			idx, len(r.columns), recordext.ErrColumnIndexOutOfRange,
		)
	}
	return nil
}

func get[T any](r *Record, idx int, conv func(any) (T, error)) (T, error) {
	var res T
	if err := r.checkIdx(idx); err != nil {
		return res, err
	}
	v := r.row[idx]
	if v == nil {
		return res, fmt.Errorf("column \"%s\": %w", r.columns[idx], recordext.ErrNullValue)
	}
	res, err := conv(v)
	if err != nil {
		return res, fmt.Errorf("column \"%s\": %w", r.columns[idx], err)
	}
	return res, nil
}
