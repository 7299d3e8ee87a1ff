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

package recordext

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Columns - the minimal column metadata of the current result set.
type Columns interface {
	// ColumnCount - number of columns in the row.
	ColumnCount() int
	// ColumnName - get column name by its zero-based position. Must return
	// ErrColumnIndexOutOfRange for idx outside [0, ColumnCount()).
	ColumnName(idx int) (string, error)
}

// Record - a row handle positioned on the current row. The handle lifecycle
// (open, advance, close) belongs to the caller. The accessor functions of this
// package only read the current row.
type Record interface {
	Columns
	// ColumnIdx - resolve column name into position. Must return ErrColumnNotFound
	// if there is no such column.
	ColumnIdx(name string) (int, error)
	// IsNull - reports whether the value at idx is SQL NULL.
	IsNull(idx int) (bool, error)

	GetBool(idx int) (bool, error)
	GetByte(idx int) (uint8, error)
	GetChar(idx int) (rune, error)
	GetDateTime(idx int) (time.Time, error)
	GetDecimal(idx int) (decimal.Decimal, error)
	GetDouble(idx int) (float64, error)
	GetFloat(idx int) (float32, error)
	GetGUID(idx int) (uuid.UUID, error)
	GetInt16(idx int) (int16, error)
	GetInt32(idx int) (int32, error)
	GetInt64(idx int) (int64, error)
	GetString(idx int) (string, error)
	GetValue(idx int) (any, error)

	// Scan - the generic typed getter. It stores the value at idx into dest,
	// which must be a pointer. NULL into a type that cannot represent it must
	// return ErrNullValue.
	Scan(idx int, dest any) error
}

// Reader - Record that can perform the null test and the value fetch under
// a context.
type Reader interface {
	Record
	IsNullContext(ctx context.Context, idx int) (bool, error)
	ScanContext(ctx context.Context, idx int, dest any) error
}
