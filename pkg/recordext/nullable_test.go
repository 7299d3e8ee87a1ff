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

package recordext_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenmaskio/recordext/pkg/recordext"
	"github.com/greenmaskio/recordext/pkg/recordext/memrecord"
)

var (
	typedColumns = []string{
		"Id", "Flag", "Small", "Letter", "CreatedAt", "Amount", "Ratio",
		"Ratio32", "Guid", "Short", "Count", "Total", "Name", "Payload",
	}
	testCreatedAt = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	testAmount    = decimal.RequireFromString("12.50")
	testGUID      = uuid.MustParse("6f1c1a9e-4a1b-4d5e-9b0e-2f9b8d3c7a10")
)

func newTypedRecord(t *testing.T, null bool) *memrecord.Record {
	t.Helper()
	row := []any{
		int64(1), true, int64(7), "x", testCreatedAt, testAmount, 2.5,
		float64(1.25), testGUID, int64(300), int64(42), int64(1 << 40), "alice", []byte("raw"),
	}
	if null {
		for i := 1; i < len(row); i++ {
			row[i] = nil
		}
	}
	r, err := memrecord.NewWithRow(typedColumns, row)
	require.NoError(t, err)
	return r
}

func deref[T any](v *T, err error) (any, error) {
	if err != nil || v == nil {
		return nil, err
	}
	return *v, nil
}

type nullableGetter struct {
	name     string
	column   string
	expected any
	byIdx    func(r recordext.Record, idx int) (any, error)
	byName   func(r recordext.Record, name string) (any, error)
}

func nullableGetters() []nullableGetter {
	return []nullableGetter{
		{
			name: "bool", column: "Flag", expected: true,
			byIdx:  func(r recordext.Record, i int) (any, error) { return deref(recordext.GetNullableBool(r, i, nil)) },
			byName: func(r recordext.Record, n string) (any, error) { return deref(recordext.GetNullableBoolByName(r, n, nil)) },
		},
		{
			name: "byte", column: "Small", expected: uint8(7),
			byIdx:  func(r recordext.Record, i int) (any, error) { return deref(recordext.GetNullableByte(r, i, nil)) },
			byName: func(r recordext.Record, n string) (any, error) { return deref(recordext.GetNullableByteByName(r, n, nil)) },
		},
		{
			name: "char", column: "Letter", expected: 'x',
			byIdx:  func(r recordext.Record, i int) (any, error) { return deref(recordext.GetNullableChar(r, i, nil)) },
			byName: func(r recordext.Record, n string) (any, error) { return deref(recordext.GetNullableCharByName(r, n, nil)) },
		},
		{
			name: "date time", column: "CreatedAt", expected: testCreatedAt,
			byIdx:  func(r recordext.Record, i int) (any, error) { return deref(recordext.GetNullableDateTime(r, i, nil)) },
			byName: func(r recordext.Record, n string) (any, error) { return deref(recordext.GetNullableDateTimeByName(r, n, nil)) },
		},
		{
			name: "decimal", column: "Amount", expected: testAmount,
			byIdx:  func(r recordext.Record, i int) (any, error) { return deref(recordext.GetNullableDecimal(r, i, nil)) },
			byName: func(r recordext.Record, n string) (any, error) { return deref(recordext.GetNullableDecimalByName(r, n, nil)) },
		},
		{
			name: "double", column: "Ratio", expected: 2.5,
			byIdx:  func(r recordext.Record, i int) (any, error) { return deref(recordext.GetNullableDouble(r, i, nil)) },
			byName: func(r recordext.Record, n string) (any, error) { return deref(recordext.GetNullableDoubleByName(r, n, nil)) },
		},
		{
			name: "float", column: "Ratio32", expected: float32(1.25),
			byIdx:  func(r recordext.Record, i int) (any, error) { return deref(recordext.GetNullableFloat(r, i, nil)) },
			byName: func(r recordext.Record, n string) (any, error) { return deref(recordext.GetNullableFloatByName(r, n, nil)) },
		},
		{
			name: "guid", column: "Guid", expected: testGUID,
			byIdx:  func(r recordext.Record, i int) (any, error) { return deref(recordext.GetNullableGUID(r, i, nil)) },
			byName: func(r recordext.Record, n string) (any, error) { return deref(recordext.GetNullableGUIDByName(r, n, nil)) },
		},
		{
			name: "int16", column: "Short", expected: int16(300),
			byIdx:  func(r recordext.Record, i int) (any, error) { return deref(recordext.GetNullableInt16(r, i, nil)) },
			byName: func(r recordext.Record, n string) (any, error) { return deref(recordext.GetNullableInt16ByName(r, n, nil)) },
		},
		{
			name: "int32", column: "Count", expected: int32(42),
			byIdx:  func(r recordext.Record, i int) (any, error) { return deref(recordext.GetNullableInt32(r, i, nil)) },
			byName: func(r recordext.Record, n string) (any, error) { return deref(recordext.GetNullableInt32ByName(r, n, nil)) },
		},
		{
			name: "int64", column: "Total", expected: int64(1 << 40),
			byIdx:  func(r recordext.Record, i int) (any, error) { return deref(recordext.GetNullableInt64(r, i, nil)) },
			byName: func(r recordext.Record, n string) (any, error) { return deref(recordext.GetNullableInt64ByName(r, n, nil)) },
		},
		{
			name: "string", column: "Name", expected: "alice",
			byIdx:  func(r recordext.Record, i int) (any, error) { return deref(recordext.GetNullableString(r, i, nil)) },
			byName: func(r recordext.Record, n string) (any, error) { return deref(recordext.GetNullableStringByName(r, n, nil)) },
		},
		{
			name: "value", column: "Payload", expected: []byte("raw"),
			byIdx:  func(r recordext.Record, i int) (any, error) { return recordext.GetNullableValue(r, i, nil) },
			byName: func(r recordext.Record, n string) (any, error) { return recordext.GetNullableValueByName(r, n, nil) },
		},
	}
}

func TestGetNullable_NotNull(t *testing.T) {
	r := newTypedRecord(t, false)
	for _, tt := range nullableGetters() {
		t.Run(tt.name, func(t *testing.T) {
			idx, err := r.ColumnIdx(tt.column)
			require.NoError(t, err)

			byIdx, err := tt.byIdx(r, idx)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, byIdx)

			byName, err := tt.byName(r, tt.column)
			require.NoError(t, err)
			assert.Equal(t, byIdx, byName)
		})
	}
}

func TestGetNullable_Null(t *testing.T) {
	r := newTypedRecord(t, true)
	for _, tt := range nullableGetters() {
		t.Run(tt.name, func(t *testing.T) {
			idx, err := r.ColumnIdx(tt.column)
			require.NoError(t, err)

			byIdx, err := tt.byIdx(r, idx)
			require.NoError(t, err)
			assert.Nil(t, byIdx)

			byName, err := tt.byName(r, tt.column)
			require.NoError(t, err)
			assert.Nil(t, byName)
		})
	}
}

func TestGetNullable_NilRecord(t *testing.T) {
	var typedNil *memrecord.Record
	records := map[string]recordext.Record{
		"nil interface":   nil,
		"typed nil value": typedNil,
	}
	for recordName, r := range records {
		for _, tt := range nullableGetters() {
			t.Run(recordName+" "+tt.name, func(t *testing.T) {
				_, err := tt.byIdx(r, 0)
				requireArgumentError(t, err, recordext.ArgRecord)

				// The name is not validated when the record is nil.
				_, err = tt.byName(r, "")
				requireArgumentError(t, err, recordext.ArgRecord)
			})
		}
	}
}

func TestGetNullable_InvalidName(t *testing.T) {
	r := newTypedRecord(t, false)
	for _, name := range []string{"", " ", "\t\n"} {
		for _, tt := range nullableGetters() {
			t.Run(tt.name, func(t *testing.T) {
				_, err := tt.byName(r, name)
				requireArgumentError(t, err, recordext.ArgName)
			})
		}
	}
}

func TestGetNullable_UnknownColumn(t *testing.T) {
	r := newTypedRecord(t, false)
	for _, tt := range nullableGetters() {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.byName(r, "Missing")
			require.ErrorIs(t, err, recordext.ErrColumnNotFound)

			_, err = tt.byIdx(r, len(typedColumns))
			require.ErrorIs(t, err, recordext.ErrColumnIndexOutOfRange)
		})
	}
}

func TestGetNullableInt32(t *testing.T) {
	t.Run("null returns default without calling getter", func(t *testing.T) {
		r := newRecordMock()
		r.On("IsNull", 3).Return(true, nil)
		def := ptr(int32(999))

		res, err := recordext.GetNullableInt32(r, 3, def)
		require.NoError(t, err)
		assert.Same(t, def, res)
		r.AssertExpectations(t)
		r.AssertNotCalled(t, "GetInt32", 3)
	})

	t.Run("not null ignores default", func(t *testing.T) {
		r := newRecordMock()
		r.On("IsNull", 1).Return(false, nil)
		r.On("GetInt32", 1).Return(int32(5), nil)

		res, err := recordext.GetNullableInt32(r, 1, ptr(int32(999)))
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, int32(5), *res)
		r.AssertExpectations(t)
	})

	t.Run("by name resolves on every call", func(t *testing.T) {
		r := newRecordMock()
		r.On("ColumnIdx", "count").Return(2, nil).Twice()
		r.On("IsNull", 2).Return(false, nil)
		r.On("GetInt32", 2).Return(int32(10), nil)

		for i := 0; i < 2; i++ {
			res, err := recordext.GetNullableInt32ByName(r, "count", nil)
			require.NoError(t, err)
			require.NotNil(t, res)
			assert.Equal(t, int32(10), *res)
		}
		r.AssertExpectations(t)
		r.AssertNumberOfCalls(t, "ColumnIdx", 2)
	})

	t.Run("errors are returned as is", func(t *testing.T) {
		isNullErr := errors.New("is null failed")
		r := newRecordMock()
		r.On("IsNull", 0).Return(false, isNullErr)
		_, err := recordext.GetNullableInt32(r, 0, nil)
		require.ErrorIs(t, err, isNullErr)
		r.AssertNotCalled(t, "GetInt32", 0)

		r = newRecordMock()
		r.On("IsNull", 0).Return(false, nil)
		r.On("GetInt32", 0).Return(int32(0), recordext.ErrInvalidCast)
		_, err = recordext.GetNullableInt32(r, 0, nil)
		require.ErrorIs(t, err, recordext.ErrInvalidCast)

		r = newRecordMock()
		r.On("ColumnIdx", "nope").Return(0, recordext.ErrColumnNotFound)
		_, err = recordext.GetNullableInt32ByName(r, "nope", nil)
		require.ErrorIs(t, err, recordext.ErrColumnNotFound)
		r.AssertNotCalled(t, "IsNull", 0)
	})
}

func TestGetNullableValue_Default(t *testing.T) {
	r := newTypedRecord(t, true)
	res, err := recordext.GetNullableValueByName(r, "payload", "n/a")
	require.NoError(t, err)
	assert.Equal(t, "n/a", res)
}

func requireArgumentError(t *testing.T, err error, arg string) {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, err, recordext.ErrInvalidArgument)
	var argErr *recordext.ArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, arg, argErr.Arg)
}
