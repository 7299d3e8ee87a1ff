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

package memrecord

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenmaskio/recordext/pkg/recordext"
)

func TestRecord_SetRow(t *testing.T) {
	r := New("id", "name")
	require.NoError(t, r.SetRow([]any{int64(1), "alice"}))
	assert.Equal(t, []any{int64(1), "alice"}, r.GetRow())

	err := r.SetRow([]any{int64(1)})
	require.ErrorIs(t, err, ErrRowLengthMismatch)

	_, err = NewWithRow([]string{"id"}, []any{int64(1), "extra"})
	require.ErrorIs(t, err, ErrRowLengthMismatch)
}

func TestRecord_SetRow_Copies(t *testing.T) {
	row := []any{int64(1)}
	r, err := NewWithRow([]string{"id"}, row)
	require.NoError(t, err)
	row[0] = int64(2)

	v, err := r.GetValue(0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)
}

func TestRecord_Columns(t *testing.T) {
	r := New("Id", "Name", "name")
	assert.Equal(t, 3, r.ColumnCount())

	name, err := r.ColumnName(1)
	require.NoError(t, err)
	assert.Equal(t, "Name", name)

	for _, idx := range []int{-1, 3} {
		_, err = r.ColumnName(idx)
		require.ErrorIs(t, err, recordext.ErrColumnIndexOutOfRange)
	}

	tests := []struct {
		name     string
		column   string
		expected int
	}{
		{name: "exact match wins", column: "name", expected: 2},
		{name: "exact", column: "Name", expected: 1},
		{name: "case insensitive", column: "ID", expected: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, err := r.ColumnIdx(tt.column)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, idx)
		})
	}

	_, err = r.ColumnIdx("email")
	require.ErrorIs(t, err, recordext.ErrColumnNotFound)
	assert.Contains(t, err.Error(), "email")
}

func TestRecord_Getters(t *testing.T) {
	r, err := NewWithRow(
		[]string{"count", "name", "missing"},
		[]any{int64(42), []byte("alice"), nil},
	)
	require.NoError(t, err)

	i32, err := r.GetInt32(0)
	require.NoError(t, err)
	assert.Equal(t, int32(42), i32)

	s, err := r.GetString(1)
	require.NoError(t, err)
	assert.Equal(t, "alice", s)

	_, err = r.GetInt32(1)
	require.ErrorIs(t, err, recordext.ErrInvalidCast)
	assert.Contains(t, err.Error(), "name")

	_, err = r.GetString(2)
	require.ErrorIs(t, err, recordext.ErrNullValue)

	_, err = r.GetInt64(3)
	require.ErrorIs(t, err, recordext.ErrColumnIndexOutOfRange)

	isNull, err := r.IsNull(2)
	require.NoError(t, err)
	assert.True(t, isNull)

	isNull, err = r.IsNull(0)
	require.NoError(t, err)
	assert.False(t, isNull)

	_, err = r.IsNull(-1)
	require.ErrorIs(t, err, recordext.ErrColumnIndexOutOfRange)
}

func TestRecord_Scan(t *testing.T) {
	r, err := NewWithRow([]string{"count", "missing"}, []any{int64(42), nil})
	require.NoError(t, err)

	var i int
	require.NoError(t, r.Scan(0, &i))
	assert.Equal(t, 42, i)

	var p *int
	require.NoError(t, r.Scan(1, &p))
	assert.Nil(t, p)

	err = r.Scan(1, &i)
	require.ErrorIs(t, err, recordext.ErrNullValue)
	assert.Contains(t, err.Error(), "missing")

	err = r.Scan(5, &i)
	require.ErrorIs(t, err, recordext.ErrColumnIndexOutOfRange)
}

func TestRecord_Context(t *testing.T) {
	r, err := NewWithRow([]string{"count"}, []any{int64(42)})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	var i int
	require.NoError(t, r.ScanContext(ctx, 0, &i))
	assert.Equal(t, 42, i)

	cancel()
	_, err = r.IsNullContext(ctx, 0)
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, r.ScanContext(ctx, 0, &i), context.Canceled)
}
