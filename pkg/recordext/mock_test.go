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
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/greenmaskio/recordext/pkg/recordext"
)

var (
	_ recordext.Reader = (*recordMock)(nil)
)

type recordMock struct {
	mock.Mock
}

func newRecordMock() *recordMock {
	return &recordMock{}
}

func (r *recordMock) ColumnCount() int {
	args := r.Called()
	return args.Int(0)
}

func (r *recordMock) ColumnName(idx int) (string, error) {
	args := r.Called(idx)
	return args.String(0), args.Error(1)
}

func (r *recordMock) ColumnIdx(name string) (int, error) {
	args := r.Called(name)
	return args.Int(0), args.Error(1)
}

func (r *recordMock) IsNull(idx int) (bool, error) {
	args := r.Called(idx)
	return args.Bool(0), args.Error(1)
}

func (r *recordMock) IsNullContext(ctx context.Context, idx int) (bool, error) {
	args := r.Called(ctx, idx)
	return args.Bool(0), args.Error(1)
}

func (r *recordMock) GetBool(idx int) (bool, error) {
	args := r.Called(idx)
	return args.Bool(0), args.Error(1)
}

func (r *recordMock) GetByte(idx int) (uint8, error) {
	args := r.Called(idx)
	return args.Get(0).(uint8), args.Error(1)
}

func (r *recordMock) GetChar(idx int) (rune, error) {
	args := r.Called(idx)
	return args.Get(0).(rune), args.Error(1)
}

func (r *recordMock) GetDateTime(idx int) (time.Time, error) {
	args := r.Called(idx)
	return args.Get(0).(time.Time), args.Error(1)
}

func (r *recordMock) GetDecimal(idx int) (decimal.Decimal, error) {
	args := r.Called(idx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (r *recordMock) GetDouble(idx int) (float64, error) {
	args := r.Called(idx)
	return args.Get(0).(float64), args.Error(1)
}

func (r *recordMock) GetFloat(idx int) (float32, error) {
	args := r.Called(idx)
	return args.Get(0).(float32), args.Error(1)
}

func (r *recordMock) GetGUID(idx int) (uuid.UUID, error) {
	args := r.Called(idx)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (r *recordMock) GetInt16(idx int) (int16, error) {
	args := r.Called(idx)
	return args.Get(0).(int16), args.Error(1)
}

func (r *recordMock) GetInt32(idx int) (int32, error) {
	args := r.Called(idx)
	return args.Get(0).(int32), args.Error(1)
}

func (r *recordMock) GetInt64(idx int) (int64, error) {
	args := r.Called(idx)
	return args.Get(0).(int64), args.Error(1)
}

func (r *recordMock) GetString(idx int) (string, error) {
	args := r.Called(idx)
	return args.String(0), args.Error(1)
}

func (r *recordMock) GetValue(idx int) (any, error) {
	args := r.Called(idx)
	return args.Get(0), args.Error(1)
}

func (r *recordMock) Scan(idx int, dest any) error {
	args := r.Called(idx, dest)
	return args.Error(0)
}

func (r *recordMock) ScanContext(ctx context.Context, idx int, dest any) error {
	args := r.Called(ctx, idx, dest)
	return args.Error(0)
}

func ptr[T any](v T) *T {
	return &v
}
