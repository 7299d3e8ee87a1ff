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
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func getNullable[T any](r Record, idx int, def *T, get func(int) (T, error)) (*T, error) {
	isNull, err := r.IsNull(idx)
	if err != nil {
		return nil, err
	}
	if isNull {
		return def, nil
	}
	v, err := get(idx)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func getNullableByName[T any](r Record, name string, def *T, get func(int) (T, error)) (*T, error) {
	idx, err := r.ColumnIdx(name)
	if err != nil {
		return nil, err
	}
	return getNullable(r, idx, def, get)
}

// GetNullableBool - get the value of the column at idx as a bool or def if the
// value is NULL. The typed getter of the record is not called for NULL values.
// Pass nil def to receive nil for NULL.
func GetNullableBool(r Record, idx int, def *bool) (*bool, error) {
	if err := checkRecord(r); err != nil {
		return nil, err
	}
	return getNullable(r, idx, def, r.GetBool)
}

// GetNullableBoolByName - the same as GetNullableBool but the column is addressed
// by name. The name is resolved on each call.
func GetNullableBoolByName(r Record, name string, def *bool) (*bool, error) {
	if err := checkRecordAndName(r, name); err != nil {
		return nil, err
	}
	return getNullableByName(r, name, def, r.GetBool)
}

// GetNullableByte - get the column value as a byte or def if it is NULL.
func GetNullableByte(r Record, idx int, def *uint8) (*uint8, error) {
	if err := checkRecord(r); err != nil {
		return nil, err
	}
	return getNullable(r, idx, def, r.GetByte)
}

func GetNullableByteByName(r Record, name string, def *uint8) (*uint8, error) {
	if err := checkRecordAndName(r, name); err != nil {
		return nil, err
	}
	return getNullableByName(r, name, def, r.GetByte)
}

// GetNullableChar - get the column value as a single character or def if it is NULL.
func GetNullableChar(r Record, idx int, def *rune) (*rune, error) {
	if err := checkRecord(r); err != nil {
		return nil, err
	}
	return getNullable(r, idx, def, r.GetChar)
}

func GetNullableCharByName(r Record, name string, def *rune) (*rune, error) {
	if err := checkRecordAndName(r, name); err != nil {
		return nil, err
	}
	return getNullableByName(r, name, def, r.GetChar)
}

// GetNullableDateTime - get the column value as a time.Time or def if it is NULL.
func GetNullableDateTime(r Record, idx int, def *time.Time) (*time.Time, error) {
	if err := checkRecord(r); err != nil {
		return nil, err
	}
	return getNullable(r, idx, def, r.GetDateTime)
}

// GetNullableDateTimeByName - get the column value as a time.Time or def if it is NULL.
func GetNullableDateTimeByName(r Record, name string, def *time.Time) (*time.Time, error) {
	if err := checkRecordAndName(r, name); err != nil {
		return nil, err
	}
	return getNullableByName(r, name, def, r.GetDateTime)
}

// GetNullableDecimal - get the column value as a decimal.Decimal or def if it is NULL.
func GetNullableDecimal(r Record, idx int, def *decimal.Decimal) (*decimal.Decimal, error) {
	if err := checkRecord(r); err != nil {
		return nil, err
	}
	return getNullable(r, idx, def, r.GetDecimal)
}

func GetNullableDecimalByName(r Record, name string, def *decimal.Decimal) (*decimal.Decimal, error) {
	if err := checkRecordAndName(r, name); err != nil {
		return nil, err
	}
	return getNullableByName(r, name, def, r.GetDecimal)
}

// GetNullableDouble - get the column value as a float64 or def if it is NULL.
func GetNullableDouble(r Record, idx int, def *float64) (*float64, error) {
	if err := checkRecord(r); err != nil {
		return nil, err
	}
	return getNullable(r, idx, def, r.GetDouble)
}

func GetNullableDoubleByName(r Record, name string, def *float64) (*float64, error) {
	if err := checkRecordAndName(r, name); err != nil {
		return nil, err
	}
	return getNullableByName(r, name, def, r.GetDouble)
}

// GetNullableFloat - get the column value as a float32 or def if it is NULL.
func GetNullableFloat(r Record, idx int, def *float32) (*float32, error) {
	if err := checkRecord(r); err != nil {
		return nil, err
	}
	return getNullable(r, idx, def, r.GetFloat)
}

// GetNullableFloatByName - get the column value as a float32 or def if it is NULL.
func GetNullableFloatByName(r Record, name string, def *float32) (*float32, error) {
	if err := checkRecordAndName(r, name); err != nil {
		return nil, err
	}
	return getNullableByName(r, name, def, r.GetFloat)
}

// GetNullableGUID - get the column value as a uuid.UUID or def if it is NULL.
func GetNullableGUID(r Record, idx int, def *uuid.UUID) (*uuid.UUID, error) {
	if err := checkRecord(r); err != nil {
		return nil, err
	}
	return getNullable(r, idx, def, r.GetGUID)
}

func GetNullableGUIDByName(r Record, name string, def *uuid.UUID) (*uuid.UUID, error) {
	if err := checkRecordAndName(r, name); err != nil {
		return nil, err
	}
	return getNullableByName(r, name, def, r.GetGUID)
}

// GetNullableInt16 - get the column value as an int16 or def if it is NULL.
func GetNullableInt16(r Record, idx int, def *int16) (*int16, error) {
	if err := checkRecord(r); err != nil {
		return nil, err
	}
	return getNullable(r, idx, def, r.GetInt16)
}

func GetNullableInt16ByName(r Record, name string, def *int16) (*int16, error) {
	if err := checkRecordAndName(r, name); err != nil {
		return nil, err
	}
	return getNullableByName(r, name, def, r.GetInt16)
}

// GetNullableInt32 - get the column value as an int32 or def if it is NULL.
func GetNullableInt32(r Record, idx int, def *int32) (*int32, error) {
	if err := checkRecord(r); err != nil {
		return nil, err
	}
	return getNullable(r, idx, def, r.GetInt32)
}

// GetNullableInt32ByName - get the column value as an int32 or def if it is NULL.
func GetNullableInt32ByName(r Record, name string, def *int32) (*int32, error) {
	if err := checkRecordAndName(r, name); err != nil {
		return nil, err
	}
	return getNullableByName(r, name, def, r.GetInt32)
}

// GetNullableInt64 - get the column value as an int64 or def if it is NULL.
func GetNullableInt64(r Record, idx int, def *int64) (*int64, error) {
	if err := checkRecord(r); err != nil {
		return nil, err
	}
	return getNullable(r, idx, def, r.GetInt64)
}

func GetNullableInt64ByName(r Record, name string, def *int64) (*int64, error) {
	if err := checkRecordAndName(r, name); err != nil {
		return nil, err
	}
	return getNullableByName(r, name, def, r.GetInt64)
}

// GetNullableString - get the column value as a string or def if it is NULL.
func GetNullableString(r Record, idx int, def *string) (*string, error) {
	if err := checkRecord(r); err != nil {
		return nil, err
	}
	return getNullable(r, idx, def, r.GetString)
}

func GetNullableStringByName(r Record, name string, def *string) (*string, error) {
	if err := checkRecordAndName(r, name); err != nil {
		return nil, err
	}
	return getNullableByName(r, name, def, r.GetString)
}

// GetNullableValue - get the column value as is or def if it is NULL.
func GetNullableValue(r Record, idx int, def any) (any, error) {
	if err := checkRecord(r); err != nil {
		return nil, err
	}
	isNull, err := r.IsNull(idx)
	if err != nil {
		return nil, err
	}
	if isNull {
		return def, nil
	}
	return r.GetValue(idx)
}

func GetNullableValueByName(r Record, name string, def any) (any, error) {
	if err := checkRecordAndName(r, name); err != nil {
		return nil, err
	}
	idx, err := r.ColumnIdx(name)
	if err != nil {
		return nil, err
	}
	return GetNullableValue(r, idx, def)
}
