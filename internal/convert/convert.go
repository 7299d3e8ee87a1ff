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
// Package convert implements the value conversions the bundled records perform
// in their typed getters. Source values are the values produced by database/sql
// drivers and pgx: int64, float64, bool, []byte, string, time.Time and the
// driver specific types.
package convert

import (
	"database/sql/driver"
	"fmt"
	"math"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	"github.com/greenmaskio/recordext/pkg/recordext"
)

type signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

func castError(v any, typeName string, err error) error {
	if err != nil {
		return fmt.Errorf("cast %T to %s: %w: %w", v, typeName, recordext.ErrInvalidCast, err)
	}
	return fmt.Errorf("cast %T to %s: %w", v, typeName, recordext.ErrInvalidCast)
}

// normalize - unwrap driver.Valuer and turn textual []byte into string. Most of
// the drivers return text columns as []byte.
func normalize(v any) (any, error) {
	switch v.(type) {
	case decimal.Decimal, uuid.UUID:
		return v, nil
	}
	if valuer, ok := v.(driver.Valuer); ok {
		vv, err := valuer.Value()
		if err != nil {
			return nil, fmt.Errorf("get driver value of %T: %w", v, err)
		}
		v = vv
	}
	if b, ok := v.([]byte); ok {
		return string(b), nil
	}
	return v, nil
}

func ToBool(v any) (bool, error) {
	nv, err := normalize(v)
	if err != nil {
		return false, err
	}
	res, err := cast.ToBoolE(nv)
	if err != nil {
		return false, castError(v, "bool", err)
	}
	return res, nil
}

var (
	minInt64Decimal  = decimal.NewFromInt(math.MinInt64)
	maxInt64Decimal  = decimal.NewFromInt(math.MaxInt64)
	maxUint64Decimal = decimal.RequireFromString(strconv.FormatUint(math.MaxUint64, 10))
)

// integral - reports whether f holds an integer value with no fraction.
func integral(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && math.Trunc(f) == f
}

// toInt64 - exact conversion into int64. Fractions, out of range values and
// non decimal notations of the text are rejected.
func toInt64(nv any) (int64, error) {
	switch vv := nv.(type) {
	case string:
		return strconv.ParseInt(vv, 10, 64)
	case decimal.Decimal:
		if !vv.IsInteger() {
			return 0, fmt.Errorf("value %s has a fraction", vv)
		}
		if vv.LessThan(minInt64Decimal) || vv.GreaterThan(maxInt64Decimal) {
			return 0, fmt.Errorf("value %s overflows", vv)
		}
		return vv.IntPart(), nil
	case float32:
		return toInt64(float64(vv))
	case float64:
		if !integral(vv) {
			return 0, fmt.Errorf("value %v is not an integer", vv)
		}
		// float64(math.MaxInt64) rounds up to 2^63.
		if vv < math.MinInt64 || vv >= math.MaxInt64 {
			return 0, fmt.Errorf("value %v overflows", vv)
		}
		return int64(vv), nil
	case uint64:
		if vv > math.MaxInt64 {
			return 0, fmt.Errorf("value %d overflows", vv)
		}
		return int64(vv), nil
	case uint:
		if uint64(vv) > math.MaxInt64 {
			return 0, fmt.Errorf("value %d overflows", vv)
		}
		return int64(vv), nil
	}
	return cast.ToInt64E(nv)
}

// toUint64 - exact conversion into uint64, see toInt64.
func toUint64(nv any) (uint64, error) {
	switch vv := nv.(type) {
	case string:
		return strconv.ParseUint(vv, 10, 64)
	case decimal.Decimal:
		if !vv.IsInteger() {
			return 0, fmt.Errorf("value %s has a fraction", vv)
		}
		if vv.IsNegative() || vv.GreaterThan(maxUint64Decimal) {
			return 0, fmt.Errorf("value %s overflows", vv)
		}
		return strconv.ParseUint(vv.String(), 10, 64)
	case float32:
		return toUint64(float64(vv))
	case float64:
		if !integral(vv) {
			return 0, fmt.Errorf("value %v is not an integer", vv)
		}
		if vv < 0 || vv >= math.MaxUint64 {
			return 0, fmt.Errorf("value %v overflows", vv)
		}
		return uint64(vv), nil
	}
	return cast.ToUint64E(nv)
}

func toSigned[T signed](v any, typeName string) (T, error) {
	nv, err := normalize(v)
	if err != nil {
		return 0, err
	}
	n, err := toInt64(nv)
	if err != nil {
		return 0, castError(v, typeName, err)
	}
	res := T(n)
	if int64(res) != n {
		return 0, castError(v, typeName, fmt.Errorf("value %d overflows", n))
	}
	return res, nil
}

func toUnsigned[T unsigned](v any, typeName string) (T, error) {
	nv, err := normalize(v)
	if err != nil {
		return 0, err
	}
	n, err := toUint64(nv)
	if err != nil {
		return 0, castError(v, typeName, err)
	}
	res := T(n)
	if uint64(res) != n {
		return 0, castError(v, typeName, fmt.Errorf("value %d overflows", n))
	}
	return res, nil
}

func ToByte(v any) (uint8, error) {
	return toUnsigned[uint8](v, "uint8")
}

func ToInt16(v any) (int16, error) {
	return toSigned[int16](v, "int16")
}

func ToInt32(v any) (int32, error) {
	return toSigned[int32](v, "int32")
}

func ToInt64(v any) (int64, error) {
	return toSigned[int64](v, "int64")
}

// ToChar - a single character is either a one rune string or an integer code
// point.
func ToChar(v any) (rune, error) {
	nv, err := normalize(v)
	if err != nil {
		return 0, err
	}
	if s, ok := nv.(string); ok {
		if utf8.RuneCountInString(s) != 1 {
			return 0, castError(v, "rune", fmt.Errorf("expected exactly one character got %d", utf8.RuneCountInString(s)))
		}
		r, _ := utf8.DecodeRuneInString(s)
		return r, nil
	}
	r, err := toSigned[int32](nv, "rune")
	if err != nil {
		return 0, err
	}
	if !utf8.ValidRune(r) {
		return 0, castError(v, "rune", fmt.Errorf("invalid code point %d", r))
	}
	return r, nil
}

func ToDateTime(v any) (time.Time, error) {
	nv, err := normalize(v)
	if err != nil {
		return time.Time{}, err
	}
	res, err := cast.ToTimeInDefaultLocationE(nv, time.UTC)
	if err != nil {
		return time.Time{}, castError(v, "time.Time", err)
	}
	return res, nil
}

func ToDecimal(v any) (decimal.Decimal, error) {
	if d, ok := v.(decimal.Decimal); ok {
		return d, nil
	}
	nv, err := normalize(v)
	if err != nil {
		return decimal.Decimal{}, err
	}
	switch vv := nv.(type) {
	case decimal.Decimal:
		return vv, nil
	case string:
		res, err := decimal.NewFromString(vv)
		if err != nil {
			return decimal.Decimal{}, castError(v, "decimal.Decimal", err)
		}
		return res, nil
	case float64:
		return decimal.NewFromFloat(vv), nil
	case float32:
		return decimal.NewFromFloat32(vv), nil
	case bool:
		return decimal.Decimal{}, castError(v, "decimal.Decimal", nil)
	case uint64:
		return decimal.RequireFromString(strconv.FormatUint(vv, 10)), nil
	case uint:
		return decimal.RequireFromString(strconv.FormatUint(uint64(vv), 10)), nil
	}
	n, err := toInt64(nv)
	if err != nil {
		return decimal.Decimal{}, castError(v, "decimal.Decimal", err)
	}
	return decimal.NewFromInt(n), nil
}

func ToDouble(v any) (float64, error) {
	nv, err := normalize(v)
	if err != nil {
		return 0, err
	}
	if d, ok := nv.(decimal.Decimal); ok {
		return d.InexactFloat64(), nil
	}
	res, err := cast.ToFloat64E(nv)
	if err != nil {
		return 0, castError(v, "float64", err)
	}
	return res, nil
}

func ToFloat(v any) (float32, error) {
	nv, err := normalize(v)
	if err != nil {
		return 0, err
	}
	if d, ok := nv.(decimal.Decimal); ok {
		f, _ := d.Float64()
		return float32(f), nil
	}
	res, err := cast.ToFloat32E(nv)
	if err != nil {
		return 0, castError(v, "float32", err)
	}
	return res, nil
}

// ToGUID - accepts the binary (16 bytes) and the textual representations.
func ToGUID(v any) (uuid.UUID, error) {
	switch vv := v.(type) {
	case uuid.UUID:
		return vv, nil
	case [16]byte:
		return vv, nil
	case []byte:
		if len(vv) == 16 {
			return uuid.FromBytes(vv)
		}
		res, err := uuid.ParseBytes(vv)
		if err != nil {
			return uuid.Nil, castError(v, "uuid.UUID", err)
		}
		return res, nil
	case string:
		res, err := uuid.Parse(vv)
		if err != nil {
			return uuid.Nil, castError(v, "uuid.UUID", err)
		}
		return res, nil
	case driver.Valuer:
		nv, err := normalize(vv)
		if err != nil {
			return uuid.Nil, err
		}
		if _, ok := nv.(driver.Valuer); !ok && nv != nil {
			return ToGUID(nv)
		}
	}
	return uuid.Nil, castError(v, "uuid.UUID", nil)
}

func ToString(v any) (string, error) {
	nv, err := normalize(v)
	if err != nil {
		return "", err
	}
	switch vv := nv.(type) {
	case decimal.Decimal:
		return vv.String(), nil
	case uuid.UUID:
		return vv.String(), nil
	}
	res, err := cast.ToStringE(nv)
	if err != nil {
		return "", castError(v, "string", err)
	}
	return res, nil
}
