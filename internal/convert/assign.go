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

package convert

import (
	"database/sql"
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/greenmaskio/recordext/pkg/recordext"
)

// Assign - store src into the value dest points to. It backs the generic Scan
// of the records.
//
// NULL (nil src) is accepted only by destinations that can represent it: a
// pointer (**int32 becomes nil), an interface, a slice, a map or a sql.Scanner
// that accepts nil (sql.NullInt64 and friends). Otherwise ErrNullValue is
// returned.
func Assign(dest any, src any) error {
	dv := reflect.ValueOf(dest)
	if dv.Kind() != reflect.Pointer || dv.IsNil() {
		return fmt.Errorf("destination %T is not a non-nil pointer: %w", dest, recordext.ErrInvalidCast)
	}

	if src == nil {
		return assignNull(dest, dv.Elem())
	}

	var err error
	switch d := dest.(type) {
	case *any:
		*d = src
	case *bool:
		*d, err = ToBool(src)
	case *uint8:
		*d, err = ToByte(src)
	case *uint16:
		*d, err = toUnsigned[uint16](src, "uint16")
	case *uint32:
		*d, err = toUnsigned[uint32](src, "uint32")
	case *uint64:
		*d, err = toUnsigned[uint64](src, "uint64")
	case *uint:
		*d, err = toUnsigned[uint](src, "uint")
	case *int8:
		*d, err = toSigned[int8](src, "int8")
	case *int16:
		*d, err = ToInt16(src)
	case *int32:
		*d, err = ToInt32(src)
	case *int64:
		*d, err = ToInt64(src)
	case *int:
		*d, err = toSigned[int](src, "int")
	case *float32:
		*d, err = ToFloat(src)
	case *float64:
		*d, err = ToDouble(src)
	case *string:
		*d, err = ToString(src)
	case *[]byte:
		*d, err = toBytes(src)
	case *time.Time:
		*d, err = ToDateTime(src)
	case *decimal.Decimal:
		*d, err = ToDecimal(src)
	case *uuid.UUID:
		*d, err = ToGUID(src)
	case sql.Scanner:
		if err = d.Scan(src); err != nil {
			return castError(src, dv.Elem().Type().String(), err)
		}
	default:
		return assignReflect(dv.Elem(), src)
	}
	return err
}

func assignNull(dest any, ev reflect.Value) error {
	if s, ok := dest.(sql.Scanner); ok && !isStrictScanner(dest) {
		if err := s.Scan(nil); err != nil {
			return fmt.Errorf("scan NULL into %s: %w: %w", ev.Type(), recordext.ErrNullValue, err)
		}
		return nil
	}
	switch ev.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map:
		ev.Set(reflect.Zero(ev.Type()))
		return nil
	}
	return fmt.Errorf("cannot assign NULL to %s: %w", ev.Type(), recordext.ErrNullValue)
}

// isStrictScanner - scanners that silently turn NULL into a zero value.
func isStrictScanner(dest any) bool {
	switch dest.(type) {
	case *uuid.UUID, *decimal.Decimal:
		return true
	}
	return false
}

func assignReflect(ev reflect.Value, src any) error {
	if ev.Kind() == reflect.Pointer {
		// Nullable destination such as *int32: allocate and fill the pointee.
		nv := reflect.New(ev.Type().Elem())
		if err := Assign(nv.Interface(), src); err != nil {
			return err
		}
		ev.Set(nv)
		return nil
	}
	sv := reflect.ValueOf(src)
	if sv.Type().AssignableTo(ev.Type()) {
		ev.Set(sv)
		return nil
	}
	if sv.Kind() == ev.Kind() && sv.Type().ConvertibleTo(ev.Type()) {
		ev.Set(sv.Convert(ev.Type()))
		return nil
	}
	return castError(src, ev.Type().String(), nil)
}

func toBytes(v any) ([]byte, error) {
	switch vv := v.(type) {
	case []byte:
		res := make([]byte, len(vv))
		copy(res, vv)
		return res, nil
	case string:
		return []byte(vv), nil
	}
	return nil, castError(v, "[]byte", nil)
}
