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

// GetFieldValue - get the value of the column with the provided name as T.
// No NULL test is performed: if the value is NULL and T cannot represent it
// the ErrNullValue of the record is returned.
func GetFieldValue[T any](r Record, name string) (T, error) {
	var res T
	if err := checkRecordAndName(r, name); err != nil {
		return res, err
	}
	idx, err := r.ColumnIdx(name)
	if err != nil {
		return res, err
	}
	if err = r.Scan(idx, &res); err != nil {
		var zero T
		return zero, err
	}
	return res, nil
}

// GetFieldValueOrDefault - get the value of the column at idx as T or def if
// the value is NULL.
func GetFieldValueOrDefault[T any](r Record, idx int, def T) (res T, err error) {
	if err = checkRecord(r); err != nil {
		return res, err
	}
	return getFieldValueOrDefault(r, idx, def)
}

// GetFieldValueOrDefaultByName - the same as GetFieldValueOrDefault but the
// column is addressed by name.
func GetFieldValueOrDefaultByName[T any](r Record, name string, def T) (res T, err error) {
	if err = checkRecordAndName(r, name); err != nil {
		return res, err
	}
	idx, err := r.ColumnIdx(name)
	if err != nil {
		return res, err
	}
	return getFieldValueOrDefault(r, idx, def)
}

func getFieldValueOrDefault[T any](r Record, idx int, def T) (res T, err error) {
	isNull, err := r.IsNull(idx)
	if err != nil {
		return res, err
	}
	if isNull {
		return def, nil
	}
	if err = r.Scan(idx, &res); err != nil {
		var zero T
		return zero, err
	}
	return res, nil
}
