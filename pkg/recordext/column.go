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
	"unicode"
	"unicode/utf8"
)

// ColumnIdx - resolve the column name into its zero-based position. The
// position is resolved by the record on every call, nothing is cached.
// Errors of the record (ErrColumnNotFound) are returned as is.
func ColumnIdx(r Record, name string) (int, error) {
	if err := checkRecordAndName(r, name); err != nil {
		return 0, err
	}
	return r.ColumnIdx(name)
}

// HasColumn - reports whether the row contains a column with the provided name.
// The comparison is ordinal case-insensitive, see EqualNames. Unlike the
// getters a missing column is not an error.
func HasColumn(r Columns, name string) (bool, error) {
	if err := checkRecordAndName(r, name); err != nil {
		return false, err
	}
	for idx := 0; idx < r.ColumnCount(); idx++ {
		columnName, err := r.ColumnName(idx)
		if err != nil {
			return false, err
		}
		if EqualNames(columnName, name) {
			return true, nil
		}
	}
	return false, nil
}

// EqualNames - ordinal case-insensitive comparison of column names. Runes are
// compared by their upper case mapping one by one, so unlike strings.EqualFold
// the KELVIN SIGN does not match "k".
func EqualNames(a, b string) bool {
	for a != "" && b != "" {
		ra, na := utf8.DecodeRuneInString(a)
		rb, nb := utf8.DecodeRuneInString(b)
		if ra != rb && unicode.ToUpper(ra) != unicode.ToUpper(rb) {
			return false
		}
		a, b = a[na:], b[nb:]
	}
	return a == b
}
