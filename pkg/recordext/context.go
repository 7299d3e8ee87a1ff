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

import "context"

// GetFieldValueContext - context aware GetFieldValue. The context is
// checked before the value is fetched and passed to the record.
func GetFieldValueContext[T any](ctx context.Context, r Reader, name string) (T, error) {
	var res T
	if err := checkRecordAndName(r, name); err != nil {
		return res, err
	}
	idx, err := r.ColumnIdx(name)
	if err != nil {
		return res, err
	}
	if err = ctx.Err(); err != nil {
		return res, err
	}
	if err = r.ScanContext(ctx, idx, &res); err != nil {
		var zero T
		return zero, err
	}
	return res, nil
}

// GetFieldValueOrDefaultContext - context aware GetFieldValueOrDefault.
//
// The NULL test and the value fetch are performed one after another. If the
// context is done before or during any of them the context error is returned
// and def is never used as a fallback.
func GetFieldValueOrDefaultContext[T any](ctx context.Context, r Reader, idx int, def T) (res T, err error) {
	if err = checkRecord(r); err != nil {
		return res, err
	}
	return getFieldValueOrDefaultContext(ctx, r, idx, def)
}

func GetFieldValueOrDefaultByNameContext[T any](ctx context.Context, r Reader, name string, def T) (res T, err error) {
	if err = checkRecordAndName(r, name); err != nil {
		return res, err
	}
	idx, err := r.ColumnIdx(name)
	if err != nil {
		return res, err
	}
	return getFieldValueOrDefaultContext(ctx, r, idx, def)
}

func getFieldValueOrDefaultContext[T any](ctx context.Context, r Reader, idx int, def T) (res T, err error) {
	if err = ctx.Err(); err != nil {
		return res, err
	}
	isNull, err := r.IsNullContext(ctx, idx)
	if err != nil {
		return res, err
	}
	// The record may ignore the context, so check it once again: a cancelled
	// call must not look like a NULL.
	if err = ctx.Err(); err != nil {
		return res, err
	}
	if isNull {
		return def, nil
	}
	if err = r.ScanContext(ctx, idx, &res); err != nil {
		var zero T
		return zero, err
	}
	return res, nil
}
