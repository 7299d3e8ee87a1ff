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
// Package recordext provides null-safe accessors for a row of a result set.
//
// Every accessor follows the same sequence: validate the arguments, resolve
// the column name into its position (by-name variants only), ask the record
// whether the value is NULL and either return the provided default or delegate
// to the typed getter of the record.
//
// The record is an external handle (see Record and Reader). The accessors
// never open, advance or close it and keep no state between calls. Errors of
// the record are returned unchanged, so they can be checked with errors.Is
// against ErrColumnNotFound, ErrColumnIndexOutOfRange, ErrInvalidCast and
// ErrNullValue. Invalid arguments are reported with *ArgumentError that
// matches ErrInvalidArgument.
//
// The nullable family returns pointers, nil meaning NULL:
//
//	age, err := recordext.GetNullableInt32ByName(r, "age", nil)
//
// The generic family is parametrized by the result type and uses Record.Scan:
//
//	score, err := recordext.GetFieldValueOrDefaultByName[*int32](r, "score", &fallback)
//
// The context variants take a Reader and fail with the context error once
// the context is done. NewContextReader turns any Record into a Reader.
package recordext
