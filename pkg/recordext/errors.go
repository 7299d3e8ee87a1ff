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
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument       = errors.New("invalid argument")
	ErrColumnNotFound        = errors.New("column not found")
	ErrColumnIndexOutOfRange = errors.New("column index out of range")
	ErrInvalidCast           = errors.New("invalid cast")
	ErrNullValue             = errors.New("value is null")
)

const (
	ArgRecord = "record"
	ArgName   = "name"
)

// ArgumentError - the caller passed a nil record or an empty column name.
type ArgumentError struct {
	Arg    string
	Reason string
}

func newArgumentError(arg, reason string) *ArgumentError {
	return &ArgumentError{
		Arg:    arg,
		Reason: reason,
	}
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: argument \"%s\" %s", ErrInvalidArgument, e.Arg, e.Reason)
}

func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}
