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
	"reflect"
	"strings"
)

func checkRecord(r any) error {
	if r == nil {
		return newArgumentError(ArgRecord, "is nil")
	}
	// A typed nil pointer stored in the interface is nil for the caller as well.
	v := reflect.ValueOf(r)
	if v.Kind() == reflect.Pointer && v.IsNil() {
		return newArgumentError(ArgRecord, "is nil")
	}
	return nil
}

func checkName(name string) error {
	if name == "" {
		return newArgumentError(ArgName, "is empty")
	}
	if strings.TrimSpace(name) == "" {
		return newArgumentError(ArgName, "consists only of white-space characters")
	}
	return nil
}

func checkRecordAndName(r any, name string) error {
	if err := checkRecord(r); err != nil {
		return err
	}
	return checkName(name)
}
