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

package inspect

import (
	"fmt"
	"io"

	"github.com/greenmaskio/recordext/pkg/recordext"
)

type ColumnPresence struct {
	Name   string
	Exists bool
}

// HasColumns - check every provided name against the columns of the result set.
func HasColumns(r recordext.Columns, names []string) ([]ColumnPresence, error) {
	res := make([]ColumnPresence, 0, len(names))
	for _, name := range names {
		exists, err := recordext.HasColumn(r, name)
		if err != nil {
			return nil, fmt.Errorf("check column \"%s\": %w", name, err)
		}
		res = append(res, ColumnPresence{Name: name, Exists: exists})
	}
	return res, nil
}

func RenderColumnPresence(w io.Writer, presence []ColumnPresence) error {
	for _, p := range presence {
		if _, err := fmt.Fprintf(w, "%s\t%t\n", p.Name, p.Exists); err != nil {
			return err
		}
	}
	return nil
}
