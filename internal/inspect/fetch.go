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
	"context"
	"fmt"

	"github.com/greenmaskio/recordext/pkg/recordext"
)

// Rows - the result set the values are fetched from.
type Rows interface {
	recordext.Reader
	NextContext(ctx context.Context) bool
	Err() error
}

// Result - the fetched rows. A nil value is NULL.
type Result struct {
	Columns []string
	Rows    [][]any
}

// Fetch - read all the rows. Each value is read with the context getter, so
// a slow value fetch is interrupted by the context deadline.
func Fetch(ctx context.Context, rows Rows) (*Result, error) {
	columns := make([]string, rows.ColumnCount())
	for idx := range columns {
		name, err := rows.ColumnName(idx)
		if err != nil {
			return nil, fmt.Errorf("get column name: %w", err)
		}
		columns[idx] = name
	}

	res := &Result{Columns: columns}
	for rows.NextContext(ctx) {
		row := make([]any, len(columns))
		for idx := range columns {
			v, err := recordext.GetFieldValueOrDefaultContext[any](ctx, rows, idx, nil)
			if err != nil {
				return nil, fmt.Errorf("read column \"%s\" of row %d: %w", columns[idx], len(res.Rows), err)
			}
			row[idx] = v
		}
		res.Rows = append(res.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return res, nil
}
