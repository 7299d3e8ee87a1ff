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
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// RowFilter - a compiled boolean expression evaluated against the fetched rows.
// The columns are available by name, NULL is nil. Columns that are not valid
// identifiers are accessible via $env["column name"].
type RowFilter struct {
	program *vm.Program
	filter  string
}

// NewRowFilter - compile the filter. Empty filter accepts every row.
func NewRowFilter(filter string) (*RowFilter, error) {
	if filter == "" {
		return &RowFilter{}, nil
	}
	log.Debug().
		Str("Filter", filter).
		Msg("compiling row filter")
	program, err := expr.Compile(filter, expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("unable to compile filter: %w", err)
	}
	return &RowFilter{
		program: program,
		filter:  filter,
	}, nil
}

// Apply - keep only the rows the filter returns true for.
func (f *RowFilter) Apply(res *Result) (*Result, error) {
	if f.program == nil {
		return res, nil
	}
	filtered := &Result{Columns: res.Columns}
	for rowIdx, row := range res.Rows {
		ok, err := f.evaluate(res.Columns, row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowIdx, err)
		}
		if ok {
			filtered.Rows = append(filtered.Rows, row)
		}
	}
	return filtered, nil
}

func (f *RowFilter) evaluate(columns []string, row []any) (bool, error) {
	env := make(map[string]any, len(columns)+1)
	env["null"] = nil
	for idx, name := range columns {
		env[name] = exprValue(row[idx])
	}
	output, err := expr.Run(f.program, env)
	if err != nil {
		return false, fmt.Errorf("unable to evaluate filter: %w", err)
	}
	cond, ok := output.(bool)
	if !ok {
		return false, fmt.Errorf("filter should return boolean, got (%T) and value %+v", output, output)
	}
	return cond, nil
}

// exprValue - convert the value to the types expr operates on: nil, bool,
// int, float64, string and time.
func exprValue(v any) any {
	switch vv := v.(type) {
	case int64:
		return int(vv)
	case int32:
		return int(vv)
	case int16:
		return int(vv)
	case int8:
		return int(vv)
	case uint8:
		return int(vv)
	case float32:
		return float64(vv)
	case decimal.Decimal:
		return vv.InexactFloat64()
	case []byte:
		return string(vv)
	case uuid.UUID:
		return vv.String()
	case [16]byte:
		return uuid.UUID(vv).String()
	case time.Time:
		return vv
	}
	return v
}
