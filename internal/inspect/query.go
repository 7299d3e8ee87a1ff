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
	"errors"

	"github.com/huandu/go-sqlbuilder"

	"github.com/greenmaskio/recordext/internal/domains"
)

var (
	ErrEmptyQuery = errors.New("either sql or table must be provided")
)

// BuildQuery - return the raw SQL if provided, otherwise build the select from
// the table, the columns and the limit.
func BuildQuery(cfg domains.Query, flavor sqlbuilder.Flavor) (string, []any, error) {
	if cfg.SQL != "" {
		return cfg.SQL, nil, nil
	}
	if cfg.Table == "" {
		return "", nil, ErrEmptyQuery
	}
	columns := cfg.Columns
	if len(columns) == 0 {
		columns = []string{"*"}
	}
	sb := flavor.NewSelectBuilder().
		Select(columns...).
		From(cfg.Table)
	if cfg.Limit > 0 {
		sb.Limit(cfg.Limit)
	}
	query, args := sb.Build()
	return query, args, nil
}
