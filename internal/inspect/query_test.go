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
	"strings"
	"testing"

	"github.com/huandu/go-sqlbuilder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenmaskio/recordext/internal/domains"
)

func TestBuildQuery(t *testing.T) {
	t.Run("raw sql wins", func(t *testing.T) {
		query, args, err := BuildQuery(domains.Query{
			SQL:   "SELECT 1",
			Table: "users",
			Limit: 10,
		}, sqlbuilder.PostgreSQL)
		require.NoError(t, err)
		assert.Equal(t, "SELECT 1", query)
		assert.Empty(t, args)
	})

	t.Run("all columns", func(t *testing.T) {
		query, args, err := BuildQuery(domains.Query{Table: "users"}, sqlbuilder.MySQL)
		require.NoError(t, err)
		assert.Equal(t, "SELECT * FROM users", query)
		assert.Empty(t, args)
	})

	t.Run("columns and limit", func(t *testing.T) {
		query, _, err := BuildQuery(domains.Query{
			Table:   "users",
			Columns: []string{"id", "name"},
			Limit:   10,
		}, sqlbuilder.PostgreSQL)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(query, "SELECT id, name FROM users LIMIT"), query)
	})

	t.Run("empty", func(t *testing.T) {
		_, _, err := BuildQuery(domains.Query{}, sqlbuilder.PostgreSQL)
		require.ErrorIs(t, err, ErrEmptyQuery)
	})
}
