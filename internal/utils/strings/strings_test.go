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

package strings

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapString(t *testing.T) {
	original := "1234567890"
	maxLength := 7

	strs := strings.Split(WrapString(original, maxLength), "\n")
	require.Len(t, strs, 2)
	require.Len(t, strs[0], 7)
	require.Len(t, strs[1], 3)
}

func TestWrapString_Words(t *testing.T) {
	assert.Equal(t, "Optional\nText", WrapString("Optional Text", 10))
	assert.Equal(t, "Jane Smith", WrapString("Jane Smith", 10))
}

func TestWrapString_Runes(t *testing.T) {
	strs := strings.Split(WrapString("ééééé", 2), "\n")
	assert.Equal(t, []string{"éé", "éé", "é"}, strs)
}

func TestWrapString_Disabled(t *testing.T) {
	assert.Equal(t, "1234567890", WrapString("1234567890", 0))
}
