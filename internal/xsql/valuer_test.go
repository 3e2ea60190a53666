// Copyright 2024 EMQ Technologies Co., Ltd.
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

package xsql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillsql/quill/pkg/ast"
)

func TestEval(t *testing.T) {
	data := MapValuer{
		"part1": "A",
		"part2": 1,
		"ratio": 2.5,
		"none":  nil,
	}
	tests := []struct {
		s      string
		result interface{}
	}{
		{"part1 = 'A'", true},
		{"part1 != 'A'", false},
		{"part1 < 'B'", true},
		{"part2 > 1", false},
		{"part2 >= 1", true},
		{"part2 + 1 = 2", true},
		{"part2 - 2 = -1", true},
		{"part2 * 4 / 2 = 2", true},
		{"ratio * 2 = 5", true},
		{"part2 < ratio", true},
		{"1 < 2", true},
		{"lower(part1) = 'a'", true},
		{"abs(0 - part2) = 1", true},
		{"part1 = 'A' AND part2 = 1", true},
		{"part1 = 'B' OR part2 = 1", true},
		{"part1 = 'B' AND part2 = 1", false},
		// three-valued logic
		{"none = 'A'", nil},
		{"none > 1", nil},
		{"missing = 1", nil},
		{"none = 'A' AND part1 = 'A'", nil},
		{"none = 'A' AND part1 = 'B'", false},
		{"none = 'A' OR part1 = 'A'", true},
		{"none = 'A' OR part1 = 'B'", nil},
	}
	for _, tt := range tests {
		got := Eval(mustParse(t, tt.s), data)
		assert.Equal(t, tt.result, got, tt.s)
	}
}

func TestEvalErrors(t *testing.T) {
	data := MapValuer{"part1": "A", "part2": 1}
	tests := []struct {
		s   string
		err string
	}{
		{"part2 / 0 = 1", "divided by zero"},
		{"part1 > 1", "invalid operation string(A) > int64(1)"},
		{"mystery(part1) = 1", "call mystery error: function mystery not found"},
	}
	for _, tt := range tests {
		got := Eval(mustParse(t, tt.s), data)
		err, ok := got.(error)
		require.True(t, ok, tt.s)
		assert.EqualError(t, err, tt.err, tt.s)
	}
}

func TestEvalTrue(t *testing.T) {
	data := MapValuer{"part1": "A", "none": nil}
	assert.True(t, EvalTrue(mustParse(t, "part1 = 'A'"), data))
	assert.False(t, EvalTrue(mustParse(t, "part1 = 'B'"), data))
	// unknown is not true
	assert.False(t, EvalTrue(mustParse(t, "none = 'A'"), data))
	// failed evaluation is not true
	assert.False(t, EvalTrue(mustParse(t, "part1 > 1"), data))
}

func mustParse(t *testing.T, s string) ast.Expr {
	t.Helper()
	e, err := ParseCondition(s)
	require.NoError(t, err)
	return e
}
