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

package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExprString(t *testing.T) {
	e := &BinaryExpr{
		OP: AND,
		LHS: &ParenExpr{Expr: &BinaryExpr{
			OP:  OR,
			LHS: &BinaryExpr{OP: GT, LHS: &FieldRef{Name: "id"}, RHS: &IntegerLiteral{Val: 2}},
			RHS: &BinaryExpr{OP: EQ, LHS: &FieldRef{Name: "part1"}, RHS: &StringLiteral{Val: "A"}},
		}},
		RHS: &BinaryExpr{
			OP:  LTE,
			LHS: &Call{Name: "abs", Args: []Expr{&FieldRef{Name: "part2"}}},
			RHS: &NumberLiteral{Val: 1.5},
		},
	}
	assert.Equal(t, "(id > 2 OR part1 = 'A') AND abs(part2) <= 1.5", e.String())
}

func TestWalkCollectsFieldRefs(t *testing.T) {
	e := &BinaryExpr{
		OP:  AND,
		LHS: &Call{Name: "lower", Args: []Expr{&FieldRef{Name: "a"}}},
		RHS: &ParenExpr{Expr: &BinaryExpr{OP: EQ, LHS: &FieldRef{Name: "b"}, RHS: &IntegerLiteral{Val: 1}}},
	}
	var names []string
	WalkFunc(e, func(n Node) bool {
		if f, ok := n.(*FieldRef); ok {
			names = append(names, f.Name)
		}
		return true
	})
	assert.Equal(t, []string{"a", "b"}, names)
}

func TestWalkShortCircuit(t *testing.T) {
	e := &BinaryExpr{
		OP:  AND,
		LHS: &ParenExpr{Expr: &FieldRef{Name: "a"}},
		RHS: &FieldRef{Name: "b"},
	}
	var visited int
	WalkFunc(e, func(n Node) bool {
		visited++
		_, stop := n.(*ParenExpr)
		return !stop
	})
	// the paren subtree is not descended into
	assert.Equal(t, 3, visited)
}
