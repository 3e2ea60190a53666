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

package planner

import "github.com/quillsql/quill/pkg/ast"

func combine(l ast.Expr, r ast.Expr) ast.Expr {
	if l != nil && r != nil {
		return &ast.BinaryExpr{
			OP:  ast.AND,
			LHS: l,
			RHS: r,
		}
	} else if l != nil {
		return l
	} else {
		return r
	}
}

func hasColumnRef(expr ast.Expr, cols map[string]bool) bool {
	found := false
	ast.WalkFunc(expr, func(n ast.Node) bool {
		if f, ok := n.(*ast.FieldRef); ok && cols[f.Name] {
			found = true
			return false
		}
		return true
	})
	return found
}
