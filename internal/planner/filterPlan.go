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

type FilterPlan struct {
	baseLogicalPlan
	condition ast.Expr
}

func (p FilterPlan) Init() *FilterPlan {
	p.baseLogicalPlan.self = &p
	return &p
}

// Filter builds a filter node over child.
func Filter(condition ast.Expr, child LogicalPlan) *FilterPlan {
	f := FilterPlan{condition: condition}.Init()
	f.SetChildren([]LogicalPlan{child})
	return f
}

func (p *FilterPlan) Condition() ast.Expr {
	return p.condition
}

func (p *FilterPlan) ExplainInfo() string {
	return "Filter(" + p.condition.String() + ")"
}
