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

import "strings"

// Explain renders the plan tree with two-space indentation per level.
func Explain(p LogicalPlan) string {
	var sb strings.Builder
	explain(p, 0, &sb)
	return sb.String()
}

func explain(p LogicalPlan, level int, sb *strings.Builder) {
	sb.WriteString(strings.Repeat("  ", level))
	sb.WriteString(p.ExplainInfo())
	sb.WriteString("\n")
	for _, child := range p.Children() {
		explain(child, level+1, sb)
	}
}
