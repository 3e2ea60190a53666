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

import (
	"fmt"
	"strings"

	"github.com/quillsql/quill/internal/catalog"
	"github.com/quillsql/quill/pkg/ast"
)

type DataSourcePlan struct {
	baseLogicalPlan
	table  *catalog.Table
	source catalog.Source
	// set by the partition prune rule
	partitions   []catalog.Partition
	pushedFilter ast.Expr
	pruned       bool
}

func (p DataSourcePlan) Init() *DataSourcePlan {
	p.baseLogicalPlan.self = &p
	return &p
}

// Scan builds a table scan node.
func Scan(table *catalog.Table, source catalog.Source) *DataSourcePlan {
	return DataSourcePlan{table: table, source: source}.Init()
}

func (p *DataSourcePlan) Table() *catalog.Table {
	return p.table
}

func (p *DataSourcePlan) Partitions() []catalog.Partition {
	return p.partitions
}

func (p *DataSourcePlan) PushedFilter() ast.Expr {
	return p.pushedFilter
}

func (p *DataSourcePlan) Pruned() bool {
	return p.pruned
}

// restricted reports whether the scan already carries a partition restriction
// from a prior rule firing.
func (p *DataSourcePlan) restricted() bool {
	return p.pruned || p.partitions != nil || p.pushedFilter != nil
}

func (p *DataSourcePlan) ExplainInfo() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "DataSource(%s", p.table.Name)
	if p.pushedFilter != nil {
		fmt.Fprintf(&sb, ", pushed=[%s]", p.pushedFilter.String())
	}
	if p.pruned {
		parts := make([]string, 0, len(p.partitions))
		for _, part := range p.partitions {
			parts = append(parts, p.table.FormatPartition(part))
		}
		fmt.Fprintf(&sb, ", partitions=[%s]", strings.Join(parts, ", "))
	}
	sb.WriteString(")")
	return sb.String()
}
