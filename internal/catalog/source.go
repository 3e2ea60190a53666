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

package catalog

import (
	"fmt"

	"github.com/quillsql/quill/internal/xsql"
	"github.com/quillsql/quill/pkg/ast"
	"github.com/quillsql/quill/pkg/errorx"
)

// Source is what the planner needs from the system that owns a table's
// partitions. ListPartitions returns the current listing in source order.
// When SupportsFilterPushdown reports true, PushFilter asks the source to
// apply the predicate natively and return the surviving listing; the caller
// trusts the result without re-validating it.
type Source interface {
	ListPartitions(table *Table) ([]Partition, error)
	SupportsFilterPushdown(table *Table) bool
	PushFilter(table *Table, predicate ast.Expr) ([]Partition, error)
}

// MemSource keeps partition listings in memory. It optionally emulates native
// filter pushdown per table.
type MemSource struct {
	partitions map[string][]Partition
	pushdown   map[string]bool
}

func NewMemSource() *MemSource {
	return &MemSource{
		partitions: make(map[string][]Partition),
		pushdown:   make(map[string]bool),
	}
}

func (s *MemSource) SetPartitions(table string, ps []Partition) *MemSource {
	s.partitions[table] = ps
	return s
}

func (s *MemSource) EnablePushdown(table string) *MemSource {
	s.pushdown[table] = true
	return s
}

func (s *MemSource) ListPartitions(table *Table) ([]Partition, error) {
	ps, ok := s.partitions[table.Name]
	if !ok {
		return nil, errorx.NewCatalogError(fmt.Sprintf("no partition listing for table %s", table.Name))
	}
	out := make([]Partition, len(ps))
	copy(out, ps)
	return out, nil
}

func (s *MemSource) SupportsFilterPushdown(table *Table) bool {
	return s.pushdown[table.Name]
}

func (s *MemSource) PushFilter(table *Table, predicate ast.Expr) ([]Partition, error) {
	if !s.pushdown[table.Name] {
		return nil, errorx.NewCatalogError(fmt.Sprintf("table %s does not accept pushed filters", table.Name))
	}
	ps, err := s.ListPartitions(table)
	if err != nil {
		return nil, err
	}
	kept := make([]Partition, 0, len(ps))
	for _, p := range ps {
		if xsql.EvalTrue(predicate, xsql.MapValuer(p)) {
			kept = append(kept, p)
		}
	}
	return kept, nil
}
