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
	"strings"

	"github.com/quillsql/quill/pkg/errorx"
)

type ColumnDef struct {
	Name string `mapstructure:"name"`
	Type string `mapstructure:"type"`
	// Computed marks a virtual column derived from other columns. Computed
	// columns can never serve as partition columns.
	Computed bool `mapstructure:"computed"`
}

// Partition identifies one physical partition by the concrete values of all
// partition columns.
type Partition map[string]interface{}

type Table struct {
	Name          string
	Columns       []ColumnDef
	PartitionSpec []string
}

func (t *Table) Column(name string) (ColumnDef, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return ColumnDef{}, false
}

func (t *Table) IsPartitioned() bool {
	return len(t.PartitionSpec) > 0
}

// PartitionColumns returns the partition column names after checking them
// against the schema. A spec column that is missing or computed means the
// catalog itself is corrupt, reported as a ConfError.
func (t *Table) PartitionColumns() ([]string, error) {
	for _, name := range t.PartitionSpec {
		c, ok := t.Column(name)
		if !ok {
			return nil, errorx.NewConfError(fmt.Sprintf("table %s: partition column %s not in schema", t.Name, name))
		}
		if c.Computed {
			return nil, errorx.NewConfError(fmt.Sprintf("table %s: partition column %s is computed", t.Name, name))
		}
	}
	return t.PartitionSpec, nil
}

// FormatPartition renders p in partition spec order, e.g. part1=A/part2=1.
func (t *Table) FormatPartition(p Partition) string {
	parts := make([]string, 0, len(t.PartitionSpec))
	for _, name := range t.PartitionSpec {
		parts = append(parts, fmt.Sprintf("%s=%v", name, p[name]))
	}
	return strings.Join(parts, "/")
}
