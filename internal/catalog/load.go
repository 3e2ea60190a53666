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

	"github.com/quillsql/quill/internal/conf"
	"github.com/quillsql/quill/pkg/errorx"
)

// Catalog binds the table definitions to the source owning their partitions.
type Catalog struct {
	tables map[string]*Table
	source Source
}

func NewCatalog(source Source, tables ...*Table) *Catalog {
	c := &Catalog{tables: make(map[string]*Table), source: source}
	for _, t := range tables {
		c.tables[t.Name] = t
	}
	return c
}

func (c *Catalog) Table(name string) (*Table, bool) {
	t, ok := c.tables[name]
	return t, ok
}

func (c *Catalog) Source() Source {
	return c.source
}

func (c *Catalog) Tables() []*Table {
	out := make([]*Table, 0, len(c.tables))
	for _, t := range c.tables {
		out = append(out, t)
	}
	return out
}

type fileColumn struct {
	Name     string `mapstructure:"name"`
	Type     string `mapstructure:"type"`
	Computed bool   `mapstructure:"computed"`
}

type fileTable struct {
	Columns     []fileColumn             `mapstructure:"columns"`
	PartitionBy []string                 `mapstructure:"partitionBy"`
	Partitions  []map[string]interface{} `mapstructure:"partitions"`
	Pushdown    bool                     `mapstructure:"pushdown"`
}

type fileCatalog struct {
	Tables map[string]fileTable `mapstructure:"tables"`
}

// LoadFile reads a yaml catalog file and builds the catalog with an in-memory
// source holding the declared partition listings. Partition specs are
// validated here so that a corrupt file fails before any plan rewrite runs.
func LoadFile(path string) (*Catalog, error) {
	fc := &fileCatalog{}
	if err := conf.LoadConfigFromPath(path, fc); err != nil {
		return nil, err
	}
	src := NewMemSource()
	c := &Catalog{tables: make(map[string]*Table), source: src}
	for name, ft := range fc.Tables {
		t := &Table{Name: name, PartitionSpec: ft.PartitionBy}
		for _, col := range ft.Columns {
			t.Columns = append(t.Columns, ColumnDef{Name: col.Name, Type: col.Type, Computed: col.Computed})
		}
		if _, err := t.PartitionColumns(); err != nil {
			return nil, err
		}
		ps := make([]Partition, 0, len(ft.Partitions))
		for _, p := range ft.Partitions {
			for _, pc := range ft.PartitionBy {
				if _, ok := p[pc]; !ok {
					return nil, errorx.NewConfError(fmt.Sprintf("table %s: partition %v misses column %s", name, p, pc))
				}
			}
			ps = append(ps, Partition(p))
		}
		src.SetPartitions(name, ps)
		if ft.Pushdown {
			src.EnablePushdown(name)
		}
		c.tables[name] = t
	}
	return c, nil
}
