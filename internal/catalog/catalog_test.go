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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillsql/quill/internal/xsql"
	"github.com/quillsql/quill/pkg/errorx"
)

func TestLoadFile(t *testing.T) {
	c, err := LoadFile("testdata/catalog.yaml")
	require.NoError(t, err)

	logs, ok := c.Table("logs")
	require.True(t, ok)
	assert.True(t, logs.IsPartitioned())
	cols, err := logs.PartitionColumns()
	require.NoError(t, err)
	assert.Equal(t, []string{"part1", "part2"}, cols)

	ps, err := c.Source().ListPartitions(logs)
	require.NoError(t, err)
	require.Len(t, ps, 3)
	assert.Equal(t, "part1=A/part2=1", logs.FormatPartition(ps[0]))
	assert.False(t, c.Source().SupportsFilterPushdown(logs))

	events, ok := c.Table("events")
	require.True(t, ok)
	assert.True(t, c.Source().SupportsFilterPushdown(events))

	plain, ok := c.Table("plain")
	require.True(t, ok)
	assert.False(t, plain.IsPartitioned())
}

func TestLoadFileBadSpec(t *testing.T) {
	_, err := LoadFile("testdata/bad_spec.yaml")
	require.Error(t, err)
	assert.True(t, errorx.IsConfError(err))
}

func TestLoadFileBadPartition(t *testing.T) {
	_, err := LoadFile("testdata/bad_partition.yaml")
	require.Error(t, err)
	assert.True(t, errorx.IsConfError(err))
	assert.Contains(t, err.Error(), "misses column part2")
}

func TestPartitionColumnsValidation(t *testing.T) {
	tests := []struct {
		name  string
		table *Table
		err   string
	}{
		{
			name: "missing column",
			table: &Table{
				Name:          "t",
				Columns:       []ColumnDef{{Name: "a", Type: "bigint"}},
				PartitionSpec: []string{"b"},
			},
			err: "table t: partition column b not in schema",
		},
		{
			name: "computed column",
			table: &Table{
				Name: "t",
				Columns: []ColumnDef{
					{Name: "a", Type: "bigint"},
					{Name: "b", Type: "string", Computed: true},
				},
				PartitionSpec: []string{"b"},
			},
			err: "table t: partition column b is computed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.table.PartitionColumns()
			require.Error(t, err)
			assert.EqualError(t, err, tt.err)
			assert.True(t, errorx.IsConfError(err))
		})
	}
}

func TestMemSourcePushFilter(t *testing.T) {
	tbl := &Table{
		Name:          "events",
		Columns:       []ColumnDef{{Name: "day", Type: "string"}},
		PartitionSpec: []string{"day"},
	}
	src := NewMemSource().SetPartitions("events", []Partition{
		{"day": "2025-01-01"},
		{"day": "2025-01-02"},
	})

	pred, err := xsql.ParseCondition("day = '2025-01-02'")
	require.NoError(t, err)

	// pushdown disabled
	_, err = src.PushFilter(tbl, pred)
	require.Error(t, err)
	assert.True(t, errorx.IsCatalogError(err))

	src.EnablePushdown("events")
	ps, err := src.PushFilter(tbl, pred)
	require.NoError(t, err)
	assert.Equal(t, []Partition{{"day": "2025-01-02"}}, ps)
}

func TestMemSourceUnknownTable(t *testing.T) {
	tbl := &Table{Name: "ghost"}
	_, err := NewMemSource().ListPartitions(tbl)
	require.Error(t, err)
	assert.True(t, errorx.IsCatalogError(err))
}
