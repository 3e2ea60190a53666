// Copyright 2024-2025 EMQ Technologies Co., Ltd.
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

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/quillsql/quill/internal/catalog"
	"github.com/quillsql/quill/internal/conf"
	"github.com/quillsql/quill/internal/planner"
	"github.com/quillsql/quill/internal/xsql"
)

var Version = "unknown"

func main() {
	app := cli.NewApp()
	app.Name = "quill"
	app.Usage = "inspect partition pruning of filter-over-scan plans"
	app.Version = Version

	commonFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "conf, c",
			Usage: "path to the catalog yaml file",
			Value: "etc/catalog.yaml",
		},
		cli.StringFlag{
			Name:  "table, t",
			Usage: "name of the scanned table",
		},
		cli.StringFlag{
			Name:  "where, w",
			Usage: "filter condition over the scan",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:  "explain",
			Usage: "print the optimized plan for a filter over a table scan",
			Flags: commonFlags,
			Action: func(c *cli.Context) error {
				p, _, err := buildAndOptimize(c)
				if err != nil {
					return err
				}
				fmt.Print(planner.Explain(p))
				return nil
			},
		},
		{
			Name:  "partitions",
			Usage: "print the partitions the optimized scan will read",
			Flags: commonFlags,
			Action: func(c *cli.Context) error {
				p, t, err := buildAndOptimize(c)
				if err != nil {
					return err
				}
				scan := findScan(p)
				if scan == nil || !scan.Pruned() {
					fmt.Println("scan not pruned, all partitions read")
					return nil
				}
				for _, part := range scan.Partitions() {
					fmt.Println(t.FormatPartition(part))
				}
				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		conf.Log.Fatal(err)
	}
}

func buildAndOptimize(c *cli.Context) (planner.LogicalPlan, *catalog.Table, error) {
	cat, err := catalog.LoadFile(c.String("conf"))
	if err != nil {
		return nil, nil, err
	}
	t, ok := cat.Table(c.String("table"))
	if !ok {
		return nil, nil, fmt.Errorf("table %q not in catalog", c.String("table"))
	}
	var p planner.LogicalPlan = planner.Scan(t, cat.Source())
	if w := c.String("where"); w != "" {
		cond, err := xsql.ParseCondition(w)
		if err != nil {
			return nil, nil, err
		}
		p = planner.Filter(cond, p)
	}
	p, err = planner.Optimize(p)
	if err != nil {
		return nil, nil, err
	}
	return p, t, nil
}

func findScan(p planner.LogicalPlan) *planner.DataSourcePlan {
	if ds, ok := p.(*planner.DataSourcePlan); ok {
		return ds
	}
	for _, child := range p.Children() {
		if ds := findScan(child); ds != nil {
			return ds
		}
	}
	return nil
}
