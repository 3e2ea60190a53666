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

package planner

import (
	"github.com/quillsql/quill/internal/catalog"
	"github.com/quillsql/quill/internal/conf"
	"github.com/quillsql/quill/internal/function"
	"github.com/quillsql/quill/internal/xsql"
	"github.com/quillsql/quill/pkg/ast"
	"github.com/quillsql/quill/pkg/errorx"
)

// partitionPrune rewrites a Filter over a scan of a partitioned table into a
// scan restricted to the partitions the filter can actually hit, keeping the
// part of the filter that partition metadata cannot answer as a residual
// filter above the new scan.
type partitionPrune struct{}

func (r *partitionPrune) name() string {
	return "partitionPrune"
}

func (r *partitionPrune) optimize(lp LogicalPlan) (LogicalPlan, error) {
	return r.rewrite(lp)
}

func (r *partitionPrune) rewrite(lp LogicalPlan) (LogicalPlan, error) {
	if f, ok := lp.(*FilterPlan); ok && len(f.Children()) == 1 {
		if ds, ok := f.Children()[0].(*DataSourcePlan); ok {
			return r.pruneFilterScan(f, ds)
		}
	}
	children := lp.Children()
	newChildren := make([]LogicalPlan, len(children))
	changed := false
	for i, child := range children {
		newChild, err := r.rewrite(child)
		if err != nil {
			return nil, err
		}
		newChildren[i] = newChild
		if newChild != child {
			changed = true
		}
	}
	if changed {
		lp.SetChildren(newChildren)
	}
	return lp, nil
}

// pruneFilterScan fires the rule on one matched fragment. The original
// fragment is returned untouched whenever the rule is not applicable or the
// catalog cannot be reached; only an inconsistent partition spec is fatal.
func (r *partitionPrune) pruneFilterScan(f *FilterPlan, ds *DataSourcePlan) (LogicalPlan, error) {
	t := ds.table
	if t == nil || !t.IsPartitioned() || ds.restricted() {
		return f, nil
	}
	cols, err := t.PartitionColumns()
	if err != nil {
		return nil, err
	}
	safe := make(map[string]bool, len(cols))
	for _, c := range cols {
		safe[c] = true
	}
	if !hasColumnRef(f.condition, safe) {
		return f, nil
	}

	safePred, residual := splitPredicate(f.condition, safe)
	if safePred == nil {
		return f, nil
	}

	res, err := prunePartitions(ds.source, t, safePred)
	if err != nil {
		if errorx.IsRecoverAbleError(err) {
			conf.Log.Warnf("partition pruning of table %s abandoned: %v", t.Name, err)
			return f, nil
		}
		return nil, err
	}

	newDs := DataSourcePlan{
		table:      t,
		source:     ds.source,
		partitions: res.Partitions,
		pruned:     true,
	}
	if res.Delegated {
		newDs.pushedFilter = safePred
	}
	scan := newDs.Init()
	if residual == nil {
		return scan, nil
	}
	return Filter(residual, scan), nil
}

// classifyExpr reports whether expr depends only on the safe columns and
// contains nothing that can vary within one partition: literals are safe,
// column references are safe iff listed, function calls are safe iff declared
// deterministic with safe arguments. Node kinds the classifier does not know
// are never safe.
func classifyExpr(expr ast.Expr, safe map[string]bool) bool {
	switch e := expr.(type) {
	case *ast.IntegerLiteral, *ast.NumberLiteral, *ast.StringLiteral, *ast.BooleanLiteral:
		return true
	case *ast.FieldRef:
		return safe[e.Name]
	case *ast.ParenExpr:
		return classifyExpr(e.Expr, safe)
	case *ast.BinaryExpr:
		return classifyExpr(e.LHS, safe) && classifyExpr(e.RHS, safe)
	case *ast.Call:
		if !function.IsDeterministic(e.Name) {
			return false
		}
		for _, arg := range e.Args {
			if !classifyExpr(arg, safe) {
				return false
			}
		}
		return true
	}
	return false
}

// splitPredicate separates the filter into the conjuncts answerable from
// partition metadata and the rest. The conjunction of the two results is
// equivalent to the input. A disjunction is kept whole: it goes to the safe
// side only when every branch is safe, because pruning on one branch alone
// could drop partitions whose rows satisfy another branch.
func splitPredicate(filter ast.Expr, safe map[string]bool) (safePred, residual ast.Expr) {
	for _, c := range splitConjuncts(filter) {
		if classifyExpr(c, safe) {
			safePred = combine(safePred, c)
		} else {
			residual = combine(residual, c)
		}
	}
	return safePred, residual
}

// splitConjuncts flattens nested ANDs into the conjunct list. A parenthesized
// group is opened only when it is itself a conjunction; anything else keeps
// its paren node so the grouping survives re-rendering.
func splitConjuncts(expr ast.Expr) []ast.Expr {
	switch e := expr.(type) {
	case *ast.BinaryExpr:
		if e.OP == ast.AND {
			return append(splitConjuncts(e.LHS), splitConjuncts(e.RHS)...)
		}
	case *ast.ParenExpr:
		if be, ok := e.Expr.(*ast.BinaryExpr); ok && be.OP == ast.AND {
			return splitConjuncts(be)
		}
	}
	return []ast.Expr{expr}
}

// PruneResult is the outcome of restricting one scan: the surviving partition
// listing and whether the source applied the predicate itself.
type PruneResult struct {
	Partitions []catalog.Partition
	Delegated  bool
}

// prunePartitions evaluates the partition-safe predicate against the table's
// partition listing, or hands it to the source when the source prunes
// natively. Partitions whose evaluation is unknown are excluded.
func prunePartitions(src catalog.Source, t *catalog.Table, pred ast.Expr) (*PruneResult, error) {
	if src.SupportsFilterPushdown(t) {
		ps, err := src.PushFilter(t, pred)
		if err != nil {
			return nil, asCatalogError(err)
		}
		return &PruneResult{Partitions: ps, Delegated: true}, nil
	}
	ps, err := src.ListPartitions(t)
	if err != nil {
		return nil, asCatalogError(err)
	}
	kept := make([]catalog.Partition, 0, len(ps))
	for _, p := range ps {
		if xsql.EvalTrue(pred, xsql.MapValuer(p)) {
			kept = append(kept, p)
		}
	}
	return &PruneResult{Partitions: kept}, nil
}

func asCatalogError(err error) error {
	if _, ok := errorx.GetErrorCode(err); ok {
		return err
	}
	return errorx.NewCatalogError(err.Error())
}
