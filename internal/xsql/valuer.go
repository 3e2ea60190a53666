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

package xsql

import (
	"fmt"

	"github.com/spf13/cast"

	"github.com/quillsql/quill/internal/function"
	"github.com/quillsql/quill/pkg/ast"
)

// Valuer resolves a column reference to its value. A false return means the
// value is unknown, which is distinct from a present nil only in intent: both
// evaluate as SQL null.
type Valuer interface {
	Value(key string) (interface{}, bool)
}

// MapValuer resolves references against a plain map.
type MapValuer map[string]interface{}

func (mv MapValuer) Value(key string) (interface{}, bool) {
	v, ok := mv[key]
	return v, ok
}

// Eval evaluates an expression against the valuer. The result is the value,
// an error value describing an evaluation failure, or nil for unknown.
// Three-valued logic applies throughout: comparisons against null are
// unknown, AND/OR follow Kleene semantics.
func Eval(expr ast.Expr, m Valuer) interface{} {
	eval := ValuerEval{Valuer: m}
	return eval.Eval(expr)
}

// EvalTrue reports whether the expression definitely evaluates to true.
// Unknown and error outcomes report false.
func EvalTrue(expr ast.Expr, m Valuer) bool {
	r, ok := Eval(expr, m).(bool)
	return ok && r
}

// ValuerEval will evaluate an expression using the Valuer.
type ValuerEval struct {
	Valuer Valuer
}

func (v *ValuerEval) Eval(expr ast.Expr) interface{} {
	if expr == nil {
		return nil
	}
	switch expr := expr.(type) {
	case *ast.BinaryExpr:
		return v.evalBinaryExpr(expr)
	case *ast.IntegerLiteral:
		return int64(expr.Val)
	case *ast.NumberLiteral:
		return expr.Val
	case *ast.StringLiteral:
		return expr.Val
	case *ast.BooleanLiteral:
		return expr.Val
	case *ast.ParenExpr:
		return v.Eval(expr.Expr)
	case *ast.FieldRef:
		if val, ok := v.Valuer.Value(expr.Name); ok {
			return convertNum(val)
		}
		return nil
	case *ast.Call:
		args := make([]interface{}, len(expr.Args))
		for i, arg := range expr.Args {
			args[i] = v.Eval(arg)
			if e, ok := args[i].(error); ok {
				return e
			}
		}
		val, err := function.Exec(expr.Name, args)
		if err != nil {
			return fmt.Errorf("call %s error: %v", expr.Name, err)
		}
		return convertNum(val)
	}
	return fmt.Errorf("unsupported expression %v", expr)
}

func (v *ValuerEval) evalBinaryExpr(expr *ast.BinaryExpr) interface{} {
	lhs := v.Eval(expr.LHS)
	switch expr.OP {
	case ast.AND, ast.OR:
		return evalLogical(lhs, v.Eval(expr.RHS), expr.OP)
	}
	if e, ok := lhs.(error); ok {
		return e
	}
	rhs := v.Eval(expr.RHS)
	if e, ok := rhs.(error); ok {
		return e
	}
	if expr.OP.IsComparison() {
		if lhs == nil || rhs == nil {
			return nil
		}
		return compare(lhs, rhs, expr.OP)
	}
	if lhs == nil || rhs == nil {
		return nil
	}
	return arith(lhs, rhs, expr.OP)
}

// evalLogical implements Kleene AND/OR: a definite false (AND) or true (OR)
// on either side decides the result regardless of the other side being
// unknown or failed.
func evalLogical(lhs, rhs interface{}, op ast.Token) interface{} {
	lb, lok := lhs.(bool)
	rb, rok := rhs.(bool)
	if op == ast.AND {
		if (lok && !lb) || (rok && !rb) {
			return false
		}
		if lok && rok {
			return true
		}
	} else {
		if (lok && lb) || (rok && rb) {
			return true
		}
		if lok && rok {
			return false
		}
	}
	if e, ok := lhs.(error); ok {
		return e
	}
	if e, ok := rhs.(error); ok {
		return e
	}
	return nil
}

func compare(lhs, rhs interface{}, op ast.Token) interface{} {
	if isNumeric(lhs) && isNumeric(rhs) {
		lf, _ := cast.ToFloat64E(lhs)
		rf, _ := cast.ToFloat64E(rhs)
		switch op {
		case ast.EQ:
			return lf == rf
		case ast.NEQ:
			return lf != rf
		case ast.LT:
			return lf < rf
		case ast.LTE:
			return lf <= rf
		case ast.GT:
			return lf > rf
		case ast.GTE:
			return lf >= rf
		}
	}
	switch l := lhs.(type) {
	case string:
		r, ok := rhs.(string)
		if !ok {
			return invalidOpError(lhs, op, rhs)
		}
		switch op {
		case ast.EQ:
			return l == r
		case ast.NEQ:
			return l != r
		case ast.LT:
			return l < r
		case ast.LTE:
			return l <= r
		case ast.GT:
			return l > r
		case ast.GTE:
			return l >= r
		}
	case bool:
		r, ok := rhs.(bool)
		if !ok {
			return invalidOpError(lhs, op, rhs)
		}
		switch op {
		case ast.EQ:
			return l == r
		case ast.NEQ:
			return l != r
		}
	}
	return invalidOpError(lhs, op, rhs)
}

func arith(lhs, rhs interface{}, op ast.Token) interface{} {
	li, lok := lhs.(int64)
	ri, rok := rhs.(int64)
	if lok && rok {
		switch op {
		case ast.ADD:
			return li + ri
		case ast.SUB:
			return li - ri
		case ast.MUL:
			return li * ri
		case ast.DIV:
			if ri == 0 {
				return fmt.Errorf("divided by zero")
			}
			return li / ri
		case ast.MOD:
			if ri == 0 {
				return fmt.Errorf("divided by zero")
			}
			return li % ri
		}
		return invalidOpError(lhs, op, rhs)
	}
	if !isNumeric(lhs) || !isNumeric(rhs) {
		return invalidOpError(lhs, op, rhs)
	}
	lf, _ := cast.ToFloat64E(lhs)
	rf, _ := cast.ToFloat64E(rhs)
	switch op {
	case ast.ADD:
		return lf + rf
	case ast.SUB:
		return lf - rf
	case ast.MUL:
		return lf * rf
	case ast.DIV:
		if rf == 0 {
			return fmt.Errorf("divided by zero")
		}
		return lf / rf
	}
	return invalidOpError(lhs, op, rhs)
}

func isNumeric(v interface{}) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return true
	}
	return false
}

// convertNum widens platform int kinds so that the rest of the evaluator only
// sees int64 and float64.
func convertNum(v interface{}) interface{} {
	switch v := v.(type) {
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case float32:
		return float64(v)
	}
	return v
}

func invalidOpError(lhs interface{}, op ast.Token, rhs interface{}) error {
	return fmt.Errorf("invalid operation %[1]T(%[1]v) %s %[3]T(%[3]v)", lhs, ast.Tokens[op], rhs)
}
