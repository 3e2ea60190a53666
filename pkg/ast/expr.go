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

package ast

import (
	"fmt"
	"strconv"
	"strings"
)

type Node interface {
	node()
}

type Expr interface {
	Node
	expr()
	String() string
}

type Literal interface {
	Expr
	literal()
}

type BooleanLiteral struct {
	Val bool
}

type IntegerLiteral struct {
	Val int
}

type NumberLiteral struct {
	Val float64
}

type StringLiteral struct {
	Val string
}

func (bl *BooleanLiteral) expr()    {}
func (bl *BooleanLiteral) literal() {}
func (bl *BooleanLiteral) node()    {}
func (bl *BooleanLiteral) String() string {
	return strconv.FormatBool(bl.Val)
}

func (il *IntegerLiteral) expr()    {}
func (il *IntegerLiteral) literal() {}
func (il *IntegerLiteral) node()    {}
func (il *IntegerLiteral) String() string {
	return strconv.Itoa(il.Val)
}

func (nl *NumberLiteral) expr()    {}
func (nl *NumberLiteral) literal() {}
func (nl *NumberLiteral) node()    {}
func (nl *NumberLiteral) String() string {
	return strconv.FormatFloat(nl.Val, 'f', -1, 64)
}

func (sl *StringLiteral) expr()    {}
func (sl *StringLiteral) literal() {}
func (sl *StringLiteral) node()    {}
func (sl *StringLiteral) String() string {
	return "'" + sl.Val + "'"
}

// FieldRef refers to a named column of the scanned relation.
type FieldRef struct {
	Name string
}

func (fr *FieldRef) expr() {}
func (fr *FieldRef) node() {}
func (fr *FieldRef) String() string {
	return fr.Name
}

type Call struct {
	Name string
	Args []Expr
}

func (c *Call) expr()    {}
func (c *Call) literal() {}
func (c *Call) node()    {}
func (c *Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}
	return c.Name + "(" + strings.Join(args, ", ") + ")"
}

type BinaryExpr struct {
	OP  Token
	LHS Expr
	RHS Expr
}

func (be *BinaryExpr) expr() {}
func (be *BinaryExpr) node() {}
func (be *BinaryExpr) String() string {
	return fmt.Sprintf("%s %s %s", be.LHS.String(), be.OP.String(), be.RHS.String())
}

type ParenExpr struct {
	Expr Expr
}

func (pe *ParenExpr) expr() {}
func (pe *ParenExpr) node() {}
func (pe *ParenExpr) String() string {
	return "(" + pe.Expr.String() + ")"
}
