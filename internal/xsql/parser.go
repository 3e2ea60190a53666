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
	"io"
	"strconv"
	"strings"

	"github.com/quillsql/quill/pkg/ast"
	"github.com/quillsql/quill/pkg/errorx"
)

// Parser parses a boolean condition expression, the grammar of a WHERE clause
// body: literals, column references, function calls, arithmetic, comparisons
// and AND/OR with the usual precedence.
type Parser struct {
	s *Scanner

	i   int // buffer index
	n   int // buffer char count
	buf [3]struct {
		tok ast.Token
		lit string
	}
}

func NewParser(r io.Reader) *Parser {
	return &Parser{s: NewScanner(r)}
}

// ParseCondition parses the full input as one condition expression.
func ParseCondition(condition string) (ast.Expr, error) {
	p := NewParser(strings.NewReader(condition))
	expr, err := p.ParseExpr()
	if err != nil {
		return nil, errorx.NewParserError(err.Error())
	}
	if tok, lit := p.scanIgnoreWhitespace(); tok != ast.EOF {
		return nil, errorx.NewParserError(fmt.Sprintf("found %q, expected EOF", lit))
	}
	return expr, nil
}

func (p *Parser) scan() (tok ast.Token, lit string) {
	if p.n > 0 {
		p.n--
		return p.curr()
	}

	tok, lit = p.s.Scan()

	if tok != ast.WS && tok != ast.COMMENT {
		p.i = (p.i + 1) % len(p.buf)
		buf := &p.buf[p.i]
		buf.tok, buf.lit = tok, lit
	}

	return
}

func (p *Parser) curr() (ast.Token, string) {
	i := (p.i - p.n + len(p.buf)) % len(p.buf)
	buf := &p.buf[i]
	return buf.tok, buf.lit
}

func (p *Parser) scanIgnoreWhitespace() (tok ast.Token, lit string) {
	tok, lit = p.scan()
	for tok == ast.WS || tok == ast.COMMENT {
		tok, lit = p.scan()
	}
	return
}

func (p *Parser) unscan() { p.n++ }

func (p *Parser) ParseExpr() (ast.Expr, error) {
	var err error
	root := &ast.BinaryExpr{}

	root.RHS, err = p.parseUnaryExpr()
	if err != nil {
		return nil, err
	}

	for {
		op, _ := p.scanIgnoreWhitespace()
		if !op.IsOperator() {
			p.unscan()
			return root.RHS, nil
		}

		var rhs ast.Expr
		if rhs, err = p.parseUnaryExpr(); err != nil {
			return nil, err
		}

		for node := root; ; {
			r, ok := node.RHS.(*ast.BinaryExpr)
			if !ok || r.OP.Precedence() >= op.Precedence() {
				node.RHS = &ast.BinaryExpr{LHS: node.RHS, RHS: rhs, OP: op}
				break
			}
			node = r
		}
	}
}

func (p *Parser) parseUnaryExpr() (ast.Expr, error) {
	if tok1, _ := p.scanIgnoreWhitespace(); tok1 == ast.LPAREN {
		expr, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		// Expect an RPAREN at the end.
		if tok2, lit2 := p.scanIgnoreWhitespace(); tok2 != ast.RPAREN {
			return nil, fmt.Errorf("found %q, expected right paren", lit2)
		}
		return &ast.ParenExpr{Expr: expr}, nil
	}
	p.unscan()

	tok, lit := p.scanIgnoreWhitespace()
	switch tok {
	case ast.IDENT:
		if tok1, _ := p.scanIgnoreWhitespace(); tok1 == ast.LPAREN {
			return p.parseCall(lit)
		}
		p.unscan()
		return &ast.FieldRef{Name: lit}, nil
	case ast.STRING:
		return &ast.StringLiteral{Val: lit}, nil
	case ast.INTEGER:
		val, _ := strconv.Atoi(lit)
		return &ast.IntegerLiteral{Val: val}, nil
	case ast.NUMBER:
		v, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return nil, fmt.Errorf("found %q, invalid number value", lit)
		}
		return &ast.NumberLiteral{Val: v}, nil
	case ast.TRUE, ast.FALSE:
		return &ast.BooleanLiteral{Val: tok == ast.TRUE}, nil
	case ast.SUB:
		return p.parseNegation()
	}
	return nil, fmt.Errorf("found %q, expected expression", lit)
}

func (p *Parser) parseNegation() (ast.Expr, error) {
	tok, lit := p.scanIgnoreWhitespace()
	switch tok {
	case ast.INTEGER:
		val, _ := strconv.Atoi(lit)
		return &ast.IntegerLiteral{Val: -val}, nil
	case ast.NUMBER:
		v, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return nil, fmt.Errorf("found %q, invalid number value", lit)
		}
		return &ast.NumberLiteral{Val: -v}, nil
	}
	return nil, fmt.Errorf("found %q, expected number after -", lit)
}

func (p *Parser) parseCall(name string) (ast.Expr, error) {
	var args []ast.Expr
	if tok, _ := p.scanIgnoreWhitespace(); tok == ast.RPAREN {
		return &ast.Call{Name: strings.ToLower(name)}, nil
	}
	p.unscan()
	for {
		arg, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		tok, lit := p.scanIgnoreWhitespace()
		if tok == ast.RPAREN {
			return &ast.Call{Name: strings.ToLower(name), Args: args}, nil
		} else if tok != ast.COMMA {
			return nil, fmt.Errorf("found %q, expected comma or right paren", lit)
		}
	}
}
