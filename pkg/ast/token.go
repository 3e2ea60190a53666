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

type Token int

const (
	ILLEGAL Token = iota
	EOF
	WS
	COMMENT

	IDENT
	INTEGER
	NUMBER
	STRING

	operatorBeg
	AND // AND
	OR  // OR

	ADD // +
	SUB // -
	MUL // *
	DIV // /
	MOD // %

	EQ  // =
	NEQ // !=
	LT  // <
	LTE // <=
	GT  // >
	GTE // >=
	operatorEnd

	LPAREN // (
	RPAREN // )
	COMMA  // ,

	TRUE
	FALSE
)

var Tokens = []string{
	ILLEGAL: "ILLEGAL",
	EOF:     "EOF",
	WS:      "WS",
	COMMENT: "--",

	IDENT:   "IDENT",
	INTEGER: "INTEGER",
	NUMBER:  "NUMBER",
	STRING:  "STRING",

	AND: "AND",
	OR:  "OR",

	ADD: "+",
	SUB: "-",
	MUL: "*",
	DIV: "/",
	MOD: "%",

	EQ:  "=",
	NEQ: "!=",
	LT:  "<",
	LTE: "<=",
	GT:  ">",
	GTE: ">=",

	LPAREN: "(",
	RPAREN: ")",
	COMMA:  ",",

	TRUE:  "TRUE",
	FALSE: "FALSE",
}

func (tok Token) String() string {
	if tok >= 0 && int(tok) < len(Tokens) {
		return Tokens[tok]
	}
	return ""
}

func (tok Token) IsOperator() bool {
	return tok > operatorBeg && tok < operatorEnd
}

func (tok Token) IsComparison() bool {
	switch tok {
	case EQ, NEQ, LT, LTE, GT, GTE:
		return true
	}
	return false
}

// Precedence returns the operator precedence of the binary operator token.
func (tok Token) Precedence() int {
	switch tok {
	case OR:
		return 1
	case AND:
		return 2
	case EQ, NEQ, LT, LTE, GT, GTE:
		return 3
	case ADD, SUB:
		return 4
	case MUL, DIV, MOD:
		return 5
	}
	return 0
}
