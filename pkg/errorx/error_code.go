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

package errorx

import "errors"

type ErrorCode int

const (
	Undefined_Err ErrorCode = 1000
	GENERAL_ERR   ErrorCode = 1001
	NOT_FOUND     ErrorCode = 1002

	// error code for sql

	ParserError ErrorCode = 2001
	PlanError   ErrorCode = 2101

	// CatalogError marks a failed call to the partition catalog or source.
	// A rule firing that hits it is abandoned; the optimization pass goes on.
	CatalogError ErrorCode = 3001
	// ConfError marks an inconsistent catalog configuration, e.g. a partition
	// column that is missing from the table schema. Always fatal.
	ConfError ErrorCode = 5000
)

var NotFoundErr = NewWithCode(NOT_FOUND, "not found")

func NewParserError(msg string) error {
	return &Error{
		code: ParserError,
		msg:  msg,
	}
}

func NewCatalogError(msg string) error {
	return &Error{
		code: CatalogError,
		msg:  msg,
	}
}

func NewConfError(msg string) error {
	return &Error{
		code: ConfError,
		msg:  msg,
	}
}

func IsCatalogError(err error) bool {
	var withCode ErrorWithCode
	if errors.As(err, &withCode) {
		return withCode.Code() == CatalogError
	}
	return false
}

func IsConfError(err error) bool {
	var withCode ErrorWithCode
	if errors.As(err, &withCode) {
		return withCode.Code() == ConfError
	}
	return false
}

func GetErrorCode(err error) (ErrorCode, bool) {
	if code, ok := err.(ErrorWithCode); ok {
		return code.Code(), true
	}
	return 0, false
}
