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

package function

import (
	"fmt"
	"strings"
)

// Func describes one registered scalar function. Deterministic is declared
// metadata: the planner consults it instead of inspecting the implementation.
type Func struct {
	Deterministic bool
	Exec          func(args []interface{}) (interface{}, error)
}

var registry = map[string]*Func{}

func register(name string, f *Func) {
	registry[strings.ToLower(name)] = f
}

// Lookup returns the registered function of the given name.
func Lookup(name string) (*Func, bool) {
	f, ok := registry[strings.ToLower(name)]
	return f, ok
}

// IsDeterministic reports whether name is a known function whose result
// depends only on its arguments. Unknown names report false so that callers
// treating determinism as a safety precondition stay conservative.
func IsDeterministic(name string) bool {
	f, ok := Lookup(name)
	return ok && f.Deterministic
}

// Exec runs the named function against evaluated arguments.
func Exec(name string, args []interface{}) (interface{}, error) {
	f, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("function %s not found", name)
	}
	return f.Exec(args)
}
