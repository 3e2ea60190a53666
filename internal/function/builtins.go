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
	"math"
	"math/rand"
	"strings"

	"github.com/benbjohnson/clock"
	"github.com/spf13/cast"
)

// Clock is the time source of the now() builtin. Tests swap in a mock.
var Clock clock.Clock = clock.New()

func init() {
	register("abs", &Func{
		Deterministic: true,
		Exec: func(args []interface{}) (interface{}, error) {
			if len(args) != 1 {
				return nil, fmt.Errorf("abs expects 1 arg, got %d", len(args))
			}
			v, err := cast.ToFloat64E(args[0])
			if err != nil {
				return nil, err
			}
			return math.Abs(v), nil
		},
	})
	register("lower", &Func{
		Deterministic: true,
		Exec: func(args []interface{}) (interface{}, error) {
			if len(args) != 1 {
				return nil, fmt.Errorf("lower expects 1 arg, got %d", len(args))
			}
			s, err := cast.ToStringE(args[0])
			if err != nil {
				return nil, err
			}
			return strings.ToLower(s), nil
		},
	})
	register("upper", &Func{
		Deterministic: true,
		Exec: func(args []interface{}) (interface{}, error) {
			if len(args) != 1 {
				return nil, fmt.Errorf("upper expects 1 arg, got %d", len(args))
			}
			s, err := cast.ToStringE(args[0])
			if err != nil {
				return nil, err
			}
			return strings.ToUpper(s), nil
		},
	})
	register("concat", &Func{
		Deterministic: true,
		Exec: func(args []interface{}) (interface{}, error) {
			var b strings.Builder
			for _, a := range args {
				s, err := cast.ToStringE(a)
				if err != nil {
					return nil, err
				}
				b.WriteString(s)
			}
			return b.String(), nil
		},
	})
	register("length", &Func{
		Deterministic: true,
		Exec: func(args []interface{}) (interface{}, error) {
			if len(args) != 1 {
				return nil, fmt.Errorf("length expects 1 arg, got %d", len(args))
			}
			s, err := cast.ToStringE(args[0])
			if err != nil {
				return nil, err
			}
			return len(s), nil
		},
	})
	register("now", &Func{
		Exec: func(args []interface{}) (interface{}, error) {
			if len(args) != 0 {
				return nil, fmt.Errorf("now expects no args, got %d", len(args))
			}
			return Clock.Now().UnixMilli(), nil
		},
	})
	register("rand", &Func{
		Exec: func(args []interface{}) (interface{}, error) {
			if len(args) != 0 {
				return nil, fmt.Errorf("rand expects no args, got %d", len(args))
			}
			return rand.Float64(), nil
		},
	})
}
