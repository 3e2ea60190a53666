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
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeterminism(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"abs", true},
		{"UPPER", true},
		{"concat", true},
		{"now", false},
		{"rand", false},
		{"no_such_func", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsDeterministic(tt.name), tt.name)
	}
}

func TestExec(t *testing.T) {
	tests := []struct {
		name   string
		args   []interface{}
		result interface{}
		err    string
	}{
		{name: "abs", args: []interface{}{-3}, result: 3.0},
		{name: "lower", args: []interface{}{"ABC"}, result: "abc"},
		{name: "upper", args: []interface{}{"abc"}, result: "ABC"},
		{name: "concat", args: []interface{}{"a", 1}, result: "a1"},
		{name: "length", args: []interface{}{"abcd"}, result: 4},
		{name: "abs", args: []interface{}{1, 2}, err: "abs expects 1 arg, got 2"},
		{name: "missing", args: nil, err: "function missing not found"},
	}
	for _, tt := range tests {
		got, err := Exec(tt.name, tt.args)
		if tt.err != "" {
			assert.EqualError(t, err, tt.err)
		} else {
			require.NoError(t, err)
			assert.Equal(t, tt.result, got)
		}
	}
}

func TestNowUsesClock(t *testing.T) {
	mock := clock.NewMock()
	mock.Set(time.UnixMilli(1717171717000))
	saved := Clock
	Clock = mock
	defer func() { Clock = saved }()

	got, err := Exec("now", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1717171717000), got)
}
