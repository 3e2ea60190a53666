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

package conf

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// LoadConfigFromPath reads the yaml file at p and decodes it into c. The
// indirection through a generic map lets callers use mapstructure tags so that
// yaml key casing stays free.
func LoadConfigFromPath(p string, c interface{}) error {
	b, err := os.ReadFile(p)
	if err != nil {
		return err
	}
	configMap := make(map[string]interface{})
	if err := yaml.Unmarshal(b, &configMap); err != nil {
		return fmt.Errorf("invalid config file %s: %v", p, err)
	}
	return mapstructure.Decode(configMap, c)
}
