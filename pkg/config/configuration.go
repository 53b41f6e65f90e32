// Copyright 2021 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"math"

	"github.com/BurntSushi/toml"

	"github.com/matrixorigin/linkedmap/pkg/common/moerr"
	"github.com/matrixorigin/linkedmap/pkg/logutil"
)

const (
	// DefaultBucketCount is the number of buckets of a map built without an
	// explicit bucket count.
	DefaultBucketCount = 100000
	// DefaultChainWarnThreshold is the chain length at which a map logs a
	// warning about a poorly distributed hash or an undersized table.
	DefaultChainWarnThreshold = 64
)

// Config is the toml configuration of mo-linkedmap.
type Config struct {
	HashMap HashMapConfig     `toml:"hashmap"`
	Log     logutil.LogConfig `toml:"log"`
}

// HashMapConfig configures a linkedmap.Map.
type HashMapConfig struct {
	// BucketCount is fixed for the lifetime of a map; size it for the
	// expected number of keys to bound chain length.
	BucketCount int `toml:"bucket-count"`
	// ChainWarnThreshold is the chain length that triggers a warning.
	ChainWarnThreshold int `toml:"chain-warn-threshold"`
}

// Adjust fills the zero fields with defaults.
func (c *HashMapConfig) Adjust() {
	if c.BucketCount == 0 {
		c.BucketCount = DefaultBucketCount
	}
	if c.ChainWarnThreshold == 0 {
		c.ChainWarnThreshold = DefaultChainWarnThreshold
	}
}

// Validate checks an adjusted config.
func (c HashMapConfig) Validate() error {
	if c.BucketCount < 1 || uint64(c.BucketCount) > math.MaxUint32 {
		return moerr.NewBadConfigNoCtx("bucket-count %d out of range [1, %d]", c.BucketCount, uint64(math.MaxUint32))
	}
	if c.ChainWarnThreshold < 0 {
		return moerr.NewBadConfigNoCtx("chain-warn-threshold %d must not be negative", c.ChainWarnThreshold)
	}
	return nil
}

// Adjust fills the zero fields of every section with defaults.
func (c *Config) Adjust() {
	c.HashMap.Adjust()
	c.Log.Adjust()
}

func (c *Config) Validate() error {
	return c.HashMap.Validate()
}

// Default returns an adjusted config.
func Default() *Config {
	c := &Config{}
	c.Adjust()
	return c
}

// ParseConfigFromFile decodes the toml file at path, fills defaults and
// validates the result.
func ParseConfigFromFile(path string) (*Config, error) {
	if path == "" {
		return nil, moerr.NewBadConfigNoCtx("config file not specified")
	}
	c := &Config{}
	if _, err := toml.DecodeFile(path, c); err != nil {
		return nil, err
	}
	c.Adjust()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
