// Copyright 2023 Matrix Origin
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

package linkedmap

import (
	"go.uber.org/zap"

	"github.com/matrixorigin/linkedmap/pkg/config"
	"github.com/matrixorigin/linkedmap/pkg/container/hashtable"
	"github.com/matrixorigin/linkedmap/pkg/logutil"
)

var (
	defaultBucketCount        = config.DefaultBucketCount
	defaultChainWarnThreshold = config.DefaultChainWarnThreshold
)

// Option configures a Map at construction.
type Option func(*options)

type options struct {
	bucketCount        int
	chainWarnThreshold int
	logger             *zap.Logger
}

// WithBucketCount sets the fixed number of buckets. Values outside
// [1, hashtable.MaxBucketCount] fall back to the default.
func WithBucketCount(n int) Option {
	return func(o *options) {
		o.bucketCount = n
	}
}

// WithChainWarnThreshold sets the chain length at which the map logs a
// warning, 0 disables it.
func WithChainWarnThreshold(n int) Option {
	return func(o *options) {
		o.chainWarnThreshold = n
	}
}

// WithLogger sets the logger, the global logger by default.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithConfig applies a HashMapConfig. Zero fields keep their defaults.
func WithConfig(cfg config.HashMapConfig) Option {
	return func(o *options) {
		if cfg.BucketCount != 0 {
			o.bucketCount = cfg.BucketCount
		}
		if cfg.ChainWarnThreshold != 0 {
			o.chainWarnThreshold = cfg.ChainWarnThreshold
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		bucketCount:        defaultBucketCount,
		chainWarnThreshold: defaultChainWarnThreshold,
	}
	for _, opt := range opts {
		opt(&o)
	}
	o.adjust()
	return o
}

func (o *options) adjust() {
	if o.logger == nil {
		o.logger = logutil.GetGlobalLogger()
	}
	o.logger = o.logger.Named("linkedmap")
	if o.bucketCount < 1 || uint64(o.bucketCount) > hashtable.MaxBucketCount {
		o.logger.Warn("invalid bucket count, use default",
			zap.Int("bucket-count", o.bucketCount),
			zap.Int("default", defaultBucketCount))
		o.bucketCount = defaultBucketCount
	}
	if o.chainWarnThreshold < 0 {
		o.chainWarnThreshold = 0
	}
}
