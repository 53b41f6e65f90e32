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

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matrixorigin/linkedmap/pkg/common/moerr"
	"github.com/matrixorigin/linkedmap/pkg/config"
	"github.com/matrixorigin/linkedmap/pkg/container/linkedmap"
)

func statsCommand(cfg *config.Config) *cobra.Command {
	var keys, erase, buckets int
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Fill a map with synthetic keys and print its bucket statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if keys < 0 || erase < 0 {
				return moerr.NewInvalidInput(cmd.Context(), "negative key count")
			}
			if erase > keys {
				return moerr.NewInvalidInput(cmd.Context(), "cannot erase %d of %d keys", erase, keys)
			}
			opts := []linkedmap.Option{linkedmap.WithConfig(cfg.HashMap)}
			if buckets > 0 {
				opts = append(opts, linkedmap.WithBucketCount(buckets))
			}
			m := linkedmap.New[string, int](opts...)
			for i := 0; i < keys; i++ {
				m.Insert("key-"+strconv.Itoa(i), i)
			}
			for i := 0; i < erase; i++ {
				m.Erase("key-" + strconv.Itoa(i))
			}

			s := m.Stats()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "entries:   %d\n", m.Len())
			fmt.Fprintf(out, "buckets:   %d\n", s.Buckets)
			fmt.Fprintf(out, "occupied:  %d\n", s.Occupied)
			fmt.Fprintf(out, "max chain: %d\n", s.MaxChain)
			fmt.Fprintf(out, "load:      %.4f\n", float64(s.Links)/float64(s.Buckets))
			return nil
		},
	}
	cmd.Flags().IntVar(&keys, "keys", 1000, "number of keys to insert")
	cmd.Flags().IntVar(&erase, "erase", 0, "number of keys to erase, oldest first")
	cmd.Flags().IntVar(&buckets, "buckets", 0, "bucket count, overrides the configuration")
	return cmd
}
