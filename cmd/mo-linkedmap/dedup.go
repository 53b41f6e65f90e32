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
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/matrixorigin/linkedmap/pkg/common/moerr"
	"github.com/matrixorigin/linkedmap/pkg/config"
	"github.com/matrixorigin/linkedmap/pkg/container/linkedmap"
	"github.com/matrixorigin/linkedmap/pkg/logutil"
)

func dedupCommand(cfg *config.Config) *cobra.Command {
	var (
		sep      string
		lastWins bool
	)
	cmd := &cobra.Command{
		Use:   "dedup [file]",
		Short: "Deduplicate key/value lines keeping their first appearance order",
		Long: "Read key<sep>value lines from a file or stdin and print each key once. " +
			"By default the first value of a key wins, with --last-wins the latest " +
			"value wins and the key moves to the position of its last appearance.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if sep == "" {
				return moerr.NewInvalidInput(cmd.Context(), "empty separator")
			}
			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			m := linkedmap.New[string, string](linkedmap.WithConfig(cfg.HashMap))
			if err := readPairs(in, sep, m, lastWins); err != nil {
				return err
			}
			return writePairs(cmd.OutOrStdout(), sep, m)
		},
	}
	cmd.Flags().StringVar(&sep, "sep", "=", "separator between key and value")
	cmd.Flags().BoolVar(&lastWins, "last-wins", false, "keep the last value of a duplicated key")
	return cmd
}

func readPairs(r io.Reader, sep string, m *linkedmap.Map[string, string], lastWins bool) error {
	scanner := bufio.NewScanner(r)
	lines, dups := 0, 0
	for scanner.Scan() {
		lines++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		key, value, ok := strings.Cut(line, sep)
		if !ok {
			return moerr.NewInvalidInputNoCtx("missing separator %q", sep).
				WithDetail(fmt.Sprintf("line %d: %q", lines, line))
		}
		if lastWins && m.Erase(key) {
			dups++
		}
		if !m.Insert(key, value) {
			dups++
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	logutil.Info("dedup done",
		zap.Int("lines", lines),
		zap.Int("keys", m.Len()),
		zap.Int("duplicates", dups))
	return nil
}

func writePairs(w io.Writer, sep string, m *linkedmap.Map[string, string]) error {
	bw := bufio.NewWriter(w)
	for k, v := range m.All() {
		if _, err := fmt.Fprintf(bw, "%s%s%s\n", k, sep, v); err != nil {
			return err
		}
	}
	return bw.Flush()
}
