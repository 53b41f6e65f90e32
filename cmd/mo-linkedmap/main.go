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
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/matrixorigin/linkedmap/pkg/common/moerr"
	"github.com/matrixorigin/linkedmap/pkg/config"
	"github.com/matrixorigin/linkedmap/pkg/logutil"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError logs err and prints it to w, with its detail when it is a moerr.
func reportError(w io.Writer, err error) {
	fields := []zap.Field{zap.Error(err)}
	msg := err.Error()
	if me := moerr.DowncastError(err); me != nil {
		fields = append(fields, zap.Uint16("code", me.ErrorCode()), zap.String("detail", me.Detail()))
		msg = me.Display()
	}
	logutil.Error("mo-linkedmap failed", fields...)
	fmt.Fprintln(w, msg)
}

func newRootCommand() *cobra.Command {
	var (
		cfgFile string
		cfg     = config.Default()
	)
	cmd := &cobra.Command{
		Use:           "mo-linkedmap",
		Short:         "Insertion ordered hash map tool",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgFile != "" {
				parsed, err := config.ParseConfigFromFile(cfgFile)
				if err != nil {
					return err
				}
				*cfg = *parsed
			}
			logutil.SetupMOLogger(&cfg.Log)
			logutil.Debug("config loaded",
				zap.String("file", cfgFile),
				zap.Int("bucket-count", cfg.HashMap.BucketCount))
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&cfgFile, "cfg", "", "toml configuration file")
	cmd.AddCommand(dedupCommand(cfg), statsCommand(cfg))
	return cmd
}
