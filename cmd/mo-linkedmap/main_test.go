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
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/matrixorigin/linkedmap/pkg/common/moerr"
	"github.com/matrixorigin/linkedmap/pkg/logutil"
)

func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	defer logutil.ReplaceGlobalLogger(logutil.GetGlobalLogger())()

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const logCfg = `
[log]
level = "error"
`

func TestDedupFirstWins(t *testing.T) {
	out, err := runCommand(t, "a=1\nb=2\na=3\n\nc=4\n", "dedup")
	require.NoError(t, err)
	assert.Equal(t, "a=1\nb=2\nc=4\n", out)
}

func TestDedupLastWins(t *testing.T) {
	out, err := runCommand(t, "a=1\nb=2\na=3\n", "dedup", "--last-wins")
	require.NoError(t, err)
	assert.Equal(t, "b=2\na=3\n", out)
}

func TestDedupFileAndSeparator(t *testing.T) {
	input := writeFile(t, "pairs.txt", "x:1\ny:2:extra\nx:9\n")
	cfg := writeFile(t, "cfg.toml", logCfg+"\n[hashmap]\nbucket-count = 7\n")

	out, err := runCommand(t, "", "--cfg", cfg, "dedup", "--sep", ":", input)
	require.NoError(t, err)
	assert.Equal(t, "x:1\ny:2:extra\n", out)
}

func TestDedupErrors(t *testing.T) {
	_, err := runCommand(t, "a=1\nbroken\n", "dedup")
	require.Error(t, err)
	assert.True(t, moerr.IsMoErrCode(err, moerr.ErrInvalidInput))

	var out bytes.Buffer
	defer logutil.ReplaceGlobalLogger(zap.NewNop())()
	reportError(&out, err)
	assert.Equal(t, "invalid input: missing separator \"=\": line 2: \"broken\"\n", out.String())

	out.Reset()
	reportError(&out, io.ErrUnexpectedEOF)
	assert.Equal(t, "unexpected EOF\n", out.String())

	_, err = runCommand(t, "a=1\n", "dedup", "--sep", "")
	require.Error(t, err)
	assert.True(t, moerr.IsMoErrCode(err, moerr.ErrInvalidInput))

	_, err = runCommand(t, "", "dedup", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}

func TestStats(t *testing.T) {
	out, err := runCommand(t, "", "stats", "--keys", "100", "--erase", "40", "--buckets", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "entries:   60\n")
	assert.Contains(t, out, "buckets:   10\n")
	assert.Contains(t, out, "load:      6.0000\n")

	_, err = runCommand(t, "", "stats", "--keys", "1", "--erase", "2")
	require.Error(t, err)
	assert.True(t, moerr.IsMoErrCode(err, moerr.ErrInvalidInput))
}

func TestBadConfig(t *testing.T) {
	cfg := writeFile(t, "cfg.toml", "[hashmap]\nbucket-count = -3\n")
	_, err := runCommand(t, "a=1\n", "--cfg", cfg, "dedup")
	require.Error(t, err)
	assert.True(t, moerr.IsMoErrCode(err, moerr.ErrBadConfig))
}
