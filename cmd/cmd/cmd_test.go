// Copyright (c) 2025 Stefano Scafiti
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const rawRecord = `{
	"dev": 16777220, "mode": 16877, "nlink": 1, "uid": 501, "gid": 20,
	"rdev": 0, "blksize": 4096, "ino": 175025642, "size": 1104, "blocks": 8,
	"atime": 1481195566000, "mtime": 1481195249001, "ctime": 1481195249000,
	"birthtime": 1481192516000
}`

func TestSipCommand(t *testing.T) {
	path := writeFile(t, "strict.js", `"use strict";`)

	out, errOut, err := run(t, "sip", path, "--limit", "10", "--offset", "1")
	require.NoError(t, err)
	require.Equal(t, `use strict`, out)
	require.Contains(t, errOut, "truncated")

	out, errOut, err = run(t, "sip", path, "--limit", "1KB")
	require.NoError(t, err)
	require.Equal(t, `"use strict";`, out)
	require.Contains(t, errOut, "complete")
}

func TestSipCommandDefaultLimit(t *testing.T) {
	path := writeFile(t, "big.txt", strings.Repeat("x", 5000))

	out, errOut, err := run(t, "sip", path)
	require.NoError(t, err)
	require.Len(t, out, 4096)
	require.Contains(t, errOut, "4KB of")
	require.Contains(t, errOut, "truncated")
}

func TestSipCommandHex(t *testing.T) {
	path := writeFile(t, "data.bin", "GIF89a")

	out, _, err := run(t, "sip", path, "--hex")
	require.NoError(t, err)
	require.Contains(t, out, "47 49 46 38 39 61")
}

func TestSipCommandErrors(t *testing.T) {
	_, _, err := run(t, "sip", filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, err, os.ErrNotExist)

	path := writeFile(t, "a.txt", "a")
	_, _, err = run(t, "sip", path, "--limit", "plenty")
	require.Error(t, err)
}

func TestStatCommandRawJSON(t *testing.T) {
	path := writeFile(t, "record.json", rawRecord)

	out, _, err := run(t, "stat", "--raw", "-o", "json", path)
	require.NoError(t, err)

	var v statusView
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	require.Equal(t, "directory", v.Type)
	require.Equal(t, int64(1104), v.Size)
	require.Equal(t, int64(175025642), v.Ino)
	require.Equal(t, "2016-12-08T11:07:29.001Z", v.Mtime)
	require.Equal(t, "2016-12-08T11:07:29.000Z", v.Ctime)
}

func TestStatCommandRawYAML(t *testing.T) {
	path := writeFile(t, "record.yaml", "mode: 33188\nsize: 42\nmtime: 1481195249000\n")

	out, _, err := run(t, "stat", "--raw", "-o", "yaml", path)
	require.NoError(t, err)

	var v statusView
	require.NoError(t, yaml.Unmarshal([]byte(out), &v))
	require.Equal(t, "regular file", v.Type)
	require.Equal(t, int64(42), v.Size)
	require.Equal(t, "1970-01-01T00:00:00.000Z", v.Atime)
}

func TestStatCommandLive(t *testing.T) {
	path := writeFile(t, "live.txt", "hello")

	out, _, err := run(t, "stat", path)
	require.NoError(t, err)
	require.Contains(t, out, "regular file")
	require.Contains(t, out, "5 (5B)")
}

func TestStatCommandErrors(t *testing.T) {
	path := writeFile(t, "broken.json", "{not json")
	_, _, err := run(t, "stat", "--raw", path)
	require.Error(t, err)

	good := writeFile(t, "record.json", rawRecord)
	_, _, err = run(t, "stat", "--raw", "-o", "xml", good)
	require.Error(t, err)
}

func TestLogFile(t *testing.T) {
	path := writeFile(t, "a.txt", "abc")
	logPath := filepath.Join(t.TempDir(), "sipstat.log")

	_, _, err := run(t, "--log-level", "DEBUG", "--log-file", logPath, "sip", path)
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "sampling file")
}
