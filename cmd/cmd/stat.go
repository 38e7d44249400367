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
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/ostafen/sipstat/internal/errs"
	"github.com/ostafen/sipstat/pkg/stat"
	"github.com/ostafen/sipstat/pkg/util/format"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func DefineStatCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stat <path>",
		Short: "Print the normalized status of a file",
		Long: `The 'stat' command prints the canonical status of a file, including its type
and millisecond timestamps. With --raw, <path> is instead read as a serialized
stat record (JSON or YAML) and normalized.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         RunStat,
	}

	cmd.Flags().Bool("raw", false, "treat <path> as a serialized stat record")
	cmd.Flags().StringP("output", "o", "text", "output format (text, json, yaml)")

	return cmd
}

func RunStat(cmd *cobra.Command, args []string) error {
	path := args[0]

	log, cleanup, err := setupLogger(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	raw, _ := cmd.Flags().GetBool("raw")
	output, _ := cmd.Flags().GetString("output")

	var st stat.Canonical
	if raw {
		log.Debug("loading stat record", "path", path)
		st, err = loadRecord(path)
	} else {
		log.Debug("reading file status", "path", path)
		st, err = stat.Lstat(path)
	}
	if err != nil {
		log.Error("unable to stat", "path", path, "err", err)
		return err
	}
	return writeStatus(cmd.OutOrStdout(), path, st, output)
}

// loadRecord decodes a JSON or YAML stat record and normalizes it.
func loadRecord(path string) (stat.Canonical, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Classify(err, "read", path)
	}

	record := map[string]any{}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &record)
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		err = dec.Decode(&record)
	}
	if err != nil {
		return nil, errs.Invalid(err, fmt.Sprintf("decode %s", path))
	}
	return stat.Statify(record), nil
}

type statusView struct {
	Path      string `json:"path" yaml:"path"`
	Type      string `json:"type" yaml:"type"`
	Mode      string `json:"mode" yaml:"mode"`
	Size      int64  `json:"size" yaml:"size"`
	Dev       int64  `json:"dev" yaml:"dev"`
	Ino       int64  `json:"ino" yaml:"ino"`
	Nlink     int64  `json:"nlink" yaml:"nlink"`
	UID       int64  `json:"uid" yaml:"uid"`
	GID       int64  `json:"gid" yaml:"gid"`
	Rdev      int64  `json:"rdev" yaml:"rdev"`
	Blksize   int64  `json:"blksize" yaml:"blksize"`
	Blocks    int64  `json:"blocks" yaml:"blocks"`
	Atime     string `json:"atime" yaml:"atime"`
	Mtime     string `json:"mtime" yaml:"mtime"`
	Ctime     string `json:"ctime" yaml:"ctime"`
	Birthtime string `json:"birthtime" yaml:"birthtime"`
}

func newStatusView(path string, st stat.Canonical) statusView {
	v := statusView{
		Path:      path,
		Type:      fileType(st),
		Atime:     formatTime(st.AccessTime()),
		Mtime:     formatTime(st.ModifyTime()),
		Ctime:     formatTime(st.ChangeTime()),
		Birthtime: formatTime(st.BirthTime()),
	}

	if fs, ok := st.(*stat.FileStatus); ok {
		v.Mode = fmt.Sprintf("%06o (%s)", fs.Mode, fs.FileMode())
		v.Size = fs.Size
		v.Dev = fs.Dev
		v.Ino = fs.Ino
		v.Nlink = fs.Nlink
		v.UID = fs.UID
		v.GID = fs.GID
		v.Rdev = fs.Rdev
		v.Blksize = fs.Blksize
		v.Blocks = fs.Blocks
	}
	return v
}

func fileType(st stat.ModeChecker) string {
	switch {
	case st.IsFile():
		return "regular file"
	case st.IsDirectory():
		return "directory"
	case st.IsSymbolicLink():
		return "symbolic link"
	case st.IsFIFO():
		return "fifo"
	case st.IsSocket():
		return "socket"
	case st.IsBlockDevice():
		return "block device"
	case st.IsCharacterDevice():
		return "character device"
	}
	return "unknown"
}

func formatTime(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}

func writeStatus(w io.Writer, path string, st stat.Canonical, output string) error {
	v := newStatusView(path, st)

	switch strings.ToLower(output) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(v)
	case "text", "":
	default:
		return fmt.Errorf("unknown output format %q", output)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Path:\t%s\n", v.Path)
	fmt.Fprintf(tw, "Type:\t%s\n", v.Type)
	fmt.Fprintf(tw, "Mode:\t%s\n", v.Mode)
	fmt.Fprintf(tw, "Size:\t%d (%s)\n", v.Size, format.FormatBytes(v.Size))
	fmt.Fprintf(tw, "Device:\t%d\tInode:\t%d\tLinks:\t%d\n", v.Dev, v.Ino, v.Nlink)
	fmt.Fprintf(tw, "Uid:\t%d\tGid:\t%d\tRdev:\t%d\n", v.UID, v.GID, v.Rdev)
	fmt.Fprintf(tw, "Blksize:\t%d\tBlocks:\t%d\n", v.Blksize, v.Blocks)
	fmt.Fprintf(tw, "Access:\t%s\n", v.Atime)
	fmt.Fprintf(tw, "Modify:\t%s\n", v.Mtime)
	fmt.Fprintf(tw, "Change:\t%s\n", v.Ctime)
	fmt.Fprintf(tw, "Birth:\t%s\n", v.Birthtime)
	return tw.Flush()
}
