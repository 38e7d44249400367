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
	"encoding/hex"
	"fmt"

	"github.com/ostafen/sipstat/pkg/sip"
	"github.com/ostafen/sipstat/pkg/util/format"
	"github.com/spf13/cobra"
)

func DefineSipCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sip <path>",
		Short: "Print a bounded excerpt of a file",
		Long: `The 'sip' command reads at most --limit bytes of a file, starting at --offset,
without loading the rest of it. A trailing summary on stderr reports whether the
excerpt covers the remaining content or was truncated.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         RunSip,
	}

	cmd.Flags().String("limit", "4KiB", "maximum number of bytes to read (SI and IEC units accepted)")
	cmd.Flags().String("offset", "0", "byte offset to start reading from")
	cmd.Flags().Bool("hex", false, "print the excerpt as a hex dump")

	return cmd
}

func RunSip(cmd *cobra.Command, args []string) error {
	path := args[0]

	log, cleanup, err := setupLogger(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	limit, err := getBytes(cmd, "limit")
	if err != nil {
		return err
	}
	offset, err := getBytes(cmd, "offset")
	if err != nil {
		return err
	}
	dump, _ := cmd.Flags().GetBool("hex")

	log.Debug("sampling file", "path", path, "limit", limit, "offset", offset)

	s, err := sip.FileAt(path, limit, offset)
	if err != nil {
		log.Error("unable to sample file", "path", path, "err", err)
		return err
	}

	out := cmd.OutOrStdout()
	if dump {
		fmt.Fprint(out, hex.Dump(s.Bytes()))
	} else {
		fmt.Fprint(out, s.Excerpt)
	}

	state := "complete"
	if !s.Complete {
		state = "truncated"
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "\n[INFO] %s of %s read from offset %d (%s)\n",
		format.FormatBytes(int64(len(s.Excerpt))), path, offset, state)
	return nil
}

func getBytes(cmd *cobra.Command, name string) (int64, error) {
	s, _ := cmd.Flags().GetString(name)

	v, err := format.ParseBytes(s)
	if err != nil {
		return 0, fmt.Errorf("invalid --%s %q: %w", name, s, err)
	}
	return v, nil
}
