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

// Package sip reads bounded excerpts from the start of a file, or from an
// arbitrary offset, without loading the rest of it.
package sip

import (
	"errors"
	"io"
	"math"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/ostafen/sipstat/internal/errs"
)

var (
	ErrNegativeLimit  = errors.New("sip: negative limit")
	ErrNegativeOffset = errors.New("sip: negative offset")
)

// Sample is a bounded excerpt of a file.
type Sample struct {
	// Excerpt holds the bytes read, unmodified.
	Excerpt string
	// Complete is true when nothing past the excerpt was left unread.
	Complete bool
}

func (s Sample) Bytes() []byte {
	return []byte(s.Excerpt)
}

// File samples up to limit bytes from the start of the file at path.
func File(path string, limit int64) (Sample, error) {
	return FileAt(path, limit, 0)
}

// FileAt samples up to limit bytes of the file at path, starting at offset.
func FileAt(path string, limit, offset int64) (Sample, error) {
	if err := checkArgs(limit, offset); err != nil {
		return Sample{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return Sample{}, errs.Classify(err, "open", path)
	}
	defer f.Close()

	s, err := ReaderAt(f, limit, offset)
	if err != nil {
		return Sample{}, errs.Classify(err, "read", path)
	}
	return s, nil
}

// FromFS is like FileAt, but opens path through a billy filesystem.
func FromFS(fsys billy.Basic, path string, limit, offset int64) (Sample, error) {
	if err := checkArgs(limit, offset); err != nil {
		return Sample{}, err
	}

	f, err := fsys.Open(path)
	if err != nil {
		return Sample{}, errs.Classify(err, "open", path)
	}
	defer f.Close()

	s, err := ReaderAt(f, limit, offset)
	if err != nil {
		return Sample{}, errs.Classify(err, "read", path)
	}
	return s, nil
}

// ReaderAt samples up to limit bytes of r starting at offset.
//
// One byte past the limit is probed, so Complete is false only when more
// content actually exists beyond the excerpt. Offsets at or past the end
// of r yield an empty, complete sample.
func ReaderAt(r io.ReaderAt, limit, offset int64) (Sample, error) {
	if err := checkArgs(limit, offset); err != nil {
		return Sample{}, err
	}

	probe := limit
	if probe < math.MaxInt64 {
		probe++
	}

	buf, err := io.ReadAll(io.NewSectionReader(r, offset, probe))
	if err != nil {
		return Sample{}, err
	}

	if int64(len(buf)) > limit {
		return Sample{Excerpt: string(buf[:limit]), Complete: false}, nil
	}
	return Sample{Excerpt: string(buf), Complete: true}, nil
}

func checkArgs(limit, offset int64) error {
	if limit < 0 {
		return errs.Invalid(ErrNegativeLimit, "invalid sample limit")
	}
	if offset < 0 {
		return errs.Invalid(ErrNegativeOffset, "invalid sample offset")
	}
	return nil
}
