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
package stat

import (
	"encoding/json"
	"io/fs"
	"math"
	"time"
)

// ModeChecker reports the file type encoded in a status' mode bits.
type ModeChecker interface {
	IsBlockDevice() bool
	IsCharacterDevice() bool
	IsDirectory() bool
	IsFIFO() bool
	IsFile() bool
	IsSocket() bool
	IsSymbolicLink() bool
}

// Canonical is the capability set of a normalized file status: the seven
// mode predicates plus instant-valued timestamps. Any value implementing it
// is treated as already normalized, regardless of its concrete type.
type Canonical interface {
	ModeChecker

	AccessTime() time.Time
	ModifyTime() time.Time
	ChangeTime() time.Time
	BirthTime() time.Time
}

// RawStat is a plain stat record, typically decoded from JSON or YAML.
// Timestamps are Unix milliseconds.
type RawStat struct {
	Dev       int64  `json:"dev" yaml:"dev"`
	Mode      uint32 `json:"mode" yaml:"mode"`
	Nlink     int64  `json:"nlink" yaml:"nlink"`
	UID       int64  `json:"uid" yaml:"uid"`
	GID       int64  `json:"gid" yaml:"gid"`
	Rdev      int64  `json:"rdev" yaml:"rdev"`
	Blksize   int64  `json:"blksize" yaml:"blksize"`
	Ino       int64  `json:"ino" yaml:"ino"`
	Size      int64  `json:"size" yaml:"size"`
	Blocks    int64  `json:"blocks" yaml:"blocks"`
	Atime     int64  `json:"atime" yaml:"atime"`
	Mtime     int64  `json:"mtime" yaml:"mtime"`
	Ctime     int64  `json:"ctime" yaml:"ctime"`
	Birthtime int64  `json:"birthtime" yaml:"birthtime"`
}

// FileStatus is the canonical status built from a RawStat.
// Predicates read Mode on every call, so later changes to Mode are observed.
type FileStatus struct {
	Dev       int64
	Mode      uint32
	Nlink     int64
	UID       int64
	GID       int64
	Rdev      int64
	Blksize   int64
	Ino       int64
	Size      int64
	Blocks    int64
	Atime     time.Time
	Mtime     time.Time
	Ctime     time.Time
	Birthtime time.Time
}

var _ Canonical = (*FileStatus)(nil)

func (s *FileStatus) IsBlockDevice() bool     { return modeType(s.Mode) == S_IFBLK }
func (s *FileStatus) IsCharacterDevice() bool { return modeType(s.Mode) == S_IFCHR }
func (s *FileStatus) IsDirectory() bool       { return modeType(s.Mode) == S_IFDIR }
func (s *FileStatus) IsFIFO() bool            { return modeType(s.Mode) == S_IFIFO }
func (s *FileStatus) IsFile() bool            { return modeType(s.Mode) == S_IFREG }
func (s *FileStatus) IsSocket() bool          { return modeType(s.Mode) == S_IFSOCK }
func (s *FileStatus) IsSymbolicLink() bool    { return modeType(s.Mode) == S_IFLNK }

func (s *FileStatus) AccessTime() time.Time { return s.Atime }
func (s *FileStatus) ModifyTime() time.Time { return s.Mtime }
func (s *FileStatus) ChangeTime() time.Time { return s.Ctime }
func (s *FileStatus) BirthTime() time.Time  { return s.Birthtime }

// FileMode returns the status' mode bits as an fs.FileMode.
func (s *FileStatus) FileMode() fs.FileMode {
	return toFileMode(s.Mode)
}

// Raw converts the status back to a plain record with millisecond timestamps.
func (s *FileStatus) Raw() RawStat {
	return RawStat{
		Dev:       s.Dev,
		Mode:      s.Mode,
		Nlink:     s.Nlink,
		UID:       s.UID,
		GID:       s.GID,
		Rdev:      s.Rdev,
		Blksize:   s.Blksize,
		Ino:       s.Ino,
		Size:      s.Size,
		Blocks:    s.Blocks,
		Atime:     s.Atime.UnixMilli(),
		Mtime:     s.Mtime.UnixMilli(),
		Ctime:     s.Ctime.UnixMilli(),
		Birthtime: s.Birthtime.UnixMilli(),
	}
}

// Statify returns v unchanged if it already implements Canonical.
// Otherwise v is read as a raw stat record (RawStat, *RawStat or a
// map[string]any keyed by field name) and a new *FileStatus is built from it.
//
// A FileStatus passed by value is copied into a new *FileStatus.
//
// Statify never fails: missing or malformed fields are left at zero, and a
// zero mode makes every predicate report false.
func Statify(v any) Canonical {
	switch s := v.(type) {
	case FileStatus:
		return &s
	case *FileStatus:
		if s == nil {
			return newFileStatus(RawStat{})
		}
	}

	if c, ok := v.(Canonical); ok {
		return c
	}
	return newFileStatus(toRaw(v))
}

func newFileStatus(r RawStat) *FileStatus {
	return &FileStatus{
		Dev:       r.Dev,
		Mode:      r.Mode,
		Nlink:     r.Nlink,
		UID:       r.UID,
		GID:       r.GID,
		Rdev:      r.Rdev,
		Blksize:   r.Blksize,
		Ino:       r.Ino,
		Size:      r.Size,
		Blocks:    r.Blocks,
		Atime:     time.UnixMilli(r.Atime),
		Mtime:     time.UnixMilli(r.Mtime),
		Ctime:     time.UnixMilli(r.Ctime),
		Birthtime: time.UnixMilli(r.Birthtime),
	}
}

func toRaw(v any) RawStat {
	switch r := v.(type) {
	case RawStat:
		return r
	case *RawStat:
		if r != nil {
			return *r
		}
	case map[string]any:
		return rawFromMap(r)
	}
	return RawStat{}
}

func rawFromMap(m map[string]any) RawStat {
	field := func(name string) int64 {
		n, _ := toInt64(m[name])
		return n
	}

	return RawStat{
		Dev:       field("dev"),
		Mode:      uint32(field("mode")),
		Nlink:     field("nlink"),
		UID:       field("uid"),
		GID:       field("gid"),
		Rdev:      field("rdev"),
		Blksize:   field("blksize"),
		Ino:       field("ino"),
		Size:      field("size"),
		Blocks:    field("blocks"),
		Atime:     field("atime"),
		Mtime:     field("mtime"),
		Ctime:     field("ctime"),
		Birthtime: field("birthtime"),
	}
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), true
	case float32:
		return floatToInt64(float64(n))
	case float64:
		return floatToInt64(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		if f, err := n.Float64(); err == nil {
			return floatToInt64(f)
		}
	}
	return 0, false
}

func floatToInt64(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int64(f), true
}
