//go:build linux
// +build linux

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
	"errors"
	"io/fs"
	"syscall"

	"github.com/ostafen/sipstat/internal/errs"
	"golang.org/x/sys/unix"
)

// Lstat returns the canonical status of path without following symlinks.
// Birth time is read through statx(2) when the kernel and filesystem
// report it; otherwise it is the Unix epoch.
func Lstat(path string) (*FileStatus, error) {
	var stx unix.Statx_t
	err := unix.Statx(unix.AT_FDCWD, path, unix.AT_SYMLINK_NOFOLLOW, unix.STATX_BASIC_STATS|unix.STATX_BTIME, &stx)
	if errors.Is(err, unix.ENOSYS) {
		return lstatLegacy(path)
	}
	if err != nil {
		return nil, errs.Classify(&fs.PathError{Op: "lstat", Path: path, Err: err}, "lstat", path)
	}
	return fromStatx(&stx), nil
}

func lstatLegacy(path string) (*FileStatus, error) {
	var st unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		return nil, errs.Classify(&fs.PathError{Op: "lstat", Path: path, Err: err}, "lstat", path)
	}

	s := &FileStatus{
		Dev:       int64(st.Dev),
		Mode:      st.Mode,
		Nlink:     int64(st.Nlink),
		UID:       int64(st.Uid),
		GID:       int64(st.Gid),
		Rdev:      int64(st.Rdev),
		Blksize:   int64(st.Blksize),
		Ino:       int64(st.Ino),
		Size:      st.Size,
		Blocks:    st.Blocks,
		Atime:     msTimeNs(st.Atim.Unix()),
		Mtime:     msTimeNs(st.Mtim.Unix()),
		Ctime:     msTimeNs(st.Ctim.Unix()),
		Birthtime: msTime(0),
	}
	return s, nil
}

func fromStatx(stx *unix.Statx_t) *FileStatus {
	ts := func(t unix.StatxTimestamp) int64 {
		return t.Sec*1e3 + int64(t.Nsec)/1e6
	}

	s := &FileStatus{
		Dev:       int64(unix.Mkdev(stx.Dev_major, stx.Dev_minor)),
		Mode:      uint32(stx.Mode),
		Nlink:     int64(stx.Nlink),
		UID:       int64(stx.Uid),
		GID:       int64(stx.Gid),
		Rdev:      int64(unix.Mkdev(stx.Rdev_major, stx.Rdev_minor)),
		Blksize:   int64(stx.Blksize),
		Ino:       int64(stx.Ino),
		Size:      int64(stx.Size),
		Blocks:    int64(stx.Blocks),
		Atime:     msTime(ts(stx.Atime)),
		Mtime:     msTime(ts(stx.Mtime)),
		Ctime:     msTime(ts(stx.Ctime)),
		Birthtime: msTime(0),
	}
	if stx.Mask&unix.STATX_BTIME != 0 {
		s.Birthtime = msTime(ts(stx.Btime))
	}
	return s
}

func fillSys(s *FileStatus, sys any) {
	st, ok := sys.(*syscall.Stat_t)
	if !ok {
		return
	}

	s.Dev = int64(st.Dev)
	s.Mode = st.Mode
	s.Nlink = int64(st.Nlink)
	s.UID = int64(st.Uid)
	s.GID = int64(st.Gid)
	s.Rdev = int64(st.Rdev)
	s.Blksize = int64(st.Blksize)
	s.Ino = int64(st.Ino)
	s.Blocks = st.Blocks
	s.Atime = msTimeNs(st.Atim.Unix())
	s.Ctime = msTimeNs(st.Ctim.Unix())
}
