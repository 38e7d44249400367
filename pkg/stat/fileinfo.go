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
	"io/fs"
	"time"
)

// FromFileInfo builds a canonical status from fs.FileInfo, such as the
// result of os.Lstat. Fields the platform does not expose through Sys()
// are left at zero, access and change times fall back to the modification
// time, and the birth time is the Unix epoch.
func FromFileInfo(fi fs.FileInfo) *FileStatus {
	mtime := msTime(fi.ModTime().UnixMilli())

	s := &FileStatus{
		Mode:      fromFileMode(fi.Mode()),
		Size:      fi.Size(),
		Atime:     mtime,
		Mtime:     mtime,
		Ctime:     mtime,
		Birthtime: msTime(0),
	}
	fillSys(s, fi.Sys())
	return s
}

func msTime(ms int64) time.Time {
	return time.UnixMilli(ms)
}

func msTimeNs(sec, nsec int64) time.Time {
	return msTime(sec*1e3 + nsec/1e6)
}
