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
package errs

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	platformerrors "github.com/jmgilman/go/errors"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode platformerrors.ErrorCode
	}{
		{"not exist", &fs.PathError{Op: "open", Path: "/x", Err: fs.ErrNotExist}, platformerrors.CodeNotFound},
		{"permission", &fs.PathError{Op: "open", Path: "/x", Err: fs.ErrPermission}, platformerrors.CodeForbidden},
		{"invalid", fmt.Errorf("seek: %w", fs.ErrInvalid), platformerrors.CodeInvalidInput},
		{"other", errors.New("device on fire"), platformerrors.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Classify(tt.err, "open", "/x")
			require.Error(t, err)
			require.Equal(t, tt.wantCode, Code(err))
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestClassifyNil(t *testing.T) {
	require.NoError(t, Classify(nil, "open", "/x"))
	require.Equal(t, platformerrors.CodeUnknown, Code(nil))
}

func TestClassifyKeepsPlatformErrors(t *testing.T) {
	orig := platformerrors.New(platformerrors.CodeInvalidInput, "bad limit")
	err := Classify(orig, "read", "/x")
	require.Same(t, orig, err)
}

func TestInvalid(t *testing.T) {
	sentinel := errors.New("negative limit")
	err := Invalid(sentinel, "sip")
	require.Equal(t, platformerrors.CodeInvalidInput, Code(err))
	require.ErrorIs(t, err, sentinel)
}
