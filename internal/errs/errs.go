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

// Package errs maps filesystem failures onto platform error codes.
package errs

import (
	"errors"
	"io/fs"

	platformerrors "github.com/jmgilman/go/errors"
)

// Classify wraps err with the platform error code matching its cause.
// The original error stays in the chain, so errors.Is(err, fs.ErrNotExist)
// keeps working on the result. If err is nil, returns nil.
func Classify(err error, op, path string) error {
	if err == nil {
		return nil
	}

	var pe platformerrors.PlatformError
	if errors.As(err, &pe) {
		return err
	}

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return platformerrors.Wrapf(err, platformerrors.CodeNotFound, "%s %s: file does not exist", op, path)
	case errors.Is(err, fs.ErrPermission):
		return platformerrors.Wrapf(err, platformerrors.CodeForbidden, "%s %s: access denied", op, path)
	case errors.Is(err, fs.ErrInvalid):
		return platformerrors.Wrapf(err, platformerrors.CodeInvalidInput, "%s %s: invalid argument", op, path)
	}
	return platformerrors.Wrapf(err, platformerrors.CodeInternal, "%s %s: i/o failure", op, path)
}

// Invalid returns an InvalidInput platform error wrapping err.
func Invalid(err error, op string) error {
	return platformerrors.Wrap(err, platformerrors.CodeInvalidInput, op)
}

// Code returns the platform error code carried by err, or CodeUnknown.
func Code(err error) platformerrors.ErrorCode {
	if err == nil {
		return platformerrors.CodeUnknown
	}

	var pe platformerrors.PlatformError
	if errors.As(err, &pe) {
		return pe.Code()
	}
	return platformerrors.CodeUnknown
}
