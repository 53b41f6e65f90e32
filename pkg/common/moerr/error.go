// Copyright 2021 - 2022 Matrix Origin
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

package moerr

import (
	"context"
	"errors"
	"fmt"
)

const (
	// Ok is the code of a nil error.
	Ok uint16 = 0

	// Group 1: Internal errors
	ErrStart        uint16 = 20100
	ErrInternal     uint16 = 20101
	ErrInvalidState uint16 = 20107

	// Group 2: numeric
	ErrOutOfRange uint16 = 20201

	// Group 3: invalid input
	ErrInvalidInput uint16 = 20301
	ErrBadConfig    uint16 = 20302

	// ErrEnd, the max value of MOErrorCode
	ErrEnd uint16 = 65535
)

type moErrorMsgItem struct {
	errorMsgOrFormat string
}

var errorMsgRefer = map[uint16]moErrorMsgItem{
	// Group 1: Internal errors
	ErrStart:        {"internal error: error code start"},
	ErrInternal:     {"internal error: %s"},
	ErrInvalidState: {"invalid state %s"},

	// Group 2: numeric
	ErrOutOfRange: {"data out of range: data type %s, %s"},

	// Group 3: invalid input
	ErrInvalidInput: {"invalid input: %s"},
	ErrBadConfig:    {"invalid configuration: %s"},

	// Group End: max value of MOErrorCode
	ErrEnd: {"internal error: end of errcode code"},
}

func newError(ctx context.Context, code uint16, args ...any) *Error {
	item, has := errorMsgRefer[code]
	if !has {
		panic(NewInternalError(ctx, "not exist MOErrorCode: %d", code))
	}
	if len(args) == 0 {
		return &Error{
			code:    code,
			message: item.errorMsgOrFormat,
		}
	}
	return &Error{
		code:    code,
		message: fmt.Sprintf(item.errorMsgOrFormat, args...),
	}
}

type Error struct {
	code    uint16
	message string
	detail  string
}

func (e *Error) Error() string {
	return e.message
}

func (e *Error) Detail() string {
	return e.detail
}

func (e *Error) Display() string {
	if len(e.detail) == 0 {
		return e.message
	}
	return fmt.Sprintf("%s: %s", e.message, e.detail)
}

func (e *Error) ErrorCode() uint16 {
	return e.code
}

// WithDetail returns a copy of e carrying extra detail, shown by Display.
func (e *Error) WithDetail(detail string) *Error {
	ne := *e
	ne.detail = detail
	return &ne
}

// IsMoErrCode reports whether e is (or wraps) a moerr with code rc. A nil
// error only matches Ok.
func IsMoErrCode(e error, rc uint16) bool {
	if e == nil {
		return rc == Ok
	}

	var me *Error
	if !errors.As(e, &me) {
		// This is not a moerr
		return false
	}
	return me.code == rc
}

func DowncastError(e error) *Error {
	var err *Error
	if errors.As(e, &err) {
		return err
	}
	return nil
}

func NewInternalError(ctx context.Context, msg string, args ...any) *Error {
	xmsg := fmt.Sprintf(msg, args...)
	return newError(ctx, ErrInternal, xmsg)
}

func NewInvalidState(ctx context.Context, msg string, args ...any) *Error {
	xmsg := fmt.Sprintf(msg, args...)
	return newError(ctx, ErrInvalidState, xmsg)
}

func NewOutOfRange(ctx context.Context, typ string, msg string, args ...any) *Error {
	xmsg := fmt.Sprintf(msg, args...)
	return newError(ctx, ErrOutOfRange, typ, xmsg)
}

func NewInvalidInput(ctx context.Context, msg string, args ...any) *Error {
	xmsg := fmt.Sprintf(msg, args...)
	return newError(ctx, ErrInvalidInput, xmsg)
}

func NewBadConfig(ctx context.Context, msg string, args ...any) *Error {
	xmsg := fmt.Sprintf(msg, args...)
	return newError(ctx, ErrBadConfig, xmsg)
}
