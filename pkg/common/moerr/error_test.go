// Copyright 2022 Matrix Origin
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
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsMoErrCode(t *testing.T) {
	require.True(t, IsMoErrCode(nil, Ok))
	require.False(t, IsMoErrCode(nil, ErrOutOfRange))
	require.False(t, IsMoErrCode(io.EOF, ErrInternal))

	err := NewOutOfRangeNoCtx("linkedmap", "key %v not found", "a")
	require.True(t, IsMoErrCode(err, ErrOutOfRange))
	require.False(t, IsMoErrCode(err, ErrInternal))

	wrapped := fmt.Errorf("lookup: %w", err)
	require.True(t, IsMoErrCode(wrapped, ErrOutOfRange))
	require.Equal(t, err, DowncastError(wrapped))
	require.Nil(t, DowncastError(io.EOF))
}

func TestErrorMessage(t *testing.T) {
	err := NewOutOfRange(context.TODO(), "linkedmap", "key %v not found", 42)
	require.Equal(t, "data out of range: data type linkedmap, key 42 not found", err.Error())
	require.Equal(t, ErrOutOfRange, err.ErrorCode())

	require.Equal(t, "invalid configuration: bucket count 0", NewBadConfigNoCtx("bucket count %d", 0).Error())
	require.Equal(t, "internal error: boom", NewInternalError(context.TODO(), "boom").Error())
}

func TestDisplay(t *testing.T) {
	err := NewInvalidStateNoCtx("stale handle")
	require.Equal(t, err.Error(), err.Display())

	detailed := err.WithDetail("slot 3")
	require.Equal(t, "invalid state stale handle: slot 3", detailed.Display())
	require.Empty(t, err.Detail())
	require.Equal(t, "slot 3", detailed.Detail())
}

func TestNewErrorUnknownCode(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		require.True(t, IsMoErrCode(r.(error), ErrInternal))
	}()
	_ = newError(context.TODO(), 12345)
}
