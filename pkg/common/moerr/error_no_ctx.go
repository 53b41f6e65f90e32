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

import "context"

// NoCtx variants are for call sites that have no context at hand, such as
// container methods and package-level panics.

func NewInvalidStateNoCtx(msg string, args ...any) *Error {
	return NewInvalidState(context.Background(), msg, args...)
}

func NewOutOfRangeNoCtx(typ string, msg string, args ...any) *Error {
	return NewOutOfRange(context.Background(), typ, msg, args...)
}

func NewInvalidInputNoCtx(msg string, args ...any) *Error {
	return NewInvalidInput(context.Background(), msg, args...)
}

func NewBadConfigNoCtx(msg string, args ...any) *Error {
	return NewBadConfig(context.Background(), msg, args...)
}
