// Copyright 2021 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hashtable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var golden = []string{
	"Discard medicine more than two years old.",
	"He who has a shady past knows that nice guys finish last.",
	"I wouldn't marry him with a ten foot pole.",
	"Free! Free!/A trip/to Mars/for 900/empty jars/Burma Shave",
	"The days of the digital watch are numbered.  -Tom Stoppard",
	"Nepal premier won't resign.",
	"For every action there is an equal and opposite government program.",
	"His money is twice tainted: 'taint yours and 'taint mine.",
	"There is no reason for any individual to have a computer in their home. -Ken Olsen, 1977",
	"It's a tiny change to the code and not completely disgusting. - Bob Manchek",
	"size:  a.out:  bad magic",
	"The major problem is with sendmail.  -Mark Horton",
	"Give me a rock, paper and scissors and I will move the world.  CCFestoon",
	"If the enemy is within range, then so are you.",
	"It's well we cannot hear the screams/That we create in others' dreams.",
	"You remind me of a TV show, but that's all right: I watch it anyway.",
	"C is as portable as Stonehedge!!",
	"Even if I could be Shakespeare, I think I should still choose to be Faraday. - A. Huxley",
	"How can you write a big system without C++?  -Paul Glick",
}

func TestStringHasher(t *testing.T) {
	h := StringHasher[string]()
	// xxhash64 of the empty input with seed 0
	require.Equal(t, uint64(0xef46db3751d8e999), h(""))

	seen := make(map[uint64]string, len(golden))
	for _, s := range golden {
		v := h(s)
		require.Equal(t, v, h(s), "hash must be deterministic")
		_, dup := seen[v]
		require.False(t, dup, "unexpected collision for %q", s)
		seen[v] = s
	}

	type name string
	require.Equal(t, h("abc"), StringHasher[name]()(name("abc")))
}

func TestIntegerHasher(t *testing.T) {
	h := IntegerHasher[int64]()
	seen := make(map[uint64]struct{})
	for i := int64(-500); i < 500; i++ {
		v := h(i)
		require.Equal(t, v, h(i))
		seen[v] = struct{}{}
	}
	require.Len(t, seen, 1000)

	// same bits, same hash, whatever the width
	require.Equal(t, IntegerHasher[uint64]()(7), IntegerHasher[uint8]()(7))
}

func TestComparableHasher(t *testing.T) {
	type point struct{ x, y int }
	h := ComparableHasher[point]()
	require.Equal(t, h(point{1, 2}), h(point{1, 2}))
	require.NotEqual(t, h(point{1, 2}), h(point{2, 1}))
}

func TestDefaultHasher(t *testing.T) {
	require.Equal(t, StringHasher[string]()("key"), DefaultHasher[string]()("key"))
	require.Equal(t, IntegerHasher[int]()(42), DefaultHasher[int]()(42))
	require.Equal(t, IntegerHasher[uint32]()(42), DefaultHasher[uint32]()(42))

	type key struct {
		a string
		b int
	}
	h := DefaultHasher[key]()
	require.Equal(t, h(key{"a", 1}), h(key{"a", 1}))

	f := DefaultHasher[float64]()
	require.Equal(t, f(1.5), f(1.5))
}
