// Copyright 2023 Matrix Origin
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


package linkedmap

import (
	"slices"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"go.uber.org/zap"
)

func TestMapScenario(t *testing.T) {
	Convey("Given a map filled with duplicated keys", t, func() {
		m := FromPairs([]Pair[string, int]{{"a", 1}, {"b", 2}, {"a", 3}},
			WithBucketCount(8), WithLogger(zap.NewNop()))

		Convey("The first value of a key is kept", func() {
			So(m.Len(), ShouldEqual, 2)
			v, err := m.At("a")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 1)
			So(slices.Collect(m.Keys()), ShouldResemble, []string{"a", "b"})
		})

		Convey("When a key is erased and inserted again", func() {
			So(m.Erase("a"), ShouldBeTrue)
			So(m.Insert("a", 3), ShouldBeTrue)

			Convey("It moves to the end with the new value", func() {
				So(slices.Collect(m.Keys()), ShouldResemble, []string{"b", "a"})
				So(slices.Collect(m.Values()), ShouldResemble, []int{2, 3})
			})
		})

		Convey("When the subscript is used on a missing key", func() {
			p := m.Index("c")

			Convey("A zero value is appended", func() {
				So(*p, ShouldEqual, 0)
				So(m.Len(), ShouldEqual, 3)
				So(m.End().Prev().Key(), ShouldEqual, "c")
			})
		})

		Convey("When the map is cloned", func() {
			c := m.Clone()
			c.Erase("b")

			Convey("The source is left untouched", func() {
				So(m.Contains("b"), ShouldBeTrue)
				So(c.Contains("b"), ShouldBeFalse)
				So(c.Len(), ShouldEqual, 1)
			})
		})

		Convey("When the map is cleared", func() {
			m.Clear()

			Convey("Iteration yields nothing", func() {
				So(m.Empty(), ShouldBeTrue)
				So(m.Begin().IsEnd(), ShouldBeTrue)
				_, err := m.At("a")
				So(err, ShouldNotBeNil)
			})
		})
	})
}
