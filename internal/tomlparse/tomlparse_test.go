package tomlparse

import (
	"strings"
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/capyflow/tomlfmt/internal/toml"
)

func TestArrayOfTables(t *testing.T) {
	convey.Convey("array of tables", t, func() {
		src := `
[[products]]
name = "Hammer"
sku = 738594937

[[products]]
name = "Nails"
sku = 284758393
count = 100
`
		root, err := Parse(strings.NewReader(src))
		convey.So(err, convey.ShouldBeNil)
		v, ok := Get(root, "products")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(v.Kind, convey.ShouldEqual, toml.KindArray)
		convey.So(len(v.Arr), convey.ShouldEqual, 2)
		first := v.Arr[0]
		name, _ := first.Tbl.Get("name")
		convey.So(MustString(name), convey.ShouldEqual, "Hammer")
	})
}

func TestInlineTable(t *testing.T) {
	convey.Convey("inline table with a nested offset datetime", t, func() {
		src := `owner = { name = "Tom", dob = 1979-05-27T07:32:00Z }`
		root, err := Parse(strings.NewReader(src))
		convey.So(err, convey.ShouldBeNil)
		v, ok := Get(root, "owner")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(v.Kind, convey.ShouldEqual, toml.KindTable)
		name, _ := v.Tbl.Get("name")
		convey.So(MustString(name), convey.ShouldEqual, "Tom")
		dob, _ := v.Tbl.Get("dob")
		convey.So(dob.Kind, convey.ShouldEqual, toml.KindOffsetDatetime)
		convey.So(dob.OffsDT.Date.Year, convey.ShouldEqual, 1979)
		convey.So(dob.OffsDT.Offset, convey.ShouldEqual, "Z")
		convey.So(dob.DateTimeFmt.HasSeconds, convey.ShouldBeTrue)

		out, err := toml.DefaultSpec().Format(toml.TableValue(root))
		convey.So(err, convey.ShouldBeNil)
		convey.So(out, convey.ShouldContainSubstring, "07:32:00Z")
	})
}

func TestMultilineBasicString(t *testing.T) {
	convey.Convey("multiline basic string joins its physical lines", t, func() {
		src := "desc = \"\"\"first\nsecond\nthird\"\"\""
		root, err := Parse(strings.NewReader(src))
		convey.So(err, convey.ShouldBeNil)
		v, ok := Get(root, "desc")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(MustString(v), convey.ShouldEqual, "first\nsecond\nthird")
	})
}

func TestDottedKeys(t *testing.T) {
	convey.Convey("dotted keys build nested tables", t, func() {
		src := "a.b = 1\na.c = 2"
		root, err := Parse(strings.NewReader(src))
		convey.So(err, convey.ShouldBeNil)
		v, ok := Get(root, "a", "b")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(MustInt(v), convey.ShouldEqual, 1)
		v2, ok2 := Get(root, "a", "c")
		convey.So(ok2, convey.ShouldBeTrue)
		convey.So(MustInt(v2), convey.ShouldEqual, 2)
	})
}

func TestQuotedKey(t *testing.T) {
	convey.Convey("a quoted key containing a dot is a single key", t, func() {
		src := `"a.b" = 1`
		root, err := Parse(strings.NewReader(src))
		convey.So(err, convey.ShouldBeNil)
		v, ok := Get(root, "a.b")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(MustInt(v), convey.ShouldEqual, 1)
	})
}

func TestIntsAndFloats(t *testing.T) {
	convey.Convey("underscore-separated integers and bases", t, func() {
		src := `
i1 = 1_000
i2 = 0xFF
i3 = 0o17
i4 = 0b101
f1 = +inf
f2 = -inf
f3 = nan
`
		root, err := Parse(strings.NewReader(src))
		convey.So(err, convey.ShouldBeNil)

		v, _ := Get(root, "i1")
		convey.So(MustInt(v), convey.ShouldEqual, 1000)

		v, _ = Get(root, "i2")
		convey.So(MustInt(v), convey.ShouldEqual, 255)
		convey.So(v.IntFmt.Base, convey.ShouldEqual, toml.BaseHex)

		v, _ = Get(root, "i3")
		convey.So(MustInt(v), convey.ShouldEqual, 15)

		v, _ = Get(root, "i4")
		convey.So(MustInt(v), convey.ShouldEqual, 5)

		v, _ = Get(root, "f1")
		convey.So(v.Kind, convey.ShouldEqual, toml.KindFloat)
	})
}

func TestTableHeaders(t *testing.T) {
	convey.Convey("nested table headers build the expected tree", t, func() {
		src := `
[servers]

[servers.alpha]
ip = "10.0.0.1"
`
		root, err := Parse(strings.NewReader(src))
		convey.So(err, convey.ShouldBeNil)
		v, ok := Get(root, "servers", "alpha", "ip")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(MustString(v), convey.ShouldEqual, "10.0.0.1")
	})
}

func TestParseThenFormatRoundTrip(t *testing.T) {
	convey.Convey("a parsed document can be re-emitted without error", t, func() {
		src := `
title = "example"

[owner]
name = "Tom"
`
		root, err := Parse(strings.NewReader(src))
		convey.So(err, convey.ShouldBeNil)

		out, err := toml.DefaultSpec().Format(toml.TableValue(root))
		convey.So(err, convey.ShouldBeNil)
		convey.So(out, convey.ShouldContainSubstring, `title = "example"`)
		convey.So(out, convey.ShouldContainSubstring, "[owner]")
		convey.So(out, convey.ShouldContainSubstring, `name = "Tom"`)
	})
}
