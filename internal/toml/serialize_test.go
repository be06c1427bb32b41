package toml

import (
	"strings"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestFormatScalars(t *testing.T) {
	convey.Convey("plain decimal integer", t, func() {
		v := Integer(42)
		out, err := DefaultSpec().Format(TableValue(rootOf("x", v)))
		convey.So(err, convey.ShouldBeNil)
		convey.So(out, convey.ShouldEqual, "x = 42\n")
	})

	convey.Convey("negative value in hex base errors", t, func() {
		v := Integer(-255)
		v.IntFmt = IntegerFormat{Base: BaseHex}
		_, err := DefaultSpec().Format(TableValue(rootOf("y", v)))
		convey.So(err, convey.ShouldNotBeNil)
		serr, ok := err.(*SerializationError)
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(serr.Kind, convey.ShouldEqual, ErrNegativeInNondecimal)
	})

	convey.Convey("zero-padded uppercase hex with no grouping", t, func() {
		v := Integer(0xFF)
		v.IntFmt = IntegerFormat{Base: BaseHex, Width: 4, Uppercase: true}
		out, err := DefaultSpec().Format(TableValue(rootOf("z", v)))
		convey.So(err, convey.ShouldBeNil)
		convey.So(out, convey.ShouldEqual, "z = 0x00FF\n")
	})

	convey.Convey("decimal with underscore grouping every three digits", t, func() {
		v := Integer(1_000_000)
		v.IntFmt = IntegerFormat{Spacer: 3}
		out, err := DefaultSpec().Format(TableValue(rootOf("n", v)))
		convey.So(err, convey.ShouldBeNil)
		convey.So(out, convey.ShouldEqual, "n = 1_000_000\n")
	})

	convey.Convey("zero-width zero-valued integer emits a single digit in every base", t, func() {
		for base, want := range map[IntegerBase]string{
			BaseDec: "0",
			BaseHex: "0x0",
			BaseOct: "0o0",
			BaseBin: "0b0",
		} {
			v := Integer(0)
			v.IntFmt = IntegerFormat{Base: base}
			out, err := DefaultSpec().Format(TableValue(rootOf("v", v)))
			convey.So(err, convey.ShouldBeNil)
			convey.So(out, convey.ShouldEqual, "v = "+want+"\n")
		}
	})

	convey.Convey("boolean and default float", t, func() {
		tbl := NewTable()
		tbl.Set("ok", Boolean(true))
		f := Floating(1.5)
		tbl.Set("pi", f)
		out, err := DefaultSpec().Format(TableValue(tbl))
		convey.So(err, convey.ShouldBeNil)
		convey.So(out, convey.ShouldContainSubstring, "ok = true\n")
		convey.So(out, convey.ShouldContainSubstring, "pi = 1.5\n")
	})

	convey.Convey("default float integer-valued gets a trailing .0", t, func() {
		f := Floating(3.0)
		out, err := DefaultSpec().Format(TableValue(rootOf("f", f)))
		convey.So(err, convey.ShouldBeNil)
		convey.So(out, convey.ShouldEqual, "f = 3.0\n")
	})
}

func TestFormatArrays(t *testing.T) {
	convey.Convey("short array defaults to oneline", t, func() {
		arr := ArrayValue([]*Value{Integer(1), Integer(2), Integer(3)})
		out, err := DefaultSpec().Format(TableValue(rootOf("a", arr)))
		convey.So(err, convey.ShouldBeNil)
		convey.So(out, convey.ShouldEqual, "a = [1, 2, 3]\n")
	})

	convey.Convey("long array defaults to multiline", t, func() {
		elems := make([]*Value, 0, 20)
		for i := 0; i < 20; i++ {
			s := String("a moderately long repeated element string")
			s.StrFmt = StringFormat{Style: StringBasic}
			elems = append(elems, s)
		}
		arr := ArrayValue(elems)
		out, err := DefaultSpec().Format(TableValue(rootOf("a", arr)))
		convey.So(err, convey.ShouldBeNil)
		convey.So(out, convey.ShouldContainSubstring, "a = [\n")
		convey.So(strings.Count(out, "\n"), convey.ShouldBeGreaterThan, 5)
	})

	convey.Convey("array of tables needs a key path", t, func() {
		elem := TableValue(rootOf("sku", Integer(1)))
		elem.TblFmt = TableFormat{Style: TableMultiline}
		arr := ArrayValue([]*Value{elem})
		arr.ArrFmt = ArrayFormat{Style: ArrayOfTables}
		_, err := DefaultSpec().Format(arr)
		convey.So(err, convey.ShouldNotBeNil)

		out, err := DefaultSpec().FormatKey("products", arr)
		convey.So(err, convey.ShouldBeNil)
		convey.So(out, convey.ShouldEqual, "[[products]]\nsku = 1\n")
	})
}

func TestFormatStrings(t *testing.T) {
	convey.Convey("basic string escapes control characters", t, func() {
		v := String("a\tb\nc")
		v.StrFmt = StringFormat{Style: StringBasic}
		out, err := DefaultSpec().Format(TableValue(rootOf("s", v)))
		convey.So(err, convey.ShouldBeNil)
		convey.So(out, convey.ShouldEqual, `s = "a\tb\nc"`+"\n")
	})

	convey.Convey("literal string rejects embedded newline", t, func() {
		v := String("a\nb")
		v.StrFmt = StringFormat{Style: StringLiteral}
		_, err := DefaultSpec().Format(TableValue(rootOf("s", v)))
		convey.So(err, convey.ShouldNotBeNil)
	})

	convey.Convey("multiline basic string breaks up runs of three quotes", t, func() {
		v := String(`a"""b"""`)
		v.StrFmt = StringFormat{Style: StringMLBasic}
		out, err := DefaultSpec().Format(TableValue(rootOf("s", v)))
		convey.So(err, convey.ShouldBeNil)
		convey.So(out, convey.ShouldEqual, `s = """a""\"b""\""""`+"\n")
		convey.So(strings.Contains(out, `""\"`), convey.ShouldBeTrue)
	})
}

func TestFormatTables(t *testing.T) {
	convey.Convey("dotted table collapses to a single key path", t, func() {
		inner := TableValue(rootOf("c", Integer(1)))
		inner.TblFmt = TableFormat{Style: TableDotted}
		outer := TableValue(rootOf("b", inner))
		outer.TblFmt = TableFormat{Style: TableDotted}

		out, err := DefaultSpec().FormatKey("a", outer)
		convey.So(err, convey.ShouldBeNil)
		convey.So(out, convey.ShouldEqual, "a.b.c = 1\n")
	})

	convey.Convey("inline table renders on one line with commas", t, func() {
		tbl := NewTable()
		tbl.Set("x", Integer(1))
		tbl.Set("y", Integer(2))
		tv := TableValue(tbl)
		tv.TblFmt = TableFormat{Style: TableOneline}
		out, err := DefaultSpec().Format(TableValue(rootOf("p", tv)))
		convey.So(err, convey.ShouldBeNil)
		convey.So(out, convey.ShouldEqual, "p = { x = 1, y = 2 }\n")
	})

	convey.Convey("multiline inline table strips the last entry's trailing comma and newline", t, func() {
		tbl := NewTable()
		tbl.Set("x", Integer(1))
		tbl.Set("y", Integer(2))
		tv := TableValue(tbl)
		tv.TblFmt = TableFormat{Style: TableMultilineOneline}
		out, err := DefaultSpec().Format(TableValue(rootOf("p", tv)))
		convey.So(err, convey.ShouldBeNil)
		convey.So(out, convey.ShouldEqual, "p = {\nx = 1,\ny = 2}\n")
	})

	convey.Convey("an ordinary array nested under a table header keeps its key prefix", t, func() {
		sub := NewTable()
		sub.Set("ports", ArrayValue([]*Value{Integer(80), Integer(443)}))
		subVal := TableValue(sub)
		subVal.TblFmt = TableFormat{Style: TableMultiline}

		root := NewTable()
		root.Set("server", subVal)

		out, err := DefaultSpec().Format(TableValue(root))
		convey.So(err, convey.ShouldBeNil)
		convey.So(out, convey.ShouldEqual, "[server]\nports = [80, 443]\n")
	})

	convey.Convey("a blank line separates immediate keys from a nested header", t, func() {
		root := NewTable()
		root.Set("title", String("example"))
		sub := TableValue(rootOf("port", Integer(80)))
		sub.TblFmt = TableFormat{Style: TableMultiline}
		root.Set("server", sub)

		out, err := DefaultSpec().Format(TableValue(root))
		convey.So(err, convey.ShouldBeNil)
		convey.So(out, convey.ShouldEqual, "title = \"example\"\n\n[server]\nport = 80\n")
	})

	convey.Convey("implicit table rejects a non-table child", t, func() {
		tbl := NewTable()
		tbl.Set("leaf", Integer(1))
		v := TableValue(tbl)
		v.TblFmt = TableFormat{Style: TableImplicit}
		_, err := DefaultSpec().Format(v)
		convey.So(err, convey.ShouldNotBeNil)
		serr := err.(*SerializationError)
		convey.So(serr.Kind, convey.ShouldEqual, ErrImplicitNonTable)
	})
}

func TestNullExtension(t *testing.T) {
	convey.Convey("empty value needs the null extension", t, func() {
		_, err := DefaultSpec().Format(Empty())
		convey.So(err, convey.ShouldNotBeNil)

		spec := DefaultSpec()
		spec.ExtNullValue = true
		out, err := spec.Format(Empty())
		convey.So(err, convey.ShouldBeNil)
		convey.So(out, convey.ShouldEqual, "null")
	})
}

func TestDeterminism(t *testing.T) {
	convey.Convey("formatting the same tree twice yields identical text", t, func() {
		tbl := NewTable()
		tbl.Set("a", Integer(1))
		tbl.Set("b", String("x"))
		v := TableValue(tbl)
		out1, err1 := DefaultSpec().Format(v)
		out2, err2 := DefaultSpec().Format(v)
		convey.So(err1, convey.ShouldBeNil)
		convey.So(err2, convey.ShouldBeNil)
		convey.So(out1, convey.ShouldEqual, out2)
	})
}

// rootOf builds a one-key root table, a pattern nearly every test above
// needs to get a bare scalar under a renderable key.
func rootOf(key string, v *Value) *Table {
	t := NewTable()
	t.Set(key, v)
	return t
}
