// Copyright 2023 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"fmt"
	"strings"
)

const licenseHeader = `// Copyright 2023 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
`

const generatedMarker = "// Code generated by vecgen. DO NOT EDIT."

// binaryOp is a lanewise operator taking two vectors of the same type.
type binaryOp struct {
	Name   string
	Op     string
	Doc    string
	Scalar string // doc of the scalar variant, empty if there is none
}

var arithmeticOps = []binaryOp{
	{"Add", "+", "returns the lanewise sum v + o. Lanes wrap on overflow.", "returns v with s added to every lane."},
	{"Sub", "-", "returns the lanewise difference v - o. Lanes wrap on overflow.", "returns v with s subtracted from every lane."},
	{"Mul", "*", "returns the lanewise product v * o. Lanes wrap on overflow.", "returns v with every lane multiplied by s."},
	{"Div", "/", "returns the lanewise quotient v / o. A zero lane in o panics.", "returns v with every lane divided by s."},
	{"Mod", "%", "returns the lanewise remainder v % o. A zero lane in o panics.", "returns the remainders of the lanes of v divided by s."},
}

var bitwiseOps = []binaryOp{
	{"And", "&", "returns the lanewise bitwise AND of v and o.", ""},
	{"Or", "|", "returns the lanewise bitwise OR of v and o.", ""},
	{"Xor", "^", "returns the lanewise bitwise XOR of v and o.", ""},
	{"AndNot", "&^", "returns the lanewise bit clear v &^ o.", ""},
}

var comparisonOps = []binaryOp{
	{"Equal", "==", "reports lanewise whether v == o.", ""},
	{"NotEqual", "!=", "reports lanewise whether v != o.", ""},
	{"Less", "<", "reports lanewise whether v < o.", ""},
	{"LessEqual", "<=", "reports lanewise whether v <= o.", ""},
	{"Greater", ">", "reports lanewise whether v > o.", ""},
	{"GreaterEqual", ">=", "reports lanewise whether v >= o.", ""},
}

// fields renders "X: f(X), Y: f(Y), ..." over the lanes of t.
func fields(lanes []string, f func(i int, lane string) string) string {
	parts := make([]string, len(lanes))
	for i, l := range lanes {
		parts[i] = l + ": " + f(i, l)
	}
	return strings.Join(parts, ", ")
}

// join renders f over the lanes of t separated by sep.
func join(lanes []string, sep string, f func(i int, lane string) string) string {
	parts := make([]string, len(lanes))
	for i, l := range lanes {
		parts[i] = f(i, l)
	}
	return strings.Join(parts, sep)
}

func writeHeader(buf *bytes.Buffer, pkg string, imports ...string) {
	buf.WriteString(licenseHeader)
	fmt.Fprintf(buf, "\n%s\n\npackage %s\n\n", generatedMarker, pkg)
	if len(imports) == 1 {
		fmt.Fprintf(buf, "import %q\n", imports[0])
		return
	}
	buf.WriteString("import (\n")
	for _, imp := range imports {
		fmt.Fprintf(buf, "\t%q\n", imp)
	}
	buf.WriteString(")\n")
}

// emitVector writes the complete source of one vector type.
func emitVector(buf *bytes.Buffer, pkg string, t VecType) {
	writeHeader(buf, pkg, "fmt", "io")

	lanes := t.LaneNames()
	n := t.Name
	s := t.Scalar
	lower := make([]string, len(lanes))
	for i, l := range lanes {
		lower[i] = strings.ToLower(l)
	}

	signedness := "unsigned"
	if t.Signed {
		signedness = "signed"
	}
	fmt.Fprintf(buf, "\n// %s is a vector of %d %s 64-bit integer lanes.\n", n, t.Lanes, signedness)
	fmt.Fprintf(buf, "type %s struct {\n", n)
	for _, l := range lanes {
		fmt.Fprintf(buf, "\t%s %s\n", l, s)
	}
	buf.WriteString("}\n")

	// Constructors and conversions.
	fmt.Fprintf(buf, "\n// New%s returns a %s with the given lanes.\n", n, n)
	fmt.Fprintf(buf, "func New%s(%s %s) %s {\n", n, strings.Join(lower, ", "), s, n)
	fmt.Fprintf(buf, "\treturn %s{%s}\n}\n", n, fields(lanes, func(i int, _ string) string { return lower[i] }))

	fmt.Fprintf(buf, "\n// %sSplat returns a %s with every lane set to s.\n", n, n)
	fmt.Fprintf(buf, "func %sSplat(s %s) %s {\n", n, s, n)
	fmt.Fprintf(buf, "\treturn %s{%s}\n}\n", n, fields(lanes, func(int, string) string { return "s" }))

	cp := t.Counterpart()
	cs := "uint64"
	if !t.Signed {
		cs = "int64"
	}
	fmt.Fprintf(buf, "\n// %s reinterprets the lanes of v as %s.\n", cp, cs)
	fmt.Fprintf(buf, "func (v %s) %s() %s {\n", n, cp, cp)
	fmt.Fprintf(buf, "\treturn %s{%s}\n}\n", cp, fields(lanes, func(_ int, l string) string { return cs + "(v." + l + ")" }))

	if t.Lanes < 4 {
		wider := t.WithLanes(t.Lanes + 1)
		next := laneNames[t.Lanes]
		fmt.Fprintf(buf, "\n// Extend returns v as a %s with the extra %s lane set to s.\n", wider, next)
		fmt.Fprintf(buf, "func (v %s) Extend(s %s) %s {\n", n, s, wider)
		fmt.Fprintf(buf, "\treturn %s{%s, %s: s}\n}\n", wider, fields(lanes, func(_ int, l string) string { return "v." + l }), next)
	}

	// Indexing.
	fmt.Fprintf(buf, "\n// Index returns lane i of v.\n")
	fmt.Fprintf(buf, "func (v %s) Index(i int) (%s, error) {\n\tswitch i {\n", n, s)
	for i, l := range lanes {
		fmt.Fprintf(buf, "\tcase %d:\n\t\treturn v.%s, nil\n", i, l)
	}
	fmt.Fprintf(buf, "\t}\n\treturn 0, laneError(%q, i)\n}\n", n)

	fmt.Fprintf(buf, "\n// SetIndex sets lane i of v to s.\n")
	fmt.Fprintf(buf, "func (v *%s) SetIndex(i int, s %s) error {\n\tswitch i {\n", n, s)
	for i, l := range lanes {
		fmt.Fprintf(buf, "\tcase %d:\n\t\tv.%s = s\n", i, l)
	}
	fmt.Fprintf(buf, "\tdefault:\n\t\treturn laneError(%q, i)\n\t}\n\treturn nil\n}\n", n)

	// Swizzles.
	fmt.Fprintf(buf, "\nfunc (v %s) lane(l Lane) %s {\n", n, s)
	buf.WriteString("\ts, err := v.Index(int(l))\n\tif err != nil {\n\t\tpanic(err)\n\t}\n\treturn s\n}\n")
	sel := []string{"a", "b", "c", "d"}
	for w := 2; w <= 4; w++ {
		out := t.WithLanes(w)
		fmt.Fprintf(buf, "\n// Swizzle%d returns the lanes %s of v as a %s.\n", w, describeSelectors(sel[:w]), out)
		fmt.Fprintf(buf, "func (v %s) Swizzle%d(%s Lane) %s {\n", n, w, strings.Join(sel[:w], ", "), out)
		fmt.Fprintf(buf, "\treturn %s{%s}\n}\n", out, fields(laneNames[:w], func(i int, _ string) string { return "v.lane(" + sel[i] + ")" }))
	}

	// Arithmetic and bitwise operators.
	for _, op := range append(append([]binaryOp{}, arithmeticOps...), bitwiseOps...) {
		fmt.Fprintf(buf, "\n// %s %s\n", op.Name, op.Doc)
		fmt.Fprintf(buf, "func (v %s) %s(o %s) %s {\n", n, op.Name, n, n)
		fmt.Fprintf(buf, "\treturn %s{%s}\n}\n", n, fields(lanes, func(_ int, l string) string { return "v." + l + " " + op.Op + " o." + l }))
		if op.Scalar == "" {
			continue
		}
		fmt.Fprintf(buf, "\n// %sScalar %s\n", op.Name, op.Scalar)
		fmt.Fprintf(buf, "func (v %s) %sScalar(s %s) %s {\n", n, op.Name, s, n)
		fmt.Fprintf(buf, "\treturn %s{%s}\n}\n", n, fields(lanes, func(_ int, l string) string { return "v." + l + " " + op.Op + " s" }))
	}

	unary := []struct{ name, doc, expr string }{
		{"Neg", "returns the lanewise two's complement negation of v.", "-v.%s"},
		{"Not", "returns the lanewise bitwise complement of v.", "^v.%s"},
		{"Inc", "returns v with every lane incremented by one.", "v.%s + 1"},
		{"Dec", "returns v with every lane decremented by one.", "v.%s - 1"},
	}
	for _, u := range unary {
		fmt.Fprintf(buf, "\n// %s %s\n", u.name, u.doc)
		fmt.Fprintf(buf, "func (v %s) %s() %s {\n", n, u.name, n)
		fmt.Fprintf(buf, "\treturn %s{%s}\n}\n", n, fields(lanes, func(_ int, l string) string { return fmt.Sprintf(u.expr, l) }))
	}

	// Shifts.
	shrDoc := "Lanes are shifted logically."
	if t.Signed {
		shrDoc = "Lanes are shifted arithmetically."
	}
	wide := t.WideType()
	fmt.Fprintf(buf, "\n// Shl returns v with every lane shifted left by n bits.\n")
	fmt.Fprintf(buf, "func (v %s) Shl(n uint) %s {\n", n, n)
	fmt.Fprintf(buf, "\treturn %s{%s}\n}\n", n, fields(lanes, func(_ int, l string) string { return "v." + l + " << n" }))
	fmt.Fprintf(buf, "\n// Shr returns v with every lane shifted right by n bits. %s\n", shrDoc)
	fmt.Fprintf(buf, "func (v %s) Shr(n uint) %s {\n", n, n)
	fmt.Fprintf(buf, "\treturn %s{%s}\n}\n", n, fields(lanes, func(_ int, l string) string { return "v." + l + " >> n" }))
	fmt.Fprintf(buf, "\n// ShlV returns v with each lane shifted left by the matching lane of n.\n")
	fmt.Fprintf(buf, "func (v %s) ShlV(n %s) %s {\n", n, wide, n)
	fmt.Fprintf(buf, "\treturn %s{%s}\n}\n", n, fields(lanes, func(_ int, l string) string { return "v." + l + " << n." + l }))
	fmt.Fprintf(buf, "\n// ShrV returns v with each lane shifted right by the matching lane of n.\n")
	fmt.Fprintf(buf, "func (v %s) ShrV(n %s) %s {\n", n, wide, n)
	fmt.Fprintf(buf, "\treturn %s{%s}\n}\n", n, fields(lanes, func(_ int, l string) string { return "v." + l + " >> n." + l }))

	// Comparisons.
	mask := t.Mask()
	for _, op := range comparisonOps {
		fmt.Fprintf(buf, "\n// %s %s\n", op.Name, op.Doc)
		fmt.Fprintf(buf, "func (v %s) %s(o %s) %s {\n", n, op.Name, n, mask)
		fmt.Fprintf(buf, "\treturn %s{%s}\n}\n", mask, fields(lanes, func(_ int, l string) string { return "v." + l + " " + op.Op + " o." + l }))
	}

	// Reductions and helpers.
	fmt.Fprintf(buf, "\n// Min returns the lanewise minimum of v and o.\n")
	fmt.Fprintf(buf, "func (v %s) Min(o %s) %s {\n", n, n, n)
	fmt.Fprintf(buf, "\treturn %s{%s}\n}\n", n, fields(lanes, func(_ int, l string) string { return "min(v." + l + ", o." + l + ")" }))
	fmt.Fprintf(buf, "\n// Max returns the lanewise maximum of v and o.\n")
	fmt.Fprintf(buf, "func (v %s) Max(o %s) %s {\n", n, n, n)
	fmt.Fprintf(buf, "\treturn %s{%s}\n}\n", n, fields(lanes, func(_ int, l string) string { return "max(v." + l + ", o." + l + ")" }))
	if t.Signed {
		fmt.Fprintf(buf, "\n// Abs returns the lanewise absolute value of v. A math.MinInt64 lane is\n// returned unchanged.\n")
		fmt.Fprintf(buf, "func (v %s) Abs() %s {\n", n, n)
		fmt.Fprintf(buf, "\treturn %s{%s}\n}\n", n, fields(lanes, func(_ int, l string) string { return "abs64(v." + l + ")" }))
	}
	fmt.Fprintf(buf, "\n// Sum returns the wrapping sum of the lanes of v.\n")
	fmt.Fprintf(buf, "func (v %s) Sum() %s {\n", n, s)
	fmt.Fprintf(buf, "\treturn %s\n}\n", join(lanes, " + ", func(_ int, l string) string { return "v." + l }))
	fmt.Fprintf(buf, "\n// Dot returns the wrapping dot product of v and o.\n")
	fmt.Fprintf(buf, "func (v %s) Dot(o %s) %s {\n", n, n, s)
	fmt.Fprintf(buf, "\treturn %s\n}\n", join(lanes, " + ", func(_ int, l string) string { return "v." + l + "*o." + l }))
	fmt.Fprintf(buf, "\n// Select%s returns, lane by lane, a where m is set and b elsewhere.\n", n)
	fmt.Fprintf(buf, "func Select%s(m %s, a, b %s) %s {\n", n, mask, n, n)
	fmt.Fprintf(buf, "\treturn %s{%s}\n}\n", n, fields(lanes, func(_ int, l string) string { return "pick(m." + l + ", a." + l + ", b." + l + ")" }))

	// Hashing.
	hv := t.HashVar()
	bits := func(l string) string {
		if t.Signed {
			return "uint64(v." + l + ")"
		}
		return "v." + l
	}
	fmt.Fprintf(buf, "\nvar %s = hashConstants{\n", hv)
	fmt.Fprintf(buf, "\tmul:     [4]uint64{%s},\n", hexList(t.HashMul))
	fmt.Fprintf(buf, "\tadd:     0x%016x,\n", t.HashAdd)
	fmt.Fprintf(buf, "\twideMul: [4]uint64{%s},\n", hexList(t.WideMul))
	fmt.Fprintf(buf, "\twideAdd: [4]uint64{%s},\n", hexList(t.WideAdd))
	buf.WriteString("}\n")
	fmt.Fprintf(buf, "\n// Hash returns a 64-bit hash of the lanes of v.\n")
	fmt.Fprintf(buf, "func (v %s) Hash() uint64 {\n\th := &%s\n", n, hv)
	fmt.Fprintf(buf, "\treturn %s + h.add\n}\n", join(lanes, " + ", func(i int, l string) string { return fmt.Sprintf("mix(%s, h.mul[%d])", bits(l), i) }))
	fmt.Fprintf(buf, "\n// HashWide returns a hash per lane of v. The wide hashes of several vectors\n// can be summed lane by lane and reduced with %s.Hash.\n", wide)
	fmt.Fprintf(buf, "func (v %s) HashWide() %s {\n\th := &%s\n\treturn %s{\n", n, wide, hv, wide)
	for i, l := range lanes {
		fmt.Fprintf(buf, "\t\t%s: mix(%s, h.wideMul[%d]) + h.wideAdd[%d],\n", l, bits(l), i, i)
	}
	buf.WriteString("\t}\n}\n")
	fmt.Fprintf(buf, "\n// HashWide%sColumns applies %s.HashWide to every row of c.\n", n, n)
	fmt.Fprintf(buf, "func HashWide%sColumns(c *Columns[%s]) (*Columns[uint64], error) {\n", n, s)
	fmt.Fprintf(buf, "\treturn hashWideColumns(c, %d, &%s)\n}\n", t.Lanes, hv)

	// Formatting and coding.
	verbs := join(lanes, ", ", func(int, string) string { return "%d" })
	fmt.Fprintf(buf, "\n// String returns v formatted as %s(%s).\n", n, strings.Join(lower, ", "))
	fmt.Fprintf(buf, "func (v %s) String() string {\n", n)
	fmt.Fprintf(buf, "\treturn fmt.Sprintf(\"%s(%s)\", %s)\n}\n", n, verbs, join(lanes, ", ", func(_ int, l string) string { return "v." + l }))

	fmt.Fprintf(buf, "\nfunc (v %s) lanes() []%s {\n", n, s)
	fmt.Fprintf(buf, "\treturn []%s{%s}\n}\n", s, join(lanes, ", ", func(_ int, l string) string { return "v." + l }))
	fmt.Fprintf(buf, "\nfunc (v *%s) setLanes(s []%s) {\n", n, s)
	fmt.Fprintf(buf, "\t%s = %s\n}\n",
		join(lanes, ", ", func(_ int, l string) string { return "v." + l }),
		join(lanes, ", ", func(i int, _ string) string { return fmt.Sprintf("s[%d]", i) }))

	codec := "Longs"
	if !t.Signed {
		codec = "ULongs"
	}
	fmt.Fprintf(buf, "\n// Encode encodes v to w.\n")
	fmt.Fprintf(buf, "func (v %s) Encode(w io.Writer) error {\n", n)
	fmt.Fprintf(buf, "\treturn encode%s(w, v.lanes())\n}\n", codec)
	fmt.Fprintf(buf, "\n// Decode decodes v from r. v is unchanged on error. To decode several values\n// from one stream, r should implement io.ByteReader; other readers are\n// buffered and may consume bytes past the value.\n")
	fmt.Fprintf(buf, "func (v *%s) Decode(r io.Reader) error {\n", n)
	fmt.Fprintf(buf, "\ts, err := decode%s(r, %d)\n\tif err != nil {\n\t\treturn err\n\t}\n", codec, t.Lanes)
	buf.WriteString("\tv.setLanes(s)\n\treturn nil\n}\n")
}

// emitMasks writes the boolean mask types of widths 2 to 4.
func emitMasks(buf *bytes.Buffer, pkg string) {
	writeHeader(buf, pkg, "fmt")
	for w := 2; w <= 4; w++ {
		lanes := laneNames[:w]
		n := fmt.Sprintf("Bool%d", w)
		fmt.Fprintf(buf, "\n// %s is a mask of %d boolean lanes, the result of a lanewise comparison.\n", n, w)
		fmt.Fprintf(buf, "type %s struct {\n", n)
		for _, l := range lanes {
			fmt.Fprintf(buf, "\t%s bool\n", l)
		}
		buf.WriteString("}\n")

		fmt.Fprintf(buf, "\n// All reports whether every lane of m is set.\n")
		fmt.Fprintf(buf, "func (m %s) All() bool {\n", n)
		fmt.Fprintf(buf, "\treturn %s\n}\n", join(lanes, " && ", func(_ int, l string) string { return "m." + l }))
		fmt.Fprintf(buf, "\n// Any reports whether at least one lane of m is set.\n")
		fmt.Fprintf(buf, "func (m %s) Any() bool {\n", n)
		fmt.Fprintf(buf, "\treturn %s\n}\n", join(lanes, " || ", func(_ int, l string) string { return "m." + l }))
		fmt.Fprintf(buf, "\n// Not returns the lanewise negation of m.\n")
		fmt.Fprintf(buf, "func (m %s) Not() %s {\n", n, n)
		fmt.Fprintf(buf, "\treturn %s{%s}\n}\n", n, fields(lanes, func(_ int, l string) string { return "!m." + l }))
		fmt.Fprintf(buf, "\n// And returns the lanewise conjunction of m and o.\n")
		fmt.Fprintf(buf, "func (m %s) And(o %s) %s {\n", n, n, n)
		fmt.Fprintf(buf, "\treturn %s{%s}\n}\n", n, fields(lanes, func(_ int, l string) string { return "m." + l + " && o." + l }))
		fmt.Fprintf(buf, "\n// Or returns the lanewise disjunction of m and o.\n")
		fmt.Fprintf(buf, "func (m %s) Or(o %s) %s {\n", n, n, n)
		fmt.Fprintf(buf, "\treturn %s{%s}\n}\n", n, fields(lanes, func(_ int, l string) string { return "m." + l + " || o." + l }))
		fmt.Fprintf(buf, "\n// String returns m formatted as %s(%s).\n", n, join(lanes, ", ", func(_ int, l string) string { return strings.ToLower(l) }))
		fmt.Fprintf(buf, "func (m %s) String() string {\n", n)
		fmt.Fprintf(buf, "\treturn fmt.Sprintf(\"%s(%s)\", %s)\n}\n", n,
			join(lanes, ", ", func(int, string) string { return "%t" }),
			join(lanes, ", ", func(_ int, l string) string { return "m." + l }))
	}
}

func describeSelectors(sel []string) string {
	if len(sel) == 2 {
		return sel[0] + " and " + sel[1]
	}
	return strings.Join(sel[:len(sel)-1], ", ") + " and " + sel[len(sel)-1]
}

func hexList(xs []uint64) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprintf("0x%016x", x)
	}
	return strings.Join(parts, ", ")
}
