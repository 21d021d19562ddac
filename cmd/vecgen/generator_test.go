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
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// declarations returns the names of the top level functions, methods (as
// Recv.Name), types and variables of a parsed file.
func declarations(f *ast.File) []string {
	var names []string
	for _, d := range f.Decls {
		switch d := d.(type) {
		case *ast.FuncDecl:
			name := d.Name.Name
			if d.Recv != nil && len(d.Recv.List) > 0 {
				typ := d.Recv.List[0].Type
				if star, ok := typ.(*ast.StarExpr); ok {
					typ = star.X
				}
				if id, ok := typ.(*ast.Ident); ok {
					name = id.Name + "." + name
				}
			}
			names = append(names, name)
		case *ast.GenDecl:
			for _, s := range d.Specs {
				switch s := s.(type) {
				case *ast.TypeSpec:
					names = append(names, s.Name.Name)
				case *ast.ValueSpec:
					for _, n := range s.Names {
						names = append(names, n.Name)
					}
				}
			}
		}
	}
	return names
}

func parseGenerated(t *testing.T, path string) *ast.File {
	t.Helper()
	src, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile(%s): %v", path, err)
	}
	if !strings.Contains(string(src), generatedMarker) {
		t.Errorf("%s lacks the generated code marker", path)
	}
	f, err := parser.ParseFile(token.NewFileSet(), path, src, parser.ParseComments)
	if err != nil {
		t.Fatalf("ParseFile(%s): %v", path, err)
	}
	return f
}

func TestGeneratorRun(t *testing.T) {
	dir := t.TempDir()
	g := &Generator{OutputDir: dir, Package: "veci", Types: AllTypes, Masks: true}
	written, err := g.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got, want := len(written), len(AllTypes)+1; got != want {
		t.Fatalf("Run wrote %d files, want %d", got, want)
	}

	for _, typ := range AllTypes {
		f := parseGenerated(t, filepath.Join(dir, typ.FileName()))
		if f.Name.Name != "veci" {
			t.Errorf("%s: package %s, want veci", typ.FileName(), f.Name.Name)
		}
		have := make(map[string]bool)
		for _, n := range declarations(f) {
			have[n] = true
		}

		want := []string{
			typ.Name,
			"New" + typ.Name,
			typ.Name + "Splat",
			"Select" + typ.Name,
			"HashWide" + typ.Name + "Columns",
			typ.HashVar(),
		}
		for _, m := range []string{
			typ.Counterpart(), "Index", "SetIndex", "Swizzle2", "Swizzle3", "Swizzle4",
			"Add", "AddScalar", "Sub", "Mul", "Div", "Mod", "ModScalar",
			"And", "Or", "Xor", "AndNot", "Not", "Neg", "Inc", "Dec",
			"Shl", "Shr", "ShlV", "ShrV",
			"Equal", "NotEqual", "Less", "LessEqual", "Greater", "GreaterEqual",
			"Min", "Max", "Sum", "Dot", "Hash", "HashWide", "String", "Encode", "Decode",
		} {
			want = append(want, typ.Name+"."+m)
		}
		if typ.Signed {
			want = append(want, typ.Name+".Abs")
		}
		if typ.Lanes < 4 {
			want = append(want, typ.Name+".Extend")
		}
		for _, n := range want {
			if !have[n] {
				t.Errorf("%s: missing declaration %s", typ.FileName(), n)
			}
		}
		if !typ.Signed && have[typ.Name+".Abs"] {
			t.Errorf("%s: unsigned type declares Abs", typ.FileName())
		}
		if typ.Lanes == 4 && have[typ.Name+".Extend"] {
			t.Errorf("%s: 4-lane type declares Extend", typ.FileName())
		}
	}

	masks := declarations(parseGenerated(t, filepath.Join(dir, maskFile)))
	for _, n := range []string{"Bool2", "Bool3", "Bool4", "Bool3.All", "Bool3.Any", "Bool4.Not", "Bool2.And", "Bool2.Or", "Bool4.String"} {
		found := false
		for _, m := range masks {
			found = found || m == n
		}
		if !found {
			t.Errorf("%s: missing declaration %s", maskFile, n)
		}
	}
}

func TestGeneratorHashConstants(t *testing.T) {
	dir := t.TempDir()
	typ, err := LookupType("ULong3")
	if err != nil {
		t.Fatal(err)
	}
	g := &Generator{OutputDir: dir, Package: "veci", Types: []VecType{typ}}
	if _, err := g.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	src, err := os.ReadFile(filepath.Join(dir, typ.FileName()))
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range []string{"0xd5c3376ccefc9023", "0x637e8fc2493d684b", "0x133218025888f3e9"} {
		if !strings.Contains(string(src), c) {
			t.Errorf("generated %s lacks hash constant %s", typ.FileName(), c)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, maskFile)); !os.IsNotExist(err) {
		t.Errorf("mask file written with Masks false: %v", err)
	}
}

func TestGeneratorNoPackage(t *testing.T) {
	g := &Generator{OutputDir: t.TempDir(), Types: AllTypes}
	if _, err := g.Run(); err == nil {
		t.Error("Run without a package succeeded, want error")
	}
}

func TestParseTypes(t *testing.T) {
	names := func(ts []VecType) []string {
		var s []string
		for _, t := range ts {
			s = append(s, t.Name)
		}
		return s
	}
	tests := []struct {
		in      string
		want    []string
		wantErr bool
	}{
		{in: "all", want: []string{"Long2", "Long3", "Long4", "ULong2", "ULong3", "ULong4"}},
		{in: "Long3", want: []string{"Long3"}},
		{in: " ULong4 , Long2,", want: []string{"ULong4", "Long2"}},
		{in: "Long5", wantErr: true},
		{in: "", wantErr: true},
		{in: ",,", wantErr: true},
	}
	for _, test := range tests {
		got, err := ParseTypes(test.in)
		if (err != nil) != test.wantErr {
			t.Errorf("ParseTypes(%q) error = %v, wantErr %v", test.in, err, test.wantErr)
			continue
		}
		if diff := cmp.Diff(test.want, names(got), cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("ParseTypes(%q) mismatch (-want +got):\n%s", test.in, diff)
		}
	}
}

func TestVecTypeNames(t *testing.T) {
	typ, err := LookupType("Long3")
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name, got, want string
	}{
		{"Family", typ.Family(), "Long"},
		{"WithLanes", typ.WithLanes(4), "Long4"},
		{"Counterpart", typ.Counterpart(), "ULong3"},
		{"WideType", typ.WideType(), "ULong3"},
		{"Mask", typ.Mask(), "Bool3"},
		{"HashVar", typ.HashVar(), "long3Hash"},
		{"FileName", typ.FileName(), "long3_gen.go"},
	}
	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("%s = %q, want %q", test.name, test.got, test.want)
		}
	}
	for _, typ := range AllTypes {
		if len(typ.HashMul) != typ.Lanes || len(typ.WideMul) != typ.Lanes || len(typ.WideAdd) != typ.Lanes {
			t.Errorf("%s: hash tables do not match %d lanes", typ.Name, typ.Lanes)
		}
		for _, m := range append(append([]uint64{}, typ.HashMul...), typ.WideMul...) {
			if m&1 == 0 {
				t.Errorf("%s: even hash multiplier %#x", typ.Name, m)
			}
		}
	}
}
