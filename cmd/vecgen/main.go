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

// Command vecgen generates the lanewise operator families of the integer
// vector types in package veci.
//
// Usage:
//
//	vecgen -output . -types all
//
// Or via go:generate from the veci package:
//
//	//go:generate go run ../cmd/vecgen -output .
//
// For every type it writes <type>_gen.go holding the struct, constructors,
// indexers, swizzles, arithmetic, bitwise and comparison operators, hashing,
// formatting and coding. The mask types go to bool_gen.go.
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	outputDir  = flag.String("output", ".", "Output directory")
	packageOut = flag.String("package", "veci", "Output package name")
	typeList   = flag.String("types", "all", "Comma-separated vector types (Long2,...,ULong4) or 'all'")
	noMasks    = flag.Bool("nomasks", false, "Do not emit the BoolN mask types")
)

func main() {
	flag.Parse()

	types, err := ParseTypes(*typeList)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}

	gen := &Generator{
		OutputDir: *outputDir,
		Package:   *packageOut,
		Types:     types,
		Masks:     !*noMasks,
	}

	written, err := gen.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Successfully generated %d files in %s\n", len(written), *outputDir)
}
