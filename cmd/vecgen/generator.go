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
	"go/format"
	"os"
	"path/filepath"
	"strings"
)

// maskFile is the name of the file holding the boolean mask types.
const maskFile = "bool_gen.go"

// Generator writes the operator families of the integer vector types.
type Generator struct {
	OutputDir string
	Package   string
	Types     []VecType
	// Masks controls whether the BoolN mask types are emitted too.
	Masks bool
}

// Run generates every requested file. It returns the paths written.
func (g *Generator) Run() ([]string, error) {
	if g.Package == "" {
		return nil, fmt.Errorf("no output package")
	}
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	var written []string
	for _, t := range g.Types {
		var buf bytes.Buffer
		emitVector(&buf, g.Package, t)
		path, err := g.write(t.FileName(), buf.Bytes())
		if err != nil {
			return written, fmt.Errorf("%s: %w", t.Name, err)
		}
		written = append(written, path)
	}

	if g.Masks {
		var buf bytes.Buffer
		emitMasks(&buf, g.Package)
		path, err := g.write(maskFile, buf.Bytes())
		if err != nil {
			return written, fmt.Errorf("masks: %w", err)
		}
		written = append(written, path)
	}
	return written, nil
}

func (g *Generator) write(name string, src []byte) (string, error) {
	formatted, err := format.Source(src)
	if err != nil {
		return "", fmt.Errorf("format %s: %w", name, err)
	}
	path := filepath.Join(g.OutputDir, name)
	if err := os.WriteFile(path, formatted, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	return path, nil
}

// ParseTypes resolves a comma separated list of type names. "all" selects
// every known type.
func ParseTypes(s string) ([]VecType, error) {
	var result []VecType
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if p == "all" {
			return AllTypes, nil
		}
		t, err := LookupType(p)
		if err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("no vector types in %q", s)
	}
	return result, nil
}
