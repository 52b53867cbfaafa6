// Copyright 2025 go-lanes Authors
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

// Command lanegen emits the shape catalog for the lanes package: the named
// per-shape constructors (Int8x16, Float64x4, ...), the wide OfN list
// constructors, and the Catalog() trait table. The catalog is the cross
// product of the element kinds and the 64/128/256/512-bit aggregate
// widths, skipping the shapes whose element does not fit the aggregate.
//
// Usage:
//
//	lanegen -out shapes_gen.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

type kind struct {
	Name string // Go element type name
	Size int    // element size in bytes
}

var kinds = []kind{
	{"int8", 1}, {"uint8", 1},
	{"int16", 2}, {"uint16", 2},
	{"int32", 4}, {"uint32", 4},
	{"int64", 8}, {"uint64", 8},
	{"float32", 4}, {"float64", 8},
	{"complex64", 8}, {"complex128", 16},
}

type width struct {
	Const string // lanes.Width constant name
	Bytes int
}

var widths = []width{
	{"W64", 8}, {"W128", 16}, {"W256", 32}, {"W512", 64},
}

func main() {
	out := flag.String("out", "shapes_gen.go", "output file")
	flag.Parse()

	var buf bytes.Buffer
	buf.WriteString("// Code generated by lanegen; DO NOT EDIT.\n\n")
	buf.WriteString("package lanes\n\n")

	for _, n := range []int{32, 64} {
		writeOfN(&buf, n)
	}

	titler := cases.Title(language.English)
	type shape struct {
		kind  kind
		width width
		lanes int
	}
	var catalog []shape
	for _, k := range kinds {
		for _, w := range widths {
			n := w.Bytes / k.Size
			if n < 1 {
				continue
			}
			catalog = append(catalog, shape{k, w, n})
			name := fmt.Sprintf("%sx%d", titler.String(k.Name), n)
			article := "a"
			if n == 8 {
				article = "an"
			}
			fmt.Fprintf(&buf, "// %s constructs %s %d-lane %s vector (%d-bit aggregate).\n",
				name, article, n, k.Name, w.Bytes*8)
			fmt.Fprintf(&buf, "func %s(%s %s) Vec[%s] {\n", name, params(n), k.Name, k.Name)
			fmt.Fprintf(&buf, "\treturn FromSlice(DescFor[%s](%s), []%s{%s})\n",
				k.Name, w.Const, k.Name, params(n))
			buf.WriteString("}\n\n")
		}
	}

	buf.WriteString("// Catalog returns the trait descriptors of every shape in the closed\n")
	buf.WriteString("// catalog, resolved against the host's native widths.\n")
	buf.WriteString("func Catalog() []Desc {\n\treturn []Desc{\n")
	for _, s := range catalog {
		fmt.Fprintf(&buf, "\t\tDescFor[%s](%s),\n", s.kind.Name, s.width.Const)
	}
	buf.WriteString("\t}\n}\n")

	formatted, err := imports.Process(*out, buf.Bytes(), nil)
	if err != nil {
		log.Fatalf("lanegen: formatting %s: %v", *out, err)
	}
	if err := os.WriteFile(*out, formatted, 0o644); err != nil {
		log.Fatalf("lanegen: %v", err)
	}
	fmt.Printf("lanegen: wrote %d shapes to %s\n", len(catalog), *out)
}

// params renders "v0, v1, ..., vN-1".
func params(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("v%d", i)
	}
	return strings.Join(parts, ", ")
}

// writeOfN emits the generic fixed-arity list constructor for n lanes.
func writeOfN(buf *bytes.Buffer, n int) {
	fmt.Fprintf(buf, "// Of%d constructs a %d-lane vector from explicit per-lane values.\n", n, n)
	fmt.Fprintf(buf, "func Of%d[T Lanes](%s T) Vec[T] {\n", n, params(n))
	fmt.Fprintf(buf, "\tdata := allocLanes[T](%d)\n", n)
	fmt.Fprintf(buf, "\tcopy(data, []T{%s})\n", params(n))
	buf.WriteString("\treturn Vec[T]{data: data}\n}\n\n")
}
