// Copyright 2025 go-highway Authors
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

// Command permgen generates the named hwy.Perm constants, one per 4-lane
// index combination.
//
// Usage:
//
//	permgen -output perm_gen.go
//
// Or via go:generate from the hwy package:
//
//	//go:generate go run ../cmd/permgen -output perm_gen.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	"golang.org/x/tools/imports"
)

var (
	outputFile = flag.String("output", "perm_gen.go", "Output Go file")
	packageOut = flag.String("pkg", "hwy", "Output package name")
	typeName   = flag.String("type", "Perm", "Name of the permutation type")
)

const laneNames = "XYZW"

func main() {
	flag.Parse()

	src, err := generate(*outputFile, *packageOut, *typeName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outputFile, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: writing %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	fmt.Printf("Successfully generated %d permutations in %s\n", 1<<8, *outputFile)
}

// permName returns the XYZW name of the permutation encoded by p.
func permName(p int) string {
	var b [4]byte
	for k := range b {
		b[k] = laneNames[(p>>(2*k))&3]
	}
	return string(b[:])
}

// generate renders and formats the constants file.
func generate(filename, pkg, typ string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by permgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	fmt.Fprintf(&buf, "// Named permutations for Swizzle%s, one per index combination. The name\n", typ)
	buf.WriteString("// lists the source lane of each destination lane, lane 0 first.\n")
	buf.WriteString("const (\n")
	for p := range 1 << 8 {
		fmt.Fprintf(&buf, "\t%s%s %s = 0x%02x\n", typ, permName(p), typ, p)
	}
	buf.WriteString(")\n")

	formatted, err := imports.Process(filename, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return formatted, nil
}
