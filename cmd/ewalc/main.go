// Command ewalc compiles an in-memory element definition to the EWAL
// binary object format. Per spec §6 the surface grammar and tokenizer
// are out of scope for this repo; this CLI demonstrates the compiler
// core against a built-in sample program and is not itself part of the
// bit-exact contract — an embedder wires its own parser to produce an
// *ast.File and calls encoder.Compile directly.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ewal-lang/ewal/ast"
	"github.com/ewal-lang/ewal/config"
	"github.com/ewal-lang/ewal/encoder"
	"github.com/ewal-lang/ewal/numeric"
)

// Version is overridden at build time with -ldflags "-X main.Version=...".
var Version = "dev"

func main() {
	var (
		showVersion = flag.Bool("version", false, "Show version information")
		outPath     = flag.String("o", "", "Output object file path (required)")
		buildTag    = flag.String("build-tag", "", "Build tag to embed (default: config default)")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("ewalc %s\n", Version)
		os.Exit(0)
	}

	if *outPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: ewalc -o OUTFILE")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	tag := *buildTag
	if tag == "" {
		tag = cfg.Compiler.BuildTag
	}

	file := sampleProgram()

	data, err := encoder.Compile(file, tag)
	if err != nil {
		log.Fatalf("compile error: %v", err)
	}

	if err := os.WriteFile(*outPath, data, 0644); err != nil {
		log.Fatalf("writing %s: %v", *outPath, err)
	}

	fmt.Printf("wrote %s (%d bytes, build tag %q)\n", *outPath, len(data), tag)
}

// sampleProgram builds a small demonstration element: a counter that
// reads its own "count" field, increments it, and stores it back.
func sampleProgram() *ast.File {
	countField := ast.FieldDirective{
		Name:     "count",
		Selector: numeric.FieldSelector{Offset: 16, Length: 16},
	}

	return &ast.File{
		Header: []ast.Metadata{
			ast.NameDirective{Value: "Counter"},
			ast.SymbolDirective{Value: "C"},
			ast.DescDirective{Value: "increments its own count field each step"},
			ast.RadiusDirective{Value: 1},
			countField,
		},
		Body: []ast.Node{
			{Instruction: ast.PushSmall{N: 0}},        // site index 0, kept for the final store
			{Instruction: ast.Dup{}},                  // [0, 0]
			{Instruction: ast.GetSiteField{Field: "count"}}, // [0, count]
			{Instruction: ast.PushSmall{N: 1}},        // [0, count, 1]
			{Instruction: ast.Add{}},                  // [0, count+1]
			{Instruction: ast.SetSiteField{Field: "count"}}, // writes count+1 back to site 0
			{Instruction: ast.Exit{}},
		},
	}
}
