// Command ewalrun loads one or more compiled object files into a
// vm.Runtime and drives a single Execute call against an in-memory
// grid, printing the resulting center atom and paint channel. Per
// spec §6 this is a thin demo shell, not part of the bit-exact
// contract.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ewal-lang/ewal/config"
	"github.com/ewal-lang/ewal/gridmem"
	"github.com/ewal-lang/ewal/numeric"
	"github.com/ewal-lang/ewal/objfile"
	"github.com/ewal-lang/ewal/vm"
)

// Version is overridden at build time with -ldflags "-X main.Version=...".
var Version = "dev"

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		fmt.Printf("ewalrun %s\n", Version)
		os.Exit(0)
	}

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: ewalrun FILE.ewalo [FILE.ewalo ...]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	rt := vm.NewRuntime()
	var subjectType uint16

	for i, path := range flag.Args() {
		data, err := os.ReadFile(path) // #nosec G304 -- user-specified object file path
		if err != nil {
			log.Fatalf("reading %s: %v", path, err)
		}

		obj, err := objfile.Parse(bytes.NewReader(data))
		if err != nil {
			log.Fatalf("parsing %s: %v", path, err)
		}
		if i == 0 {
			subjectType = obj.TypeID
		}

		if err := rt.Load(bytes.NewReader(data)); err != nil {
			log.Fatalf("loading %s: %v", path, err)
		}
	}

	window := gridmem.New()
	window.RandFn = deterministicRand(cfg.Runtime.DefaultRandSeed)

	center := numeric.FromUint64(0).Store(numeric.FromUint64(uint64(subjectType)), numeric.TypeField)
	window.Set(0, center)

	cur := vm.NewCursor(numeric.NONE)
	if err := vm.Execute(window, cur, rt); err != nil {
		log.Fatalf("execute: %v", err)
	}

	result := window.Get(0)
	fmt.Printf("center atom: %s\n", result)
	fmt.Printf("paint: 0x%08X\n", window.GetPaint())
}

func deterministicRand(seed uint32) func() uint32 {
	state := seed
	return func() uint32 {
		state = state*1664525 + 1013904223
		return state
	}
}
