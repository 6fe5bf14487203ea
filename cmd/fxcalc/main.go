// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/fixpoint/calc"
	"github.com/ezrec/fixpoint/fixed"
)

func main() {
	var raw bool
	var defines bool
	var verbose bool

	vars := map[string]fixed.Q16_16{}

	flag.BoolVar(&raw, "r", false, "Print the raw Q16.16 storage cell")
	flag.BoolVar(&defines, "d", false, "List the predeclared constants")
	flag.BoolVar(&verbose, "verbose", false, "Verbose mode")
	flag.Func("v", "Bind name=value for the expression", func(arg string) error {
		name, value, err := calc.ParseBinding(arg)
		if err != nil {
			return err
		}
		vars[name] = value
		return nil
	})

	flag.Parse()

	if defines {
		for key, value := range calc.Defines() {
			fmt.Printf("%v=%v\n", key, value)
		}
		return
	}

	if flag.NArg() == 0 {
		log.Fatalf("%v: No expression given", os.Args[0])
	}

	for _, expr := range flag.Args() {
		value, err := calc.Eval(expr, vars)
		if err != nil {
			log.Fatalf("%v: %v", expr, err)
		}
		if verbose {
			log.Printf("%v = %v (raw 0x%08x)", expr, value, uint32(value.Raw()))
		}
		if raw {
			fmt.Printf("%d\n", value.Raw())
		} else {
			fmt.Printf("%v\n", value)
		}
	}
}
