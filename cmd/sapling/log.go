package main

import (
	"fmt"
	"os"

	"github.com/pbanos/sapling"
)

// logger writes a line on STDERR per call when true
type logger bool

var _ sapling.Logger = logger(false)

func (l logger) Logf(format string, a ...interface{}) {
	if l {
		fmt.Fprintln(os.Stderr, fmt.Sprintf(format, a...))
	}
}
