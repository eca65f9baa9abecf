//go:build debug

package debug

import (
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"
)

const Enabled = true

var logger = log.New(os.Stdout, "|DEBUG| ", 0)

// Printf prints trace messages of container mutations.
// Only available if compiled with the "debug" tag
func Printf(f string, args ...any) {
	logger.Printf(f, args...)
}

// Dump dumps the objects using go-spew
func Dump(v ...any) {
	spew.Fdump(os.Stdout, v...)
}
