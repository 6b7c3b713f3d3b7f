package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var (
	warnColor  = color.New(color.FgYellow)
	errorColor = color.New(color.FgRed)
)

// warnf reports a non-fatal problem to stderr; processing continues.
func warnf(format string, args ...any) {
	warnColor.Fprintf(os.Stderr, "Warning: "+format+"\n", args...)
}

// errorf reports a per-file failure to stderr; the run moves to the next file.
func errorf(format string, args ...any) {
	errorColor.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}

// fatalf reports an unrecoverable setup problem and exits non-zero.
func fatalf(format string, args ...any) {
	errorColor.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// infof reports progress on stdout.
func infof(format string, args ...any) {
	fmt.Printf(format+"\n", args...)
}
