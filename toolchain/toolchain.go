// Package toolchain resolves the external executables the CLI delegates
// to. Every subcommand preflights its tools here before doing any work.
package toolchain

import (
	"fmt"
	"os/exec"
)

// Resolver locates an executable by name, returning its absolute path.
// The zero value of Checker uses exec.LookPath; tests inject their own.
type Resolver func(name string) (string, error)

// Tool is a resolved executable.
type Tool struct {
	Name string
	Path string
}

// Report is the outcome of checking a set of tools.
type Report struct {
	Available []Tool
	Missing   []string
}

// OK reports whether every checked tool was found.
func (r Report) OK() bool { return len(r.Missing) == 0 }

// Checker resolves tools through a single Resolver.
type Checker struct {
	resolve Resolver
}

// NewChecker creates a Checker. A nil resolver means exec.LookPath.
func NewChecker(resolve Resolver) *Checker {
	if resolve == nil {
		resolve = exec.LookPath
	}
	return &Checker{resolve: resolve}
}

// Require resolves a single tool or fails with an error naming it.
func (c *Checker) Require(name string) (string, error) {
	path, err := c.resolve(name)
	if err != nil {
		return "", fmt.Errorf("couldn't locate %s. Is it installed?", name)
	}
	return path, nil
}

// Check resolves each named tool and records which were found.
func (c *Checker) Check(names ...string) Report {
	var report Report
	for _, name := range names {
		path, err := c.resolve(name)
		if err != nil {
			report.Missing = append(report.Missing, name)
			continue
		}
		report.Available = append(report.Available, Tool{Name: name, Path: path})
	}
	return report
}

// Converter resolves the ImageMagick binary. ImageMagick 7 ships a
// single `magick` entry point; version 6 installs `convert`. An explicit
// override skips the fallback chain.
func (c *Checker) Converter(override string) (string, error) {
	if override != "" {
		return c.Require(override)
	}
	if path, err := c.resolve("magick"); err == nil {
		return path, nil
	}
	if path, err := c.resolve("convert"); err == nil {
		return path, nil
	}
	return "", fmt.Errorf("couldn't locate magick or convert. Is ImageMagick installed?")
}
