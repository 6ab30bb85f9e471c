//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

var Default = Test

// Test runs the full test suite.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet across the module.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Build compiles the gobuild CLI into ./bin.
func Build() error {
	mg.Deps(Vet)
	return sh.RunV("go", "build", "-o", "bin/gobuild", "./cmd/gobuild")
}
