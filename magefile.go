//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target to run when none is specified
var Default = Build

// Build compiles the ocrtrain binary
func Build() error {
	return sh.RunV("go", "build", "-o", "ocrtrain", "./cmd/ocrtrain")
}

// Test runs all unit tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Install builds and installs ocrtrain into GOPATH/bin
func Install() error {
	mg.Deps(Test)
	return sh.RunV("go", "install", "./cmd/ocrtrain")
}

// Clean removes the built binary
func Clean() error {
	return sh.Rm("ocrtrain")
}
