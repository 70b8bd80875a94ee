//go:build mage

package main

import (
	"github.com/magefile/mage/sh"
)

// Build compiles the resourcekit binary.
func Build() error {
	return sh.RunV("go", "build", "-o", "resourcekit", "./cmd/resourcekit")
}

// Test runs the full test suite.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet over all packages.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Install installs the resourcekit binary into GOBIN.
func Install() error {
	return sh.RunV("go", "install", "./cmd/resourcekit")
}
