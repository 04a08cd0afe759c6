//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target
var Default = Build

// Build compiles the wordbank binary
func Build() error {
	return sh.RunV("go", "build", "-o", "wordbank", "./cmd/wordbank")
}

// Test runs all tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Check runs the tests and go vet
func Check() error {
	mg.Deps(Test)
	return sh.RunV("go", "vet", "./...")
}

// Install installs the wordbank binary
func Install() error {
	return sh.RunV("go", "install", "./cmd/wordbank")
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm("wordbank")
}
