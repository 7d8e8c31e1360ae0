//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	fixturegenBin = "./bin/fixturegen"
	fixturegenPkg = "./cmd/fixturegen"
)

func goModDownload() error {
	return sh.Run("go", "mod", "download")
}

// Build builds fixturegen binary
func Build() error {
	mg.Deps(goModDownload)
	return sh.Run("go", "build", "-o", fixturegenBin, fixturegenPkg)
}

// Run prints a fixture for the demo teams
func Run() error {
	mg.Deps(Build)
	return sh.RunV(fixturegenBin, "--config", "configs/fixture.toml", "--stats", "--check")
}

func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

func Lint() error {
	return sh.RunV("go", "vet", "./...")
}
