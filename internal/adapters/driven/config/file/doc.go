// Package file provides the TOML-backed configuration store. Engine
// configuration lives in ~/.gobn/config.toml by default and holds the
// toolchain location, dependency versions and solver preferences. It is
// distinct from the solver settings file the engine writes per run.
package file
