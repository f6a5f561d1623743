// Package toolchain defines the Bootstrapper interface for creating
// language projects and provides implementations for the Python and Rust
// toolchains. The Dispatch function selects the correct implementation
// for a parsed language.
package toolchain
