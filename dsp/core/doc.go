// Package core holds processing configuration and level conversions shared by
// the signal, spectrum and command packages.
package core
