// Package y2025 holds the 2025 exercises.
//
// Every part registers itself with registry.Default from init, so importing
// the package for its side effects makes its days runnable:
//
//	import _ "github.com/roach88/advent/internal/solutions/y2025"
package y2025
