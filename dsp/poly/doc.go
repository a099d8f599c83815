// Package poly provides a complex-coefficient polynomial value type.
//
// [ComplexPoly] values are immutable: every operation returns a new
// polynomial. Coefficient i multiplies z^i. The distinguished [Zero]
// polynomial has order -1 and absorbs multiplication.
package poly
