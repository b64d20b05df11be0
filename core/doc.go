// Package core defines the operand types of PDF content streams.
//
// [Object] is a closed set: [Null], [Bool], [Int], [Real], [String], [Name],
// [Array] and [Dict]. A [String] holds raw character codes; decoding them to
// text depends on the font and happens elsewhere.
//
// [Number] reads either numeric type as a float64 and [TypeName] names an
// operand's type for error messages.
package core
