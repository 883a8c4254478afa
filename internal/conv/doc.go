// Package conv provides safe integer type conversion utilities.
//
// These functions perform bounds checking to prevent integer overflow
// when narrowing Go's platform-dependent int to fixed-width types, such as
// the int32 decimal place counts expected by the decimal package.
package conv
