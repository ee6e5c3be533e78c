/*
Package vector provides immutable float32 vectors of 2, 3 and 4 components.

Every operation takes its operands by value and returns a new vector; nothing
is ever modified in place, so vectors can be shared freely between goroutines.

Degenerate input is not guarded: normalizing a zero length vector, or asking
for the angle between it and anything else, yields NaN or Inf components the
way IEEE-754 arithmetic does.

Equality is defined on the bit patterns of the components (see Bits), not on
their numeric values: +0 and -0 differ, while NaN components compare equal.
*/
package vector
