/*
Package matrix provides immutable float32 square matrices of size 2, 3 and 4.

Elements are named M{row}{column}. Products follow the usual row by column
definition, so M.Transform(v) computes M·v with v as a column vector.

Matrices can be flattened into and loaded from float32 sequences in either
row-major or column-major order (see Order); the latter is what OpenGL style
APIs expect.

Inverse only refuses matrices whose determinant is exactly zero: nearly
singular matrices produce huge, Inf or NaN elements instead of an error.
*/
package matrix
