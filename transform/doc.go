// Package transform builds the matrices of common linear and affine
// transformations and composes them.
//
// Rotations are counterclockwise for positive angles with +x right and +y up,
// and all the 3D builders return homogeneous 4x4 matrices meant to be applied
// to column vectors with W = 1 for points and W = 0 for directions.
package transform
