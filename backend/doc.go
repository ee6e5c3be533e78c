/*
Package backend provides an abstraction layer to the kernels used to apply a
square matrix to many tightly packed vectors at once, currently implemented:

	- naive (plain loops, no optimizations)
	- blas32 (gonum blas32 interface)
*/
package backend
