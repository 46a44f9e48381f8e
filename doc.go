/*
Package sparse provides the two sparse matrix formats the cholesky package's LDLᵀ factorization pipeline is built
around. Matrices and linear algebra are used extensively in scientific computing and machine learning applications.
Large datasets are analysed comprising vectors of numerical features that represent some object. The nature of
feature encoding schemes, especially those like "one hot", tends to lead to vectors with mostly zero values for
many of the features. In text mining applications, where features are typically terms from a vocabulary, it is not
uncommon for 99% of the elements within these vectors to contain zero values.

Sparse matrix formats take advantage of this fact to optimise memory usage and processing performance by only
storing and processing non-zero values. This package carries two of them:

1. COO (COOrdinate aka triplet) - suited to incrementally constructing a matrix one non-zero entry at a time.

2. CSC (Compressed Sparse Column aka CCS - Compressed Column Storage) - the layout cholesky.FactorizeSymbolic and
cholesky.FactorizeNumericLDLT require, and the one they return factors in (column-major, matching the elimination
order the algorithms walk).

A common practice is to construct a matrix using the creational COO format and then convert it to CSC, as
cmd/sparsechol does when it loads a Matrix Market file.

Both sparse matrix implementations in this package implement the Matrix interface defined within the gonum/mat
package and so may be used interchangeably with matrix types defined within that package e.g. mat.Dense, mat.VecDense, etc.
*/
package sparse
