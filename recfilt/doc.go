/*
Package recfilt provides causal+anticausal recursive filtering primitives
for real images: weight constructors for recursive Gaussian
approximations, the scalar forward and reverse sweeps and their matrix
forms, the boundary-extension policies, and the sequential reference
filter Naive.

The fast block-decomposed implementation lives in package blockfilt and
is tested against Naive.
*/
package recfilt
