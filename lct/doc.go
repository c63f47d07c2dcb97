// Package lct implements a Link-Cut Tree over a seq.Container: a
// rooted forest decomposed into preferred paths, each one sequence,
// supporting link, cut, reroot, and lowest-common-ancestor queries in
// amortized O(log n) per operation regardless of which Container
// variant backs it.
//
// A path-parent handle recorded at a path's shallow end links it to
// the vertex, in some other path, that it hangs from in the real
// tree; access walks this chain upward, splicing paths together one
// at a time until it reaches a path with nothing recorded above it.
package lct
