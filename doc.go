// Package seqs provides a uniform set of sequence operations over several
// structurally different representations: singly linked chains, random-access
// buffers (with a specialized character buffer), immutable tree-backed
// persistent sequences, and lazy pull-based streams that may be unbounded.
//
// Every operation is pure: inputs are never mutated, results are new values.
// When an operation derives a sequence from one or two inputs, the result's
// representation is resolved from the input representations by CombinedKind;
// callers observe the same elements whatever representation carries them.
//
// Operations whose result or cost depends on a sequence having a known finite
// size refuse lazy inputs with ErrUnboundedSequence instead of trying to
// exhaust a possibly infinite producer; Take is the bounding step that turns
// a lazy prefix into a finite sequence.
package seqs
