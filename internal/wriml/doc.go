// Package wriml parses the WRIML interlinear-example markup.
//
// WRIML is line oriented. Each example sits between a block open marker
// line (^ex) and a block close marker line (_ex). Within a block, fields
// are single-line tag spans of the form
//
//	^mn payload _mn
//
// where mn is a short alphabetic mnemonic, the open marker is caret
// prefixed, the close marker underscore prefixed, and both markers are
// delimited by surrounding whitespace or the line ends.
//
// Parsing runs in two phases: a block boundary scan over the raw lines,
// then a per-tag extraction pass over each block keyed by a mnemonic
// table. Parsing is pure; identical input yields field-equal records.
package wriml
