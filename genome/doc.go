// Package genome holds the nucleotide and fragment namespaces for a
// generation run and parses their definition files.
//
// Both definition files are line oriented: `name, value, value, ...`
// with commas, equals signs, or whitespace separating tokens, and `#`
// or `//` marking comment lines.
//
// A nucleotide maps a single-character name to a set of candidate ADC
// values, one of which is sampled per use at frame-build time. A
// fragment maps a name to an ordered sequence built from:
//
//   - integer literals (decimal or 0x hex),
//   - $(...) expressions evaluated at load time,
//   - @path tokens embedding a binary file byte by byte,
//   - symbol strings such as ATGAA(alpha)ATAG, where each character is a
//     one-character name and parentheses group a multi-character name.
//
// Fragment resolution is two-phase: all definitions are collected
// first, then resolved recursively, so a fragment may reference one
// defined later in the file. Cyclic definitions are rejected.
package genome
