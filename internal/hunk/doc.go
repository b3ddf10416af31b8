// Package hunk parses AmigaOS hunk executables.
//
// An executable starts with a HUNK_HEADER block listing the number of
// hunks and their allocation sizes, followed by one group of blocks per
// hunk: a CODE, DATA or BSS content block, optional RELOC32, SYMBOL, NAME
// and DEBUG blocks, and a closing END block. All values are big endian
// longwords.
package hunk
