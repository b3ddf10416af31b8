// Package m68k decodes machine code of the Motorola 68000 processor family.
//
// # Decoding
//
// Decode reads one instruction from a byte buffer. Instructions are a
// 16 bit opcode word followed by 0 to 10 extension words, all big endian.
// The decoder dispatches on the top 4 bits of the opcode word and reads
// extension words in a fixed order: instruction specific words first,
// then the source and the destination addressing mode words.
//
// # CPU Variants
//
// Every decode is done for a target CPU variant. Encodings introduced by
// a later variant than the target, and opcode words that encode no
// instruction, decode as a one word dc.w placeholder so that a listing
// can continue with the next word. The variants form a total order:
//   - 68000: base instruction set
//   - 68010: MOVE from CCR
//   - 68020 and later: 32 bit branches, bit fields, CAS, PACK, UNPK,
//     TRAPcc, EXTB, LINK.L, CHK.L and the full extension word format
//
// # Errors
//
// Truncated encodings return an EOFError and invalid addressing mode
// fields an InvalidEAError. DecodeAll and CollectBranchTargets apply the
// standard recovery for sequential scans of a buffer.
package m68k
