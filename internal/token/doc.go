// Package token defines the token representation shared by the tokenization
// engine and its consumers.
// Invariants:
//   - Span.Offset is a byte offset into the line it was produced for.
//   - LineTokens stores *end* offsets: entry i records where token i ends;
//     the final entry always equals the line length in bytes.
//   - Style never encodes positions; it is pure classification metadata and
//     can be compared with ==.
package token
