// Package textmodel defines the document-model contract the tokenization
// engine works against, plus Buffer, the in-memory line buffer implementing
// it.
//
// Lines and columns are 1-based externally, matching editor coordinates;
// columns count bytes. The engine only ever sees the Model interface, so a
// real editor document can stand in for Buffer without touching engine code.
package textmodel
