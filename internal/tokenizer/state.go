package tokenizer

// State is the opaque lexical context at a line boundary ("inside a block
// comment", "inside a raw string", ...). Implementations may be mutated in
// place by their tokenizer, so holders that need a stable copy must Clone
// before handing a state out.
//
// Equality must be structural: the engine compares a freshly computed end
// state against a cached one to decide whether downstream lines need
// re-tokenization, and reference identity would defeat that entirely.
type State interface {
	// Clone returns an independent copy the tokenizer may mutate freely.
	Clone() State
	// Equals reports structural equality with another state.
	// It must return false for a nil or foreign-typed argument.
	Equals(other State) bool
}
