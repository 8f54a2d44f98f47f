package linear

// Var is a strongly-typed space-dimension index, 0-based. Using Var
// instead of a bare int throughout the public API matches the original
// C++ source's discipline of never passing a raw dimension index.
type Var int

// ID returns the underlying dimension index.
func (v Var) ID() int { return int(v) }

// Next returns the dimension immediately following v.
func (v Var) Next() Var { return v + 1 }

// Valid reports whether v is a non-negative dimension index.
func (v Var) Valid() bool { return v >= 0 }
