// Package lpmodel holds the data model shared by the parser, normalizer,
// and simplex engine: variable records, the symbol table, and the parsed
// (but not yet standardized) problem.
package lpmodel

// Variable is one user-named column. ShadowCol is -1 until the
// free-variable expander (§4.4) allocates a negative-part column for a
// variable still unbounded at end of parse.
type Variable struct {
	Name      string
	Col       int
	ShadowCol int
}

// SymbolTable maps variable names to column indices, insertion-ordered by
// first occurrence. Column indices are dense in [0, NumOriginal()) and
// assigned monotonically, exactly as §3 requires.
type SymbolTable struct {
	order []string
	vars  map[string]*Variable
	free  map[string]bool
}

// NewSymbolTable returns an empty table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		vars: make(map[string]*Variable),
		free: make(map[string]bool),
	}
}

// Resolve returns the Variable for name, allocating a fresh column (and
// marking it free) on first occurrence.
func (st *SymbolTable) Resolve(name string) *Variable {
	if v, ok := st.vars[name]; ok {
		return v
	}
	v := &Variable{Name: name, Col: len(st.order), ShadowCol: -1}
	st.vars[name] = v
	st.order = append(st.order, name)
	st.free[name] = true
	return v
}

// Lookup returns the Variable for name without creating it.
func (st *SymbolTable) Lookup(name string) (*Variable, bool) {
	v, ok := st.vars[name]
	return v, ok
}

// MarkBound removes name from the free set: the bounding-constraint
// short-circuit (§4.3) calls this once it has proven x >= 0 via an
// explicit constraint.
func (st *SymbolTable) MarkBound(name string) {
	delete(st.free, name)
}

// IsFree reports whether name is still unbounded.
func (st *SymbolTable) IsFree(name string) bool {
	return st.free[name]
}

// FreeNames returns the names still free, in column (first-occurrence)
// order, so shadow-column allocation is deterministic.
func (st *SymbolTable) FreeNames() []string {
	names := make([]string, 0, len(st.free))
	for _, name := range st.order {
		if st.free[name] {
			names = append(names, name)
		}
	}
	return names
}

// Names returns every original-column variable name, in column order.
func (st *SymbolTable) Names() []string {
	out := make([]string, len(st.order))
	copy(out, st.order)
	return out
}

// NumOriginal is the number of distinct variable names seen (pre-shadow
// expansion column count).
func (st *SymbolTable) NumOriginal() int {
	return len(st.order)
}

// SetShadow records the shadow column allocated to name by the
// free-variable expander.
func (st *SymbolTable) SetShadow(name string, col int) {
	st.vars[name].ShadowCol = col
}
