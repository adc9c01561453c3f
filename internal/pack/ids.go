// Package pack defines the fully interned, immutable program
// representation produced by one lowering pass, plus the canonicalizing
// stores that build it.
//
// Every entity is referenced by a dense uint32 id assigned in first-use
// order starting at 1; zero is the invalid sentinel. Ids from different
// passes (and local-symbol ids from different functions) are not
// comparable.
package pack

// StringID identifies an interned string.
type StringID uint32

// TypeID identifies an interned type record.
type TypeID uint32

// GlobalSymbolID identifies a program-wide symbol, keyed by the front
// end's per-declaration identity.
type GlobalSymbolID uint32

// LocalSymbolID identifies a symbol scoped to a single function.
type LocalSymbolID uint32

// RValueID identifies an interned value node.
type RValueID uint32

// FunctionID identifies an interned function name. User functions and
// builtin names synthesized by operator mapping share this space on
// purpose.
type FunctionID uint32

// StatementBlockID identifies an interned statement sequence.
type StatementBlockID uint32

// Invalid id constants (zero is sentinel).
const (
	NoStringID         StringID         = 0
	NoTypeID           TypeID           = 0
	NoGlobalSymbolID   GlobalSymbolID   = 0
	NoLocalSymbolID    LocalSymbolID    = 0
	NoRValueID         RValueID         = 0
	NoFunctionID       FunctionID       = 0
	NoStatementBlockID StatementBlockID = 0
)

// IsValid reports whether the id refers to a stored entity.
func (id StringID) IsValid() bool         { return id != NoStringID }
func (id TypeID) IsValid() bool           { return id != NoTypeID }
func (id GlobalSymbolID) IsValid() bool   { return id != NoGlobalSymbolID }
func (id LocalSymbolID) IsValid() bool    { return id != NoLocalSymbolID }
func (id RValueID) IsValid() bool         { return id != NoRValueID }
func (id FunctionID) IsValid() bool       { return id != NoFunctionID }
func (id StatementBlockID) IsValid() bool { return id != NoStatementBlockID }
