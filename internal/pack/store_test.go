package pack

import "testing"

func TestStringStoreDedup(t *testing.T) {
	s := NewStrings()
	a := s.Insert("color")
	b := s.Insert("position")
	c := s.Insert("color")

	if a != c {
		t.Errorf("equal strings got distinct ids %d and %d", a, c)
	}
	if a == b {
		t.Errorf("distinct strings share id %d", a)
	}
	if a != 1 || b != 2 {
		t.Errorf("ids are not dense from 1: got %d and %d", a, b)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}

	frozen := s.Finalize()
	if frozen[a] != "color" || frozen[b] != "position" {
		t.Errorf("Finalize() lost values: %v", frozen)
	}
}

func TestRValueStoreStructuralEquality(t *testing.T) {
	s := NewRValues()

	lit := s.Insert(LiteralRValue(Literal{Kind: LiteralDouble, Float: 1.5}))
	litAgain := s.Insert(LiteralRValue(Literal{Kind: LiteralDouble, Float: 1.5}))
	if lit != litAgain {
		t.Errorf("equal literals got distinct ids %d and %d", lit, litAgain)
	}

	otherKind := s.Insert(LiteralRValue(Literal{Kind: LiteralInt, Int: 1}))
	if otherKind == lit {
		t.Error("literals of different kinds share an id")
	}

	args := []ValueID{RValueValue(lit), RValueValue(otherKind)}
	add := s.Insert(EvaluableRValue(OperatorRef(OpAdd), args...))
	addAgain := s.Insert(EvaluableRValue(OperatorRef(OpAdd), args...))
	if add != addAgain {
		t.Errorf("equal applications got distinct ids %d and %d", add, addAgain)
	}

	swapped := s.Insert(EvaluableRValue(OperatorRef(OpAdd), args[1], args[0]))
	if swapped == add {
		t.Error("argument order was ignored by the structural key")
	}

	sub := s.Insert(EvaluableRValue(OperatorRef(OpSub), args...))
	if sub == add {
		t.Error("operator tag was ignored by the structural key")
	}
}

func TestRValueStoreSeparatesOperatorsFromFunctions(t *testing.T) {
	s := NewRValues()
	arg := RValueValue(s.Insert(LiteralRValue(Literal{Kind: LiteralInt, Int: 2})))

	byTag := s.Insert(EvaluableRValue(OperatorRef(OpNegative), arg))
	byName := s.Insert(EvaluableRValue(FunctionRef(FunctionID(uint32(OpNegative))), arg))
	if byTag == byName {
		t.Error("an operator tag and a function id with the same raw value collapsed")
	}
}

func TestTypeStoreKeysOnArraySizes(t *testing.T) {
	s := NewTypes()
	scalar := s.Insert(Type{Name: 1})
	arr2 := s.Insert(Type{Name: 1, ArraySizes: []uint64{2}})
	arr4 := s.Insert(Type{Name: 1, ArraySizes: []uint64{4}})
	arr2Again := s.Insert(Type{Name: 1, ArraySizes: []uint64{2}})

	if scalar == arr2 || arr2 == arr4 {
		t.Error("array dimensions were ignored by the structural key")
	}
	if arr2 != arr2Again {
		t.Errorf("equal array types got distinct ids %d and %d", arr2, arr2Again)
	}

	qualified := s.Insert(Type{Name: 1, Qualifiers: 3})
	if qualified == scalar {
		t.Error("qualifier id was ignored by the structural key")
	}
}

func TestStatementBlockStoreDedup(t *testing.T) {
	s := NewStatementBlocks()
	a := s.Insert([]Statement{ExprStatement(1), BranchStmt(BranchStatement{Op: BranchReturn})})
	b := s.Insert([]Statement{ExprStatement(1), BranchStmt(BranchStatement{Op: BranchReturn})})
	c := s.Insert([]Statement{ExprStatement(2)})
	empty := s.Insert(nil)
	emptyAgain := s.Insert([]Statement{})

	if a != b {
		t.Errorf("equal blocks got distinct ids %d and %d", a, b)
	}
	if a == c {
		t.Error("distinct blocks share an id")
	}
	if empty != emptyAgain {
		t.Errorf("empty blocks got distinct ids %d and %d", empty, emptyAgain)
	}
}

func TestKeyedStoreFirstInsertWins(t *testing.T) {
	s := NewKeyedStore[LocalSymbolID, int64, Symbol]()
	if !s.IsEmpty() {
		t.Error("fresh store is not empty")
	}

	first := s.Insert(42, Symbol{Name: 1, Type: 1})
	repeat := s.Insert(42, Symbol{Name: 9, Type: 9})
	other := s.Insert(7, Symbol{Name: 2, Type: 2})

	if first != repeat {
		t.Errorf("repeat insert for one key got distinct ids %d and %d", first, repeat)
	}
	if first == other {
		t.Error("distinct keys share an id")
	}
	if got, ok := s.Get(42); !ok || got != first {
		t.Errorf("Get(42) = %d, %v; want %d, true", got, ok, first)
	}
	if _, ok := s.Get(99); ok {
		t.Error("Get on an unseen key reported a hit")
	}

	frozen := s.Finalize()
	if frozen[first].Name != 1 {
		t.Errorf("repeat insert overwrote the stored value: %+v", frozen[first])
	}
}

func TestValueIDReferences(t *testing.T) {
	if (ValueID{}).IsValid() {
		t.Error("zero ValueID claims validity")
	}
	if _, ok := GlobalValue(3).AsRValue(); ok {
		t.Error("a global reference unwrapped as an rvalue")
	}
	id, ok := RValueValue(5).AsRValue()
	if !ok || id != 5 {
		t.Errorf("AsRValue() = %d, %v; want 5, true", id, ok)
	}
}
