package types

// AreSame compares two types structurally. Primitives compare by kind,
// pointers and references by element, functions by arity, every parameter
// and the result.
func (in *Interner) AreSame(a, b TypeID) bool {
	if a == b {
		return true
	}
	ta, okA := in.Lookup(a)
	tb, okB := in.Lookup(b)
	if !okA || !okB || ta.Kind != tb.Kind {
		return false
	}
	switch ta.Kind {
	case KindBool, KindChar, KindInt, KindFloat:
		return true
	case KindPointer, KindReference:
		return in.AreSame(ta.Elem, tb.Elem)
	case KindFn:
		fa, _ := in.FnInfo(a)
		fb, _ := in.FnInfo(b)
		if fa == nil || fb == nil || len(fa.Params) != len(fb.Params) {
			return false
		}
		for i := range fa.Params {
			if !in.AreSame(fa.Params[i], fb.Params[i]) {
				return false
			}
		}
		return in.AreSame(fa.Result, fb.Result)
	default:
		return false
	}
}

func (in *Interner) IsBool(id TypeID) bool { return in.KindOf(id) == KindBool }
func (in *Interner) IsChar(id TypeID) bool { return in.KindOf(id) == KindChar }
func (in *Interner) IsInt(id TypeID) bool { return in.KindOf(id) == KindInt }
func (in *Interner) IsFloat(id TypeID) bool { return in.KindOf(id) == KindFloat }

func (in *Interner) IsPointer(id TypeID) bool { return in.KindOf(id) == KindPointer }
func (in *Interner) IsReference(id TypeID) bool { return in.KindOf(id) == KindReference }
func (in *Interner) IsFunction(id TypeID) bool { return in.KindOf(id) == KindFn }

// IsArithmetic: int or float.
func (in *Interner) IsArithmetic(id TypeID) bool {
	switch in.KindOf(id) {
	case KindInt, KindFloat:
		return true
	default:
		return false
	}
}

// IsNumeric: bool, char, int or float.
func (in *Interner) IsNumeric(id TypeID) bool {
	switch in.KindOf(id) {
	case KindBool, KindChar, KindInt, KindFloat:
		return true
	default:
		return false
	}
}

// IsScalar: numeric types and pointers.
func (in *Interner) IsScalar(id TypeID) bool {
	return in.IsNumeric(id) || in.IsPointer(id)
}

// IsObject reports whether values of id can be stored in a variable.
func (in *Interner) IsObject(id TypeID) bool {
	return in.IsScalar(id)
}

// ObjectType strips one reference; other types are returned unchanged.
func (in *Interner) ObjectType(id TypeID) TypeID {
	if tt, ok := in.Lookup(id); ok && tt.Kind == KindReference {
		return tt.Elem
	}
	return id
}

// Elem returns the element of a pointer or reference.
func (in *Interner) Elem(id TypeID) TypeID {
	if tt, ok := in.Lookup(id); ok && (tt.Kind == KindPointer || tt.Kind == KindReference) {
		return tt.Elem
	}
	return NoTypeID
}

// IsReferenceTo reports whether ref is a reference whose object type is target.
func (in *Interner) IsReferenceTo(ref, target TypeID) bool {
	tt, ok := in.Lookup(ref)
	return ok && tt.Kind == KindReference && in.AreSame(tt.Elem, target)
}
