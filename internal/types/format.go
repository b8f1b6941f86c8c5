package types

import "strings"

// Format renders a type the way it is spelled in source, plus
// "&T" for references and "(A, B) -> R" for functions.
func (in *Interner) Format(id TypeID) string {
	var sb strings.Builder
	in.format(&sb, id)
	return sb.String()
}

func (in *Interner) format(sb *strings.Builder, id TypeID) {
	tt, ok := in.Lookup(id)
	if !ok {
		sb.WriteString("<invalid>")
		return
	}
	switch tt.Kind {
	case KindPointer:
		sb.WriteByte('*')
		in.format(sb, tt.Elem)
	case KindReference:
		sb.WriteByte('&')
		in.format(sb, tt.Elem)
	case KindFn:
		info, _ := in.FnInfo(id)
		sb.WriteByte('(')
		for i, p := range info.Params {
			if i > 0 {
				sb.WriteString(", ")
			}
			in.format(sb, p)
		}
		sb.WriteString(") -> ")
		in.format(sb, info.Result)
	default:
		sb.WriteString(tt.Kind.String())
	}
}
