package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"sable/internal/ast"
	"sable/internal/source"
)

// FormatASTTree печатает дерево в виде
//
//	Program (1:1-3:2)
//	└─ Decl[Function] main : () -> int (1:1-3:2)
//	   └─ Stmt[Block] (1:17-3:2)
func FormatASTTree(w io.Writer, in ASTInput, root ast.DeclID) error {
	output, err := BuildASTOutput(in, root)
	if err != nil {
		return err
	}
	var sb strings.Builder
	sb.WriteString(nodeLabel(output, in.Files))
	sb.WriteByte('\n')
	writeChildren(&sb, output.Children, "", in.Files)
	_, err = io.WriteString(w, sb.String())
	return err
}

func writeChildren(sb *strings.Builder, children []ASTNodeOutput, prefix string, fs *source.FileSet) {
	for i, child := range children {
		branch, next := "├─ ", "│  "
		if i == len(children)-1 {
			branch, next = "└─ ", "   "
		}
		sb.WriteString(prefix)
		sb.WriteString(branch)
		sb.WriteString(nodeLabel(child, fs))
		sb.WriteByte('\n')
		writeChildren(sb, child.Children, prefix+next, fs)
	}
}

func nodeLabel(n ASTNodeOutput, fs *source.FileSet) string {
	var sb strings.Builder
	sb.WriteString(n.Type)
	if n.Kind != "" {
		fmt.Fprintf(&sb, "[%s]", n.Kind)
	}
	if n.Text != "" {
		sb.WriteByte(' ')
		sb.WriteString(n.Text)
	}
	if n.ValueType != "" {
		sb.WriteString(" : ")
		sb.WriteString(n.ValueType)
	}
	if target, ok := n.Fields["target"]; ok {
		fmt.Fprintf(&sb, " as %v", target)
	}
	fmt.Fprintf(&sb, " (%s)", formatSpan(n.Span, fs))
	return sb.String()
}
