package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"sable/internal/ast"
	"sable/internal/source"
	"sable/internal/types"
)

// ASTInput bundles the tables the AST printers resolve names and types against.
// Files may be nil, spans are then printed as byte offsets.
type ASTInput struct {
	Builder *ast.Builder
	Strings *source.Interner
	Types   *types.Interner
	Files   *source.FileSet
}

type ASTNodeOutput struct {
	Type      string          `json:"type" yaml:"type"`
	Kind      string          `json:"kind,omitempty" yaml:"kind,omitempty"`
	Span      source.Span     `json:"span" yaml:"span"`
	Text      string          `json:"text,omitempty" yaml:"text,omitempty"`
	ValueType string          `json:"value_type,omitempty" yaml:"value_type,omitempty"`
	Children  []ASTNodeOutput `json:"children,omitempty" yaml:"children,omitempty"`
	Fields    map[string]any  `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// BuildASTOutput converts the tree rooted at a declaration (usually the program).
func BuildASTOutput(in ASTInput, root ast.DeclID) (ASTNodeOutput, error) {
	if in.Builder == nil || in.Builder.Decls.Get(root) == nil {
		return ASTNodeOutput{}, fmt.Errorf("declaration %d not found", root)
	}
	return in.decl(root), nil
}

func FormatASTJSON(w io.Writer, in ASTInput, root ast.DeclID) error {
	output, err := BuildASTOutput(in, root)
	if err != nil {
		return err
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// FormatASTYAML пишет то же дерево, что и FormatASTJSON, в YAML.
func FormatASTYAML(w io.Writer, in ASTInput, root ast.DeclID) error {
	output, err := BuildASTOutput(in, root)
	if err != nil {
		return err
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(output); err != nil {
		return err
	}
	return encoder.Close()
}

func (in ASTInput) name(id source.StringID) string {
	if in.Strings == nil {
		return fmt.Sprintf("#%d", id)
	}
	if s, ok := in.Strings.Lookup(id); ok {
		return s
	}
	return "<?>"
}

func (in ASTInput) typeName(id types.TypeID) string {
	if id == types.NoTypeID || in.Types == nil {
		return ""
	}
	return in.Types.Format(id)
}

func (in ASTInput) decl(id ast.DeclID) ASTNodeOutput {
	d := in.Builder.Decls.Get(id)
	if d == nil {
		return ASTNodeOutput{Type: "Decl", Kind: "<nil>"}
	}
	node := ASTNodeOutput{
		Type:      "Decl",
		Kind:      d.Kind.String(),
		Span:      d.Span,
		ValueType: in.typeName(d.Type),
	}
	switch {
	case d.Kind == ast.DeclProgram:
		node.Type = "Program"
		node.Kind = ""
		for _, child := range in.Builder.Decls.Program(id).Decls {
			node.Children = append(node.Children, in.decl(child))
		}
	case d.Kind == ast.DeclFunction:
		node.Text = in.name(d.Name)
		fn := in.Builder.Decls.Function(id)
		node.Fields = map[string]any{"result": in.typeName(fn.Result)}
		for _, p := range fn.Params {
			node.Children = append(node.Children, in.decl(p))
		}
		if fn.Body.IsValid() {
			node.Children = append(node.Children, in.stmt(fn.Body))
		}
	case d.Kind.IsObject():
		node.Text = in.name(d.Name)
		if obj := in.Builder.Decls.Object(id); obj != nil && obj.Init.IsValid() {
			node.Children = append(node.Children, in.expr(obj.Init))
		}
	}
	return node
}

func (in ASTInput) stmt(id ast.StmtID) ASTNodeOutput {
	stmts := in.Builder.Stmts
	s := stmts.Get(id)
	if s == nil {
		return ASTNodeOutput{Type: "Stmt", Kind: "<nil>"}
	}
	node := ASTNodeOutput{Type: "Stmt", Kind: s.Kind.String(), Span: s.Span}
	add := func(n ASTNodeOutput) { node.Children = append(node.Children, n) }

	switch s.Kind {
	case ast.StmtBlock:
		for _, child := range stmts.Block(id).Stmts {
			add(in.stmt(child))
		}
	case ast.StmtWhen:
		data := stmts.When(id)
		add(in.expr(data.Cond))
		add(in.stmt(data.Body))
	case ast.StmtIf:
		data := stmts.If(id)
		add(in.expr(data.Cond))
		add(in.stmt(data.Then))
		add(in.stmt(data.Else))
	case ast.StmtWhile:
		data := stmts.While(id)
		add(in.expr(data.Cond))
		add(in.stmt(data.Body))
	case ast.StmtReturn:
		add(in.expr(stmts.Return(id).Value))
	case ast.StmtDecl:
		add(in.decl(stmts.Decl(id).Decl))
	case ast.StmtExpr:
		add(in.expr(stmts.Expr(id).Expr))
	}
	return node
}

func (in ASTInput) expr(id ast.ExprID) ASTNodeOutput {
	exprs := in.Builder.Exprs
	e := exprs.Get(id)
	if e == nil {
		return ASTNodeOutput{Type: "Expr", Kind: "<nil>"}
	}
	node := ASTNodeOutput{
		Type:      "Expr",
		Kind:      e.Kind.String(),
		Span:      e.Span,
		ValueType: in.typeName(e.Type),
	}
	add := func(n ASTNodeOutput) { node.Children = append(node.Children, n) }

	switch e.Kind {
	case ast.ExprBoolLit:
		if data, ok := exprs.Bool(id); ok {
			node.Text = strconv.FormatBool(data.Value)
		}
	case ast.ExprIntLit:
		if data, ok := exprs.Int(id); ok {
			node.Text = strconv.FormatUint(data.Value, 10)
			node.Fields = map[string]any{"radix": data.Radix.String()}
		}
	case ast.ExprFloatLit:
		if data, ok := exprs.Float(id); ok {
			node.Text = strconv.FormatFloat(data.Value, 'g', -1, 64)
		}
	case ast.ExprCharLit:
		if data, ok := exprs.Char(id); ok {
			node.Text = strconv.QuoteRuneToASCII(rune(data.Value))
		}
	case ast.ExprIdent:
		if data, ok := exprs.Ident(id); ok {
			node.Text = in.name(data.Name)
			if d := in.Builder.Decls.Get(data.Decl); d != nil {
				node.Fields = map[string]any{"decl": d.Kind.String()}
			}
		}
	case ast.ExprUnary:
		if data, ok := exprs.Unary(id); ok {
			node.Text = data.Op.String()
			add(in.expr(data.Operand))
		}
	case ast.ExprBinary:
		if data, ok := exprs.Binary(id); ok {
			node.Text = data.Op.String()
			add(in.expr(data.Left))
			add(in.expr(data.Right))
		}
	case ast.ExprCall:
		if data, ok := exprs.Call(id); ok {
			add(in.expr(data.Callee))
			for _, arg := range data.Args {
				add(in.expr(arg))
			}
		}
	case ast.ExprIndex:
		if data, ok := exprs.Index(id); ok {
			add(in.expr(data.Base))
			for _, arg := range data.Args {
				add(in.expr(arg))
			}
		}
	case ast.ExprCast:
		if data, ok := exprs.Cast(id); ok {
			node.Fields = map[string]any{"target": in.typeName(data.Target)}
			add(in.expr(data.Value))
		}
	case ast.ExprAssign:
		if data, ok := exprs.Assign(id); ok {
			node.Text = "="
			if data.Op != ast.ExprBinaryNone {
				node.Text = data.Op.String() + "="
			}
			add(in.expr(data.Target))
			add(in.expr(data.Value))
		}
	case ast.ExprConditional:
		if data, ok := exprs.Conditional(id); ok {
			add(in.expr(data.Cond))
			add(in.expr(data.Then))
			add(in.expr(data.Else))
		}
	case ast.ExprConversion:
		if data, ok := exprs.Conversion(id); ok {
			node.Text = data.Conv.String()
			add(in.expr(data.Value))
		}
	}
	return node
}
