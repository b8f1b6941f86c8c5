package driver

import (
	"context"

	"sable/internal/diag"
	"sable/internal/lexer"
	"sable/internal/source"
	"sable/internal/token"
	"sable/internal/trace"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize lexes a file up to EOF or the first lexical error. The error is
// reported into Bag; Tokens keeps everything lexed before it.
func Tokenize(ctx context.Context, path string, maxDiagnostics int) (*TokenizeResult, error) {
	tracer := trace.FromContext(ctx)

	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)

	span := trace.Begin(tracer, trace.ScopeFile, "tokenize "+path, 0)
	tokens, err := lexer.New(file, lexer.Options{}).All()
	if err != nil {
		trace.Failure(tracer, trace.ScopeFile, "lex", err, span.ID())
		diag.ReportErr(diag.BagReporter{Bag: bag}, err)
	}
	span.WithField("tokens", itoa(len(tokens))).End("")

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}, nil
}
