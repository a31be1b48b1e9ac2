package spec

import (
	"fmt"
	"io"
	"strings"

	mlcompiler "github.com/nihei9/maleeni/compiler"
	mldriver "github.com/nihei9/maleeni/driver"
	mlspec "github.com/nihei9/maleeni/spec"
)

type tokenKind string

const (
	tokenKindIdentifier = tokenKind("identifier")
	tokenKindEmpty      = tokenKind("$")
	tokenKindArrow      = tokenKind("->")
	tokenKindOr         = tokenKind("|")
	tokenKindNewline    = tokenKind("newline")
	tokenKindEOF        = tokenKind("eof")
	tokenKindInvalid    = tokenKind("invalid")
)

type Position struct {
	Row int
	Col int
}

func newPosition(row, col int) Position {
	return Position{
		Row: row,
		Col: col,
	}
}

type token struct {
	kind tokenKind
	text string
	pos  Position
}

func newSymbolToken(kind tokenKind, pos Position) *token {
	return &token{
		kind: kind,
		pos:  pos,
	}
}

func newIdentifierToken(text string, pos Position) *token {
	return &token{
		kind: tokenKindIdentifier,
		text: text,
		pos:  pos,
	}
}

func newEOFToken() *token {
	return &token{
		kind: tokenKindEOF,
	}
}

func newInvalidToken(text string, pos Position) *token {
	return &token{
		kind: tokenKindInvalid,
		text: text,
		pos:  pos,
	}
}

// An identifier covers nonterminal names, terminal symbols, and the ε/Δ
// markers, so a malformed symbol like aεb reaches the validator whole.
var lexSpec = &mlspec.LexSpec{
	Name: "grammar",
	Entries: []*mlspec.LexEntry{
		{
			Kind:    mlspec.LexKindName("white_space"),
			Pattern: mlspec.LexPattern(`[\u{0009}\u{000D}\u{0020}]+`),
		},
		{
			Kind:    mlspec.LexKindName("line_comment"),
			Pattern: mlspec.LexPattern(`#[^\u{000A}]*`),
		},
		{
			Kind:    mlspec.LexKindName("newline"),
			Pattern: mlspec.LexPattern(`\u{000A}`),
		},
		{
			Kind:    mlspec.LexKindName("arrow"),
			Pattern: mlspec.LexPattern(`->`),
		},
		{
			Kind:    mlspec.LexKindName("or"),
			Pattern: mlspec.LexPattern(`\|`),
		},
		{
			Kind:    mlspec.LexKindName("empty"),
			Pattern: mlspec.LexPattern(`$`),
		},
		{
			Kind:    mlspec.LexKindName("identifier"),
			Pattern: mlspec.LexPattern(`[0-9A-Z_a-z\u{03B5}\u{0394}]+`),
		},
	},
}

var clexspec = mustCompileLexSpec()

func mustCompileLexSpec() *mlspec.CompiledLexSpec {
	clspec, err, cErrs := mlcompiler.Compile(lexSpec, mlcompiler.CompressionLevel(mlcompiler.CompressionLevelMax))
	if err != nil {
		if len(cErrs) > 0 {
			var b strings.Builder
			writeCompileError(&b, cErrs[0])
			for _, cErr := range cErrs[1:] {
				fmt.Fprintf(&b, "\n")
				writeCompileError(&b, cErr)
			}
			panic(fmt.Sprintf("invalid lexical specification:\n%v", b.String()))
		}
		panic(err)
	}
	return clspec
}

func writeCompileError(w io.Writer, cErr *mlcompiler.CompileError) {
	fmt.Fprintf(w, "%v: %v", cErr.Kind, cErr.Cause)
	if cErr.Detail != "" {
		fmt.Fprintf(w, ": %v", cErr.Detail)
	}
}

type lexer struct {
	d *mldriver.Lexer
}

func newLexer(src io.Reader) (*lexer, error) {
	d, err := mldriver.NewLexer(mldriver.NewLexSpec(clexspec), src)
	if err != nil {
		return nil, err
	}
	return &lexer{
		d: d,
	}, nil
}

func (l *lexer) next() (*token, error) {
	var tok *mldriver.Token
	for {
		var err error
		tok, err = l.d.Next()
		if err != nil {
			return nil, err
		}
		if tok.Invalid {
			return newInvalidToken(string(tok.Lexeme), newPosition(tok.Row+1, tok.Col+1)), nil
		}
		if tok.EOF {
			return newEOFToken(), nil
		}
		switch clexspec.KindNames[tok.KindID.Int()] {
		case "white_space":
			continue
		case "line_comment":
			continue
		}

		break
	}

	switch clexspec.KindNames[tok.KindID.Int()] {
	case "newline":
		return newSymbolToken(tokenKindNewline, newPosition(tok.Row+1, tok.Col+1)), nil
	case "arrow":
		return newSymbolToken(tokenKindArrow, newPosition(tok.Row+1, tok.Col+1)), nil
	case "or":
		return newSymbolToken(tokenKindOr, newPosition(tok.Row+1, tok.Col+1)), nil
	case "empty":
		return newSymbolToken(tokenKindEmpty, newPosition(tok.Row+1, tok.Col+1)), nil
	case "identifier":
		return newIdentifierToken(string(tok.Lexeme), newPosition(tok.Row+1, tok.Col+1)), nil
	default:
		return newInvalidToken(string(tok.Lexeme), newPosition(tok.Row+1, tok.Col+1)), nil
	}
}
