package fluent

import (
	"sort"

	"github.com/robustls/robustls/internal/buffer"
)

// TokenType enumerates the semantic-token legend order: {enumMember,
// string, comment, number, function, operator, variable, parameter}. The
// numeric value IS the legend index the editor-protocol layer
// advertises, so this order must not change.
type TokenType int

const (
	TokenEnumMember TokenType = iota
	TokenString
	TokenComment
	TokenNumber
	TokenFunction
	TokenOperator
	TokenVariable
	TokenParameter
)

// Token is one absolute semantic token before delta-encoding.
type Token struct {
	Span Span
	Type TokenType
}

// Tokenize classifies every entry in a parsed Fluent file into absolute
// semantic tokens, sorted by source position.
func Tokenize(entries []Entry) []Token {
	var toks []Token
	for _, e := range entries {
		toks = append(toks, tokenizeEntry(e)...)
	}
	sort.Slice(toks, func(i, j int) bool {
		if toks[i].Span.Start != toks[j].Span.Start {
			return toks[i].Span.Start < toks[j].Span.Start
		}
		return toks[i].Span.End < toks[j].Span.End
	})
	return toks
}

func tokenizeEntry(e Entry) []Token {
	switch e.Kind {
	case EntryComment:
		return []Token{{Span: e.Span, Type: TokenComment}}
	case EntryMessage, EntryTerm:
		var toks []Token
		if e.IDSpan != (Span{}) {
			toks = append(toks, Token{Span: e.IDSpan, Type: TokenEnumMember})
		}
		toks = append(toks, tokenizePattern(e.Value)...)
		for _, attr := range e.Attributes {
			toks = append(toks, Token{Span: attr.NameSpan, Type: TokenEnumMember})
			toks = append(toks, tokenizePattern(attr.Value)...)
		}
		return toks
	default:
		return nil
	}
}

func tokenizePattern(p *Pattern) []Token {
	if p == nil {
		return nil
	}
	var toks []Token
	for _, el := range p.Elements {
		switch el.Kind {
		case ElementText:
			toks = append(toks, Token{Span: el.Span, Type: TokenString})
		case ElementPlaceable:
			toks = append(toks, Token{Span: el.OpenBrace, Type: TokenOperator})
			toks = append(toks, tokenizeExpr(el.Expr)...)
			toks = append(toks, Token{Span: el.CloseBrace, Type: TokenOperator})
		}
	}
	return toks
}

func tokenizeExpr(e Expression) []Token {
	switch e.Kind {
	case ExprVariableReference:
		return []Token{{Span: e.Span, Type: TokenVariable}}
	case ExprTermReference, ExprMessageReference:
		toks := []Token{{Span: e.Span, Type: TokenVariable}}
		return append(toks, tokenizeCallArgs(e.Args)...)
	case ExprFunctionReference:
		toks := []Token{{Span: e.NameSpan, Type: TokenFunction}}
		return append(toks, tokenizeCallArgs(e.Args)...)
	case ExprString:
		return []Token{{Span: e.Span, Type: TokenString}}
	case ExprNumber:
		return []Token{{Span: e.Span, Type: TokenNumber}}
	case ExprSelect:
		var toks []Token
		if e.Selector != nil {
			toks = append(toks, tokenizeExpr(*e.Selector)...)
		}
		toks = append(toks, Token{Span: e.Arrow, Type: TokenOperator})
		for _, v := range e.Variants {
			toks = append(toks, Token{Span: v.KeySpan, Type: TokenOperator})
			toks = append(toks, tokenizePattern(v.Value)...)
		}
		return toks
	default:
		return nil
	}
}

func tokenizeCallArgs(args []CallArg) []Token {
	var toks []Token
	for _, a := range args {
		if a.Name != "" {
			toks = append(toks, Token{Span: a.NameSpan, Type: TokenParameter})
		}
		toks = append(toks, tokenizeExpr(a.Value)...)
	}
	return toks
}

// DeltaToken is one LSP-encoded semantic token: (deltaLine, deltaStart,
// length, tokenType, tokenModifiers). tokenModifiers is always 0; no
// modifier bits are defined for these tokens.
type DeltaToken struct {
	DeltaLine  int
	DeltaStart int
	Length     int
	Type       TokenType
	Modifiers  int
}

// Encode converts absolute, position-sorted tokens into the protocol's
// delta encoding over src, using a line index to map byte offsets to
// (line, character). When delta_line > 0, delta_start resets to the
// absolute column, matching the LSP semantic-tokens/full wire format.
func Encode(src []byte, toks []Token) []DeltaToken {
	idx := buffer.New(string(src))
	out := make([]DeltaToken, 0, len(toks))
	prevLine, prevChar := 0, 0
	for _, t := range toks {
		start := idx.PositionAt(t.Span.Start)
		end := idx.PositionAt(t.Span.End)
		length := end.Character - start.Character
		if length < 0 {
			length = 0
		}
		deltaLine := start.Line - prevLine
		deltaStart := start.Character
		if deltaLine == 0 {
			deltaStart = start.Character - prevChar
		}
		out = append(out, DeltaToken{
			DeltaLine:  deltaLine,
			DeltaStart: deltaStart,
			Length:     length,
			Type:       t.Type,
		})
		prevLine, prevChar = start.Line, start.Character
	}
	return out
}

// Decode reverses Encode, reproducing the absolute (line, character,
// length, type) tuples, so an encode-then-decode round trip can be
// checked against the original tokens.
func Decode(deltas []DeltaToken) []AbsoluteToken {
	out := make([]AbsoluteToken, 0, len(deltas))
	line, char := 0, 0
	for _, d := range deltas {
		if d.DeltaLine > 0 {
			line += d.DeltaLine
			char = d.DeltaStart
		} else {
			char += d.DeltaStart
		}
		out = append(out, AbsoluteToken{Line: line, Character: char, Length: d.Length, Type: d.Type})
	}
	return out
}

// AbsoluteToken is the decoded form of a DeltaToken.
type AbsoluteToken struct {
	Line      int
	Character int
	Length    int
	Type      TokenType
}
