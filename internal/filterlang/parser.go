package filterlang

import (
	"regexp"
	"strings"

	"tailview/internal/textpos"
)

// Parser for the filter query language.
//
// Grammar (EBNF):
//
//	query      = or_expr EOF
//	or_expr    = and_expr ( "OR" and_expr )*
//	and_expr   = unary_expr ( [ "AND" ] unary_expr )*
//	unary_expr = ( "NOT" | "-" ) unary_expr | primary
//	primary    = "(" or_expr ")" | atom
//	atom       = WORD | QUOTED | REGEX
//
// Precedence (highest to lowest):
//  1. Parentheses
//  2. NOT (prefix, right-associative)
//  3. AND (implicit or explicit)
//  4. OR
type parser struct {
	lex *Lexer
	cur Token
}

// FilterExpr is an immutable compiled filter expression. It is replaced
// whole on re-parse, never mutated, so a value published to concurrent
// readers is always fully built.
type FilterExpr struct {
	root Expr
	src  string
	pre  *prefilter
}

// String returns the parsed expression in normalized form.
func (f *FilterExpr) String() string {
	if f == nil || f.root == nil {
		return ""
	}
	return f.root.String()
}

// Source returns the query string the expression was parsed from.
func (f *FilterExpr) Source() string {
	if f == nil {
		return ""
	}
	return f.src
}

// Root returns the root AST node.
func (f *FilterExpr) Root() Expr {
	if f == nil {
		return nil
	}
	return f.root
}

// Parse parses a query string into a compiled filter expression.
//
// An empty or whitespace-only query returns (nil, nil): "no filter" is a
// caller-level state, not a parse error. All failures are *ParseError
// values carrying the byte position of the offending token.
func Parse(input string) (*FilterExpr, error) {
	if strings.TrimSpace(input) == "" {
		return nil, nil
	}

	p := &parser{lex: NewLexer(input)}

	// Prime the parser with the first token.
	if err := p.advance(); err != nil {
		return nil, err
	}

	root, err := p.parseOrExpr()
	if err != nil {
		return nil, err
	}

	// Ensure we consumed all input.
	if p.cur.Kind != TokEOF {
		if p.cur.Kind == TokRParen {
			return nil, newParseError(p.cur.Pos, ErrUnmatchedParen, "unmatched closing parenthesis")
		}
		return nil, newParseError(p.cur.Pos, ErrUnexpectedToken, "unexpected token: %s", p.cur.Lit)
	}

	return &FilterExpr{root: root, src: input, pre: newPrefilter(root)}, nil
}

// advance moves to the next token.
func (p *parser) advance() error {
	tok, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

// parseOrExpr parses: or_expr = and_expr ( "OR" and_expr )*
func (p *parser) parseOrExpr() (Expr, error) {
	left, err := p.parseAndExpr()
	if err != nil {
		return nil, err
	}

	for p.cur.Kind == TokOr {
		if err := p.advance(); err != nil {
			return nil, err
		}

		right, err := p.parseAndExpr()
		if err != nil {
			return nil, err
		}

		left = flattenOr(left, right)
	}

	return left, nil
}

// parseAndExpr parses: and_expr = unary_expr ( [ "AND" ] unary_expr )*
func (p *parser) parseAndExpr() (Expr, error) {
	left, err := p.parseUnaryExpr()
	if err != nil {
		return nil, err
	}

	for p.isAndStart() {
		// Consume optional AND keyword.
		if p.cur.Kind == TokAnd {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}

		right, err := p.parseUnaryExpr()
		if err != nil {
			return nil, err
		}

		left = flattenAnd(left, right)
	}

	return left, nil
}

// isAndStart returns true if the current token could start another
// unary_expr in an implicit AND sequence.
func (p *parser) isAndStart() bool {
	switch p.cur.Kind {
	case TokAnd, TokNot, TokLParen, TokWord, TokRegex:
		return true
	default:
		return false
	}
}

// parseUnaryExpr parses: unary_expr = ( "NOT" | "-" ) unary_expr | primary
func (p *parser) parseUnaryExpr() (Expr, error) {
	if p.cur.Kind == TokNot {
		pos := p.cur.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}

		// Check for something after NOT.
		if p.cur.Kind == TokEOF {
			return nil, newParseError(pos, ErrUnexpectedEOF, "expected expression after NOT")
		}
		if p.cur.Kind == TokOr || p.cur.Kind == TokAnd || p.cur.Kind == TokRParen {
			return nil, newParseError(p.cur.Pos, ErrUnexpectedToken, "expected expression after NOT, got %s", p.cur.Kind)
		}

		term, err := p.parseUnaryExpr()
		if err != nil {
			return nil, err
		}

		return &NotExpr{Term: term}, nil
	}

	return p.parsePrimary()
}

// parsePrimary parses: primary = "(" or_expr ")" | atom
//
// A parenthesized group parses to its inner expression directly; grouping
// only shapes the tree, no node survives for it.
func (p *parser) parsePrimary() (Expr, error) {
	if p.cur.Kind == TokLParen {
		openPos := p.cur.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}

		if p.cur.Kind == TokRParen {
			return nil, newParseError(openPos, ErrEmptyAtom, "empty parentheses")
		}

		expr, err := p.parseOrExpr()
		if err != nil {
			return nil, err
		}

		if p.cur.Kind != TokRParen {
			return nil, newParseError(openPos, ErrUnmatchedParen, "unmatched opening parenthesis")
		}
		if err := p.advance(); err != nil {
			return nil, err
		}

		return expr, nil
	}

	return p.parseAtom()
}

// parseAtom parses a literal leaf: a bareword, quoted phrase or regex.
func (p *parser) parseAtom() (Expr, error) {
	switch p.cur.Kind {
	case TokEOF:
		return nil, newParseError(p.cur.Pos, ErrUnexpectedEOF, "unexpected end of query")
	case TokOr, TokAnd:
		return nil, newParseError(p.cur.Pos, ErrUnexpectedToken, "unexpected keyword %s", p.cur.Lit)
	case TokRParen:
		return nil, newParseError(p.cur.Pos, ErrUnmatchedParen, "unmatched closing parenthesis")
	}

	tok := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}

	if tok.Kind == TokRegex {
		if tok.Lit == "" {
			return nil, newParseError(tok.Pos, ErrEmptyAtom, "empty regex literal")
		}
		// Case-insensitive by default; a pattern can switch back with (?-i).
		re, err := regexp.Compile("(?i)" + tok.Lit)
		if err != nil {
			return nil, newParseError(tok.Pos, ErrInvalidRegex, "invalid regex /%s/: %v", tok.Lit, err)
		}
		return &LiteralExpr{Pattern: tok.Lit, Regex: re}, nil
	}

	if tok.Lit == "" {
		return nil, newParseError(tok.Pos, ErrEmptyAtom, "empty phrase")
	}

	return &LiteralExpr{Pattern: tok.Lit, folded: textpos.ToLowerASCII(tok.Lit)}, nil
}
