// Package filterlang implements the boolean filter query language used
// for both line filtering and custom highlighting.
//
// A query is a boolean expression over text literals:
//
//	error AND NOT "connection reset" OR /timeout \d+ms/
//
// Barewords and double-quoted phrases match as case-insensitive
// substrings; /…/ literals compile as regular expressions. Parsing
// produces an immutable expression tree; evaluation against a line is a
// pure function with no I/O.
package filterlang

import (
	"regexp"
	"strings"
)

// Expr is the interface for all AST nodes.
// The marker method prevents external types from implementing Expr.
type Expr interface {
	expr()
	// String returns a human-readable representation of the expression.
	String() string
}

// AndExpr represents logical AND of multiple expressions.
// Invariant: len(Terms) >= 2
type AndExpr struct {
	Terms []Expr
}

func (AndExpr) expr() {}

func (a *AndExpr) String() string {
	parts := make([]string, len(a.Terms))
	for i, t := range a.Terms {
		parts[i] = t.String()
	}
	return "(" + strings.Join(parts, " AND ") + ")"
}

// OrExpr represents logical OR of multiple expressions.
// Invariant: len(Terms) >= 2
type OrExpr struct {
	Terms []Expr
}

func (OrExpr) expr() {}

func (o *OrExpr) String() string {
	parts := make([]string, len(o.Terms))
	for i, t := range o.Terms {
		parts[i] = t.String()
	}
	return "(" + strings.Join(parts, " OR ") + ")"
}

// NotExpr represents logical negation.
type NotExpr struct {
	Term Expr
}

func (NotExpr) expr() {}

func (n *NotExpr) String() string {
	return "NOT " + n.Term.String()
}

// LiteralExpr is a leaf matching line text, either as a case-insensitive
// substring (Regex nil) or as a compiled regular expression.
type LiteralExpr struct {
	Pattern string         // pattern as written, for display
	Regex   *regexp.Regexp // set for /…/ literals
	folded  string         // ASCII-lowered Pattern, set for substring literals
}

func (LiteralExpr) expr() {}

func (l *LiteralExpr) String() string {
	if l.Regex != nil {
		return "/" + l.Pattern + "/"
	}
	return "\"" + l.Pattern + "\""
}

// flattenAnd combines two expressions into an AndExpr, flattening nested AndExprs.
func flattenAnd(left, right Expr) Expr {
	var terms []Expr

	if a, ok := left.(*AndExpr); ok {
		terms = append(terms, a.Terms...)
	} else {
		terms = append(terms, left)
	}

	if a, ok := right.(*AndExpr); ok {
		terms = append(terms, a.Terms...)
	} else {
		terms = append(terms, right)
	}

	return &AndExpr{Terms: terms}
}

// flattenOr combines two expressions into an OrExpr, flattening nested OrExprs.
func flattenOr(left, right Expr) Expr {
	var terms []Expr

	if o, ok := left.(*OrExpr); ok {
		terms = append(terms, o.Terms...)
	} else {
		terms = append(terms, left)
	}

	if o, ok := right.(*OrExpr); ok {
		terms = append(terms, o.Terms...)
	} else {
		terms = append(terms, right)
	}

	return &OrExpr{Terms: terms}
}
