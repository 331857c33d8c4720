package filterlang

import (
	"strings"
)

// Regex literals are delimited by forward slashes.
const regexDelimiter = '/'

// TokenKind identifies the type of lexical token.
type TokenKind int

const (
	TokEOF    TokenKind = iota
	TokWord             // bareword or double-quoted phrase (quotes stripped, escapes processed)
	TokOr               // OR (case-insensitive)
	TokAnd              // AND (case-insensitive)
	TokNot              // NOT (case-insensitive) or a leading "-"
	TokLParen           // (
	TokRParen           // )
	TokRegex            // /pattern/ (slashes stripped)
)

func (k TokenKind) String() string {
	switch k {
	case TokEOF:
		return "EOF"
	case TokWord:
		return "WORD"
	case TokOr:
		return "OR"
	case TokAnd:
		return "AND"
	case TokNot:
		return "NOT"
	case TokLParen:
		return "("
	case TokRParen:
		return ")"
	case TokRegex:
		return "REGEX"
	default:
		return "UNKNOWN"
	}
}

// Token represents a lexical token.
type Token struct {
	Kind   TokenKind
	Lit    string // for quoted phrases: unescaped content without quotes
	Pos    int    // byte offset in input for error reporting
	Quoted bool   // true when the word came from a quoted phrase
}

// Lexer tokenizes a query string.
type Lexer struct {
	input string
	pos   int // current position in input
}

// NewLexer creates a new lexer for the given input.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// Next returns the next token.
func (l *Lexer) Next() (Token, error) {
	l.skipWhitespace()

	if l.pos >= len(l.input) {
		return Token{Kind: TokEOF, Pos: l.pos}, nil
	}

	startPos := l.pos
	ch := l.input[l.pos]

	switch ch {
	case '(':
		l.pos++
		return Token{Kind: TokLParen, Lit: "(", Pos: startPos}, nil
	case ')':
		l.pos++
		return Token{Kind: TokRParen, Lit: ")", Pos: startPos}, nil
	case '"':
		return l.scanQuotedPhrase()
	case regexDelimiter:
		return l.scanRegex()
	case '-':
		// A dash starting a token and glued to the next atom negates it:
		// `-error` reads as `NOT error`. A dash followed by whitespace or
		// end of input is an ordinary one-character word.
		if l.pos+1 < len(l.input) && !isSpaceByte(l.input[l.pos+1]) {
			l.pos++
			return Token{Kind: TokNot, Lit: "-", Pos: startPos}, nil
		}
	}

	// Bareword (may be a keyword)
	return l.scanBareword()
}

// Peek returns the next token without consuming it.
func (l *Lexer) Peek() (Token, error) {
	savedPos := l.pos
	tok, err := l.Next()
	l.pos = savedPos
	return tok, err
}

// skipWhitespace advances past whitespace characters.
func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) && isSpaceByte(l.input[l.pos]) {
		l.pos++
	}
}

// scanQuotedPhrase scans a double-quoted phrase, processing escape sequences.
func (l *Lexer) scanQuotedPhrase() (Token, error) {
	startPos := l.pos
	l.pos++ // skip opening quote

	var sb strings.Builder
	for l.pos < len(l.input) {
		ch := l.input[l.pos]

		if ch == '"' {
			l.pos++ // skip closing quote
			return Token{Kind: TokWord, Lit: sb.String(), Pos: startPos, Quoted: true}, nil
		}

		if ch == '\\' {
			l.pos++
			if l.pos >= len(l.input) {
				return Token{}, newParseError(l.pos-1, ErrUnterminatedString, "unterminated phrase: escape at end of input")
			}

			escaped := l.input[l.pos]
			switch escaped {
			case '\\':
				sb.WriteByte('\\')
			case '"':
				sb.WriteByte('"')
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			default:
				return Token{}, newParseError(l.pos-1, ErrInvalidEscape, "invalid escape sequence: \\%c", escaped)
			}
			l.pos++
			continue
		}

		sb.WriteByte(ch)
		l.pos++
	}

	return Token{}, newParseError(startPos, ErrUnterminatedString, "unterminated phrase starting at position %d", startPos)
}

// scanRegex scans a regex literal delimited by forward slashes.
// The pattern between slashes is returned as the token literal (slashes
// stripped). Escaped slashes (\/) within the pattern are unescaped.
func (l *Lexer) scanRegex() (Token, error) {
	startPos := l.pos
	l.pos++ // skip opening /

	var sb strings.Builder
	for l.pos < len(l.input) {
		ch := l.input[l.pos]

		if ch == regexDelimiter {
			l.pos++ // skip closing /
			return Token{Kind: TokRegex, Lit: sb.String(), Pos: startPos}, nil
		}

		if ch == '\\' && l.pos+1 < len(l.input) && l.input[l.pos+1] == regexDelimiter {
			// Escaped slash: \/ becomes /
			sb.WriteByte('/')
			l.pos += 2
			continue
		}

		sb.WriteByte(ch)
		l.pos++
	}

	return Token{}, newParseError(startPos, ErrUnterminatedRegex, "unterminated regex starting at position %d", startPos)
}

// scanBareword scans a bareword token, which may be a keyword.
func (l *Lexer) scanBareword() (Token, error) {
	startPos := l.pos

	for l.pos < len(l.input) && isBarewordByte(l.input[l.pos]) {
		l.pos++
	}

	lit := l.input[startPos:l.pos]
	return Token{Kind: classifyWord(lit), Lit: lit, Pos: startPos}, nil
}

// isBarewordByte returns true if ch can be part of a bareword.
// Barewords exclude whitespace, parentheses, quotes and regex delimiters.
func isBarewordByte(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r':
		return false
	case '(', ')', '"', regexDelimiter:
		return false
	default:
		return true
	}
}

func isSpaceByte(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

// classifyWord checks if a word is a keyword (case-insensitive).
func classifyWord(word string) TokenKind {
	switch strings.ToUpper(word) {
	case "OR":
		return TokOr
	case "AND":
		return TokAnd
	case "NOT":
		return TokNot
	default:
		return TokWord
	}
}
