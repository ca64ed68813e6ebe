package parser

import (
	"iter"
	"unicode"
	"unicode/utf8"
)

// Lexer scans normalized text left to right, producing one token per rule match.
// Text that matches no rule is skipped one character at a time. A Lexer is
// single use and never revisits a position it has moved past.
type Lexer struct {
	table *Table
	input string
	pos   int
}

// NewLexer returns a lexer over input using the given table
func NewLexer(table *Table, input string) *Lexer {
	return &Lexer{
		table: table,
		input: input,
	}
}

// Next returns the next token, or false once the input is exhausted
func (l *Lexer) Next() (Token, bool) {
	for l.pos < len(l.input) {
		start := l.pos
		rule, groups, end := l.table.match(l.input, start)
		if rule == nil {
			_, size := utf8.DecodeRuneInString(l.input[start:])
			l.pos += size
			continue
		}

		l.pos = end
		tok, ok := rule.token(groups, start, end)
		if !ok {
			// the constructor rejected the match, the span is skipped as unmatched
			continue
		}

		return tok, true
	}

	return Token{}, false
}

// All yields the remaining tokens in scan order
func (l *Lexer) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			tok, ok := l.Next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}

// match finds the first rule matching a non-empty span at pos
func (t *Table) match(input string, pos int) (*Rule, []string, int) {
	rest := input[pos:]
	for i := range t.rules {
		r := &t.rules[i]
		loc := r.re.FindStringSubmatchIndex(rest)
		if loc == nil || loc[1] == 0 {
			continue
		}

		end := pos + loc[1]
		if !r.bounded(input, pos, end) {
			continue
		}

		groups := make([]string, len(loc)/2)
		for g := range groups {
			if loc[2*g] >= 0 {
				groups[g] = rest[loc[2*g]:loc[2*g+1]]
			}
		}
		return r, groups, end
	}

	return nil, nil, pos
}

func (r *Rule) bounded(input string, start, end int) bool {
	if r.Boundary&BoundStart != 0 && start > 0 {
		prev, _ := utf8.DecodeLastRuneInString(input[:start])
		if isWordRune(prev) {
			return false
		}
	}

	if r.Boundary&BoundEnd != 0 && end < len(input) {
		next, _ := utf8.DecodeRuneInString(input[end:])
		if isWordRune(next) {
			return false
		}
	}

	return true
}

func (r *Rule) token(groups []string, start, end int) (Token, bool) {
	tok := Token{
		Category: r.Category,
		Text:     groups[0],
		Start:    start,
		End:      end,
	}

	if r.Build == nil {
		tok.Value = groups[0]
		return tok, true
	}

	v, err := r.Build(groups)
	if err != nil {
		return Token{}, false
	}
	tok.Value = v

	return tok, true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
