// Package lexer provides the lexical analyzer for the arithmetic language.
package lexer

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	digits = "0123456789"
	eof    = -1
)

type Lexer struct {
	input string

	curToken Token

	start int // Offset of the current token.
	pos   int // Read offset.
	width int // Width of the last rune read, 0 once backed up or at eof.

	line      int // Line of start.
	lineStart int // Offset of the first byte of line.
}

// New creates a new Lexer for the given input.
func New(input string) *Lexer {
	return &Lexer{input: input, line: 1}
}

// NextToken scans and returns the next token. Once the input is exhausted,
// or after an error token, it keeps returning EOF.
func (l *Lexer) NextToken() Token {
	for state := lexText; state != nil; {
		state = state(l)
	}
	return l.curToken
}

func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.width = w
	l.pos += w
	return r
}

// backup steps back over the last rune read. Only one step is supported.
func (l *Lexer) backup() {
	l.pos -= l.width
	l.width = 0
}

func (l *Lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *Lexer) acceptRun(valid string) bool {
	start := l.pos
	for r := l.next(); r != eof && strings.ContainsRune(valid, r); r = l.next() {
	}
	l.backup()
	return l.pos > start
}

// commit moves start up to pos, keeping the line bookkeeping in sync with
// the consumed text.
func (l *Lexer) commit() {
	for i := l.start; i < l.pos; i++ {
		if l.input[i] == '\n' {
			l.line++
			l.lineStart = i + 1
		}
	}
	l.start = l.pos
}

func (l *Lexer) emitToken(t Token) stateFn {
	l.curToken = t
	l.commit()
	return nil
}

func (l *Lexer) emit(tt TokenType) stateFn {
	return l.emitToken(Token{
		Type:  tt,
		Value: l.input[l.start:l.pos],
		pos:   l.start,
		line:  l.line,
		col:   l.start - l.lineStart + 1,
	})
}

// errorf emits an error token at start and consumes the rest of the input.
func (l *Lexer) errorf(format string, args ...any) stateFn {
	t := Token{
		Type:  TokError,
		Value: fmt.Sprintf(format, args...),
		pos:   l.start,
		line:  l.line,
		col:   l.start - l.lineStart + 1,
	}
	l.pos = len(l.input)
	return l.emitToken(t)
}
