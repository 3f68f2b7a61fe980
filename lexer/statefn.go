package lexer

type stateFn func(*Lexer) stateFn

func lexText(l *Lexer) stateFn {
	// List of runes that just advance one and emit a token.
	singles := map[rune]TokenType{
		'\n': TokNewline,
		'(':  TokParenLeft,
		')':  TokParenRight,
		'+':  TokPlus,
		'-':  TokDash,
		'*':  TokAsterisk,
		'/':  TokSlash,
	}

	switch r := l.peek(); {
	case r == eof:
		return l.emit(TokEOF)
	case r == ' ' || r == '\t' || r == '\r':
		l.acceptRun(" \t\r")
		return l.emit(TokWhitespace)
	case r >= '0' && r <= '9':
		return lexNumber
	default:
		if tok, ok := singles[r]; ok {
			l.next()
			return l.emit(tok)
		}
		return l.errorf("unexpected character: %q", r)
	}
}

// lexNumber scans digits with an optional fraction. The dot is only part of
// the number when a digit follows it.
func lexNumber(l *Lexer) stateFn {
	l.acceptRun(digits)
	if l.pos+1 < len(l.input) && l.input[l.pos] == '.' && isDigit(l.input[l.pos+1]) {
		l.next() // Consume the dot.
		l.acceptRun(digits)
	}
	return l.emit(TokNumber)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
