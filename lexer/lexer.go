// Package lexer implements a delimiter-aware streaming lexer: it pulls
// bytes from an ioreader.ByteReader, segments them on a schema's
// declared delimiters, classifies each segment against the schema's
// unified DFA, and emits a Timestamp | Variable | StaticText |
// StaticTextWithNewline token stream with source-line annotations.
package lexer

import (
	"io"

	"github.com/logsurgeon/logsurgeon-go/ioreader"
	"github.com/logsurgeon/logsurgeon-go/schema"
	"github.com/logsurgeon/logsurgeon-go/token"
)

const bufSize = 4096

// Lexer is a single-pass, pull-based tokenizer over one byte stream:
// single-threaded and cooperative, no background work. A compiled
// *schema.Schema may be shared by any number of Lexers; each Lexer
// owns its own buffer, cursor, line counter, and static-text
// accumulator.
type Lexer struct {
	schema *schema.Schema
	src    ioreader.ByteReader

	fastDelims []byte // the schema's delimiter bytes, for scanToDelimiter's memchr dispatch

	buf    []byte
	bufPos int
	bufLen int
	srcEOF bool

	line        int
	atLineStart bool

	staticAcc  []byte
	staticLine int

	queue []token.Token
	done  bool
	err   error
}

// New builds a Lexer over src using s's compiled DFA and delimiter set.
func New(s *schema.Schema, src ioreader.ByteReader) *Lexer {
	return &Lexer{
		schema:      s,
		src:         src,
		fastDelims:  s.Delimiters.Bytes(),
		buf:         make([]byte, bufSize),
		line:        1,
		atLineStart: true,
	}
}

// NextToken returns the next token, io.EOF once the stream and any
// trailing static text are exhausted, or an *IoError surfaced from the
// byte producer. After any non-nil, non-EOF error the lexer is in a
// terminal state: every subsequent call returns the same error.
func (l *Lexer) NextToken() (token.Token, error) {
	if l.err != nil {
		return token.Token{}, l.err
	}
	for len(l.queue) == 0 {
		if l.done {
			return token.Token{}, io.EOF
		}
		if err := l.step(); err != nil {
			l.err = err
			return token.Token{}, err
		}
	}
	t := l.queue[0]
	l.queue = l.queue[1:]
	return t, nil
}

// step advances the lexer by either consuming a line-start timestamp
// lookahead or one delimiter-bounded segment, queuing zero or more
// tokens as a result.
func (l *Lexer) step() error {
	if l.atLineStart {
		consumed, err := l.tryTimestamp()
		if err != nil {
			return err
		}
		if consumed {
			return nil
		}
	}

	seg, delim, hasDelim, err := l.readSegment()
	if err != nil {
		return err
	}
	segLine := l.line

	if full, isTimestamp, id, name := l.classify(seg); full {
		// A timestamp winning a plain segment match can only happen
		// when tryTimestamp's wider lookahead didn't fire above (e.g.
		// the pattern happens to fit within one delimiter-bounded
		// segment); a timestamp not at a line start that no variable
		// also matches (see classify) is still demoted to static text.
		if isTimestamp && !l.atLineStart {
			l.appendStatic(seg, segLine)
		} else {
			l.flushStatic()
			kind := token.KindVariable
			if isTimestamp {
				kind = token.KindTimestamp
			}
			l.queue = append(l.queue, token.Token{Kind: kind, Bytes: seg, Line: segLine, PatternID: id, Name: name})
			l.atLineStart = false
		}
	} else {
		l.appendStatic(seg, segLine)
	}

	if !hasDelim {
		l.flushStatic()
		l.done = true
		return nil
	}

	if len(l.staticAcc) == 0 {
		l.staticLine = l.line
	}
	l.staticAcc = append(l.staticAcc, delim)
	if delim == '\n' {
		l.flushNewline()
		l.line++
		l.atLineStart = true
	} else {
		l.atLineStart = false
	}
	return nil
}

// tryTimestamp runs the unified DFA, at a line start, over the buffered
// bytes ahead without stopping at delimiter boundaries, since a
// timestamp pattern routinely contains bytes (spaces, colons) that are
// also declared delimiters for variable segmentation. If the longest
// match found this way is won by a Timestamp tag, it is emitted
// directly; otherwise the lookahead is discarded and ordinary
// delimiter-bounded segmentation runs instead, so a variable pattern
// can never use this path to match across a delimiter.
//
// The lookahead window is capped at one buffer's worth of bytes
// (bufSize), keeping memory bounded; a timestamp pattern longer than
// that will not be detected, which in practice never matters since
// timestamps are short fixed-format fields.
func (l *Lexer) tryTimestamp() (bool, error) {
	if err := l.topUp(); err != nil {
		return false, err
	}
	window := l.buf[l.bufPos:l.bufLen]
	if len(window) == 0 {
		return false, nil
	}
	d := l.schema.DFA()
	m, ok := d.Simulate(d.Start, window)
	if !ok || m.Len == 0 {
		return false, nil
	}
	isTimestamp, id, name := l.schema.TagInfo(m.Tag)
	if !isTimestamp {
		return false, nil
	}
	l.flushStatic()
	l.queue = append(l.queue, token.Token{
		Kind:      token.KindTimestamp,
		Bytes:     append([]byte(nil), window[:m.Len]...),
		Line:      l.line,
		PatternID: id,
		Name:      name,
	})
	l.bufPos += m.Len
	l.atLineStart = false
	return true, nil
}

// classify runs the DFA over seg and reports whether it was a full
// match. Away from a line start, where a timestamp tag cannot win, it
// reports the highest-priority variable tag accepting the whole segment
// instead, if there is one.
func (l *Lexer) classify(seg []byte) (full bool, isTimestamp bool, id int, name string) {
	if len(seg) == 0 {
		return false, false, 0, ""
	}
	d := l.schema.DFA()
	m, ok := d.Simulate(d.Start, seg)
	if !ok || m.Len != len(seg) {
		return false, false, 0, ""
	}
	isTimestamp, id, name = l.schema.TagInfo(m.Tag)
	if isTimestamp && !l.atLineStart {
		s := d.Start
		for _, b := range seg {
			s, _ = d.Step(s, b)
		}
		for _, tag := range d.States[s].Accept {
			if ts, vid, vname := l.schema.TagInfo(tag); !ts {
				return true, false, vid, vname
			}
		}
	}
	return true, isTimestamp, id, name
}

func (l *Lexer) appendStatic(seg []byte, segLine int) {
	if len(seg) == 0 {
		return
	}
	if len(l.staticAcc) == 0 {
		l.staticLine = segLine
	}
	l.staticAcc = append(l.staticAcc, seg...)
}

func (l *Lexer) flushStatic() {
	if len(l.staticAcc) == 0 {
		return
	}
	l.queue = append(l.queue, token.Token{Kind: token.KindStaticText, Bytes: l.staticAcc, Line: l.staticLine, PatternID: token.NoPatternID})
	l.staticAcc = nil
}

func (l *Lexer) flushNewline() {
	l.queue = append(l.queue, token.Token{Kind: token.KindStaticTextWithNewline, Bytes: l.staticAcc, Line: l.staticLine, PatternID: token.NoPatternID})
	l.staticAcc = nil
}

// readSegment consumes bytes up to (and including) the next delimiter,
// returning the non-delimiter prefix as seg and the delimiter
// separately. hasDelim is false only at end-of-stream.
func (l *Lexer) readSegment() (seg []byte, delim byte, hasDelim bool, err error) {
	for {
		if err := l.ensureBuffered(); err != nil {
			return nil, 0, false, err
		}
		if l.bufPos >= l.bufLen {
			return seg, 0, false, nil
		}
		chunk := l.buf[l.bufPos:l.bufLen]
		idx, found := scanToDelimiter(chunk, l.fastDelims, l.schema.Delimiters)
		if found {
			seg = append(seg, chunk[:idx]...)
			delim = chunk[idx]
			l.bufPos += idx + 1
			return seg, delim, true, nil
		}
		seg = append(seg, chunk...)
		l.bufPos = l.bufLen
		if l.srcEOF {
			return seg, 0, false, nil
		}
	}
}

// ensureBuffered refills the buffer from scratch once it has been fully
// consumed. It does nothing if unconsumed bytes remain.
func (l *Lexer) ensureBuffered() error {
	if l.bufPos < l.bufLen || l.srcEOF {
		return nil
	}
	l.bufPos, l.bufLen = 0, 0
	return l.fillTo(len(l.buf))
}

// topUp compacts any unconsumed bytes to the front of the buffer, then
// fills it as far toward capacity as the source allows. Used by
// tryTimestamp, which needs the widest possible lookahead window.
func (l *Lexer) topUp() error {
	if l.bufPos > 0 {
		n := copy(l.buf, l.buf[l.bufPos:l.bufLen])
		l.bufLen = n
		l.bufPos = 0
	}
	return l.fillTo(len(l.buf))
}

func (l *Lexer) fillTo(target int) error {
	if l.srcEOF {
		return nil
	}
	for l.bufLen < target {
		b, err := l.src.ReadByte()
		if err == io.EOF {
			l.srcEOF = true
			return nil
		}
		if err != nil {
			return &IoError{Err: err}
		}
		l.buf[l.bufLen] = b
		l.bufLen++
	}
	return nil
}
