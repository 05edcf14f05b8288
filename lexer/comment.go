package lexer

import "github.com/db47h/splex/token"

// commentSpan is one comment's range within a front-comment block still
// being assembled (spec.md §4.6).
type commentSpan struct {
	r token.Range
}

// collectTailComments is entered when a comment is seen immediately after
// a non-comment token already emitted on the current line (spec.md §4.6).
// The first comment has already been scanned into l.tok.Range.
func (l *Lexer) collectTailComments() *Token {
	block := l.tok.Range
	for {
		kind := l.scanOnce()
		if kind == token.COMMENT {
			if l.tok.Range.Start.Line <= block.End.Line+1 {
				block.End = l.tok.Range.End
				continue
			}
			// Gap too large: this comment starts its own, separate block.
			// Commit what we have and reprocess the new comment as the
			// start of a fresh (front or tail) block.
			l.pp.AddComment(CommentTail, block)
			if l.lexedTokensOnLine {
				return l.collectTailComments()
			}
			return l.collectFrontComments()
		}
		l.updateLineFlag(kind)
		l.pp.AddComment(CommentTail, block)
		return &l.tok
	}
}

// collectFrontComments is entered when a comment is seen with no
// non-comment token yet emitted on the current line (spec.md §4.6).
func (l *Lexer) collectFrontComments() *Token {
	var spans []commentSpan
	spans = append(spans, commentSpan{l.tok.Range})
	blockStartLine := l.tok.Range.Start.Line

	for {
		lastEnd := spans[len(spans)-1].r.End
		kind := l.scanOnce()
		if kind == token.COMMENT {
			if l.tok.Range.Start.Line <= lastEnd.Line+1 {
				spans = append(spans, commentSpan{l.tok.Range})
				continue
			}
			// Gap too large: commit what we have as a front block (if it
			// survives the inline-garbage check below, using this new
			// comment's start line as "the following token"), then
			// restart collection from the new comment.
			l.commitFrontSpans(spans, l.tok.Range.Start.Line, blockStartLine)
			spans = spans[:0]
			spans = append(spans, commentSpan{l.tok.Range})
			blockStartLine = l.tok.Range.Start.Line
			continue
		}
		l.updateLineFlag(kind)
		l.commitFrontSpans(spans, l.tok.Range.Start.Line, blockStartLine)
		return &l.tok
	}
}

// commitFrontSpans applies the front-block commit rule: discard entirely
// if the block and the following token start on the same line (inline
// garbage); otherwise commit the prefix of spans whose end line is
// strictly less than the following token's start line.
func (l *Lexer) commitFrontSpans(spans []commentSpan, nextStartLine, blockStartLine int) {
	if nextStartLine == blockStartLine {
		return
	}
	cut := -1
	for i, s := range spans {
		if s.r.End.Line < nextStartLine {
			cut = i
		}
	}
	if cut < 0 {
		return
	}
	block := token.Range{Start: spans[0].r.Start, End: spans[cut].r.End}
	l.pp.AddComment(CommentFront, block)
}
