package token

// Buffer is an immutable byte sequence with an optional originating file
// path. A Lexer holds a non-owning reference to a Buffer plus its own
// cursor over it; nothing in this package mutates Data.
type Buffer struct {
	Path string
	Data []byte
}

// NewBuffer wraps data as a Buffer for path. data is not copied; callers
// must not mutate it for the lifetime of any Lexer built on top of it.
func NewBuffer(path string, data []byte) *Buffer {
	return &Buffer{Path: path, Data: data}
}

// Len returns the number of bytes in the buffer.
func (b *Buffer) Len() int {
	return len(b.Data)
}
