package token_test

import (
	"testing"

	"github.com/db47h/splex/token"
)

func TestFile_Position(t *testing.T) {
	f := token.NewFile("f")
	// "ab\ncd\nef" -- lines start at 0, 3, 6
	f.AddLine(3, 2)
	f.AddLine(6, 3)

	tests := []struct {
		pos  token.Pos
		want token.Position
	}{
		{0, token.Position{Filename: "f", Line: 1, Column: 1}},
		{2, token.Position{Filename: "f", Line: 1, Column: 3}},
		{3, token.Position{Filename: "f", Line: 2, Column: 1}},
		{7, token.Position{Filename: "f", Line: 3, Column: 2}},
	}
	for _, tt := range tests {
		if got := f.Position(tt.pos); got != tt.want {
			t.Errorf("Position(%d) = %+v, want %+v", tt.pos, got, tt.want)
		}
	}
}

func TestFile_AddLine_OutOfOrderPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	f := token.NewFile("f")
	f.AddLine(5, 3) // skips line 2
}
