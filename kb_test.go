package console

import (
	"io"
	"testing"
)

// scriptedKeys feeds decodeKey from a fixed byte sequence. probeByte
// reports no data once the script is exhausted, which is how a lone
// escape press looks on a real terminal.
type scriptedKeys struct {
	data []byte
	pos  int
}

func (s *scriptedKeys) readByte() (byte, error) {
	if s.pos >= len(s.data) {
		return 0, io.EOF
	}
	b := s.data[s.pos]
	s.pos++
	return b, nil
}

func (s *scriptedKeys) probeByte() (byte, bool, error) {
	if s.pos >= len(s.data) {
		return 0, false, nil
	}
	b := s.data[s.pos]
	s.pos++
	return b, true, nil
}

func TestDecodeKey(t *testing.T) {
	tests := []struct {
		input    string
		expected Key
	}{
		{"a", Key{Code: KeyChar, Char: 'a'}},
		{" ", Key{Code: KeyChar, Char: ' '}},
		{"\x03", Key{Code: KeyCtrlC}},
		{"\r", Key{Code: KeyEnter}},
		{"\n", Key{Code: KeyEnter}},
		{"\x7f", Key{Code: KeyBackspace}},
		{"\x08", Key{Code: KeyBackspace}},
		{"\t", Key{Code: KeyTab}},
		{"\x01", Key{Code: KeyHome}},
		{"\x05", Key{Code: KeyEnd}},
		{"\x1b", Key{Code: KeyEscape}},
		{"\x1b[A", Key{Code: KeyArrowUp}},
		{"\x1b[B", Key{Code: KeyArrowDown}},
		{"\x1b[C", Key{Code: KeyArrowRight}},
		{"\x1b[D", Key{Code: KeyArrowLeft}},
		{"\x1b[H", Key{Code: KeyHome}},
		{"\x1b[F", Key{Code: KeyEnd}},
		{"\x1b[Z", Key{Code: KeyBackTab}},
		{"\x1b[1~", Key{Code: KeyHome}},
		{"\x1b[2~", Key{Code: KeyInsert}},
		{"\x1b[3~", Key{Code: KeyDelete}},
		{"\x1b[4~", Key{Code: KeyEnd}},
		{"\x1b[5~", Key{Code: KeyPageUp}},
		{"\x1b[6~", Key{Code: KeyPageDown}},
		{"\x1b[7~", Key{Code: KeyHome}},
		{"\x1b[8~", Key{Code: KeyEnd}},
		{"é", Key{Code: KeyChar, Char: 'é'}},
		{"日", Key{Code: KeyChar, Char: '日'}},
		{"🐶", Key{Code: KeyChar, Char: '🐶'}},
	}
	for _, tt := range tests {
		got, err := decodeKey(&scriptedKeys{data: []byte(tt.input)})
		if err != nil {
			t.Fatalf("decodeKey(%q): %v", tt.input, err)
		}
		if got.Code != tt.expected.Code || got.Char != tt.expected.Char {
			t.Errorf("decodeKey(%q) = %+v, want %+v", tt.input, got, tt.expected)
		}
	}
}

func TestDecodeKeyUnknownSequences(t *testing.T) {
	tests := []struct {
		input string
		seq   string
	}{
		{"\x1bO", "O"},
		{"\x1b[", "["},
		{"\x1b[9", "[9"},
		{"\x1b[9x", "[9x"},
	}
	for _, tt := range tests {
		got, err := decodeKey(&scriptedKeys{data: []byte(tt.input)})
		if err != nil {
			t.Fatalf("decodeKey(%q): %v", tt.input, err)
		}
		if got.Code != KeyUnknownEscSeq {
			t.Errorf("decodeKey(%q).Code = %v, want KeyUnknownEscSeq", tt.input, got.Code)
			continue
		}
		if string(got.Seq) != tt.seq {
			t.Errorf("decodeKey(%q).Seq = %q, want %q", tt.input, string(got.Seq), tt.seq)
		}
	}
}
