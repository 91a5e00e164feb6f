package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty", "", 0},
		{"ascii", "hello", 5},
		{"with ANSI color", "\x1b[31mhello\x1b[0m", 5},
		{"reset then char", "\x1b[m*", 1},
		{"background styled space", "\x1b[42m \x1b[49m", 1},
		{"wide CJK", "世界", 4},
		{"full-width asterisk", "\uff0a", 2},
		{"combining mark", "e\u0301", 1},
		{"mixed", "ab世\x1b[1mc\x1b[0m", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayWidth(tt.input))
		})
	}
}

func TestDisplayWidth_MalformedEscapeDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		DisplayWidth("\x1b[")
		DisplayWidth("abc\x1b[999")
		DisplayWidth("\x1b]8;;")
		DisplayWidth(string([]byte{0xff, 0xfe, 'a'}))
	})
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"no truncation needed", "hello", 10, "hello"},
		{"exact length", "hello", 5, "hello"},
		{"truncate", "hello world", 8, "hello wo"},
		{"zero width", "hello", 0, ""},
		{"negative width", "hello", -1, ""},
		{"empty string", "", 10, ""},
		{"unicode fits", "Hello世界", 9, "Hello世界"},
		{"with ANSI no truncation", "\x1b[31mhello\x1b[0m", 5, "\x1b[31mhello\x1b[0m"},
		{"width 1", "hello", 1, "h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.input, tt.width))
		})
	}
}

func TestTruncate_PreservesEscapes(t *testing.T) {
	got := Truncate("\x1b[31mhello world\x1b[0m", 5)

	assert.Equal(t, "hello", StripANSI(got))
	assert.Contains(t, got, "\x1b[31m")
	assert.LessOrEqual(t, DisplayWidth(got), 5)
}

func TestTruncate_WideRunes(t *testing.T) {
	got := Truncate("世界世界", 5)
	assert.LessOrEqual(t, DisplayWidth(got), 5)
	assert.Equal(t, "世界", got)
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"add padding", "hello", 10, "hello     "},
		{"no padding needed", "hello", 5, "hello"},
		{"already wider", "hello world", 5, "hello world"},
		{"empty string", "", 5, "     "},
		{"with ANSI", "\x1b[31mhi\x1b[0m", 5, "\x1b[31mhi\x1b[0m   "},
		{"wide runes", "世", 4, "世  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PadRight(tt.input, tt.width))
		})
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", []string{""}},
		{"single", "note", []string{"note"}},
		{"LF", "a\nb", []string{"a", "b"}},
		{"CRLF", "a\r\nb", []string{"a", "b"}},
		{"CR", "a\rb", []string{"a", "b"}},
		{"mixed", "a\nb\r\nc\rd", []string{"a", "b", "c", "d"}},
		{"trailing LF dropped", "a\nb\n", []string{"a", "b"}},
		{"trailing CRLF dropped", "a\r\n", []string{"a"}},
		{"only one trailing EOL dropped", "a\n\n", []string{"a", ""}},
		{"blank middle line", "a\n\nb", []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLines(tt.input))
		})
	}
}

func TestStripANSI(t *testing.T) {
	assert.Equal(t, "hello", StripANSI("\x1b[1;31mhello\x1b[0m"))
	assert.Equal(t, "plain", StripANSI("plain"))
	assert.Equal(t, "", StripANSI(""))
}

func TestRepeat(t *testing.T) {
	assert.Equal(t, "===", Repeat("=", 3))
	assert.Equal(t, "", Repeat("=", 0))
	assert.Equal(t, "", Repeat("=", -2))
}
