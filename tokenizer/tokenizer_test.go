package tokenizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{"hello there, alien.", []string{"hello", " ", "there", ",", " ", "alien", "."}},
		{"hi.", []string{"hi", "."}},
		{"a  b", []string{"a", " ", " ", "b"}},
		{"don't", []string{"don", "'", "t"}},
		{"", nil},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Split(tt.text), "text %q", tt.text)
	}
}

func TestIsWord(t *testing.T) {
	assert.True(t, IsWord("hello"))
	assert.True(t, IsWord("123"))
	assert.True(t, IsWord("_x"))
	assert.False(t, IsWord(" "))
	assert.False(t, IsWord("."))
	assert.False(t, IsWord(""))
}

func TestSplitRoundTrip(t *testing.T) {
	texts := []string{
		"hello there, alien.",
		"this , is  a test.",
		"one\ttwo\nthree",
		"!!?.,words 123 mixed_case",
	}
	for _, text := range texts {
		assert.Equal(t, text, strings.Join(Split(text), ""), "round trip %q", text)
	}
}
