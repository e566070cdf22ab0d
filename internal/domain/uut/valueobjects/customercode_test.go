package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveCustomerCode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"two words", "John Smith", "JS"},
		{"three words uses first and last", "Bharat Heavy Electricals", "BE"},
		{"single word uses first two letters", "Honeywell", "HO"},
		{"lowercase input", "acme corp", "AC"},
		{"extra whitespace", "  Tata   Motors  ", "TM"},
		{"single letter word", "Q", "QX"},
		{"accented letters", "Élodie Müller", "EM"},
		{"leading digits", "3M Company", "XC"},
		{"digits only", "42", "XX"},
		{"empty", "", "XX"},
		{"whitespace only", "   ", "XX"},
		{"punctuation word", "@#!", "XX"},
		{"hyphenated", "Rolls-Royce Holdings", "RH"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code := DeriveCustomerCode(tt.input)
			assert.Equal(t, tt.expected, code.String())
		})
	}
}

func TestDeriveCustomerCode_NeverFails(t *testing.T) {
	// Derivation is total; whatever the name looks like the result is
	// always a valid two letter code.
	inputs := []string{"", " ", "русский текст", "日本電気", "a", "ß", "----", "O'Brien & Sons"}
	for _, in := range inputs {
		code := DeriveCustomerCode(in)
		_, err := NewCustomerCode(code.String())
		assert.NoError(t, err, "input %q produced %q", in, code)
	}
}

func TestNewCustomerCode(t *testing.T) {
	code, err := NewCustomerCode("JS")
	require.NoError(t, err)
	assert.Equal(t, "JS", code.String())

	for _, invalid := range []string{"", "J", "JSX", "j s", "1S", "js"} {
		_, err := NewCustomerCode(invalid)
		assert.Error(t, err, "input %q", invalid)
	}
}
