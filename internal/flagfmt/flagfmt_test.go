package flagfmt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		template string
		prefix   string
		token    string
		suffix   string
		want     string
	}{
		{"default template", DefaultTemplate, "CTF", "a1b2c3d4", "", "CTF{a1b2c3d4}"},
		{"default template with suffix", DefaultTemplate, "CTF", "a1b2", "_x", "CTF{a1b2}_x"},
		{"bare template", BareTemplate, "CTF", "a1b2", "!", "CTFa1b2!"},
		{"custom separator", "{prefix}-{token}", "X", "abcd1234", "", "X-abcd1234"},
		{"repeated markers", "{token}.{token}", "", "ab", "", "ab.ab"},
		{"no markers", "static", "P", "T", "S", "static"},
		{"unknown marker passes through", "{prefix}{flag}{token}", "P", "T", "", "P{flag}T"},
		{"stray braces", "}{prefix}{{token}", "P", "T", "", "}P{T"},
		{"empty template", "", "P", "T", "S", ""},
		{"values are not rescanned", "{prefix}{token}", "{token}", "T", "", "{token}T"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.template, tt.prefix, tt.token, tt.suffix))
		})
	}
}

func TestResolveTemplate(t *testing.T) {
	assert.Equal(t, BareTemplate, ResolveTemplate(DefaultTemplate, true))
	assert.Equal(t, DefaultTemplate, ResolveTemplate(DefaultTemplate, false))
	assert.Equal(t, "{prefix}[{token}]", ResolveTemplate("{prefix}[{token}]", true))
}

func TestNoBracesDropsTemplateBraces(t *testing.T) {
	flag := Format(ResolveTemplate(DefaultTemplate, true), "CTF", "a1b2c3d4", "")

	assert.Equal(t, "CTFa1b2c3d4", flag)
	assert.False(t, strings.ContainsAny(flag, "{}"))
}

func TestHasToken(t *testing.T) {
	assert.True(t, HasToken(DefaultTemplate))
	assert.True(t, HasToken("{token}"))
	assert.False(t, HasToken("{prefix}{suffix}"))
}
