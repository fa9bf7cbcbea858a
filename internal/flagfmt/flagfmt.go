// Package flagfmt renders flags from a template.
//
// A template may contain the markers {prefix}, {token} and {suffix}. Every
// occurrence is replaced in a single pass, so values are inserted verbatim and
// never scanned for markers again. Anything else, stray braces included, is
// copied unchanged.
package flagfmt

import "strings"

// Template markers.
const (
	MarkerPrefix = "{prefix}"
	MarkerToken  = "{token}"
	MarkerSuffix = "{suffix}"
)

const (
	// DefaultTemplate wraps the token in literal braces: CTF{a1b2c3d4}.
	DefaultTemplate = "{prefix}{{token}}{suffix}"

	// BareTemplate joins prefix, token and suffix without braces.
	BareTemplate = "{prefix}{token}{suffix}"
)

// Format substitutes prefix, token and suffix into template.
func Format(template, prefix, token, suffix string) string {
	return strings.NewReplacer(
		MarkerPrefix, prefix,
		MarkerToken, token,
		MarkerSuffix, suffix,
	).Replace(template)
}

// ResolveTemplate returns BareTemplate if noBraces is set and template is
// still the default. Custom templates are never touched.
func ResolveTemplate(template string, noBraces bool) string {
	if noBraces && template == DefaultTemplate {
		return BareTemplate
	}

	return template
}

// HasToken reports whether template contains the {token} marker.
// Without it every flag of a batch is identical.
func HasToken(template string) bool {
	return strings.Contains(template, MarkerToken)
}
