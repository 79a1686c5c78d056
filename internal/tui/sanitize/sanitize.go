// Package sanitize makes user supplied query text safe to echo in the TUI
// status bar. Terminal escape sequences are removed and the remaining ASCII
// control characters are shown by their mnemonic, e.g. <ESC>.
package sanitize

import (
	"regexp"
	"strings"

	"github.com/VoxDroid/asciiref/internal/charset"
)

// Precompiled regexps used by Query.
var (
	oscRe = regexp.MustCompile(`\x1b\][^\x07]*\x07`)
	csiRe = regexp.MustCompile(`\x1b\[[0-9;?]*[A-Za-z]`)
)

// Query removes OSC and CSI sequences from in and replaces every other
// control character with its bracketed mnemonic.
func Query(in string) string {
	out := oscRe.ReplaceAllString(in, "")
	out = csiRe.ReplaceAllString(out, "")

	var b strings.Builder
	for _, r := range out {
		if r < charset.Size && charset.IsControl(int(r)) {
			b.WriteString("<" + charset.Name(int(r)) + ">")
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
