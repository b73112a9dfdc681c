package render

import "regexp"

// ansiPattern matches ANSI escape sequences: CSI sequences (colors, cursor
// movement) and the two-byte escapes some kernels emit in tracebacks.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]|\x1b[@-_]`)

// StripANSI removes ANSI escape sequences from s. IPython tracebacks are
// stored with terminal color codes that would otherwise show up literally
// in the rendered document.
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}
