package parser

import "strings"

// Fields splits a report line on runs of whitespace. Blank lines yield no fields.
func Fields(line string) []string {
	return strings.Fields(line)
}
