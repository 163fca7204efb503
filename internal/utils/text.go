/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Truncate returns a truncated string with "..." if it exceeds maxLen.
// This function is Unicode-safe, counting runes instead of bytes.
func Truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen < 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

var titleCaser = cases.Title(language.English)

// HumanizeEnum turns an enum value such as "weight-loss" or "non-vegetarian"
// into display text ("Weight Loss", "Non Vegetarian").
func HumanizeEnum(v string) string {
	return titleCaser.String(strings.ReplaceAll(v, "-", " "))
}

// WrapWords splits text into lines no longer than width runes, breaking on spaces.
// A single word longer than width gets its own line.
func WrapWords(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len([]rune(line))+1+len([]rune(w)) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}
