package output

import (
	"strings"
	"unicode/utf8"

	"github.com/vsinha/restock/pkg/domain/entities"
)

// FormatPhone renders a ten digit phone as "(NNN) NNN NNNN". Other lengths are
// sliced the same way, clamped to the string, and never panic.
func FormatPhone(phone entities.Phone) string {
	r := []rune(string(phone))
	n := len(r)

	return "(" + runeSlice(r, 0, 3) + ") " + runeSlice(r, 3, n-4) + " " + runeSlice(r, 6, n)
}

func runeSlice(r []rune, start, end int) string {
	start = min(max(start, 0), len(r))
	end = min(max(end, 0), len(r))
	if end <= start {
		return ""
	}
	return string(r[start:end])
}

// center pads s to width, putting the odd space on the right
func center(s string, width int) string {
	pad := width - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

func alignRight(s string, width int) string {
	pad := width - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}

func truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	return string([]rune(s)[:maxLen])
}
