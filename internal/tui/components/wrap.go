package components

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// sanitize removes escape sequences and other non-printable runes so that
// phrase text can never drive the terminal. Whitespace becomes a space.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsSpace(r):
			return ' '
		case !unicode.IsPrint(r):
			return -1
		}
		return r
	}, ansi.Strip(s))
}

// wrapWords greedily packs the words of s into lines no wider than width
// display cells. Words wider than a line are split across lines, and every
// piece but the last ends with a hyphen.
func wrapWords(s string, width int) []string {
	if width < 1 {
		width = 1
	}

	var (
		lines []string
		cur   strings.Builder
		curW  int
	)
	flush := func() {
		if curW > 0 {
			lines = append(lines, cur.String())
			cur.Reset()
			curW = 0
		}
	}

	for _, word := range strings.Fields(s) {
		w := runewidth.StringWidth(word)
		for w > width {
			flush()
			mark := "-"
			if width < 2 {
				mark = ""
			}
			head := runewidth.Truncate(word, width-len(mark), "")
			if head == "" {
				// A single rune wider than the line; emit it as is.
				_, size := utf8.DecodeRuneInString(word)
				head = word[:size]
				mark = ""
			}
			lines = append(lines, head+mark)
			word = word[len(head):]
			w = runewidth.StringWidth(word)
		}
		if w == 0 {
			continue
		}
		if curW > 0 && curW+1+w > width {
			flush()
		}
		if curW > 0 {
			cur.WriteByte(' ')
			curW++
		}
		cur.WriteString(word)
		curW += w
	}
	flush()

	return lines
}
