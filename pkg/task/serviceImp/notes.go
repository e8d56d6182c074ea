package serviceImp

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	blankLines = regexp.MustCompile(`\n{3,}`)
	spaceRun   = regexp.MustCompile(`[ \t]+`)
)

// plainNotes reduces rich-text notes from the editor to plain text, one line per block.
func plainNotes(s string) string {
	s = strings.TrimSpace(strings.ReplaceAll(s, "\r", ""))
	if !strings.Contains(s, "<") {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	doc.Find("script,style").Remove()

	var parts []string
	blocks := doc.Find("p,li,h1,h2,h3,h4,blockquote,pre")
	if blocks.Length() == 0 {
		parts = append(parts, doc.Text())
	}
	blocks.Each(func(_ int, sel *goquery.Selection) {
		if t := strings.TrimSpace(sel.Text()); t != "" {
			parts = append(parts, t)
		}
	})
	text := spaceRun.ReplaceAllString(strings.Join(parts, "\n"), " ")
	return strings.TrimSpace(blankLines.ReplaceAllString(text, "\n\n"))
}
