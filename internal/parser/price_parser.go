package parser

import (
	"regexp"
	"strconv"
	"strings"

	"crustacean/tracker/internal/domain"

	log "github.com/sirupsen/logrus"
)

// grammar is one recognized shape of a price line. Grammars are tried in
// order and the first match consumes the line.
type grammar struct {
	name  string
	regex *regexp.Regexp
}

// Item names permit Hangul, Latin letters, slash, parentheses, digits and
// hyphen. Prices carry comma thousands separators; the gram grammar also
// tolerates a stray decimal point, stripped before parsing.
var grammars = []grammar{
	{
		name:  "kg-weight",
		regex: regexp.MustCompile(`(?P<item>[가-힣a-zA-Z/()\d\-]+)\s*(?P<unit>kg)\s*(?P<price>[\d,]+)원`),
	},
	{
		name:  "gram-weight",
		regex: regexp.MustCompile(`(?P<item>[가-힣a-zA-Z/()\d\-]+)\s*(?P<unit>\d+g)\s*[-:]?\s*(?P<price>[\d,.]+)원`),
	},
}

// Parse extracts price entries from a block of posting text, one entry at
// most per line, in order of appearance. Lines matching no grammar and
// prices that fail to parse are skipped.
func Parse(text string) []domain.PriceEntry {
	entries := make([]domain.PriceEntry, 0)

	for _, line := range strings.Split(text, "\n") {
		for _, g := range grammars {
			matches := g.regex.FindStringSubmatch(line)
			if matches == nil {
				continue
			}

			item := strings.TrimSpace(matches[g.regex.SubexpIndex("item")])
			unit := matches[g.regex.SubexpIndex("unit")]
			priceStr := matches[g.regex.SubexpIndex("price")]

			price, err := parsePrice(priceStr)
			if err != nil {
				log.Debugf("Dropping %s match %q: unparseable price %q", g.name, item, priceStr)
				break
			}

			entries = append(entries, domain.PriceEntry{
				Item:  item,
				Unit:  unit,
				Price: price,
			})
			break
		}
	}

	return entries
}

func parsePrice(s string) (int, error) {
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, ".", "")
	return strconv.Atoi(s)
}
