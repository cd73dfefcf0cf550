package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// rankingRule extracts a candidate ranking from a profile page. It returns
// the raw digits of its first match.
type rankingRule struct {
	name  string
	match func(doc *goquery.Document, raw string) (string, bool)
}

var (
	nationPhrase   = regexp.MustCompile(`(?i)Ranked (\d+)(?:st|nd|rd|th) in the nation`)
	digitsOnly     = regexp.MustCompile(`^\d+$`)
	nationalLabel  = regexp.MustCompile(`(?i)^National\s+Ranking`)
	hashNumber     = regexp.MustCompile(`^#?(\d+)`)
	rankingAttr    = regexp.MustCompile(`(?i)"ranking"[^>]*>\s*#?(\d+)`)
	looseRankToken = regexp.MustCompile(`(?i)rank(?:ing)?[^<]{0,40}#(\d+)`)
)

// Most specific first. Looser rules misfire more often and only run when the
// structured ones found nothing plausible.
var rankingRules = []rankingRule{
	{name: "twitter-description", match: matchTwitterDescription},
	{name: "list-link", match: matchListLink},
	{name: "national-ranking-cell", match: matchNationalRankingCell},
	{name: "ranking-attribute", match: regexRule(rankingAttr)},
	{name: "loose-rank-hash", match: regexRule(looseRankToken)},
}

// ExtractRanking returns the national ranking on a tennisrecruiting player
// page. The first rule yielding a plausible value (0 < n < 10000) wins;
// ok is false when no rule does.
func ExtractRanking(raw string) (int, bool) {
	n, _, ok := ExtractRankingWithRule(raw)
	return n, ok
}

// ExtractRankingWithRule is ExtractRanking that also reports which rule
// matched, for pattern maintenance.
func ExtractRankingWithRule(raw string) (int, string, bool) {
	doc := parse(raw)
	for _, rule := range rankingRules {
		digits, ok := rule.match(doc, raw)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(digits)
		if err != nil {
			continue
		}
		if n > 0 && n < 10000 {
			return n, rule.name, true
		}
	}
	return 0, "", false
}

func matchTwitterDescription(doc *goquery.Document, _ string) (string, bool) {
	var out string
	doc.Find("meta").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if !strings.EqualFold(s.AttrOr("name", ""), "twitter:description") {
			return true
		}
		m := nationPhrase.FindStringSubmatch(s.AttrOr("content", ""))
		if m == nil {
			return true
		}
		out = m[1]
		return false
	})
	return out, out != ""
}

func matchListLink(doc *goquery.Document, _ string) (string, bool) {
	var out string
	doc.Find(`a[href*="/list.asp"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.TrimSpace(s.Text())
		if digitsOnly.MatchString(text) {
			out = text
			return false
		}
		return true
	})
	return out, out != ""
}

// matchNationalRankingCell finds a "National Ranking" label cell and reads the
// value cell right after it.
func matchNationalRankingCell(doc *goquery.Document, _ string) (string, bool) {
	var out string
	doc.Find("td").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if !nationalLabel.MatchString(cleanText(s.Text())) {
			return true
		}
		next := s.NextFiltered("td")
		if next.Length() == 0 {
			return true
		}
		m := hashNumber.FindStringSubmatch(cleanText(next.Text()))
		if m == nil {
			return true
		}
		out = m[1]
		return false
	})
	return out, out != ""
}

func regexRule(re *regexp.Regexp) func(*goquery.Document, string) (string, bool) {
	return func(_ *goquery.Document, raw string) (string, bool) {
		m := re.FindStringSubmatch(raw)
		if m == nil {
			return "", false
		}
		return m[1], true
	}
}
