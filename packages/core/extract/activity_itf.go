package extract

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	itfWidget         = "pprofile-activity-widget__"
	unknownTournament = "Unknown Tournament"
)

var (
	countryCode = regexp.MustCompile(`^[A-Z]{3}$`)
	flagClass   = regexp.MustCompile(`itf-flags--([A-Za-z]{3})\b`)
)

// ITFActivity extracts matches from an ITF player activity page.
//
// Each field is collected as its own ordered sequence across the whole
// document and records are rebuilt by index: the i-th round pairs with the
// i-th win/loss marker, the i-th opponent name and so on. A missing entry in
// one sequence shifts every later pairing; this is accepted as is.
var ITFActivity ActivityExtractor = ActivityExtractorFunc(ExtractITFActivity)

func ExtractITFActivity(raw string) []MatchRecord {
	doc := parse(raw)

	rounds := classTexts(doc, itfWidget+"round-label--non-mobile")
	winLosses := classTexts(doc, itfWidget+"win-loss")
	grades := classTexts(doc, itfWidget+"tournament-type")
	surfaces := classTexts(doc, itfWidget+"surface")
	lastNames := classTexts(doc, itfWidget+"last-name")
	firstNames := classTexts(doc, itfWidget+"first-name")
	scores := classTexts(doc, itfWidget+"score")
	titles := classTexts(doc, "pprofile-activity-tournament__title")

	var nationalities []string
	doc.Find(`[class*="itf-flags"][title]`).Each(func(_ int, s *goquery.Selection) {
		nationalities = append(nationalities, flagCode(s))
	})

	var opponentIDs []string
	doc.Find(`[href*="player2Id="]`).Each(func(_ int, s *goquery.Selection) {
		if id := player2ID(s.AttrOr("href", "")); id != "" {
			opponentIDs = append(opponentIDs, id)
		}
	})

	var matches []MatchRecord
	for i := range rounds {
		wl := strings.ToUpper(at(winLosses, i))
		if wl != "W" && wl != "L" {
			continue
		}

		opponent := joinNonEmpty(at(firstNames, i), at(lastNames, i))
		if opponent == "" {
			continue
		}

		tournament := at(titles, i)
		if tournament == "" {
			tournament = unknownTournament
		}

		matches = append(matches, MatchRecord{
			TournamentName:      tournament,
			TournamentGrade:     at(grades, i),
			Surface:             at(surfaces, i),
			Round:               rounds[i],
			Result:              wl,
			OpponentName:        opponent,
			OpponentNationality: at(nationalities, i),
			OpponentITFID:       at(opponentIDs, i),
			Score:               at(scores, i),
		})
	}
	return matches
}

// flagCode returns the three-letter country code of a flag element, from
// its title or its itf-flags--XXX class, or "" when neither holds one.
func flagCode(s *goquery.Selection) string {
	if title := strings.ToUpper(strings.TrimSpace(s.AttrOr("title", ""))); countryCode.MatchString(title) {
		return title
	}
	if m := flagClass.FindStringSubmatch(s.AttrOr("class", "")); m != nil {
		return strings.ToUpper(m[1])
	}
	return ""
}

func classTexts(doc *goquery.Document, class string) []string {
	var out []string
	doc.Find(`[class*="` + class + `"]`).Each(func(_ int, s *goquery.Selection) {
		out = append(out, cleanText(s.Text()))
	})
	return out
}

func player2ID(href string) string {
	_, query, ok := strings.Cut(href, "?")
	if !ok {
		return ""
	}
	values, err := url.ParseQuery(query)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(values.Get("player2Id"))
}

func at(values []string, i int) string {
	if i < len(values) {
		return values[i]
	}
	return ""
}

func joinNonEmpty(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.TrimSpace(strings.Join(kept, " "))
}
