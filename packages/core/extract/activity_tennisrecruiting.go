package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var validRounds = map[string]bool{
	"R1": true, "R2": true, "R3": true, "R4": true, "R5": true,
	"R64": true, "R32": true, "R16": true,
	"QF": true, "SF": true, "F": true, "W": true, "RR": true,
}

var (
	roundToken   = regexp.MustCompile(`(?i)^[A-Z0-9]{1,5}$`)
	nameWithRank = regexp.MustCompile(`^(.+?)\s*\((\d+)\)\s*$`)
	tennisScore  = regexp.MustCompile(`\b(\d-\d(?:\(\d+\))?(?:\s+\d-\d(?:\(\d+\))?)+)`)
	hasLetter    = regexp.MustCompile(`\pL`)
)

// TennisRecruitingActivity extracts matches from a tennisrecruiting activity
// page. Rows group under the last tournament header seen; a row is kept only
// when its round is whitelisted and an opponent sits in the win or the loss
// column, which decides the result.
var TennisRecruitingActivity ActivityExtractor = ActivityExtractorFunc(ExtractTennisRecruitingActivity)

func ExtractTennisRecruitingActivity(raw string) []MatchRecord {
	doc := parse(raw)
	var matches []MatchRecord
	tournament := ""

	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		if header := row.Find(`th[class*="doublewide"]`).First(); header.Length() > 0 {
			tournament = cleanText(header.Text())
			return
		}
		if tournament == "" {
			return
		}

		round, ok := rowRound(row)
		if !ok || !validRounds[round] {
			return
		}

		result, opponent := "", ""
		if name := positionOpponent(row.Find("td.win")); name != "" {
			result, opponent = "W", name
		} else if name := positionOpponent(row.Find("td.loss")); name != "" {
			result, opponent = "L", name
		}
		if result == "" {
			return
		}

		name, ranking := SplitOpponent(opponent)
		matches = append(matches, MatchRecord{
			TournamentName:  tournament,
			Round:           round,
			OpponentName:    name,
			OpponentRanking: ranking,
			Score:           rowScore(row),
			Result:          result,
		})
	})
	return matches
}

// rowRound returns the upper-cased round code from the row's first "c" cell
// holding a short alphanumeric token.
func rowRound(row *goquery.Selection) (string, bool) {
	var round string
	row.Find("td.c").EachWithBreak(func(_ int, td *goquery.Selection) bool {
		text := strings.TrimSpace(td.Text())
		if roundToken.MatchString(text) {
			round = strings.ToUpper(text)
			return false
		}
		return true
	})
	return round, round != ""
}

// positionOpponent reads the opponent named in a win or loss cell: the
// player link when there is one, otherwise the cell's own text if it reads
// as a name.
func positionOpponent(cells *goquery.Selection) string {
	var name string
	cells.EachWithBreak(func(_ int, td *goquery.Selection) bool {
		link := td.Find(`a[href*="player"], a[href*="profile"]`).First()
		if link.Length() > 0 {
			name = cleanText(link.Text())
		}
		if name == "" {
			if text := cleanText(td.Text()); looksLikeName(text) {
				name = text
			}
		}
		return name == ""
	})
	return name
}

// looksLikeName rejects scores and text without letters.
func looksLikeName(text string) bool {
	return hasLetter.MatchString(text) && !tennisScore.MatchString(text)
}

func rowScore(row *goquery.Selection) string {
	var score string
	row.Find("td").EachWithBreak(func(_ int, td *goquery.Selection) bool {
		if m := tennisScore.FindStringSubmatch(cleanText(td.Text())); m != nil {
			score = strings.TrimSpace(m[1])
			return false
		}
		return true
	})
	return score
}

// SplitOpponent splits "Name (123)" into the plain name and its ranking.
func SplitOpponent(text string) (string, *int) {
	text = strings.TrimSpace(text)
	m := nameWithRank.FindStringSubmatch(text)
	if m == nil {
		return text, nil
	}
	n, err := strconv.Atoi(m[2])
	if err != nil {
		return strings.TrimSpace(m[1]), nil
	}
	return strings.TrimSpace(m[1]), &n
}
