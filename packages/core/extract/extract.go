// Package extract turns raw markup from the scraped ranking sites into
// ordered records. Every extractor is pure and never fails: markup it does
// not recognize yields an empty or partial result.
package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// UnrankedSentinel is assigned to list players left without a rank token.
const UnrankedSentinel = 999

// PlayerRecord is one player seen on an external ranking source during a
// single sync cycle. It is never persisted as-is.
type PlayerRecord struct {
	ExternalID   string `json:"external_id"`
	Name         string `json:"name"`
	Rank         int    `json:"rank"`
	Nationality  string `json:"nationality,omitempty"`
	BirthYear    *int   `json:"birth_year,omitempty"`
	ClassYear    *int   `json:"class_year,omitempty"`
	Location     string `json:"location,omitempty"`
	RankMovement *int   `json:"rank_movement,omitempty"` // as reported by the source
}

// MatchRecord is one match row from a player activity page.
type MatchRecord struct {
	TournamentName      string `json:"tournament_name"`
	TournamentGrade     string `json:"tournament_grade,omitempty"`
	Surface             string `json:"surface,omitempty"`
	Round               string `json:"round"`
	OpponentName        string `json:"opponent_name"`
	OpponentRanking     *int   `json:"opponent_ranking,omitempty"`
	OpponentNationality string `json:"opponent_nationality,omitempty"`
	OpponentITFID       string `json:"opponent_itf_id,omitempty"`
	Score               string `json:"score"`
	Result              string `json:"result"`
}

// ListExtractor reads a paginated ranking list page.
type ListExtractor interface {
	ExtractPlayers(html string) []PlayerRecord
}

// ActivityExtractor reads a per-player match history page.
type ActivityExtractor interface {
	ExtractMatches(html string) []MatchRecord
}

// ListExtractorFunc adapts a plain function to ListExtractor.
type ListExtractorFunc func(html string) []PlayerRecord

func (f ListExtractorFunc) ExtractPlayers(html string) []PlayerRecord { return f(html) }

// ActivityExtractorFunc adapts a plain function to ActivityExtractor.
type ActivityExtractorFunc func(html string) []MatchRecord

func (f ActivityExtractorFunc) ExtractMatches(html string) []MatchRecord { return f(html) }

var whitespaceRun = regexp.MustCompile(`\s+`)

// parse never returns nil; unreadable input becomes an empty document.
func parse(html string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		doc, _ = goquery.NewDocumentFromReader(strings.NewReader(""))
	}
	return doc
}

// cleanText collapses inner whitespace and trims.
func cleanText(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}
