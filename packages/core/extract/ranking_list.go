package extract

import (
	"regexp"
	"strconv"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const (
	minListRank = 1
	maxListRank = 200
)

var (
	playerHref = regexp.MustCompile(`^(?:https?://(?:www\.)?tennisrecruiting\.net)?/player\.asp\?id=(\d+)$`)
	rankToken  = regexp.MustCompile(`^\d{1,3}$`)
)

// TennisRecruitingList extracts players from a tennisrecruiting list page.
//
// Player links and rank cells are collected independently in document order
// and paired by position: the i-th kept player takes the i-th rank token, or
// UnrankedSentinel when the rank tokens run out. Nothing before the first
// page heading is considered.
var TennisRecruitingList ListExtractor = ListExtractorFunc(ExtractRankingList)

func ExtractRankingList(raw string) []PlayerRecord {
	doc := parse(raw)

	nodes := doc.Find("h1, h2, h3, a[href], td")
	started := false

	var ranks []int
	type link struct{ id, name string }
	var links []link

	nodes.Each(func(_ int, s *goquery.Selection) {
		switch goquery.NodeName(s) {
		case "h1", "h2", "h3":
			started = true
		case "td":
			if !started || hasElementChild(s) {
				return
			}
			text := cleanText(s.Text())
			if !rankToken.MatchString(text) {
				return
			}
			n, _ := strconv.Atoi(text)
			if n >= minListRank && n <= maxListRank {
				ranks = append(ranks, n)
			}
		case "a":
			if !started {
				return
			}
			m := playerHref.FindStringSubmatch(s.AttrOr("href", ""))
			if m == nil {
				return
			}
			links = append(links, link{id: m[1], name: cleanText(s.Text())})
		}
	})

	players := make([]PlayerRecord, 0, len(links))
	rankIndex := 0
	for _, l := range links {
		if len(l.name) < 2 {
			continue
		}
		rank := UnrankedSentinel
		if rankIndex < len(ranks) {
			rank = ranks[rankIndex]
		}
		rankIndex++
		players = append(players, PlayerRecord{
			ExternalID: l.id,
			Name:       l.name,
			Rank:       rank,
		})
	}
	return players
}

func hasElementChild(s *goquery.Selection) bool {
	for _, n := range s.Nodes {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode {
				return true
			}
		}
	}
	return false
}
