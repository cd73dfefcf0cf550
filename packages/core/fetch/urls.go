package fetch

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

const (
	TennisRecruitingBase = "https://www.tennisrecruiting.net"
	ITFBase              = "https://www.itftennis.com"
)

// ITFRankingsURL is the junior boys ranking API, first 500 entries.
const ITFRankingsURL = ITFBase + "/tennis/api/PlayerRankApi/GetPlayerRankings?circuitCode=JT&playerTypeCode=B&ageCategoryCode=&juniorRankingType=itf&take=500&skip=0&isOrderAscending=true"

// URLs builds page addresses for both sources. The zero value points at the
// live sites; tests override the bases.
type URLs struct {
	TennisRecruiting string
	ITF              string
}

func (u URLs) tr() string {
	if u.TennisRecruiting != "" {
		return strings.TrimRight(u.TennisRecruiting, "/")
	}
	return TennisRecruitingBase
}

func (u URLs) itf() string {
	if u.ITF != "" {
		return strings.TrimRight(u.ITF, "/")
	}
	return ITFBase
}

func (u URLs) Home() string {
	return u.tr() + "/"
}

func (u URLs) PlayerPage(id string) string {
	return u.tr() + "/player.asp?id=" + url.QueryEscape(id)
}

func (u URLs) RankingList(listID, page int) string {
	return u.tr() + "/list.asp?id=" + strconv.Itoa(listID) + "&page=" + strconv.Itoa(page)
}

func (u URLs) TennisRecruitingActivity(id string) string {
	return u.tr() + "/player/activity.asp?id=" + url.QueryEscape(id)
}

func (u URLs) ITFRankings() string {
	if u.ITF == "" {
		return ITFRankingsURL
	}
	return strings.Replace(ITFRankingsURL, ITFBase, u.itf(), 1)
}

var slugJunk = regexp.MustCompile(`[^a-z0-9-]`)

// PlayerSlug turns a display name into the slug used in ITF profile paths.
func PlayerSlug(name string) string {
	slug := strings.Join(strings.Fields(strings.ToLower(name)), "-")
	return slugJunk.ReplaceAllString(slug, "")
}

// ITFActivity is the activity page of an ITF player. Nationality falls back
// to "usa".
func (u URLs) ITFActivity(name, playerID, nationality string) string {
	nat := strings.ToLower(strings.TrimSpace(nationality))
	if len(nat) > 3 {
		nat = nat[:3]
	}
	if nat == "" {
		nat = "usa"
	}
	return u.itf() + "/en/players/" + PlayerSlug(name) + "/" + url.PathEscape(playerID) + "/" + nat + "/jt/s/activity"
}
