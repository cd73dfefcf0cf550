package extract

import (
	"encoding/json"
	"fmt"
	"strings"

	"courtiq-api/packages/core/models"
)

// eligibleNationalities are the ITF nationality codes scanned for prospects.
var eligibleNationalities = map[string]bool{
	"USA": true, "GBR": true, "AUS": true, "CAN": true, "NZL": true,
	"IRL": true, "RSA": true, "BAH": true, "SUI": true, "SWE": true,
	"NOR": true, "DEN": true, "NED": true, "GER": true, "AUT": true,
	"FIN": true, "BEL": true, "IND": true, "HKG": true, "SGP": true,
	"HUN": true, "SVK": true, "ESP": true, "FRA": true, "ITA": true,
}

// DecodeITFRankings reads the body of the ITF junior ranking API.
func DecodeITFRankings(body []byte) ([]models.ITFPlayer, error) {
	var players []models.ITFPlayer
	if err := json.Unmarshal(body, &players); err != nil {
		return nil, fmt.Errorf("decode itf rankings: %w", err)
	}
	return players, nil
}

// Eligible reports whether an ITF player's nationality is scanned.
func Eligible(p models.ITFPlayer) bool {
	return eligibleNationalities[strings.ToUpper(strings.TrimSpace(p.PlayerNationalityCode))]
}

// FilterEligible keeps eligible players with a usable id and rank, in order.
func FilterEligible(players []models.ITFPlayer) []models.ITFPlayer {
	kept := make([]models.ITFPlayer, 0, len(players))
	for _, p := range players {
		if !Eligible(p) || strings.TrimSpace(string(p.PlayerID)) == "" || p.Rank <= 0 {
			continue
		}
		kept = append(kept, p)
	}
	return kept
}

// ITFRecord converts an ITF API entry to a PlayerRecord.
func ITFRecord(p models.ITFPlayer) PlayerRecord {
	rec := PlayerRecord{
		ExternalID:  strings.TrimSpace(string(p.PlayerID)),
		Name:        joinNonEmpty(strings.TrimSpace(p.PlayerGivenName), strings.TrimSpace(p.PlayerFamilyName)),
		Rank:        p.Rank,
		Nationality: strings.ToUpper(strings.TrimSpace(p.PlayerNationalityCode)),
	}
	if p.BirthYear > 0 {
		by := p.BirthYear
		rec.BirthYear = &by
	}
	movement := p.RankMovement
	rec.RankMovement = &movement
	return rec
}

// ITFRecords filters and converts a whole ranking page.
func ITFRecords(players []models.ITFPlayer) []PlayerRecord {
	eligible := FilterEligible(players)
	out := make([]PlayerRecord, 0, len(eligible))
	for _, p := range eligible {
		out = append(out, ITFRecord(p))
	}
	return out
}

// ActivityExtractorFor returns the activity extractor for a source, or nil.
func ActivityExtractorFor(source models.Source) ActivityExtractor {
	switch source {
	case models.SourceTennisRecruiting:
		return TennisRecruitingActivity
	case models.SourceITF:
		return ITFActivity
	default:
		return nil
	}
}
