package models

// Source identifies the external site a record was scraped from.
type Source string

const (
	SourceITF              Source = "itf"
	SourceTennisRecruiting Source = "tennisrecruiting"
)

func (s Source) Valid() bool {
	return s == SourceITF || s == SourceTennisRecruiting
}
