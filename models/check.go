package models

import (
	"github.com/google/uuid"

	"github.com/varaeff/wordcheck.api/matchers"
)

type CheckRequest struct {
	Text     string `json:"text"`
	WordList string `json:"wordList"`
	Mode     string `json:"mode"`
	Target   string `json:"target"`
	Boundary string `json:"boundary"`
	Filter   string `json:"filter"`
}

type CheckResponse struct {
	CheckID        uuid.UUID             `json:"checkId"`
	NormalizedText string                `json:"normalizedText"`
	DisplayText    string                `json:"displayText"`
	Language       string                `json:"language"`
	Words          []matchers.WordResult `json:"words"`
	Found          []string              `json:"found"`
	NotFound       []string              `json:"notFound"`
	Filtered       []string              `json:"filtered"`
}

// WordCheckRequest re-checks a single (edited) word against a text.
type WordCheckRequest struct {
	Word     string `json:"word"`
	Text     string `json:"text"`
	Target   string `json:"target"`
	Boundary string `json:"boundary"`
}

type WordCheckResponse struct {
	Word      string  `json:"word"`
	Found     bool    `json:"found"`
	Count     int     `json:"count"`
	Positions [][]int `json:"positions"`
}
