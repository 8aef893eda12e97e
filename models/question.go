package models

// Direction says which way a question asks for a translation.
type Direction string

const (
	DirectionENToTR Direction = "EN_TR"
	DirectionTRToEN Direction = "TR_EN"
)

// Question is one quiz turn. It is derived per request and never persisted;
// the expected answer is round-tripped through the next submission.
type Question struct {
	Term      string    `json:"term"` // English term identifying the entry
	Prompt    string    `json:"prompt"`
	Direction Direction `json:"direction"`
	Answer    string    `json:"expected"`
}
