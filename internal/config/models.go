// internal/config/models.go
// Package config provides configuration loading, validation, and the request
// and response models shared by the API and its clients.
package config

// MatchInput is the inbound request body for a character positions search.
// Both fields are pointers so an absent field can be told apart from an empty one.
type MatchInput struct {
	// Text is the main text searched for occurrences of Subtext
	Text *string `json:"text"`
	// Subtext is the pattern whose occurrences are reported
	Subtext *string `json:"subtext"`
}

// NewMatchInput builds a MatchInput with both fields present.
func NewMatchInput(text, subtext string) *MatchInput {
	return &MatchInput{Text: &text, Subtext: &subtext}
}

// CharacterPosition is one entry of the positions response. It carries a match
// occurrence, the "N/A" marker, or a validation error, never a mix of them
// within a single response.
type CharacterPosition struct {
	// ID is the 1-based ordinal of the entry, or "N/A"
	ID string `json:"id"`
	// Mark is the 1-based character position, the failure code, or "N/A"
	Mark string `json:"character_position"`
	// Details is a human-readable description of the entry
	Details string `json:"character_position_details"`
}

// InfoEntry is a single key/value pair of the product info listing.
type InfoEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
