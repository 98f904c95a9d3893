package client

import "github.com/anmicius0/lexicon/internal/config"

// PositionsClient defines the operations we perform against a running
// character positions API. Use NewPositionsClient to obtain an implementation.
type PositionsClient interface {
	FindPositions(input *config.MatchInput) ([]config.CharacterPosition, error)
	Info() ([]config.InfoEntry, error)
	Health() error
	Close() error
}
