// internal/service/positions.go
// Package service composes input validation and matching into the character
// positions operation exposed by the API.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/anmicius0/lexicon/internal/config"
	"github.com/anmicius0/lexicon/internal/matcher"
	"github.com/anmicius0/lexicon/internal/utils"
	"github.com/anmicius0/lexicon/internal/validation"
	"go.uber.org/zap"
)

// InputValidator checks a request before it is matched.
type InputValidator interface {
	Validate(input *config.MatchInput) validation.Outcome
}

// PositionFinder locates subtext occurrences in a text.
type PositionFinder interface {
	FindPositions(text, subtext *string) ([]int, error)
}

// PositionsService runs validation and matching for a single request. It keeps
// no per-request state, so one instance can serve concurrent requests.
type PositionsService struct {
	validator InputValidator
	finder    PositionFinder
	info      []config.InfoEntry
	log       *zap.Logger
}

// NewPositionsService constructs a PositionsService with the given dependencies.
func NewPositionsService(cfg *config.Config, validator InputValidator, finder PositionFinder) *PositionsService {
	return &PositionsService{
		validator: validator,
		finder:    finder,
		info:      cfg.Info(),
		log:       utils.WithComponent("positions"),
	}
}

// Info returns the product info listing.
func (s *PositionsService) Info() []config.InfoEntry {
	return s.info
}

// GetCharacterPositions validates input and returns the positions of its
// subtext in its text. Invalid input is reported through error entries in the
// returned list, not through the error result. An error is returned only when
// ctx is already done or the finder rejects its arguments.
func (s *PositionsService) GetCharacterPositions(ctx context.Context, input *config.MatchInput) ([]config.CharacterPosition, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("get character positions: %w", err)
	}

	outcome := s.validator.Validate(input)
	if !outcome.IsValid() {
		s.log.Debug("Input failed validation",
			zap.Int(utils.FieldFailureCount, len(outcome.Failures)),
			zap.Strings(utils.FieldFailureCodes, outcome.Codes()))
		return ToMarks(outcome, nil), nil
	}

	if input == nil {
		input = &config.MatchInput{}
	}
	positions, err := s.finder.FindPositions(input.Text, input.Subtext)
	if err != nil && !errors.Is(err, matcher.ErrNoInput) {
		s.log.Error("Matcher rejected validated input", zap.Error(err))
		return nil, fmt.Errorf("find positions: %w", err)
	}

	s.log.Debug("Search completed",
		zap.Bool("no_input", err != nil),
		zap.Int(utils.FieldMatchCount, len(positions)))
	return ToMarks(outcome, positions), nil
}
