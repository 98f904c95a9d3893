// internal/service/mapper.go
package service

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/anmicius0/lexicon/internal/config"
	"github.com/anmicius0/lexicon/internal/validation"
)

const (
	NotApplicable        = "N/A"
	NoOccurrencesDetails = "No Occurrences of Subtext were found in the main Text."
	occurrenceDetailsFmt = "Occurrence #%d of Subtext was found at position mark: %s of the main Text."
	errorDetailsPrefix   = "ERROR: "
)

// ToMarks converts a validation outcome and the positions found into the
// response list. Failures take precedence; a valid outcome with no positions
// yields the single "N/A" entry.
func ToMarks(outcome validation.Outcome, positions []int) []config.CharacterPosition {
	if !outcome.IsValid() {
		return MapFailures(outcome.Failures)
	}
	return MapPositions(positions)
}

// MapFailures turns each failure into an error entry, keeping failure order.
func MapFailures(failures []validation.Failure) []config.CharacterPosition {
	marks := make([]config.CharacterPosition, 0, len(failures))
	for i, f := range failures {
		marks = append(marks, config.CharacterPosition{
			ID:      strconv.Itoa(i + 1),
			Mark:    f.Code,
			Details: errorDetailsPrefix + f.Message,
		})
	}
	return marks
}

// MapPositions turns positions into occurrence entries in ascending order.
func MapPositions(positions []int) []config.CharacterPosition {
	if len(positions) == 0 {
		return []config.CharacterPosition{noOccurrences()}
	}

	sorted := slices.Clone(positions)
	slices.Sort(sorted)

	marks := make([]config.CharacterPosition, 0, len(sorted))
	for i, pos := range sorted {
		id := i + 1
		mark := strconv.Itoa(pos)
		marks = append(marks, config.CharacterPosition{
			ID:      strconv.Itoa(id),
			Mark:    mark,
			Details: fmt.Sprintf(occurrenceDetailsFmt, id, mark),
		})
	}
	return marks
}

func noOccurrences() config.CharacterPosition {
	return config.CharacterPosition{
		ID:      NotApplicable,
		Mark:    NotApplicable,
		Details: NoOccurrencesDetails,
	}
}
