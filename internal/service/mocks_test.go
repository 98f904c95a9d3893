package service

import (
	"github.com/anmicius0/lexicon/internal/config"
	"github.com/anmicius0/lexicon/internal/validation"
	"github.com/stretchr/testify/mock"
)

type MockValidator struct {
	mock.Mock
}

func (m *MockValidator) Validate(input *config.MatchInput) validation.Outcome {
	args := m.Called(input)
	return args.Get(0).(validation.Outcome)
}

type MockFinder struct {
	mock.Mock
}

func (m *MockFinder) FindPositions(text, subtext *string) ([]int, error) {
	args := m.Called(text, subtext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}
