package server

import (
	"context"

	"github.com/anmicius0/lexicon/internal/config"
	"github.com/stretchr/testify/mock"
)

type MockPositionsAPI struct {
	mock.Mock
}

func (m *MockPositionsAPI) GetCharacterPositions(ctx context.Context, input *config.MatchInput) ([]config.CharacterPosition, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]config.CharacterPosition), args.Error(1)
}

func (m *MockPositionsAPI) Info() []config.InfoEntry {
	args := m.Called()
	return args.Get(0).([]config.InfoEntry)
}
