package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/anmicius0/lexicon/internal/config"
	"github.com/anmicius0/lexicon/internal/matcher"
	"github.com/anmicius0/lexicon/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const pollyText = "Polly put the kettle on, polly put the kettle on, polly put the kettle on we'll all have tea"

var testConfig = &config.Config{ProductName: "TyreConnect Lexicon", ProductVersion: "1.0.12"}

func newService() *PositionsService {
	return NewPositionsService(testConfig, validation.NewValidator(), matcher.New())
}

func marksOf(positions []config.CharacterPosition) []string {
	marks := make([]string, 0, len(positions))
	for _, p := range positions {
		marks = append(marks, p.Mark)
	}
	return marks
}

func TestGetCharacterPositions(t *testing.T) {
	tests := []struct {
		name     string
		input    *config.MatchInput
		expected []string
	}{
		{"Overlapping", config.NewMatchInput("ababababa", "aba"), []string{"1", "3", "5", "7"}},
		{"Polly", config.NewMatchInput(pollyText, "Polly"), []string{"1", "26", "51"}},
		{"LL", config.NewMatchInput(pollyText, "LL"), []string{"3", "28", "53", "78", "82"}},
		{"No Match", config.NewMatchInput(pollyText, "Xx"), []string{"N/A"}},
		{"Subtext Longer", config.NewMatchInput("aba", "ababababa"), []string{validation.CodeSubtextLongerThanText}},
		{"Nil Input", nil, []string{validation.CodeInputNotNull}},
		{"Nil Fields", &config.MatchInput{}, []string{validation.CodeTextNotNull}},
		{"Empty Fields", config.NewMatchInput("", ""), []string{validation.CodeTextNotEmpty, validation.CodeSubtextNotEmpty}},
	}

	svc := newService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.GetCharacterPositions(context.Background(), tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, marksOf(result))
		})
	}
}

func TestGetCharacterPositions_ValidationFailureSkipsFinder(t *testing.T) {
	mockValidator := new(MockValidator)
	mockFinder := new(MockFinder)
	input := config.NewMatchInput("a", "ab")

	mockValidator.On("Validate", input).Return(validation.Outcome{Failures: []validation.Failure{
		{Code: validation.CodeSubtextLongerThanText, Message: validation.MessageSubtextLongerThanText},
	}})

	svc := NewPositionsService(testConfig, mockValidator, mockFinder)
	result, err := svc.GetCharacterPositions(context.Background(), input)

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "ERROR: "+validation.MessageSubtextLongerThanText, result[0].Details)
	mockValidator.AssertExpectations(t)
	mockFinder.AssertNotCalled(t, "FindPositions", mock.Anything, mock.Anything)
}

func TestGetCharacterPositions_NoInputMapsToNotApplicable(t *testing.T) {
	mockValidator := new(MockValidator)
	mockFinder := new(MockFinder)
	input := config.NewMatchInput("", "")

	mockValidator.On("Validate", input).Return(validation.Outcome{})
	mockFinder.On("FindPositions", input.Text, input.Subtext).Return(nil, matcher.ErrNoInput)

	svc := NewPositionsService(testConfig, mockValidator, mockFinder)
	result, err := svc.GetCharacterPositions(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, []string{NotApplicable}, marksOf(result))
	mockFinder.AssertExpectations(t)
}

func TestGetCharacterPositions_FinderError(t *testing.T) {
	mockValidator := new(MockValidator)
	mockValidator.On("Validate", mock.Anything).Return(validation.Outcome{})

	// A validator that lets a nil input through exposes the matcher's contract error.
	svc := NewPositionsService(testConfig, mockValidator, matcher.New())
	result, err := svc.GetCharacterPositions(context.Background(), nil)

	assert.Nil(t, result)
	var nullErr *matcher.NullArgumentError
	require.True(t, errors.As(err, &nullErr))
	assert.Equal(t, "text", nullErr.Name)
}

func TestGetCharacterPositions_CancelledContext(t *testing.T) {
	mockValidator := new(MockValidator)
	mockFinder := new(MockFinder)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := NewPositionsService(testConfig, mockValidator, mockFinder)
	result, err := svc.GetCharacterPositions(ctx, config.NewMatchInput("a", "a"))

	assert.Nil(t, result)
	assert.ErrorIs(t, err, context.Canceled)
	mockValidator.AssertNotCalled(t, "Validate", mock.Anything)
}

func TestGetCharacterPositions_Concurrent(t *testing.T) {
	svc := newService()
	inputs := []*config.MatchInput{
		config.NewMatchInput("ababababa", "aba"),
		config.NewMatchInput(pollyText, "ll"),
		config.NewMatchInput("aba", "ababababa"),
	}
	expected := make([][]config.CharacterPosition, len(inputs))
	for i, in := range inputs {
		res, err := svc.GetCharacterPositions(context.Background(), in)
		require.NoError(t, err)
		expected[i] = res
	}

	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for n := 0; n < 64; n++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := svc.GetCharacterPositions(context.Background(), inputs[i])
			if err != nil {
				errs <- err
				return
			}
			if !assert.ObjectsAreEqual(expected[i], res) {
				errs <- errors.New("result differs from sequential run")
			}
		}(n % len(inputs))
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

func TestInfo(t *testing.T) {
	info := newService().Info()
	assert.Equal(t, []config.InfoEntry{
		{Key: config.InfoKeyVersion, Value: "1.0.12"},
		{Key: config.InfoKeyProduct, Value: "TyreConnect Lexicon"},
	}, info)
}
