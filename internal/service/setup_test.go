package service

import (
	"testing"

	"github.com/anmicius0/lexicon/internal/utils"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	// Initialize a no-op logger for testing to prevent panics
	utils.Logger = zap.NewNop()

	goleak.VerifyTestMain(m)
}
