package server

import (
	"github.com/anmicius0/lexicon/internal/config"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the Gin router with the configured API handlers.
func NewRouter(cfg *config.Config, svc PositionsAPI) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestIDMiddleware(), requestLogger(), corsMiddleware(cfg.AllowedOrigins))

	handler := newHandler(svc)

	router.GET(HealthEndpoint, handler.health)
	router.GET(CharacterPositionsPath, handler.getInfo)
	router.POST(CharacterPositionsPath, handler.getCharacterPositions)

	return router
}
