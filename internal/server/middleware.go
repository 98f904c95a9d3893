package server

import (
	"slices"
	"time"

	"github.com/anmicius0/lexicon/internal/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// requestIDMiddleware propagates the caller's X-Request-ID or assigns a new one.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(ContextKeyRequestID, requestID)
		c.Header(HeaderRequestID, requestID)
		c.Next()
	}
}

// requestLogger logs one line per request through the shared zap logger.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		utils.Logger.Info("HTTP request",
			zap.String(utils.FieldRequestID, c.GetString(ContextKeyRequestID)),
			zap.String(utils.FieldMethod, c.Request.Method),
			zap.String(utils.FieldPath, c.Request.URL.Path),
			zap.Int(utils.FieldStatus, c.Writer.Status()),
			zap.Duration(utils.FieldDuration, time.Since(start)))
	}
}

// corsMiddleware allows cross-origin calls from the configured origins.
// A "*" entry allows any origin; an empty list allows none. Requests from
// other origins are rejected with 403.
func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods:  corsAllowMethods,
		AllowHeaders:  corsAllowHeaders,
		ExposeHeaders: []string{HeaderRequestID},
	}

	switch {
	case slices.Contains(allowedOrigins, corsWildcard):
		corsConfig.AllowAllOrigins = true
	case len(allowedOrigins) == 0:
		corsConfig.AllowOriginFunc = func(string) bool { return false }
	default:
		corsConfig.AllowOrigins = slices.Clone(allowedOrigins)
	}

	utils.Logger.Debug("CORS configured",
		zap.Strings("origins", allowedOrigins),
		zap.Bool("allow_all", corsConfig.AllowAllOrigins))

	return cors.New(corsConfig)
}
