package handlers

import (
	"context"
	"net/http"
	"time"

	"salonpro/database"
	"salonpro/middleware"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// HealthHandler reports service liveness and database connectivity.
func HealthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	if err := database.MongoClient.Ping(ctx, readpref.Primary()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "degraded",
			"database": "unreachable",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": "connected",
		"time":     time.Now().UTC().Format(time.RFC3339),
	})
}

// VerifyTokenHandler echoes the authenticated principal. It sits behind
// the auth middleware with no role restriction, so any valid session
// can confirm its own claims.
func VerifyTokenHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"id":    c.GetString(middleware.CtxSubjectID),
		"email": c.GetString(middleware.CtxEmail),
		"role":  c.GetString(middleware.CtxRole),
	})
}
