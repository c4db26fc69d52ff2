package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// currentUserID reads the identity the JWT middleware resolved. Handlers on
// authenticated routes can rely on it being present.
func currentUserID(c *gin.Context) (uuid.UUID, error) {
	raw := c.GetString("user_id")
	if raw == "" {
		return uuid.Nil, errors.New("no authenticated user on context")
	}
	return uuid.Parse(raw)
}
