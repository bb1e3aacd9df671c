// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LocalIdentity returns a middleware that scopes every request to the nil
// user. It replaces the auth middleware when the embedded local store is the
// storage driver, so controllers read a user ID from the context in both
// modes.
func LocalIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(UserIDKey), uuid.Nil)
		c.Next()
	}
}
