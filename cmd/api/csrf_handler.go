package api

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetCSRFToken issues a random token for cookie-based clients. The token
// is set both as a cookie and in the response body so the client can echo
// it back in a header.
// GET /api/csrf-token
func GetCSRFToken(c *gin.Context) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	token := base64.RawURLEncoding.EncodeToString(buf)
	c.SetCookie("csrftoken", token, 3600, "/", "", false, false)
	c.JSON(http.StatusOK, gin.H{"csrfToken": token})
}
