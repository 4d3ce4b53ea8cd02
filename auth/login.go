package auth

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginHandler handles POST /api/auth/login. The admin credentials come from
// the environment; the dev defaults match the ones the panel was seeded with.
// A successful login returns a 24h session token carrying the role claim.
func LoginHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "E-Mail und Passwort sind erforderlich"})
			return
		}

		adminEmail := os.Getenv("ADMIN_EMAIL")
		if adminEmail == "" {
			adminEmail = "admin@example.com"
		}
		adminPassword := os.Getenv("ADMIN_PASSWORD")
		if adminPassword == "" {
			adminPassword = "admin1234"
		}

		if req.Email != adminEmail || req.Password != adminPassword {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Ungültige Anmeldedaten"})
			return
		}

		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id": "1",
			"name":    "Admin",
			"email":   adminEmail,
			"role":    "admin",
			"exp":     time.Now().Add(24 * time.Hour).Unix(),
		})
		signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token konnte nicht erstellt werden"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token": signed,
			"user": gin.H{
				"id":    "1",
				"name":  "Admin",
				"email": adminEmail,
				"role":  "admin",
			},
		})
	}
}
