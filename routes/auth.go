package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Stas75687876/verceldingsdabumsda/auth"
)

func SetupAuthRoutes(r *gin.Engine) {
	r.POST("/api/auth/login", auth.LoginHandler())
}
