package auth

import (
	"courtiq-api/packages/auth/middleware"

	"github.com/gin-gonic/gin"
)

// Module groups the request guards used by the API.
type Module struct {
	jwtSecret  string
	cronSecret string
}

func NewModule(jwtSecret, cronSecret string) *Module {
	return &Module{
		jwtSecret:  jwtSecret,
		cronSecret: cronSecret,
	}
}

// Coach guards dashboard routes with the auth provider's access token.
func (m *Module) Coach() gin.HandlerFunc {
	return middleware.JWTMiddleware(m.jwtSecret)
}

// Cron guards sync endpoints with the shared secret.
func (m *Module) Cron() gin.HandlerFunc {
	return middleware.CronSecret(m.cronSecret)
}

func GetUserID(c *gin.Context) (string, bool) {
	return middleware.GetUserID(c)
}

func GetUserEmail(c *gin.Context) (string, bool) {
	return middleware.GetUserEmail(c)
}
