// file: internals/features/users/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "kelasku_backend/internals/features/users/controller"
	"kelasku_backend/internals/middlewares"
)

/*
Auth routes (tanpa token): register/login/refresh/logout
Mount contoh: AuthRoutes(app.Group("/api/auth"), db)
*/
func AuthRoutes(r fiber.Router, db *gorm.DB) {
	ctl := userController.NewAuthController(db)
	r.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register) // POST /api/auth/register
	r.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)         // POST /api/auth/login
	r.Post("/refresh", ctl.Refresh)                                     // POST /api/auth/refresh
	r.Post("/logout", ctl.Logout)                                       // POST /api/auth/logout
}

/*
User routes (dengan token): profil
Mount contoh: AuthUserRoutes(app.Group("/api/u"), db)
*/
func AuthUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := userController.NewAuthController(db)
	r.Get("/me", ctl.Me) // GET /api/u/me
}
