// file: internals/features/scoring/route/public_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	scoringController "kelasku_backend/internals/features/scoring/controller"
	"kelasku_backend/internals/middlewares"
)

/*
Public routes: leaderboard showcase (anonim, dibatasi rate limiter)
Mount contoh: ShowcasePublicRoutes(app.Group("/api/public"), db)
*/
func ShowcasePublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &scoringController.ShowcaseController{DB: db}
	showcase := r.Group("/showcase", middlewares.ShowcaseRateLimiter())
	showcase.Get("/:user_id/leaderboard", ctl.Leaderboard) // GET /api/public/showcase/:user_id/leaderboard
}
