// file: internals/features/sessions/sessions/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sessionController "kelasku_backend/internals/features/sessions/sessions/controller"
)

/*
User routes: CRUD session + pointer live-run
Mount contoh: SessionUserRoutes(app.Group("/api/u"), db)
*/
func SessionUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &sessionController.SessionController{DB: db}
	sessions := r.Group("/sessions")
	sessions.Post("/", ctl.Create)                 // POST   /api/u/sessions
	sessions.Get("/", ctl.List)                    // GET    /api/u/sessions
	sessions.Get("/:id", ctl.GetByID)              // GET    /api/u/sessions/:id
	sessions.Put("/:id", ctl.Update)               // PUT    /api/u/sessions/:id
	sessions.Patch("/:id/pointer", ctl.UpdatePointer) // PATCH /api/u/sessions/:id/pointer
	sessions.Delete("/:id", ctl.Delete)            // DELETE /api/u/sessions/:id
}
