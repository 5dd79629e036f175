// file: internals/features/classroom/groups/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	groupController "kelasku_backend/internals/features/classroom/groups/controller"
)

func GroupUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &groupController.GroupController{DB: db}
	groups := r.Group("/groups")
	groups.Post("/", ctl.Create)      // POST   /api/u/groups
	groups.Get("/", ctl.List)         // GET    /api/u/groups
	groups.Get("/:id", ctl.GetByID)   // GET    /api/u/groups/:id
	groups.Put("/:id", ctl.Update)    // PUT    /api/u/groups/:id
	groups.Delete("/:id", ctl.Delete) // DELETE /api/u/groups/:id
}
