// file: internals/features/classroom/table_layouts/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	layoutController "kelasku_backend/internals/features/classroom/table_layouts/controller"
)

func TableLayoutUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &layoutController.TableLayoutController{DB: db}
	layouts := r.Group("/table-layouts")
	layouts.Post("/", ctl.Create)      // POST   /api/u/table-layouts
	layouts.Get("/", ctl.List)         // GET    /api/u/table-layouts
	layouts.Get("/:id", ctl.GetByID)   // GET    /api/u/table-layouts/:id
	layouts.Put("/:id", ctl.Update)    // PUT    /api/u/table-layouts/:id
	layouts.Delete("/:id", ctl.Delete) // DELETE /api/u/table-layouts/:id
}
