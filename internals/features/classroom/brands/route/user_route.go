// file: internals/features/classroom/brands/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	brandController "kelasku_backend/internals/features/classroom/brands/controller"
)

/*
User routes: full CRUD (scoped ke user dari token)
Mount contoh: BrandUserRoutes(app.Group("/api/u"), db)
*/
func BrandUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &brandController.BrandController{DB: db}
	brands := r.Group("/brands")
	brands.Post("/", ctl.Create)      // POST   /api/u/brands
	brands.Get("/", ctl.List)         // GET    /api/u/brands
	brands.Get("/:id", ctl.GetByID)   // GET    /api/u/brands/:id
	brands.Put("/:id", ctl.Update)    // PUT    /api/u/brands/:id
	brands.Delete("/:id", ctl.Delete) // DELETE /api/u/brands/:id
}
