// file: internals/features/classroom/students/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentController "kelasku_backend/internals/features/classroom/students/controller"
)

func StudentUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &studentController.StudentController{DB: db}
	students := r.Group("/students")
	students.Post("/", ctl.Create)      // POST   /api/u/students
	students.Get("/", ctl.List)         // GET    /api/u/students
	students.Get("/:id", ctl.GetByID)   // GET    /api/u/students/:id
	students.Put("/:id", ctl.Update)    // PUT    /api/u/students/:id
	students.Delete("/:id", ctl.Delete) // DELETE /api/u/students/:id
}
