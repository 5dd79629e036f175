// file: internals/features/sessions/session_students/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ssController "kelasku_backend/internals/features/sessions/session_students/controller"
)

/*
User routes: assignment student ke session (regular & homework)
Mount contoh: SessionStudentUserRoutes(app.Group("/api/u"), db)
*/
func SessionStudentUserRoutes(r fiber.Router, db *gorm.DB) {
	regular := &ssController.SessionRegularStudentController{DB: db}
	reg := r.Group("/session-regular-students")
	reg.Post("/", regular.Create)         // POST   /api/u/session-regular-students
	reg.Get("/", regular.ListBySession)   // GET    /api/u/session-regular-students?session_id=
	reg.Put("/:id", regular.Update)       // PUT    /api/u/session-regular-students/:id
	reg.Delete("/:id", regular.Delete)    // DELETE /api/u/session-regular-students/:id

	homework := &ssController.SessionHomeworkStudentController{DB: db}
	hw := r.Group("/session-homework-students")
	hw.Post("/", homework.Create)         // POST   /api/u/session-homework-students
	hw.Get("/", homework.ListBySession)   // GET    /api/u/session-homework-students?session_id=
	hw.Put("/:id", homework.Update)       // PUT    /api/u/session-homework-students/:id
	hw.Delete("/:id", homework.Delete)    // DELETE /api/u/session-homework-students/:id
}
