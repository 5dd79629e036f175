// file: internals/features/attendance/student_visits/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	visitController "kelasku_backend/internals/features/attendance/student_visits/controller"
)

/*
User routes: absensi (visit) + bulk upsert per group/daftar student
Mount contoh: StudentVisitUserRoutes(app.Group("/api/u"), db)
*/
func StudentVisitUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &visitController.StudentVisitController{DB: db}
	visits := r.Group("/student-visits")
	visits.Post("/", ctl.Create)          // POST   /api/u/student-visits
	visits.Post("/bulk", ctl.BulkUpsert)  // POST   /api/u/student-visits/bulk
	visits.Get("/", ctl.List)             // GET    /api/u/student-visits
	visits.Put("/:id", ctl.Update)        // PUT    /api/u/student-visits/:id
	visits.Delete("/:id", ctl.Delete)     // DELETE /api/u/student-visits/:id
}
