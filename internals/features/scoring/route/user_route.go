// file: internals/features/scoring/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	scoringController "kelasku_backend/internals/features/scoring/controller"
)

/*
User routes: laporan agregat (skor & kehadiran)
Mount contoh: ReportUserRoutes(app.Group("/api/u"), db)
*/
func ReportUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &scoringController.ReportController{DB: db}
	reports := r.Group("/reports")
	reports.Get("/total-results", ctl.TotalResults)           // GET /api/u/reports/total-results
	reports.Get("/attendance-summary", ctl.AttendanceSummary) // GET /api/u/reports/attendance-summary
}
