// file: internals/features/scoring/controller/report_controller.go
package controller

import (
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	visitModel "kelasku_backend/internals/features/attendance/student_visits/model"
	brandModel "kelasku_backend/internals/features/classroom/brands/model"
	groupModel "kelasku_backend/internals/features/classroom/groups/model"
	studentModel "kelasku_backend/internals/features/classroom/students/model"
	reportDTO "kelasku_backend/internals/features/scoring/dto"
	scoringService "kelasku_backend/internals/features/scoring/service"
	helper "kelasku_backend/internals/helpers"
)

type ReportController struct {
	DB *gorm.DB
}

// ===================== TOTAL RESULTS =====================
// GET /api/u/reports/total-results
// Rollup student → group → brand. Skor level atas dihitung dari pool
// gabungan (jumlah score & count anak), bukan rata-rata dari efficiency.
func (h *ReportController) TotalResults(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var students []studentModel.StudentModel
	if err := h.DB.
		Where("student_user_id = ?", userID).
		Order("student_full_name ASC").
		Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil student")
	}

	ids := make([]uuid.UUID, 0, len(students))
	for _, s := range students {
		ids = append(ids, s.StudentID)
	}
	summaries, err := scoringService.SummariesByStudent(h.DB, userID, ids)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung skor")
	}

	var groups []groupModel.GroupModel
	if err := h.DB.Where("group_user_id = ?", userID).Find(&groups).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil group")
	}
	var brands []brandModel.BrandModel
	if err := h.DB.Where("brand_user_id = ?", userID).Find(&brands).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil brand")
	}

	groupName := make(map[uuid.UUID]string, len(groups))
	for _, g := range groups {
		groupName[g.GroupID] = g.GroupName
	}

	// Susun baris group per brand. Brand dan group saling bebas di data model
	// (dua student segroup boleh beda brand), jadi baris group di-key per
	// pasangan (brand, group) supaya skor tiap student jatuh ke brand-nya sendiri.
	type brandGroupKey struct {
		BrandID uuid.UUID
		GroupID uuid.UUID
	}
	groupRows := make(map[brandGroupKey]*reportDTO.GroupResultRow)
	brandGroups := make(map[uuid.UUID][]brandGroupKey) // brand id -> pasangan (urut kemunculan)
	for _, s := range students {
		key := brandGroupKey{BrandID: s.StudentBrandID, GroupID: s.StudentGroupID}
		gr, ok := groupRows[key]
		if !ok {
			gr = &reportDTO.GroupResultRow{
				GroupID:   s.StudentGroupID,
				GroupName: groupName[s.StudentGroupID],
			}
			groupRows[key] = gr
			brandGroups[s.StudentBrandID] = append(brandGroups[s.StudentBrandID], key)
		}
		sc := summaries[s.StudentID]
		gr.Students = append(gr.Students, reportDTO.StudentResultRow{
			StudentID:   s.StudentID,
			StudentName: s.StudentFullName,
			Scores:      sc,
		})
		gr.Scores = gr.Scores.Add(sc)
	}

	resp := reportDTO.TotalResultsResponse{Brands: []reportDTO.BrandResultRow{}}
	for _, b := range brands {
		row := reportDTO.BrandResultRow{
			BrandID:   b.BrandID,
			BrandName: b.BrandName,
			Groups:    []reportDTO.GroupResultRow{},
		}
		for _, key := range brandGroups[b.BrandID] {
			gr := groupRows[key]
			row.Groups = append(row.Groups, *gr)
			row.Scores = row.Scores.Add(gr.Scores)
		}
		sort.Slice(row.Groups, func(i, j int) bool {
			return row.Groups[i].GroupName < row.Groups[j].GroupName
		})
		resp.Brands = append(resp.Brands, row)
	}
	sort.Slice(resp.Brands, func(i, j int) bool {
		return resp.Brands[i].BrandName < resp.Brands[j].BrandName
	})

	return helper.JsonOK(c, "Rekap hasil total", resp)
}

// ===================== ATTENDANCE SUMMARY =====================
// GET /api/u/reports/attendance-summary?from=&to=&group_id=
func (h *ReportController) AttendanceSummary(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	studentQ := h.DB.Model(&studentModel.StudentModel{}).
		Where("student_user_id = ?", userID)
	if gid := strings.TrimSpace(c.Query("group_id")); gid != "" {
		id, err := uuid.Parse(gid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "group_id tidak valid")
		}
		studentQ = studentQ.Where("student_group_id = ?", id)
	}

	var students []studentModel.StudentModel
	if err := studentQ.Order("student_full_name ASC").Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil student")
	}
	if len(students) == 0 {
		return helper.JsonOK(c, "Rekap kehadiran", []reportDTO.AttendanceSummaryRow{})
	}

	ids := make([]uuid.UUID, 0, len(students))
	for _, s := range students {
		ids = append(ids, s.StudentID)
	}

	visitQ := h.DB.Model(&visitModel.StudentVisitModel{}).
		Where("student_visit_user_id = ? AND student_visit_student_id IN ?", userID, ids)
	if from := strings.TrimSpace(c.Query("from")); from != "" {
		visitQ = visitQ.Where("student_visit_date >= ?", from)
	}
	if to := strings.TrimSpace(c.Query("to")); to != "" {
		visitQ = visitQ.Where("student_visit_date <= ?", to)
	}

	var visits []visitModel.StudentVisitModel
	if err := visitQ.Find(&visits).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil visit")
	}

	present := make(map[uuid.UUID]int, len(ids))
	absent := make(map[uuid.UUID]int, len(ids))
	for _, v := range visits {
		if v.StudentVisitIsPresent {
			present[v.StudentVisitStudentID]++
		} else {
			absent[v.StudentVisitStudentID]++
		}
	}

	rows := make([]reportDTO.AttendanceSummaryRow, 0, len(students))
	for _, s := range students {
		p, a := present[s.StudentID], absent[s.StudentID]
		rate := 0.0
		if p+a > 0 {
			rate = float64(p) / float64(p+a) * 100
		}
		rows = append(rows, reportDTO.AttendanceSummaryRow{
			StudentID:    s.StudentID,
			StudentName:  s.StudentFullName,
			PresentCount: p,
			AbsentCount:  a,
			PresenceRate: rate,
		})
	}

	return helper.JsonOK(c, "Rekap kehadiran", rows)
}
