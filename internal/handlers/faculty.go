package handlers

import (
	"fmt"
	"net/http"

	"deptsite/internal/catalog"
	"deptsite/internal/database"
	"deptsite/internal/models"

	"github.com/gin-gonic/gin"
)

type facultyListPage struct {
	Faculty []models.FacultyMember
}

// FacultyList renders the directory sorted by ?sort (name, department or
// title); anything else falls back to name.
func FacultyList(c *gin.Context) {
	sortKey := catalog.NormalizeFacultySort(c.Query("sort"))
	members := catalog.SortedFaculty(database.ListFaculty(), sortKey)

	render(c, http.StatusOK, "faculty_list.html", view{
		Title:       "Faculty Directory",
		CurrentSort: sortKey,
		Data:        facultyListPage{Faculty: members},
	})
}

type facultyDetailPage struct {
	Member models.FacultyMember
}

func FacultyDetail(c *gin.Context) {
	slug := c.Param("facultySlug")
	member := database.FacultyBySlug(slug)
	if member == nil {
		_ = c.AbortWithError(http.StatusNotFound,
			fmt.Errorf("faculty member %q not found", slug))
		return
	}

	render(c, http.StatusOK, "faculty_detail.html", view{
		Title: member.Name,
		Data:  facultyDetailPage{Member: *member},
	})
}
