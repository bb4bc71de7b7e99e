package handlers

import (
	"fmt"
	"net/http"

	"deptsite/internal/catalog"

	"github.com/gin-gonic/gin"
)

type catalogPage struct {
	Courses []catalog.Course
}

func CatalogList(c *gin.Context) {
	render(c, http.StatusOK, "catalog.html", view{
		Title: "Course Catalog",
		Data:  catalogPage{Courses: catalog.AllCourses()},
	})
}

type courseDetailPage struct {
	Course   catalog.Course
	Sections []catalog.Section
}

// CourseDetail renders one course with its sections sorted by ?sort (time,
// professor or room); anything else falls back to time. Sorting works on a
// copy, the catalog itself keeps its published order.
func CourseDetail(c *gin.Context) {
	slug := c.Param("courseSlug")
	course := catalog.CourseBySlug(slug)
	if course == nil {
		_ = c.AbortWithError(http.StatusNotFound,
			fmt.Errorf("course %q not found", slug))
		return
	}

	sortKey := catalog.NormalizeSectionSort(c.Query("sort"))

	render(c, http.StatusOK, "course_detail.html", view{
		Title:       course.Title,
		CurrentSort: sortKey,
		Data: courseDetailPage{
			Course:   *course,
			Sections: catalog.SortedSections(course.Sections, sortKey),
		},
	})
}
