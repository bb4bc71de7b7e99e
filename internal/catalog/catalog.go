package catalog

// Static course data, the department's published schedule. Loaded in
// process, never mutated at runtime; sorted views work on copies.

type Section struct {
	Professor string
	Room      string
	Time      string
}

type Course struct {
	Slug     string
	Title    string
	Sections []Section
}

var courses = []Course{
	{
		Slug:  "cs-101",
		Title: "Introduction to Computer Science",
		Sections: []Section{
			{Professor: "Dr. Chen", Room: "Harper 204", Time: "MWF 09:00"},
			{Professor: "Dr. Okafor", Room: "Harper 310", Time: "TTh 11:00"},
			{Professor: "Dr. Chen", Room: "Harper 204", Time: "MWF 13:00"},
		},
	},
	{
		Slug:  "cs-230",
		Title: "Web Application Development",
		Sections: []Section{
			{Professor: "Prof. Alvarez", Room: "Dale 112", Time: "TTh 09:30"},
			{Professor: "Dr. Novak", Room: "Dale 118", Time: "MWF 10:00"},
		},
	},
	{
		Slug:  "cs-310",
		Title: "Database Systems",
		Sections: []Section{
			{Professor: "Dr. Okafor", Room: "Harper 310", Time: "MWF 11:00"},
			{Professor: "Prof. Alvarez", Room: "Dale 112", Time: "TTh 14:00"},
		},
	},
	{
		Slug:  "cs-410",
		Title: "Distributed Systems",
		Sections: []Section{
			{Professor: "Dr. Novak", Room: "Dale 118", Time: "TTh 16:00"},
		},
	},
}

func AllCourses() []Course {
	return courses
}

// CourseBySlug returns nil when no course matches.
func CourseBySlug(slug string) *Course {
	for i := range courses {
		if courses[i].Slug == slug {
			return &courses[i]
		}
	}
	return nil
}
