package models

// Department is the persisted shape of a department record. StudentsCount and
// CoursesCount are denormalized counters preserved across updates.
type Department struct {
	ID            int             `json:"id"`
	Name          string          `json:"name"`
	Head          string          `json:"head"`
	FoundedYear   int             `json:"foundedYear"`
	Location      string          `json:"location,omitempty"`
	Status        Status          `json:"status"`
	Budget        float64         `json:"budget,omitempty"`
	Email         string          `json:"email,omitempty"`
	Phone         string          `json:"phone,omitempty"`
	Description   string          `json:"description,omitempty"`
	StudentsCount int             `json:"studentsCount"`
	CoursesCount  int             `json:"coursesCount"`
	Faculty       []FacultyMember `json:"faculty,omitempty"`
	Courses       []CourseSummary `json:"courses,omitempty"`
}

// FacultyMember is an embedded staff record on a department.
type FacultyMember struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Email    string `json:"email"`
}
