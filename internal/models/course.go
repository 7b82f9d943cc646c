package models

// Course is the persisted shape of a course record.
type Course struct {
	ID               int    `json:"id"`
	Code             string `json:"code"`
	Name             string `json:"name"`
	Description      string `json:"description,omitempty"`
	Department       string `json:"department"`
	Credits          int    `json:"credits"`
	Capacity         int    `json:"capacity,omitempty"`
	EnrolledStudents int    `json:"enrolledStudents,omitempty"`
	Status           Status `json:"status"`
}

// CourseDetail is a course plus the presentation fields synthesized on read;
// the extra fields are never persisted.
type CourseDetail struct {
	Course
	Instructor    string   `json:"instructor"`
	Schedule      string   `json:"schedule"`
	Location      string   `json:"location"`
	Prerequisites []string `json:"prerequisites"`
	StartDate     Date     `json:"startDate"`
	EndDate       Date     `json:"endDate"`
}

// CourseSummary is the reduced shape embedded in department records.
type CourseSummary struct {
	ID      int    `json:"id"`
	Code    string `json:"code"`
	Name    string `json:"name"`
	Credits int    `json:"credits"`
}

// Summary projects the course onto its embedded shape.
func (c Course) Summary() CourseSummary {
	return CourseSummary{ID: c.ID, Code: c.Code, Name: c.Name, Credits: c.Credits}
}
