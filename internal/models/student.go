package models

// Student represents a learner registered in the institution. JSON field names
// follow the UI contract.
type Student struct {
	ID                int    `json:"id"`
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	Email             string `json:"email"`
	PhoneNumber       string `json:"phoneNumber"`
	Gender            Gender `json:"gender,omitempty"`
	DateOfBirth       Date   `json:"dateOfBirth,omitempty"`
	Address           string `json:"address,omitempty"`
	EnrollmentDate    Date   `json:"enrollmentDate"`
	Status            Status `json:"status"`
	EnrolledCourseIDs []int  `json:"enrolledCourseIds"`
}

// StudentSummary is the reduced shape returned by cross-entity lookups.
type StudentSummary struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// Summary projects the student onto its lookup shape.
func (s Student) Summary() StudentSummary {
	return StudentSummary{ID: s.ID, FirstName: s.FirstName, LastName: s.LastName, Email: s.Email}
}

// EnrolledIn reports whether the student is enrolled in the given course.
func (s Student) EnrolledIn(courseID int) bool {
	for _, id := range s.EnrolledCourseIDs {
		if id == courseID {
			return true
		}
	}
	return false
}
