package repository

import "github.com/opencampus/enrollment-api/internal/models"

// Fixed default collections written the first time each collection is read and
// found absent. The records mirror the reference deployment's sample campus.

func seedStudents() []models.Student {
	return []models.Student{
		{
			ID: 1, FirstName: "Rahul", LastName: "Sharma",
			Email: "rahul.sharma@example.com", PhoneNumber: "9876543210",
			Gender: models.GenderMale, DateOfBirth: models.MustDate("2000-05-15"),
			Address:        "123, Vikram Nagar, New Delhi - 110001",
			EnrollmentDate: models.MustDate("2022-07-15"), Status: models.StatusActive,
			EnrolledCourseIDs: []int{},
		},
		{
			ID: 2, FirstName: "Priya", LastName: "Patel",
			Email: "priya.patel@example.com", PhoneNumber: "9898765432",
			Gender: models.GenderFemale, DateOfBirth: models.MustDate("2001-08-21"),
			Address:        "45, Gandhi Road, Mumbai - 400001",
			EnrollmentDate: models.MustDate("2022-07-10"), Status: models.StatusActive,
			EnrolledCourseIDs: []int{},
		},
		{
			ID: 3, FirstName: "Arjun", LastName: "Singh",
			Email: "arjun.singh@example.com", PhoneNumber: "7778889990",
			Gender: models.GenderMale, DateOfBirth: models.MustDate("2000-11-03"),
			Address:        "789, MG Road, Bangalore - 560001",
			EnrollmentDate: models.MustDate("2022-07-12"), Status: models.StatusActive,
			EnrolledCourseIDs: []int{},
		},
		{
			ID: 4, FirstName: "Meera", LastName: "Desai",
			Email: "meera.desai@example.com", PhoneNumber: "9876123450",
			Gender: models.GenderFemale, DateOfBirth: models.MustDate("2001-03-25"),
			Address:        "56, Civil Lines, Pune - 411001",
			EnrollmentDate: models.MustDate("2022-07-05"), Status: models.StatusActive,
			EnrolledCourseIDs: []int{},
		},
		{
			ID: 5, FirstName: "Vikram", LastName: "Verma",
			Email: "vikram.verma@example.com", PhoneNumber: "8765432109",
			Gender: models.GenderMale, DateOfBirth: models.MustDate("2000-07-30"),
			Address:        "321, Lake Gardens, Kolkata - 700045",
			EnrollmentDate: models.MustDate("2022-07-20"), Status: models.StatusInactive,
			EnrolledCourseIDs: []int{},
		},
		{
			ID: 6, FirstName: "Anjali", LastName: "Agarwal",
			Email: "anjali.agarwal@example.com", PhoneNumber: "7654321098",
			Gender: models.GenderFemale, DateOfBirth: models.MustDate("2001-12-12"),
			Address:        "23, Park Street, Chennai - 600001",
			EnrollmentDate: models.MustDate("2022-07-08"), Status: models.StatusActive,
			EnrolledCourseIDs: []int{},
		},
	}
}

func seedCourses() []models.Course {
	return []models.Course{
		{ID: 1, Code: "IT101", Name: "Fundamentals of Programming", Department: "Information Technology", Credits: 3, Status: models.StatusActive},
		{ID: 2, Code: "ME201", Name: "Engineering Mechanics", Department: "Mechanical Engineering", Credits: 4, Status: models.StatusActive},
		{ID: 3, Code: "HIN105", Name: "Contemporary Hindi Literature", Department: "Hindi Literature", Credits: 3, Status: models.StatusActive},
		{ID: 4, Code: "BT110", Name: "Biodiversity of Indian Subcontinent", Department: "Biotechnology", Credits: 4, Status: models.StatusActive},
		{ID: 5, Code: "AIH100", Name: "Vedic History and Culture", Department: "Ancient Indian History", Credits: 3, Status: models.StatusActive},
		{ID: 6, Code: "EC202", Name: "Microprocessors and Microcontrollers", Department: "Electronics & Communication", Credits: 4, Status: models.StatusActive},
	}
}

func seedDepartments() []models.Department {
	return []models.Department{
		{ID: 1, Name: "Information Technology", Head: "Prof. Rajendra Kumar Sharma", FoundedYear: 1985, Status: models.StatusActive, StudentsCount: 120, CoursesCount: 15},
		{ID: 2, Name: "Mechanical Engineering", Head: "Prof. Suresh Kumar Patel", FoundedYear: 1950, Status: models.StatusActive, StudentsCount: 85, CoursesCount: 12},
		{ID: 3, Name: "Electronics & Communication", Head: "Prof. Vikram Singh Malhotra", FoundedYear: 1960, Status: models.StatusActive, StudentsCount: 65, CoursesCount: 10},
		{ID: 4, Name: "Biotechnology", Head: "Prof. Sunita Rajesh Sharma", FoundedYear: 1970, Status: models.StatusActive, StudentsCount: 90, CoursesCount: 14},
		{ID: 5, Name: "Ancient Indian History", Head: "Prof. Arjun Krishnan Reddy", FoundedYear: 1955, Status: models.StatusActive, StudentsCount: 40, CoursesCount: 8},
		{ID: 6, Name: "Hindi Literature", Head: "Prof. Meera Anand Patel", FoundedYear: 1965, Status: models.StatusActive, StudentsCount: 75, CoursesCount: 9},
	}
}
