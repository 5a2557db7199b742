// Package seed builds the initial dataset used when no valid persisted
// snapshot exists.
package seed

import (
	"github.com/yigit/studentforce/internal/app/models"
)

// Build returns a fresh copy of the default dataset. Every call returns new
// slices, so callers may hand the result to the store without sharing.
func Build() *models.Snapshot {
	s := &models.Snapshot{
		Version:     models.SchemaVersion,
		Students:    students(),
		Courses:     courses(),
		Professors:  professors(),
		Marks:       marks(),
		Enrollments: enrollments(),
		Assignments: assignments(),
		CurrentUser: CurrentUser(),
	}
	return s
}

// CurrentUser returns the default signed-in user (Admin)
func CurrentUser() models.User {
	return models.User{
		ID:     "user-001",
		Name:   "Admin User",
		Email:  "admin@studentforce.edu",
		Role:   models.RoleAdmin,
		Avatar: "https://images.pexels.com/photos/614810/pexels-photo-614810.jpeg?auto=compress&cs=tinysrgb&w=150",
	}
}

func students() []models.Student {
	const town = ", College Town, CT 12345"
	return []models.Student{
		{ID: "st-001", FirstName: "John", LastName: "Smith", Email: "john.smith@example.com", Phone: "(555) 123-4567", DateOfBirth: "1998-05-12", Address: "123 Campus Drive" + town, EnrollmentDate: "2022-09-01", Status: models.StudentActive},
		{ID: "st-002", FirstName: "Emma", LastName: "Johnson", Email: "emma.johnson@example.com", Phone: "(555) 234-5678", DateOfBirth: "1999-08-23", Address: "456 University Ave" + town, EnrollmentDate: "2022-09-01", Status: models.StudentActive},
		{ID: "st-003", FirstName: "Michael", LastName: "Williams", Email: "michael.williams@example.com", Phone: "(555) 345-6789", DateOfBirth: "1997-12-10", Address: "789 Scholar Lane" + town, EnrollmentDate: "2021-09-01", Status: models.StudentActive},
		{ID: "st-004", FirstName: "Sophia", LastName: "Brown", Email: "sophia.brown@example.com", Phone: "(555) 456-7890", DateOfBirth: "1998-02-15", Address: "321 Academic Blvd" + town, EnrollmentDate: "2022-01-15", Status: models.StudentActive},
		{ID: "st-005", FirstName: "James", LastName: "Jones", Email: "james.jones@example.com", Phone: "(555) 567-8901", DateOfBirth: "1996-06-30", Address: "654 Education St" + town, EnrollmentDate: "2020-09-01", Status: models.StudentGraduated},
		{ID: "st-006", FirstName: "Olivia", LastName: "Garcia", Email: "olivia.garcia@example.com", Phone: "(555) 678-9012", DateOfBirth: "1999-11-05", Address: "987 Learning Way" + town, EnrollmentDate: "2022-09-01", Status: models.StudentActive},
		{ID: "st-007", FirstName: "William", LastName: "Miller", Email: "william.miller@example.com", Phone: "(555) 789-0123", DateOfBirth: "1997-04-20", Address: "246 Knowledge Dr" + town, EnrollmentDate: "2021-01-15", Status: models.StudentInactive},
		{ID: "st-008", FirstName: "Ava", LastName: "Davis", Email: "ava.davis@example.com", Phone: "(555) 890-1234", DateOfBirth: "1998-09-14", Address: "135 Wisdom Circle" + town, EnrollmentDate: "2022-01-15", Status: models.StudentActive},
		{ID: "st-009", FirstName: "Alexander", LastName: "Rodriguez", Email: "alexander.rodriguez@example.com", Phone: "(555) 901-2345", DateOfBirth: "1996-10-25", Address: "864 Intellect Ave" + town, EnrollmentDate: "2020-09-01", Status: models.StudentActive},
		{ID: "st-010", FirstName: "Isabella", LastName: "Martinez", Email: "isabella.martinez@example.com", Phone: "(555) 012-3456", DateOfBirth: "1999-03-18", Address: "579 Study St" + town, EnrollmentDate: "2022-09-01", Status: models.StudentActive},
	}
}

func courses() []models.Course {
	const fall, spring = "Fall 2023", "Spring 2024"
	return []models.Course{
		{ID: "cs-101", Name: "Introduction to Computer Science", Code: "CS101", Description: "Fundamental concepts of computer programming and software development.", Credits: 3, Duration: 16, Semester: fall, Status: models.StatusActive},
		{ID: "cs-201", Name: "Data Structures and Algorithms", Code: "CS201", Description: "Advanced data structures and algorithm design techniques.", Credits: 4, Duration: 16, Semester: spring, Status: models.StatusActive},
		{ID: "math-101", Name: "Calculus I", Code: "MATH101", Description: "Limits, derivatives, and integrals of algebraic and transcendental functions.", Credits: 4, Duration: 16, Semester: fall, Status: models.StatusActive},
		{ID: "eng-101", Name: "English Composition", Code: "ENG101", Description: "Principles of effective written communication and critical reading.", Credits: 3, Duration: 16, Semester: fall, Status: models.StatusActive},
		{ID: "phy-101", Name: "Physics I", Code: "PHY101", Description: "Mechanics, energy, thermodynamics, and waves.", Credits: 4, Duration: 16, Semester: spring, Status: models.StatusActive},
		{ID: "bio-101", Name: "Biology I", Code: "BIO101", Description: "Cell structure, genetics, evolution, and biodiversity.", Credits: 4, Duration: 16, Semester: fall, Status: models.StatusActive},
		{ID: "chem-101", Name: "Chemistry I", Code: "CHEM101", Description: "Atomic structure, periodic trends, and chemical bonding.", Credits: 4, Duration: 16, Semester: spring, Status: models.StatusActive},
		{ID: "cs-301", Name: "Database Systems", Code: "CS301", Description: "Relational database theory, SQL, and database design.", Credits: 3, Duration: 16, Semester: fall, Status: models.StatusActive},
		{ID: "cs-401", Name: "Software Engineering", Code: "CS401", Description: "Software development methodologies, design patterns, and project management.", Credits: 3, Duration: 16, Semester: spring, Status: models.StatusInactive},
		{ID: "math-201", Name: "Linear Algebra", Code: "MATH201", Description: "Vector spaces, linear transformations, and matrices.", Credits: 3, Duration: 16, Semester: spring, Status: models.StatusActive},
	}
}

func professors() []models.Professor {
	return []models.Professor{
		{ID: "prof-001", FirstName: "Robert", LastName: "Johnson", Email: "robert.johnson@university.edu", Phone: "(555) 111-2222", Department: "Computer Science", Specialization: "Artificial Intelligence", JoinDate: "2015-08-15", Status: models.StatusActive},
		{ID: "prof-002", FirstName: "Jennifer", LastName: "Smith", Email: "jennifer.smith@university.edu", Phone: "(555) 222-3333", Department: "Mathematics", Specialization: "Calculus", JoinDate: "2010-01-10", Status: models.StatusActive},
		{ID: "prof-003", FirstName: "David", LastName: "Williams", Email: "david.williams@university.edu", Phone: "(555) 333-4444", Department: "Physics", Specialization: "Quantum Mechanics", JoinDate: "2012-07-20", Status: models.StatusActive},
		{ID: "prof-004", FirstName: "Sarah", LastName: "Brown", Email: "sarah.brown@university.edu", Phone: "(555) 444-5555", Department: "English", Specialization: "American Literature", JoinDate: "2013-09-01", Status: models.StatusActive},
		{ID: "prof-005", FirstName: "Michael", LastName: "Miller", Email: "michael.miller@university.edu", Phone: "(555) 555-6666", Department: "Biology", Specialization: "Molecular Biology", JoinDate: "2018-01-15", Status: models.StatusActive},
		{ID: "prof-006", FirstName: "Elizabeth", LastName: "Davis", Email: "elizabeth.davis@university.edu", Phone: "(555) 666-7777", Department: "Chemistry", Specialization: "Organic Chemistry", JoinDate: "2014-08-10", Status: models.StatusActive},
		{ID: "prof-007", FirstName: "James", LastName: "Wilson", Email: "james.wilson@university.edu", Phone: "(555) 777-8888", Department: "Computer Science", Specialization: "Database Systems", JoinDate: "2016-01-05", Status: models.StatusActive},
		{ID: "prof-008", FirstName: "Patricia", LastName: "Moore", Email: "patricia.moore@university.edu", Phone: "(555) 888-9999", Department: "Computer Science", Specialization: "Software Engineering", JoinDate: "2019-08-20", Status: models.StatusInactive},
		{ID: "prof-009", FirstName: "Richard", LastName: "Taylor", Email: "richard.taylor@university.edu", Phone: "(555) 999-0000", Department: "Mathematics", Specialization: "Linear Algebra", JoinDate: "2011-08-15", Status: models.StatusActive},
		{ID: "prof-010", FirstName: "Jessica", LastName: "Anderson", Email: "jessica.anderson@university.edu", Phone: "(555) 000-1111", Department: "English", Specialization: "Composition", JoinDate: "2017-08-15", Status: models.StatusActive},
	}
}

func assignments() []models.TeachingAssignment {
	fallEnd := func() *string {
		end := "2023-12-15"
		return &end
	}
	return []models.TeachingAssignment{
		{ID: "ta-001", ProfessorID: "prof-001", CourseID: "cs-101", StartDate: "2023-09-01", EndDate: fallEnd(), Status: models.AssignmentActive},
		{ID: "ta-002", ProfessorID: "prof-007", CourseID: "cs-301", StartDate: "2023-09-01", EndDate: fallEnd(), Status: models.AssignmentActive},
		{ID: "ta-003", ProfessorID: "prof-002", CourseID: "math-101", StartDate: "2023-09-01", EndDate: fallEnd(), Status: models.AssignmentActive},
		{ID: "ta-004", ProfessorID: "prof-009", CourseID: "math-201", StartDate: "2024-01-15", Status: models.AssignmentActive},
		{ID: "ta-005", ProfessorID: "prof-004", CourseID: "eng-101", StartDate: "2023-09-01", EndDate: fallEnd(), Status: models.AssignmentActive},
		{ID: "ta-006", ProfessorID: "prof-003", CourseID: "phy-101", StartDate: "2024-01-15", Status: models.AssignmentActive},
		{ID: "ta-007", ProfessorID: "prof-005", CourseID: "bio-101", StartDate: "2023-09-01", EndDate: fallEnd(), Status: models.AssignmentActive},
		{ID: "ta-008", ProfessorID: "prof-006", CourseID: "chem-101", StartDate: "2024-01-15", Status: models.AssignmentActive},
		{ID: "ta-009", ProfessorID: "prof-008", CourseID: "cs-401", StartDate: "2024-01-15", Status: models.AssignmentCancelled},
		{ID: "ta-010", ProfessorID: "prof-001", CourseID: "cs-201", StartDate: "2024-01-15", Status: models.AssignmentActive},
	}
}

func enrollments() []models.CourseEnrollment {
	return []models.CourseEnrollment{
		{ID: "enr-001", StudentID: "st-001", CourseID: "cs-101", EnrollmentDate: "2023-08-25", Status: models.EnrollmentEnrolled},
		{ID: "enr-002", StudentID: "st-001", CourseID: "math-101", EnrollmentDate: "2023-08-25", Status: models.EnrollmentEnrolled},
		{ID: "enr-003", StudentID: "st-002", CourseID: "cs-101", EnrollmentDate: "2023-08-26", Status: models.EnrollmentEnrolled},
		{ID: "enr-004", StudentID: "st-002", CourseID: "eng-101", EnrollmentDate: "2023-08-26", Status: models.EnrollmentEnrolled},
		{ID: "enr-005", StudentID: "st-003", CourseID: "bio-101", EnrollmentDate: "2023-08-24", Status: models.EnrollmentEnrolled},
		{ID: "enr-006", StudentID: "st-003", CourseID: "cs-301", EnrollmentDate: "2023-08-24", Status: models.EnrollmentEnrolled},
		{ID: "enr-007", StudentID: "st-004", CourseID: "cs-101", EnrollmentDate: "2023-08-25", Status: models.EnrollmentDropped},
		{ID: "enr-008", StudentID: "st-004", CourseID: "phy-101", EnrollmentDate: "2023-12-20", Status: models.EnrollmentEnrolled},
		{ID: "enr-009", StudentID: "st-005", CourseID: "cs-401", EnrollmentDate: "2023-08-25", Status: models.EnrollmentCompleted},
		{ID: "enr-010", StudentID: "st-006", CourseID: "math-101", EnrollmentDate: "2023-08-27", Status: models.EnrollmentEnrolled},
		{ID: "enr-011", StudentID: "st-007", CourseID: "eng-101", EnrollmentDate: "2023-08-25", Status: models.EnrollmentEnrolled},
		{ID: "enr-012", StudentID: "st-008", CourseID: "cs-101", EnrollmentDate: "2023-08-26", Status: models.EnrollmentEnrolled},
		{ID: "enr-013", StudentID: "st-009", CourseID: "math-201", EnrollmentDate: "2023-12-20", Status: models.EnrollmentEnrolled},
		{ID: "enr-014", StudentID: "st-010", CourseID: "chem-101", EnrollmentDate: "2023-12-21", Status: models.EnrollmentEnrolled},
		{ID: "enr-015", StudentID: "st-005", CourseID: "cs-301", EnrollmentDate: "2023-08-25", Status: models.EnrollmentCompleted},
	}
}

// marks keeps the hand-entered grade labels, which do not always
// agree with the grading ladder (e.g. 92 -> "A-").
func marks() []models.Mark {
	mark := func(id, student, course, prof string, value int, grade, submitted string) models.Mark {
		return models.Mark{
			ID:             id,
			StudentID:      student,
			CourseID:       course,
			ProfessorID:    prof,
			Marks:          value,
			Grade:          grade,
			Semester:       "Fall 2023",
			AcademicYear:   "2023-2024",
			SubmissionDate: submitted,
		}
	}
	return []models.Mark{
		mark("mrk-001", "st-001", "cs-101", "prof-001", 88, "B+", "2023-12-20"),
		mark("mrk-002", "st-001", "math-101", "prof-002", 92, "A-", "2023-12-19"),
		mark("mrk-003", "st-002", "cs-101", "prof-001", 78, "C+", "2023-12-20"),
		mark("mrk-004", "st-002", "eng-101", "prof-004", 85, "B", "2023-12-18"),
		mark("mrk-005", "st-003", "bio-101", "prof-005", 90, "A-", "2023-12-19"),
		mark("mrk-006", "st-003", "cs-301", "prof-007", 82, "B-", "2023-12-21"),
		mark("mrk-007", "st-005", "cs-401", "prof-008", 95, "A", "2023-12-15"),
		mark("mrk-008", "st-006", "math-101", "prof-002", 88, "B+", "2023-12-19"),
		mark("mrk-009", "st-007", "eng-101", "prof-004", 72, "C", "2023-12-18"),
		mark("mrk-010", "st-008", "cs-101", "prof-001", 93, "A", "2023-12-20"),
		mark("mrk-011", "st-005", "cs-301", "prof-007", 91, "A-", "2023-12-21"),
	}
}
