package models

// RoleType defines the user role type
type RoleType string

const (
	RoleAdmin   RoleType = "admin"
	RoleTeacher RoleType = "teacher"
	RoleStaff   RoleType = "staff"
	RoleStudent RoleType = "student"
)

// IsKnownRole reports whether role is one of the four accepted role values.
func IsKnownRole(role string) bool {
	switch RoleType(role) {
	case RoleAdmin, RoleTeacher, RoleStaff, RoleStudent:
		return true
	}
	return false
}

// InstitutionType defines the kind of institution a tenant represents
type InstitutionType string

const (
	InstitutionHighSchool    InstitutionType = "high-school"
	InstitutionUniversity    InstitutionType = "university"
	InstitutionTechnical     InstitutionType = "technical"
	InstitutionInternational InstitutionType = "international"
)

// EducationSystem defines the curriculum system of an institution
type EducationSystem string

const (
	SystemBritish  EducationSystem = "british"
	SystemAmerican EducationSystem = "american"
	SystemIB       EducationSystem = "ib"
	SystemCustom   EducationSystem = "custom"
)

// AttendanceStatus defines the status of an attendance record
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
	AttendanceExcused AttendanceStatus = "excused"
)
