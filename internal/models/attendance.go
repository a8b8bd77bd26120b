package models

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
)

// AttendanceRecord holds one student's status for one date. At most one record
// exists per (date, studentId) pair; saving again for the same pair replaces it.
type AttendanceRecord struct {
	ID        string           `json:"id"`
	Date      string           `json:"date" validate:"required,datetime=2006-01-02"`
	ClassID   string           `json:"classId" validate:"required"`
	StudentID string           `json:"studentId" validate:"required"`
	Status    AttendanceStatus `json:"status" validate:"required,attendance_status"`
}

func (AttendanceRecord) CollectionKey() string {
	return "attendance"
}
