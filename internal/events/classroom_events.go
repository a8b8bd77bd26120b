package events

import "time"

// EventType represents the classroom events published for external consumers.
type EventType string

const (
	// Announcement events
	EventAnnouncementPosted  EventType = "announcement.posted"
	EventAnnouncementCleared EventType = "announcement.cleared"

	// Directory events
	EventXPAwarded EventType = "user.xp_awarded"

	// Attendance events
	EventAttendanceRecorded EventType = "attendance.recorded"
)

// ClassroomEvent is the envelope shared by all published events.
type ClassroomEvent struct {
	ID        string                 `json:"id"`
	Type      EventType              `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Source    string                 `json:"source"`
	Version   string                 `json:"version"`
	Data      interface{}            `json:"data"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// Event payloads

type AnnouncementPostedEvent struct {
	Message  string `json:"message"`
	PostedBy string `json:"posted_by"`
}

type AnnouncementClearedEvent struct {
	ClearedBy string `json:"cleared_by"`
}

type XPAwardedEvent struct {
	StudentID string `json:"student_id"`
	Amount    int    `json:"amount"`
	AwardedBy string `json:"awarded_by"`
}

type AttendanceRecordedEvent struct {
	Date       string   `json:"date"`
	ClassID    string   `json:"class_id"`
	StudentIDs []string `json:"student_ids"`
	RecordedBy string   `json:"recorded_by"`
}
