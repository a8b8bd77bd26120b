package models

type AssignmentStatus string

const (
	AssignmentPending   AssignmentStatus = "pending"
	AssignmentSubmitted AssignmentStatus = "submitted"
	AssignmentGraded    AssignmentStatus = "graded"
)

// Assignment status moves pending -> submitted -> graded in practice, but the
// store does not enforce the ordering; any status can be written at any time.
type Assignment struct {
	ID          string           `json:"id"`
	Title       string           `json:"title" validate:"required,max=200"`
	Description string           `json:"description" validate:"max=1000"`
	DueDate     string           `json:"dueDate" validate:"required,datetime=2006-01-02"`
	ClassID     string           `json:"classId" validate:"required"`
	Status      AssignmentStatus `json:"status" validate:"required,assignment_status"`
}

func (Assignment) CollectionKey() string {
	return "assignments"
}
