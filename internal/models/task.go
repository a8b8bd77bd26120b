package models

// Task is a personal to-do item assigned to a single user.
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"max=1000"`
	DueDate     string `json:"dueDate" validate:"required,datetime=2006-01-02"`
	ClassID     string `json:"classId"`
	Completed   bool   `json:"completed"`
	AssignedTo  string `json:"assignedTo" validate:"required"`
}

func (Task) CollectionKey() string {
	return "tasks"
}
