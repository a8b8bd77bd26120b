package models

// Note is a study material entry. Notes are create/delete only; there is no
// edit operation, an "edit" is a delete plus a new note.
type Note struct {
	ID         string `json:"id"`
	Title      string `json:"title" validate:"required,max=200"`
	Subject    string `json:"subject" validate:"required,max=100"`
	Content    string `json:"content" validate:"required"`
	UploadedBy string `json:"uploadedBy" validate:"required"`
	ClassID    string `json:"classId" validate:"required"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
}

func (Note) CollectionKey() string {
	return "notes"
}
