package models

// Notification is an in-app notice shown in the bell dropdown. Notifications
// are seeded or pushed by the system; nothing currently mutates Read
// per-notification, the UI only clears the whole list.
type Notification struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Time    string `json:"time"`
	Read    bool   `json:"read"`
}

func (Notification) CollectionKey() string {
	return "notifications"
}
