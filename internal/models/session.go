package models

type ThemeMode string

const (
	ThemeLight ThemeMode = "light"
	ThemeDark  ThemeMode = "dark"
)

// Session is the persisted snapshot of the currently signed-in user. It is a
// copy, not a live reference: profile edits must be synced into it explicitly
// or reads after an edit return stale identity data.
type Session struct {
	User User `json:"user"`
}
