package authz

import "github.com/arunkumarcpv007-tech/smart-classroom-app/internal/models"

// View is the top-level navigation state. Landing and Login are
// unauthenticated; Dashboard requires an active session.
type View string

const (
	ViewLanding   View = "landing"
	ViewLogin     View = "login"
	ViewDashboard View = "dashboard"
)

// CanTransition validates root-controller navigation. Dashboard is only
// reachable with a session; logout always lands back on Landing.
func CanTransition(from, to View, hasSession bool) bool {
	switch to {
	case ViewDashboard:
		return hasSession
	case ViewLanding, ViewLogin:
		return true
	default:
		return false
	}
}

// PageID identifies one dashboard page.
type PageID string

const (
	PageDashboard     PageID = "dashboard"
	PageUsers         PageID = "users"
	PageAnnouncements PageID = "announcements"
	PageWhiteboard    PageID = "whiteboard"
	PageSettings      PageID = "settings"
	PageAttendance    PageID = "attendance"
	PageAssignments   PageID = "assignments"
	PageNotes         PageID = "notes"
	PageProfile       PageID = "profile"
	PageLeaderboard   PageID = "leaderboard"
	PageTimer         PageID = "timer"
	PageCalculator    PageID = "calculator"
	PageIDCard        PageID = "idcard"
)

// Action names a gated mutation.
type Action string

const (
	ActionManageUsers    Action = "manage_users"
	ActionAwardXP        Action = "award_xp"
	ActionTakeAttendance Action = "take_attendance"
	ActionManageWork     Action = "manage_assignments"
	ActionManageNotes    Action = "manage_notes"
	ActionBroadcast      Action = "broadcast"
)

var rolePages = map[models.UserRole][]PageID{
	models.RoleAdmin: {
		PageDashboard, PageUsers, PageAnnouncements, PageWhiteboard, PageSettings,
	},
	models.RoleTeacher: {
		PageDashboard, PageAttendance, PageAssignments, PageNotes, PageUsers,
		PageWhiteboard, PageProfile,
	},
	models.RoleStudent: {
		PageDashboard, PageLeaderboard, PageTimer, PageCalculator, PageIDCard,
		PageWhiteboard, PageAttendance, PageAssignments, PageNotes, PageProfile,
	},
}

var roleActions = map[models.UserRole]map[Action]bool{
	models.RoleAdmin: {
		ActionManageUsers:    true,
		ActionAwardXP:        true,
		ActionTakeAttendance: true,
		ActionManageWork:     true,
		ActionManageNotes:    true,
		ActionBroadcast:      true,
	},
	models.RoleTeacher: {
		ActionAwardXP:        true,
		ActionTakeAttendance: true,
		ActionManageWork:     true,
		ActionManageNotes:    true,
	},
	models.RoleStudent: {},
}

// PagesFor returns the fixed navigation menu for a role. The menu is the whole
// gate on page visibility: pages are not re-validated individually, so every
// write path must additionally go through CanMutate.
func PagesFor(role models.UserRole) []PageID {
	pages := rolePages[role]
	out := make([]PageID, len(pages))
	copy(out, pages)
	return out
}

// CanView reports whether the page appears in the role's menu.
func CanView(role models.UserRole, page PageID) bool {
	for _, p := range rolePages[role] {
		if p == page {
			return true
		}
	}
	return false
}

// CanMutate is the server-side capability check consulted before every gated
// write, independent of what the menu advertises.
func CanMutate(role models.UserRole, action Action) bool {
	return roleActions[role][action]
}
