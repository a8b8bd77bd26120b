package store

import "github.com/arunkumarcpv007-tech/smart-classroom-app/internal/models"

// Demo dataset written on first run: one admin, one teacher and ten students
// of class c1, four study notes and a welcome notification.

func seedUsers() []models.User {
	return []models.User{
		{ID: "u1", Name: "Admin Master", Email: "admin@scms.com", Role: models.RoleAdmin, Avatar: "https://i.pravatar.cc/150?u=u1", XP: 0},
		{ID: "u2", Name: "Sarah Wilson", Email: "teacher@scms.com", Role: models.RoleTeacher, Avatar: "https://i.pravatar.cc/150?u=u2", XP: 0},
		{ID: "u3", Name: "John Doe", Email: "student@scms.com", Role: models.RoleStudent, ClassID: "c1", RollNo: "101", Avatar: "https://i.pravatar.cc/150?u=u3", XP: 850},
		{ID: "u4", Name: "Emma Watson", Email: "emma@scms.com", Role: models.RoleStudent, ClassID: "c1", RollNo: "102", Avatar: "https://i.pravatar.cc/150?u=u4", XP: 920},
		{ID: "u5", Name: "Michael Smith", Email: "michael@scms.com", Role: models.RoleStudent, ClassID: "c1", RollNo: "103", Avatar: "https://i.pravatar.cc/150?u=u5", XP: 740},
		{ID: "u6", Name: "Sophia Brown", Email: "sophia@scms.com", Role: models.RoleStudent, ClassID: "c1", RollNo: "104", Avatar: "https://i.pravatar.cc/150?u=u6", XP: 610},
		{ID: "u7", Name: "Daniel Wilson", Email: "daniel@scms.com", Role: models.RoleStudent, ClassID: "c1", RollNo: "105", Avatar: "https://i.pravatar.cc/150?u=u7", XP: 550},
		{ID: "u8", Name: "Olivia Garcia", Email: "olivia@scms.com", Role: models.RoleStudent, ClassID: "c1", RollNo: "106", Avatar: "https://i.pravatar.cc/150?u=u8", XP: 490},
		{ID: "u9", Name: "James Miller", Email: "james@scms.com", Role: models.RoleStudent, ClassID: "c1", RollNo: "107", Avatar: "https://i.pravatar.cc/150?u=u9", XP: 950},
		{ID: "u10", Name: "Isabella Davis", Email: "isabella@scms.com", Role: models.RoleStudent, ClassID: "c1", RollNo: "108", Avatar: "https://i.pravatar.cc/150?u=u10", XP: 820},
		{ID: "u11", Name: "Ethan Rodriguez", Email: "ethan@scms.com", Role: models.RoleStudent, ClassID: "c1", RollNo: "109", Avatar: "https://i.pravatar.cc/150?u=u11", XP: 300},
		{ID: "u12", Name: "Mia Martinez", Email: "mia@scms.com", Role: models.RoleStudent, ClassID: "c1", RollNo: "110", Avatar: "https://i.pravatar.cc/150?u=u12", XP: 450},
	}
}

func seedNotes() []models.Note {
	return []models.Note{
		{ID: "n1", Title: "Introduction to Calculus", Subject: "Mathematics", Content: "Fundamentals of derivatives and integrals.", UploadedBy: "u2", ClassID: "c1", Date: "2024-12-01"},
		{ID: "n2", Title: "Newtonian Physics", Subject: "Physics", Content: "Three laws of motion and universal gravitation.", UploadedBy: "u2", ClassID: "c1", Date: "2024-12-05"},
		{ID: "n3", Title: "Cell Biology", Subject: "Science", Content: "Structure and function of eukaryotic cells.", UploadedBy: "u2", ClassID: "c1", Date: "2024-12-10"},
		{ID: "n4", Title: "Shakespearean Sonnets", Subject: "English", Content: "Analysis of Sonnet 18 and poetic devices.", UploadedBy: "u2", ClassID: "c1", Date: "2024-12-12"},
	}
}

func seedNotifications() []models.Notification {
	return []models.Notification{
		{ID: "n1", Title: "Welcome!", Message: "Welcome to your premium classroom dashboard.", Time: "Just now", Read: false},
	}
}
