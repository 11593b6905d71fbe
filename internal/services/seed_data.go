package services

import (
	"time"

	"github.com/raja-bazar/makhtab-admin-service/internal/models"
)

// Built-in demo dataset used to populate an empty store.

func seedTeachers() []models.Teacher {
	return []models.Teacher{
		{
			ID:       "t1",
			Name:     "Qari Hafizur Rahman sb",
			Photo:    "https://api.dicebear.com/7.x/avataaars/svg?seed=rahman",
			Subjects: []string{"Quran", "Tajweed"},
			Contact:  "9876543210",
			Email:    "rahman@rajabazar.edu",
			WeeklyAvailability: []models.WeeklySlot{
				{Day: 1, StartTime: "09:00", EndTime: "11:00"},
				{Day: 3, StartTime: "09:00", EndTime: "11:00"},
				{Day: 5, StartTime: "09:00", EndTime: "11:00"},
			},
			IsEnabled: true,
		},
		{
			ID:       "t2",
			Name:     "Hafiz Nawaid Sb",
			Photo:    "https://api.dicebear.com/7.x/avataaars/svg?seed=zubair",
			Subjects: []string{"Arabic Grammar", "Fiqh"},
			Contact:  "9876543211",
			Email:    "zubair@rajabazar.edu",
			WeeklyAvailability: []models.WeeklySlot{
				{Day: 2, StartTime: "10:00", EndTime: "12:00"},
				{Day: 4, StartTime: "10:00", EndTime: "12:00"},
			},
			IsEnabled: true,
		},
		{
			ID:       "t3",
			Name:     "Hafiz Arman Sb",
			Photo:    "https://api.dicebear.com/7.x/avataaars/svg?seed=imran",
			Subjects: []string{"Hadith", "Islamic History"},
			Contact:  "9876543212",
			Email:    "imran@rajabazar.edu",
			WeeklyAvailability: []models.WeeklySlot{
				{Day: 1, StartTime: "14:00", EndTime: "16:00"},
				{Day: 3, StartTime: "14:00", EndTime: "16:00"},
				{Day: 5, StartTime: "14:00", EndTime: "16:00"},
			},
			IsEnabled: true,
		},
		{
			ID:       "t4",
			Name:     "Hafiz Saif sb",
			Photo:    "https://api.dicebear.com/7.x/avataaars/svg?seed=kaif",
			Subjects: []string{"Quran Memorization", "Tafseer"},
			Contact:  "9876543213",
			Email:    "kaif@rajabazar.edu",
			WeeklyAvailability: []models.WeeklySlot{
				{Day: 0, StartTime: "08:00", EndTime: "10:00"},
				{Day: 2, StartTime: "08:00", EndTime: "10:00"},
				{Day: 4, StartTime: "08:00", EndTime: "10:00"},
			},
			IsEnabled: true,
		},
		{
			ID:       "t5",
			Name:     "Maulana Farhan Ali",
			Photo:    "https://api.dicebear.com/7.x/avataaars/svg?seed=farhan",
			Subjects: []string{"Islamic Jurisprudence", "Aqeedah"},
			Contact:  "9876543214",
			Email:    "farhan@rajabazar.edu",
			WeeklyAvailability: []models.WeeklySlot{
				{Day: 1, StartTime: "11:00", EndTime: "13:00"},
				{Day: 3, StartTime: "11:00", EndTime: "13:00"},
			},
			IsEnabled: true,
		},
		{
			ID:       "t6",
			Name:     "Ustadh Rizwan Shah",
			Photo:    "https://api.dicebear.com/7.x/avataaars/svg?seed=rizwan",
			Subjects: []string{"Arabic Literature", "Urdu"},
			Contact:  "9876543215",
			Email:    "rizwan@rajabazar.edu",
			WeeklyAvailability: []models.WeeklySlot{
				{Day: 2, StartTime: "14:00", EndTime: "16:00"},
				{Day: 4, StartTime: "14:00", EndTime: "16:00"},
			},
			IsEnabled: true,
		},
		{
			ID:       "t7",
			Name:     "Maulana Sohail Ansari",
			Photo:    "https://api.dicebear.com/7.x/avataaars/svg?seed=sohail",
			Subjects: []string{"Fiqh", "Hadith"},
			Contact:  "9876543216",
			Email:    "sohail@rajabazar.edu",
			WeeklyAvailability: []models.WeeklySlot{
				{Day: 0, StartTime: "10:00", EndTime: "12:00"},
				{Day: 5, StartTime: "10:00", EndTime: "12:00"},
			},
			IsEnabled: true,
		},
		{
			ID:       "t8",
			Name:     "Ustadh Nadeem Malik",
			Photo:    "https://api.dicebear.com/7.x/avataaars/svg?seed=nadeem",
			Subjects: []string{"Islamic Ethics", "Seerah"},
			Contact:  "9876543217",
			Email:    "nadeem@rajabazar.edu",
			WeeklyAvailability: []models.WeeklySlot{
				{Day: 1, StartTime: "15:00", EndTime: "17:00"},
				{Day: 4, StartTime: "15:00", EndTime: "17:00"},
			},
			IsEnabled: true,
		},
		{
			ID:       "t9",
			Name:     "Maulana Yusuf Siddiqui",
			Photo:    "https://api.dicebear.com/7.x/avataaars/svg?seed=yusuf",
			Subjects: []string{"Quran", "Tajweed", "Arabic"},
			Contact:  "9876543218",
			Email:    "yusuf@rajabazar.edu",
			WeeklyAvailability: []models.WeeklySlot{
				{Day: 2, StartTime: "09:00", EndTime: "11:00"},
				{Day: 3, StartTime: "09:00", EndTime: "11:00"},
				{Day: 5, StartTime: "09:00", EndTime: "11:00"},
			},
			IsEnabled: true,
		},
		{
			ID:       "t10",
			Name:     "Ustadh Asif Raza",
			Photo:    "https://api.dicebear.com/7.x/avataaars/svg?seed=asif",
			Subjects: []string{"Mathematics", "Science", "English"},
			Contact:  "9876543219",
			Email:    "asif@rajabazar.edu",
			WeeklyAvailability: []models.WeeklySlot{
				{Day: 0, StartTime: "13:00", EndTime: "15:00"},
				{Day: 2, StartTime: "13:00", EndTime: "15:00"},
				{Day: 4, StartTime: "13:00", EndTime: "15:00"},
			},
			IsEnabled: true,
		},
	}
}

func seedStudents() []models.Student {
	return []models.Student{
		{ID: "s11", Name: "Hafsa Begum", Class: "Fazil-1", GuardianPhone: "9123456790", GuardianName: "Begum Sahiba", AssignedTeachers: []string{"t5", "t6", "t8"}, EnrollmentDate: "2023-05-20"},
		{ID: "s12", Name: "Khalid Ansari", Class: "Fazil-1", GuardianPhone: "9123456791", GuardianName: "Ansari Sahab", AssignedTeachers: []string{"t5", "t6", "t8"}, EnrollmentDate: "2023-05-20"},
		{ID: "s13", Name: "Ruqayyah Khan", Class: "Fazil-1", GuardianPhone: "9123456792", GuardianName: "Khan Sahab", AssignedTeachers: []string{"t5", "t6", "t8"}, EnrollmentDate: "2023-05-20"},
		{ID: "s14", Name: "Hamza Ali", Class: "Fazil-2", GuardianPhone: "9123456793", GuardianName: "Ali Miyan", AssignedTeachers: []string{"t5", "t7", "t8"}, EnrollmentDate: "2023-06-15"},
		{ID: "s15", Name: "Zara Khatoon", Class: "Fazil-2", GuardianPhone: "9123456794", GuardianName: "Khatoon Bibi", AssignedTeachers: []string{"t5", "t7", "t8"}, EnrollmentDate: "2023-06-15"},
		{ID: "s16", Name: "Omar Farooq", Class: "Nazra-1", GuardianPhone: "9123456795", GuardianName: "Farooq Sahab", AssignedTeachers: []string{"t1", "t10"}, EnrollmentDate: "2023-07-01"},
		{ID: "s17", Name: "Amina Yasmin", Class: "Nazra-1", GuardianPhone: "9123456796", GuardianName: "Yasmin Bibi", AssignedTeachers: []string{"t1", "t10"}, EnrollmentDate: "2023-07-01"},
		{ID: "s18", Name: "Yusuf Abdullah", Class: "Nazra-1", GuardianPhone: "9123456797", GuardianName: "Abdullah Mia", AssignedTeachers: []string{"t1", "t10"}, EnrollmentDate: "2023-07-01"},
		{ID: "s19", Name: "Safiya Rahman", Class: "Nazra-2", GuardianPhone: "9123456798", GuardianName: "Rahman Sahab", AssignedTeachers: []string{"t1", "t9", "t10"}, EnrollmentDate: "2023-08-10"},
		{ID: "s20", Name: "Tariq Alam", Class: "Nazra-2", GuardianPhone: "9123456799", GuardianName: "Alam Bhai", AssignedTeachers: []string{"t1", "t9", "t10"}, EnrollmentDate: "2023-08-10"},
		{ID: "s21", Name: "Khadija Bibi", Class: "Nazra-2", GuardianPhone: "9123456800", GuardianName: "Bibi Sahiba", AssignedTeachers: []string{"t1", "t9", "t10"}, EnrollmentDate: "2023-08-10"},
		{ID: "s22", Name: "Salman Shah", Class: "Hifz-1", GuardianPhone: "9123456801", GuardianName: "Shah Sahab", AssignedTeachers: []string{"t1", "t4"}, EnrollmentDate: "2023-09-05"},
		{ID: "s23", Name: "Nadia Sultana", Class: "Hifz-2", GuardianPhone: "9123456802", GuardianName: "Sultana Begum", AssignedTeachers: []string{"t1", "t3"}, EnrollmentDate: "2023-09-05"},
		{ID: "s24", Name: "Imran Siddique", Class: "Alim-1", GuardianPhone: "9123456803", GuardianName: "Siddique Miyan", AssignedTeachers: []string{"t2", "t5", "t9"}, EnrollmentDate: "2023-10-01"},
		{ID: "s25", Name: "Sumaya Nasreen", Class: "Fazil-1", GuardianPhone: "9123456804", GuardianName: "Nasreen Apa", AssignedTeachers: []string{"t5", "t6", "t8"}, EnrollmentDate: "2023-10-01"},
	}
}

func seedTests() []models.Test {
	return []models.Test{
		{
			ID: "test1", Title: "Quran Recitation Assessment", Class: "Hifz-1", Subject: "Quran",
			Date: "2024-01-15", MaxMarks: 100, TeacherID: "t1",
			Results: []models.TestResult{
				{StudentID: "s22", MarksObtained: 82, Percentage: 82, Grade: "A-", Comments: "Very good"},
			},
		},
		{
			ID: "test2", Title: "Arabic Grammar - Mid Term", Class: "Alim-1", Subject: "Arabic Grammar",
			Date: "2024-01-20", MaxMarks: 100, TeacherID: "t2",
			Results: []models.TestResult{
				{StudentID: "s24", MarksObtained: 80, Percentage: 80, Grade: "A-", Comments: "Well done"},
			},
		},
		{
			ID: "test3", Title: "Hadith Studies - Quiz", Class: "Alim-2", Subject: "Hadith",
			Date: "2024-02-05", MaxMarks: 50, TeacherID: "t3",
			Results: []models.TestResult{},
		},
		{
			ID: "test4", Title: "Fiqh - Practical Assessment", Class: "Fazil-1", Subject: "Fiqh",
			Date: "2024-02-10", MaxMarks: 100, TeacherID: "t5",
			Results: []models.TestResult{
				{StudentID: "s11", MarksObtained: 88, Percentage: 88, Grade: "A", Comments: "Clear understanding"},
				{StudentID: "s12", MarksObtained: 85, Percentage: 85, Grade: "A", Comments: "Very good"},
				{StudentID: "s13", MarksObtained: 90, Percentage: 90, Grade: "A+", Comments: "Exceptional"},
				{StudentID: "s25", MarksObtained: 82, Percentage: 82, Grade: "A-", Comments: "Good work"},
			},
		},
		{
			ID: "test5", Title: "Tajweed Rules - Oral Test", Class: "Hifz-2", Subject: "Tajweed",
			Date: "2024-02-15", MaxMarks: 100, TeacherID: "t1",
			Results: []models.TestResult{
				{StudentID: "s23", MarksObtained: 89, Percentage: 89, Grade: "A", Comments: "Excellent"},
			},
		},
		{
			ID: "test6", Title: "Islamic History - Written Exam", Class: "Alim-2", Subject: "Islamic History",
			Date: "2024-02-20", MaxMarks: 100, TeacherID: "t3",
			Results: []models.TestResult{},
		},
	}
}

// seedAttendance dates are relative to seeding time so the demo dashboard
// always shows recent sittings.
func seedAttendance(now time.Time) []models.AttendanceRecord {
	daysAgo := func(n int) string {
		return now.AddDate(0, 0, -n).Format("2006-01-02")
	}

	return []models.AttendanceRecord{
		{
			ID: "att1", TeacherID: "t1", Date: daysAgo(5), Status: models.AttendanceHeld,
			Students: []models.StudentMark{{StudentID: "s22", Status: models.PresenceAbsent}},
		},
		{
			ID: "att2", TeacherID: "t1", Date: daysAgo(3), Status: models.AttendanceHeld,
			Students: []models.StudentMark{{StudentID: "s22", Status: models.PresencePresent}},
		},
		{
			ID: "att3", TeacherID: "t2", Date: daysAgo(4), Status: models.AttendanceHeld,
			Students: []models.StudentMark{{StudentID: "s24", Status: models.PresencePresent}},
		},
		{
			ID: "att4", TeacherID: "t2", Date: daysAgo(2), Status: models.AttendanceCancelled,
			Students: []models.StudentMark{},
		},
	}
}

func seedNotices() []models.Notice {
	return []models.Notice{
		{
			ID:    "n1",
			Title: "Ramadan Schedule Update",
			Content: "During the holy month of Ramadan, classes will be held from 8:00 AM to 12:00 PM. " +
				"Special Taraweeh arrangements will be made in the evening.",
			Type:       models.NoticeGeneral,
			ExpiryDate: "2024-04-30",
			IsPinned:   true,
			CreatedAt:  time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC),
			CreatedBy:  "admin",
		},
		{
			ID:          "n2",
			Title:       "Hifz-1 Class Test on Saturday",
			Content:     "All Hifz-1 students must prepare Surah Al-Baqarah verses 1-50 for the upcoming test.",
			Type:        models.NoticeClassSpecific,
			TargetClass: "Hifz-1",
			ExpiryDate:  "2024-03-15",
			IsPinned:    false,
			CreatedAt:   time.Date(2024, 2, 5, 14, 30, 0, 0, time.UTC),
			CreatedBy:   "admin",
		},
		{
			ID:    "n3",
			Title: "Fee Payment Reminder",
			Content: "Monthly fees for February must be submitted by 10th February. " +
				"Please use the Payments section for online payment or contact the office.",
			Type:       models.NoticeGeneral,
			ExpiryDate: "2024-02-10",
			IsPinned:   true,
			CreatedAt:  time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC),
			CreatedBy:  "admin",
		},
		{
			ID:         "n4",
			Title:      "Parent-Teacher Meeting",
			Content:    "A parent-teacher meeting is scheduled for all classes on 25th February at 3:00 PM. Attendance is mandatory.",
			Type:       models.NoticeGeneral,
			ExpiryDate: "2024-02-25",
			IsPinned:   false,
			CreatedAt:  time.Date(2024, 2, 10, 11, 0, 0, 0, time.UTC),
			CreatedBy:  "admin",
		},
	}
}

func seedPayments() []models.Payment {
	return []models.Payment{
		{
			ID:          "p3",
			StudentID:   "s11",
			StudentName: "Hafsa Begum",
			Class:       "Fazil-1",
			Amount:      1600,
			Date:        "2024-02-03",
			Method:      "UPI",
			Status:      models.PaymentPending,
		},
	}
}
