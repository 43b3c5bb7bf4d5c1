package taskstore

import "dayplan/internal/model"

// DefaultSeed is the sample day shown on first run or after an unreadable
// store, dated to the given day.
func DefaultSeed(date string) []model.Task {
	return []model.Task{
		{ID: "1", Title: "Buy a pack of coffee", Time: "10:30 - 11:00", Completed: true, Category: model.CategoryPersonal, Date: date},
		{ID: "2", Title: "Add new partners", Time: "11:30 - 13:00", Category: model.CategoryWork, Date: date},
		{ID: "3", Title: "Add new partners", Time: "13:00 - 14:00", Category: model.CategoryWork, Date: date},
		{ID: "4", Title: "Meeting on work", Time: "14:00", Category: model.CategoryWork, Date: date},
		{ID: "5", Title: "Team Football", Time: "20:00", Category: model.CategorySport, Date: date},
		{ID: "6", Title: "New project", Time: "21:00", Category: model.CategoryWork, Date: date},
	}
}
