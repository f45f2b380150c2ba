package models

// Task — элемент коллекции задач. Коллекция объявлена в документе
// базы, но пока ни один обработчик её не наполняет и не отдаёт.
type Task struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Status    string `json:"status"`
	AssigneID int    `json:"assigneeId"`
}

// StatisticsSnapshot — снимок статистики, хранимый в документе базы.
// Живые значения всегда пересчитываются эндпоинтом /api/statistics,
// снимок остаётся для совместимости формата файла.
type StatisticsSnapshot struct {
	TotalUsers     int `json:"totalUsers"`
	ActiveUsers    int `json:"activeUsers"`
	CompletedTasks int `json:"completedTasks"`
	PendingTasks   int `json:"pendingTasks"`
}

// Database — единый агрегат состояния приложения: упорядоченный список
// пользователей, список задач и снимок статистики. Именно в таком виде
// документ сериализуется файловым и redis-хранилищем.
type Database struct {
	Users      []User             `json:"users"`
	Tasks      []Task             `json:"tasks"`
	Statistics StatisticsSnapshot `json:"statistics"`
}

// FindUser возвращает пользователя по его ID или nil, если не найден.
func (d *Database) FindUser(id int) *User {
	for i := range d.Users {
		if d.Users[i].ID == id {
			return &d.Users[i]
		}
	}
	return nil
}

// FindUserByUsername возвращает пользователя по имени или nil.
func (d *Database) FindUserByUsername(username string) *User {
	for i := range d.Users {
		if d.Users[i].Username == username {
			return &d.Users[i]
		}
	}
	return nil
}

// FindUserByEmail возвращает пользователя по email или nil.
func (d *Database) FindUserByEmail(email string) *User {
	for i := range d.Users {
		if d.Users[i].Email == email {
			return &d.Users[i]
		}
	}
	return nil
}

// NextUserID выдаёт следующий идентификатор: максимум существующих плюс один.
// Счётчик не зависит от длины списка, поэтому удаление из середины
// не приводит к коллизии идентификаторов.
func (d *Database) NextUserID() int {
	maxID := 0
	for i := range d.Users {
		if d.Users[i].ID > maxID {
			maxID = d.Users[i].ID
		}
	}
	return maxID + 1
}
