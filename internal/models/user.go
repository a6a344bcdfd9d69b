package models

// User представляет текущего пользователя сессии
type User struct {
	ID          string   `json:"_id"`              // идентификатор пользователя на сервере
	FullName    string   `json:"full_name"`        // полное имя
	Email       string   `json:"email"`            // email (логин)
	IsActivated bool     `json:"is_activated"`     // подтвержден ли email
	Avatar      *FileRef `json:"avatar,omitempty"` // загруженный аватар, опционально
}

// FileRef is a reference to a file stored by the file collaborator.
// The same shape is used for avatars and marker previews.
type FileRef struct {
	ID  string `json:"_id"` // идентификатор файла (для удаления)
	URL string `json:"url"` // публичный URL
}
