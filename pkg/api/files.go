package api

// FileResponse представляет ответ файлового сервиса на загрузку
type FileResponse struct {
	ID  string `json:"_id"` // идентификатор для последующего удаления
	URL string `json:"url"` // публичный URL загруженного файла
}
