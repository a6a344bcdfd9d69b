package models

// Location is a geographic point selected on the map.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Marker представляет геоточку, принадлежащую ровно одному слою
type Marker struct {
	ID           string             `json:"_id"`
	LayerID      string             `json:"layer"`        // слой, к которому привязан маркер
	UserID       string             `json:"user"`         // владелец
	Title        string             `json:"title"`        // заголовок
	Description  string             `json:"description"`  // описание
	Color        string             `json:"marker_color"` // цвет иконки, #rrggbb
	Location     Location           `json:"location"`
	Preview      *FileRef           `json:"preview,omitempty"`       // превью-изображение
	CustomFields []CustomFieldValue `json:"custom_fields,omitempty"` // значения полей схемы слоя
}
