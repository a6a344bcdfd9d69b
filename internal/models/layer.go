package models

import "strings"

// LayerType определяет видимость слоя
type LayerType string

const (
	LayerPrivate LayerType = "private" // виден только владельцу
	LayerPublic  LayerType = "public"  // виден всем пользователям
)

// FieldType определяет тип пользовательского поля слоя
type FieldType string

const (
	FieldText      FieldType = "text"
	FieldMultiline FieldType = "multiline"
	FieldDate      FieldType = "date"
	FieldFile      FieldType = "file"
	FieldSelect    FieldType = "select"
)

// Layer представляет именованную группу маркеров с опциональной
// схемой дополнительных полей
type Layer struct {
	ID           string           `json:"_id"`            // идентификатор слоя
	Name         string           `json:"name"`           // имя слоя
	UserID       string           `json:"user,omitempty"` // владелец слоя
	Type         LayerType        `json:"type"`           // private | public
	CustomFields []CustomFieldDef `json:"custom_fields,omitempty"`
}

// CustomFieldDef describes one extra attribute the layer declares for its
// markers. The ID is generated on the client at authoring time and is only
// stable after the layer has been persisted.
type CustomFieldDef struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Type          FieldType `json:"type"`
	IsImportant   bool      `json:"is_important"`    // обязательное поле
	SelectOptions []string  `json:"items,omitempty"` // варианты для type=select
}

// Key returns the case-folded form key the field is bound under.
// Form values and validation messages are keyed by this name.
func (f CustomFieldDef) Key() string {
	return strings.ToLower(f.Name)
}

// CustomFieldValue is a field definition with a resolved value attached to
// a marker. Once resolved it carries no back-reference to the layer schema:
// editing the layer later does not rewrite already-stored values.
type CustomFieldValue struct {
	CustomFieldDef
	Value string `json:"value"` // URL для file, MM.dd.yyyy для date, иначе строка как есть
}

// CheckedLayer отмечает слой, маркеры которого сейчас видимы.
// Набор не персистится и выводится заново при загрузке коллекции.
type CheckedLayer struct {
	LayerID string
	UserID  string
}

// Pagination describes the position of the layer collection within the
// server-side paginated listing.
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	TotalDocs  int  `json:"totalDocs"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNextPage"`
	HasPrev    bool `json:"hasPrevPage"`
}
