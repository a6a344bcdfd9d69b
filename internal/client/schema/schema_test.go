package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/mapkeeper/internal/models"
)

func importantField(name string, fieldType models.FieldType) models.CustomFieldDef {
	return models.CustomFieldDef{
		ID:          "fld-" + strings.ToLower(name),
		Name:        name,
		Type:        fieldType,
		IsImportant: true,
	}
}

// TestBuild_BaseOnly: без custom-полей схема состоит только из базовых правил
func TestBuild_BaseOnly(t *testing.T) {
	s := Build(BaseMarkerRules(), nil)
	assert.Len(t, s.Rules(), 4)

	data := NewFormData().
		Set("title", "Office").
		Set("description", "Main office").
		Set("layer", "l1")

	assert.Empty(t, s.Validate(data))
}

// TestValidate_BaseRequired проверяет обязательность базовых полей
func TestValidate_BaseRequired(t *testing.T) {
	s := Build(BaseMarkerRules(), nil)

	errs := s.Validate(NewFormData())
	require.NotEmpty(t, errs)
	assert.Equal(t, "Title is a required field", errs["title"])
	assert.Equal(t, "Description is a required field", errs["description"])
	assert.Equal(t, "Layer is a required field", errs["layer"])
	assert.NotContains(t, errs, "marker_color", "color is optional")
}

// TestValidate_MaxLen проверяет лимиты длины из базовой схемы
func TestValidate_MaxLen(t *testing.T) {
	s := Build(BaseMarkerRules(), nil)

	data := NewFormData().
		Set("title", strings.Repeat("a", MaxTitleLen+1)).
		Set("description", strings.Repeat("b", MaxDescriptionLen+1)).
		Set("layer", "l1")

	errs := s.Validate(data)
	assert.Contains(t, errs["title"], "76")
	assert.Contains(t, errs["description"], "255")
}

// TestValidate_Color проверяет формат цвета
func TestValidate_Color(t *testing.T) {
	s := Build(BaseMarkerRules(), nil)

	base := func(color string) *FormData {
		return NewFormData().
			Set("title", "t").
			Set("description", "d").
			Set("layer", "l1").
			Set("marker_color", color)
	}

	assert.Empty(t, s.Validate(base("#aaBB00")))
	assert.Contains(t, s.Validate(base("red")), "marker_color")
	assert.Contains(t, s.Validate(base("#12345")), "marker_color")
}

// TestValidate_ImportantTextField: важное текстовое поле невалидно для
// пустой строки и валидно для любой непустой
func TestValidate_ImportantTextField(t *testing.T) {
	s := Build(nil, []models.CustomFieldDef{importantField("Owner", models.FieldText)})

	errs := s.Validate(NewFormData().Set("owner", ""))
	assert.Equal(t, "Owner is a required field", errs["owner"])

	errs = s.Validate(NewFormData().Set("owner", "   "))
	assert.NotEmpty(t, errs["owner"], "whitespace-only value is not a value")

	assert.Empty(t, s.Validate(NewFormData().Set("owner", "x")))
}

// TestValidate_ImportantFileField: важное файловое поле требует наличия
// файла или уже загруженной ссылки, не непустой строки как таковой
func TestValidate_ImportantFileField(t *testing.T) {
	s := Build(nil, []models.CustomFieldDef{importantField("Photo", models.FieldFile)})

	// nil файл — невалидно
	errs := s.Validate(NewFormData())
	assert.Equal(t, "Photo is a required field", errs["photo"])

	// Любой выбранный файл — валидно
	data := NewFormData().SetFile("photo", &FileInput{Name: "a.png", Data: strings.NewReader("x")})
	assert.Empty(t, s.Validate(data))

	// Уже загруженная ссылка — тоже валидно
	assert.Empty(t, s.Validate(NewFormData().Set("photo", "http://files/old.png")))
}

// TestValidate_ImportantSelectField проверяет принадлежность значения
// списку вариантов
func TestValidate_ImportantSelectField(t *testing.T) {
	field := importantField("Severity", models.FieldSelect)
	field.SelectOptions = []string{"low", "high"}
	s := Build(nil, []models.CustomFieldDef{field})

	assert.Empty(t, s.Validate(NewFormData().Set("severity", "high")))

	errs := s.Validate(NewFormData().Set("severity", "medium"))
	assert.Contains(t, errs["severity"], "low, high")

	errs = s.Validate(NewFormData())
	assert.Equal(t, "Severity is a required field", errs["severity"])
}

// TestValidate_DateField проверяет разбор дат в поддерживаемых форматах
func TestValidate_DateField(t *testing.T) {
	s := Build(nil, []models.CustomFieldDef{importantField("Deadline", models.FieldDate)})

	assert.Empty(t, s.Validate(NewFormData().Set("deadline", "2024-06-15")))
	assert.Empty(t, s.Validate(NewFormData().Set("deadline", "06.15.2024")))

	errs := s.Validate(NewFormData().Set("deadline", "not a date"))
	assert.Equal(t, "Deadline must be a valid date", errs["deadline"])
}

// TestValidate_OptionalFieldsSkipped: необязательные пустые поля не
// порождают ошибок
func TestValidate_OptionalFieldsSkipped(t *testing.T) {
	fields := []models.CustomFieldDef{
		{ID: "f1", Name: "Note", Type: models.FieldMultiline},
		{ID: "f2", Name: "When", Type: models.FieldDate},
		{ID: "f3", Name: "Attachment", Type: models.FieldFile},
	}
	s := Build(nil, fields)

	assert.Empty(t, s.Validate(NewFormData()))
}

// TestBuild_IsPure: построенная схема не зависит от последующих изменений
// списка полей
func TestBuild_IsPure(t *testing.T) {
	fields := []models.CustomFieldDef{importantField("Owner", models.FieldText)}
	s := Build(nil, fields)

	fields[0].Name = "Changed"
	fields[0].IsImportant = false

	errs := s.Validate(NewFormData())
	assert.Equal(t, "Owner is a required field", errs["owner"])
}
