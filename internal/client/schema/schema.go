package schema

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/iudanet/mapkeeper/internal/models"
)

// ColorPattern допустимый формат цвета маркера
var ColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

const (
	// MaxTitleLen максимальная длина заголовка маркера
	MaxTitleLen = 76
	// MaxDescriptionLen максимальная длина описания маркера
	MaxDescriptionLen = 255
)

// Rule описывает проверку одного поля формы
type Rule struct {
	Key      string           // ключ поля в FormData
	Label    string           // имя поля для сообщений об ошибках
	Kind     models.FieldType // определяет семантику present/valid
	Required bool
	MaxLen   int
	Options  []string // допустимые значения для select
	Pattern  *regexp.Regexp
}

// Schema is a finished, immutable set of rules. It is produced by Build
// in one pass; there is no shared schema object being extended between
// renders.
type Schema struct {
	rules []Rule
}

// ValidationErrors является map "ключ поля -> сообщение".
// Пустая map означает валидную форму.
type ValidationErrors map[string]string

// BaseMarkerRules возвращает базовые правила формы маркера
// (до добавления полей схемы слоя)
func BaseMarkerRules() []Rule {
	return []Rule{
		{Key: "title", Label: "Title", Kind: models.FieldText, Required: true, MaxLen: MaxTitleLen},
		{Key: "description", Label: "Description", Kind: models.FieldMultiline, Required: true, MaxLen: MaxDescriptionLen},
		{Key: "layer", Label: "Layer", Kind: models.FieldText, Required: true},
		{Key: "marker_color", Label: "Color", Kind: models.FieldText, Pattern: ColorPattern},
	}
}

// Build derives the full validation schema for a form from the base rules
// plus the layer's custom-field declarations. Pure function: the result
// is complete, callers never extend it afterwards.
func Build(base []Rule, fields []models.CustomFieldDef) Schema {
	rules := make([]Rule, 0, len(base)+len(fields))
	rules = append(rules, base...)

	for _, f := range fields {
		rules = append(rules, Rule{
			Key:      f.Key(),
			Label:    f.Name,
			Kind:     f.Type,
			Required: f.IsImportant,
			Options:  f.SelectOptions,
		})
	}

	return Schema{rules: rules}
}

// Rules возвращает копию правил (для рендера формы)
func (s Schema) Rules() []Rule {
	out := make([]Rule, len(s.rules))
	copy(out, s.rules)
	return out
}

// Validate проверяет значения формы по всем правилам.
// Сообщения привязаны к ключу поля и показываются inline.
func (s Schema) Validate(data *FormData) ValidationErrors {
	errs := make(ValidationErrors)

	for _, r := range s.rules {
		if msg := r.check(data); msg != "" {
			errs[r.Key] = msg
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (r Rule) check(data *FormData) string {
	// Файловое поле считается заполненным, если выбран новый файл
	// или уже есть загруженная ссылка
	if r.Kind == models.FieldFile {
		_, hasFile := data.File(r.Key)
		ref, _ := data.String(r.Key)
		if r.Required && !hasFile && ref == "" {
			return fmt.Sprintf("%s is a required field", r.Label)
		}
		return ""
	}

	value, _ := data.String(r.Key)
	trimmed := strings.TrimSpace(value)

	if r.Required && trimmed == "" {
		return fmt.Sprintf("%s is a required field", r.Label)
	}
	if trimmed == "" {
		return ""
	}

	if r.MaxLen > 0 && len(value) > r.MaxLen {
		return fmt.Sprintf("Max length of %s is %d symbols", strings.ToLower(r.Label), r.MaxLen)
	}

	if r.Pattern != nil && !r.Pattern.MatchString(value) {
		return fmt.Sprintf("%s has invalid format", r.Label)
	}

	switch r.Kind {
	case models.FieldDate:
		if _, err := parseDate(value); err != nil {
			return fmt.Sprintf("%s must be a valid date", r.Label)
		}
	case models.FieldSelect:
		if len(r.Options) > 0 && !contains(r.Options, value) {
			return fmt.Sprintf("%s must be one of: %s", r.Label, strings.Join(r.Options, ", "))
		}
	}

	return ""
}

// dateLayouts — форматы, принимаемые от формы
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"01.02.2006",
	"01/02/2006",
}

func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

func contains(items []string, v string) bool {
	for _, item := range items {
		if item == v {
			return true
		}
	}
	return false
}
