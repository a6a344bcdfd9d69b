// Package schema contains the dynamic form logic shared by the layer and
// marker stores: building a validation schema from a layer's custom-field
// declarations and resolving raw form input into typed field values.
package schema

import "io"

// FileInput is a file selected in a form, not yet uploaded.
type FileInput struct {
	Name string    // исходное имя файла
	Data io.Reader // содержимое
}

// FormData is an explicit lookup table from field key to raw value,
// built once when the form is bound. It replaces dynamic property access
// by field name: every read goes through String/File with the case-folded
// field key.
type FormData struct {
	values map[string]string
	files  map[string]*FileInput
}

// NewFormData создает пустую таблицу значений формы
func NewFormData() *FormData {
	return &FormData{
		values: make(map[string]string),
		files:  make(map[string]*FileInput),
	}
}

// Set записывает строковое значение поля
func (d *FormData) Set(key, value string) *FormData {
	d.values[key] = value
	return d
}

// SetFile записывает файловое значение поля
func (d *FormData) SetFile(key string, file *FileInput) *FormData {
	d.files[key] = file
	return d
}

// String возвращает строковое значение поля
func (d *FormData) String(key string) (string, bool) {
	v, ok := d.values[key]
	return v, ok
}

// File возвращает файловое значение поля
func (d *FormData) File(key string) (*FileInput, bool) {
	f, ok := d.files[key]
	return f, ok && f != nil
}
