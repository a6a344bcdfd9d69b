package layers

import (
	"github.com/google/uuid"

	"github.com/iudanet/mapkeeper/internal/models"
)

// Операции над черновиком схемы полей. Черновик живет в store до
// успешного CreateLayer; ID полей выдаются клиентом, сервер
// перезаписывает их своими при сохранении.

// AddField добавляет пустое текстовое поле в черновик и возвращает его ID
func (s *Store) AddField() string {
	id := uuid.New().String()

	s.mu.Lock()
	s.fields = append(s.fields, models.CustomFieldDef{
		ID:   id,
		Type: models.FieldText,
	})
	s.mu.Unlock()
	s.notifier.Notify()
	return id
}

// RemoveField удаляет поле из черновика вместе с его вариантами
func (s *Store) RemoveField(id string) {
	s.mu.Lock()
	next := s.fields[:0]
	for _, f := range s.fields {
		if f.ID != id {
			next = append(next, f)
		}
	}
	s.fields = next
	delete(s.options, id)
	s.mu.Unlock()
	s.notifier.Notify()
}

// SetFields заменяет список полей целиком (гидрация формы из слоя)
func (s *Store) SetFields(fields []models.CustomFieldDef) {
	s.mu.Lock()
	s.fields = append([]models.CustomFieldDef(nil), fields...)
	s.mu.Unlock()
	s.notifier.Notify()
}

// SetFieldName задает имя поля черновика
func (s *Store) SetFieldName(id, name string) {
	s.updateField(id, func(f *models.CustomFieldDef) { f.Name = name })
}

// SetFieldType меняет тип поля. Смена типа с select оставляет черновик
// вариантов на месте: возврат к select восстанавливает набранное.
func (s *Store) SetFieldType(id string, ft models.FieldType) {
	s.updateField(id, func(f *models.CustomFieldDef) { f.Type = ft })
}

// SetFieldImportant помечает поле обязательным
func (s *Store) SetFieldImportant(id string, important bool) {
	s.updateField(id, func(f *models.CustomFieldDef) { f.IsImportant = important })
}

func (s *Store) updateField(id string, apply func(*models.CustomFieldDef)) {
	s.mu.Lock()
	for i := range s.fields {
		if s.fields[i].ID == id {
			apply(&s.fields[i])
			break
		}
	}
	s.mu.Unlock()
	s.notifier.Notify()
}

// AddSelectOption добавляет пустой вариант к select-полю
func (s *Store) AddSelectOption(fieldID string) {
	s.mu.Lock()
	s.options[fieldID] = append(s.options[fieldID], "")
	s.mu.Unlock()
	s.notifier.Notify()
}

// SetSelectOption задает значение варианта по индексу
func (s *Store) SetSelectOption(fieldID string, index int, value string) {
	s.mu.Lock()
	if opts := s.options[fieldID]; index >= 0 && index < len(opts) {
		opts[index] = value
	}
	s.mu.Unlock()
	s.notifier.Notify()
}

// RemoveSelectOption удаляет вариант по индексу
func (s *Store) RemoveSelectOption(fieldID string, index int) {
	s.mu.Lock()
	if opts := s.options[fieldID]; index >= 0 && index < len(opts) {
		s.options[fieldID] = append(opts[:index], opts[index+1:]...)
	}
	s.mu.Unlock()
	s.notifier.Notify()
}

// SelectOptions возвращает черновик вариантов поля
func (s *Store) SelectOptions(fieldID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.options[fieldID]...)
}
