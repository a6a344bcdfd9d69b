package schema

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/mapkeeper/internal/models"
	"github.com/iudanet/mapkeeper/pkg/api"
)

func noUploads(t *testing.T) *UploaderMock {
	t.Helper()
	return &UploaderMock{
		UploadFileFunc: func(ctx context.Context, filename string, r io.Reader) (*api.FileResponse, error) {
			t.Fatal("unexpected file upload")
			return nil, nil
		},
	}
}

// TestResolve_SelectRoundTrip: select-поле с выбранным значением дает
// ровно одно значение и ничего больше
func TestResolve_SelectRoundTrip(t *testing.T) {
	fields := []models.CustomFieldDef{{
		ID:            "f1",
		Name:          "Severity",
		Type:          models.FieldSelect,
		IsImportant:   true,
		SelectOptions: []string{"low", "high"},
	}}

	data := NewFormData().Set("severity", "high")

	resolved, err := Resolve(context.Background(), data, fields, noUploads(t))
	require.NoError(t, err)

	require.Len(t, resolved, 1)
	assert.Equal(t, "Severity", resolved[0].Name)
	assert.Equal(t, models.FieldSelect, resolved[0].Type)
	assert.Equal(t, "high", resolved[0].Value)
}

// TestResolve_OmitsAbsentValues: поля без значения не попадают в результат
// ни для одного типа
func TestResolve_OmitsAbsentValues(t *testing.T) {
	fields := []models.CustomFieldDef{
		{ID: "f1", Name: "Note", Type: models.FieldText},
		{ID: "f2", Name: "Details", Type: models.FieldMultiline},
		{ID: "f3", Name: "When", Type: models.FieldDate},
		{ID: "f4", Name: "Photo", Type: models.FieldFile},
		{ID: "f5", Name: "Kind", Type: models.FieldSelect, SelectOptions: []string{"a", "b"}},
	}

	// Часть ключей присутствует, но с пустыми значениями
	data := NewFormData().Set("note", "").Set("when", "")

	resolved, err := Resolve(context.Background(), data, fields, noUploads(t))
	require.NoError(t, err)
	assert.Empty(t, resolved)
}

// TestResolve_DateFormatting: дата форматируется как MM.dd.yyyy
func TestResolve_DateFormatting(t *testing.T) {
	fields := []models.CustomFieldDef{{ID: "f1", Name: "Deadline", Type: models.FieldDate}}

	data := NewFormData().Set("deadline", "2024-06-15")

	resolved, err := Resolve(context.Background(), data, fields, noUploads(t))
	require.NoError(t, err)

	require.Len(t, resolved, 1)
	assert.Equal(t, "06.15.2024", resolved[0].Value)
}

// TestResolve_InvalidDate возвращает ошибку, не пропуская поле молча
func TestResolve_InvalidDate(t *testing.T) {
	fields := []models.CustomFieldDef{{ID: "f1", Name: "Deadline", Type: models.FieldDate}}
	data := NewFormData().Set("deadline", "yesterday")

	_, err := Resolve(context.Background(), data, fields, noUploads(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Deadline")
}

// TestResolve_FileUpload: файловое поле загружается, значением становится URL
func TestResolve_FileUpload(t *testing.T) {
	uploader := &UploaderMock{
		UploadFileFunc: func(ctx context.Context, filename string, r io.Reader) (*api.FileResponse, error) {
			content, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, "img-bytes", string(content))
			return &api.FileResponse{ID: "f9", URL: "http://files/f9.png"}, nil
		},
	}

	fields := []models.CustomFieldDef{{ID: "f1", Name: "Photo", Type: models.FieldFile}}
	data := NewFormData().SetFile("photo", &FileInput{Name: "img.png", Data: strings.NewReader("img-bytes")})

	resolved, err := Resolve(context.Background(), data, fields, uploader)
	require.NoError(t, err)

	require.Len(t, resolved, 1)
	assert.Equal(t, "http://files/f9.png", resolved[0].Value)
	assert.Len(t, uploader.UploadFileCalls(), 1)
	assert.Equal(t, "img.png", uploader.UploadFileCalls()[0].Filename)
}

// TestResolve_FileReferencePassesThrough: уже загруженная ссылка при
// редактировании не вызывает повторную загрузку
func TestResolve_FileReferencePassesThrough(t *testing.T) {
	fields := []models.CustomFieldDef{{ID: "f1", Name: "Photo", Type: models.FieldFile}}
	data := NewFormData().Set("photo", "http://files/existing.png")

	resolved, err := Resolve(context.Background(), data, fields, noUploads(t))
	require.NoError(t, err)

	require.Len(t, resolved, 1)
	assert.Equal(t, "http://files/existing.png", resolved[0].Value)
}

// TestResolve_UploadError прерывает резолв
func TestResolve_UploadError(t *testing.T) {
	uploader := &UploaderMock{
		UploadFileFunc: func(ctx context.Context, filename string, r io.Reader) (*api.FileResponse, error) {
			return nil, errors.New("disk full")
		},
	}

	fields := []models.CustomFieldDef{{ID: "f1", Name: "Photo", Type: models.FieldFile}}
	data := NewFormData().SetFile("photo", &FileInput{Name: "a.png", Data: strings.NewReader("x")})

	_, err := Resolve(context.Background(), data, fields, uploader)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Photo")
}

// TestResolve_LayerSwitchDropsStaleValues: после смены слоя в форме
// резолв идет по полям нового слоя, значения старых ключей не переносятся
func TestResolve_LayerSwitchDropsStaleValues(t *testing.T) {
	// Значения, введенные для схемы старого слоя
	data := NewFormData().
		Set("owner", "ivan").
		Set("severity", "high")

	// Схема нового слоя: другой набор полей, частично пересекающийся по ключу
	newFields := []models.CustomFieldDef{
		{ID: "n1", Name: "Owner", Type: models.FieldText},
		{ID: "n2", Name: "Floor", Type: models.FieldText},
	}

	resolved, err := Resolve(context.Background(), data, newFields, noUploads(t))
	require.NoError(t, err)

	require.Len(t, resolved, 1, "only keys of the new layer's fields resolve")
	assert.Equal(t, "Owner", resolved[0].Name)
	assert.Equal(t, "n1", resolved[0].ID, "value is attached to the new layer's field identity")
}
