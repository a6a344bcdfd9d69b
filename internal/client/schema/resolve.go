package schema

import (
	"context"
	"fmt"
	"io"

	"github.com/iudanet/mapkeeper/internal/models"
	"github.com/iudanet/mapkeeper/pkg/api"
)

//go:generate moq -out uploader_mock.go . Uploader

// Uploader is the file collaborator used to resolve file-typed fields.
type Uploader interface {
	// UploadFile загружает файл и возвращает ссылку на него
	UploadFile(ctx context.Context, filename string, r io.Reader) (*api.FileResponse, error)
}

// DateValueLayout — формат, в котором значения date-полей уходят на
// сервер (MM.dd.yyyy)
const DateValueLayout = "01.02.2006"

// Resolve converts raw form input into resolved field values for the
// given field list. Fields whose raw value is absent or empty are omitted
// entirely. Only keys derived from the supplied fields are read, so after
// a mid-edit layer switch any values still keyed by the old layer's
// fields are dropped rather than carried over.
//
// Per field type:
//   - file: a selected file is uploaded, the value is the returned URL;
//     an already-resolved URL string passes through unchanged
//   - date: the raw date is reformatted as MM.dd.yyyy
//   - text, multiline, select: the raw string as-is
func Resolve(ctx context.Context, data *FormData, fields []models.CustomFieldDef, uploader Uploader) ([]models.CustomFieldValue, error) {
	resolved := make([]models.CustomFieldValue, 0, len(fields))

	for _, field := range fields {
		key := field.Key()

		switch field.Type {
		case models.FieldFile:
			if file, ok := data.File(key); ok {
				resp, err := uploader.UploadFile(ctx, file.Name, file.Data)
				if err != nil {
					return nil, fmt.Errorf("failed to upload value of field %q: %w", field.Name, err)
				}
				resolved = append(resolved, models.CustomFieldValue{CustomFieldDef: field, Value: resp.URL})
				continue
			}
			// Уже загруженная ссылка при редактировании
			if ref, _ := data.String(key); ref != "" {
				resolved = append(resolved, models.CustomFieldValue{CustomFieldDef: field, Value: ref})
			}

		case models.FieldDate:
			value, _ := data.String(key)
			if value == "" {
				continue
			}
			t, err := parseDate(value)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", field.Name, err)
			}
			resolved = append(resolved, models.CustomFieldValue{CustomFieldDef: field, Value: t.Format(DateValueLayout)})

		default:
			value, _ := data.String(key)
			if value == "" {
				continue
			}
			resolved = append(resolved, models.CustomFieldValue{CustomFieldDef: field, Value: value})
		}
	}

	return resolved, nil
}
