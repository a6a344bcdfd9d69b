package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/iudanet/mapkeeper/pkg/api"
)

// UploadFile загружает файл через multipart транспорт.
// Тело собирается в память заранее, чтобы повтор после refresh мог
// отправить тот же payload еще раз.
func (c *Client) UploadFile(ctx context.Context, filename string, r io.Reader) (*api.FileResponse, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("failed to read file data: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	var resp api.FileResponse
	if err := c.doRaw(ctx, http.MethodPost, "/files", writer.FormDataContentType(), buf.Bytes(), &resp); err != nil {
		return nil, fmt.Errorf("file upload failed: %w", err)
	}
	return &resp, nil
}

// DeleteFile удаляет ранее загруженный файл по его идентификатору
func (c *Client) DeleteFile(ctx context.Context, id string) error {
	if err := c.doRequest(ctx, http.MethodDelete, "/files/"+id, nil, nil); err != nil {
		return fmt.Errorf("file delete failed: %w", err)
	}
	return nil
}
