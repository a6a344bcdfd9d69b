package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/iudanet/mapkeeper/internal/client/layers"
	"github.com/iudanet/mapkeeper/internal/client/markers"
	"github.com/iudanet/mapkeeper/internal/client/schema"
	"github.com/iudanet/mapkeeper/internal/models"
)

func (c *Cli) runMarkers(ctx context.Context, args []string) error {
	if err := c.markers.FetchAll(ctx); err != nil {
		return err
	}

	if len(args) > 0 {
		checked := make([]models.CheckedLayer, 0, len(args))
		for _, id := range args {
			checked = append(checked, models.CheckedLayer{LayerID: id})
		}
		c.layers.SetChecked(checked)
	} else {
		// Без аргументов показываем маркеры всех загруженных слоев:
		// загрузка коллекции отмечает их все
		if err := c.layers.FetchPage(ctx, 1, layers.DefaultPageLimit); err != nil {
			return err
		}
	}

	visible := c.markers.VisibleMarkers(c.layers.Snapshot().Checked)
	if len(visible) == 0 {
		c.io.Println("No visible markers.")
		return nil
	}

	c.io.Printf("%-26s %-24s %-10s %-22s %s\n", "ID", "TITLE", "COLOR", "LOCATION", "LAYER")
	for _, m := range visible {
		c.io.Printf("%-26s %-24s %-10s %-22s %s\n",
			m.ID, m.Title, m.Color,
			fmt.Sprintf("%.5f,%.5f", m.Location.Lat, m.Location.Lng),
			m.LayerID)
	}
	return nil
}

func (c *Cli) runMarkerAdd(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: mapkeeper marker-add <layer-id>")
	}
	layerID := args[0]

	// Схема полей берется у слоя
	if err := c.layers.FetchOne(ctx, layerID); err != nil {
		return err
	}
	fields := c.layers.Snapshot().Fields

	c.io.Println("=== Add Marker ===")
	c.io.Println()

	data, preview, location, err := c.readMarkerForm(fields, nil)
	if err != nil {
		return err
	}

	err = c.markers.Create(ctx, markers.MarkerInput{
		LayerID:  layerID,
		Location: location,
		Preview:  preview,
		Data:     data,
		Fields:   fields,
	})
	if err != nil {
		return c.explainMarkerError(err)
	}

	c.io.Println()
	c.io.Println("✓ Marker created.")
	return nil
}

func (c *Cli) runMarkerEdit(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: mapkeeper marker-edit <id>")
	}
	id := args[0]

	if err := c.markers.FetchOne(ctx, id); err != nil {
		return err
	}
	current := c.markers.Snapshot().CurrentMarker
	if current == nil {
		return fmt.Errorf("marker %s not loaded", id)
	}

	if err := c.layers.FetchOne(ctx, current.LayerID); err != nil {
		return err
	}
	fields := c.layers.Snapshot().Fields

	c.io.Printf("=== Edit Marker: %s ===\n", current.Title)
	c.io.Println()

	data, preview, location, err := c.readMarkerForm(fields, current)
	if err != nil {
		return err
	}

	clearPreview := false
	if preview == nil && current.Preview != nil {
		answer, err := c.io.ReadInput("Remove current preview? (y/N): ")
		if err != nil {
			return fmt.Errorf("failed to read answer: %w", err)
		}
		clearPreview = strings.EqualFold(answer, "y")
	}

	err = c.markers.Update(ctx, id, markers.MarkerInput{
		LayerID:      current.LayerID,
		Location:     location,
		Preview:      preview,
		ClearPreview: clearPreview,
		Data:         data,
		Fields:       fields,
	})
	if err != nil {
		return c.explainMarkerError(err)
	}

	c.io.Println()
	c.io.Println("✓ Marker updated.")
	return nil
}

func (c *Cli) runMarkerDelete(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: mapkeeper marker-delete <id>")
	}

	if err := c.markers.Remove(ctx, args[0]); err != nil {
		return err
	}

	c.io.Println("✓ Marker deleted.")
	return nil
}

// readMarkerForm собирает FormData формы маркера: базовые поля, затем
// custom-поля схемы слоя. current != nil — правка, подсказываем
// текущие значения, пустой ввод оставляет их.
func (c *Cli) readMarkerForm(fields []models.CustomFieldDef, current *models.Marker) (*schema.FormData, *schema.FileInput, *models.Location, error) {
	data := schema.NewFormData()

	title, err := c.readBase("Title", currentValue(current, func(m *models.Marker) string { return m.Title }))
	if err != nil {
		return nil, nil, nil, err
	}
	data.Set("title", title)

	description, err := c.readBase("Description", currentValue(current, func(m *models.Marker) string { return m.Description }))
	if err != nil {
		return nil, nil, nil, err
	}
	if description != "" {
		data.Set("description", description)
	}

	color, err := c.readBase("Color (#rrggbb)", currentValue(current, func(m *models.Marker) string { return m.Color }))
	if err != nil {
		return nil, nil, nil, err
	}
	if color != "" {
		data.Set("marker_color", color)
	}

	location, err := c.readLocation(current)
	if err != nil {
		return nil, nil, nil, err
	}

	for _, f := range fields {
		prompt := f.Name
		if f.Type == models.FieldSelect {
			prompt = fmt.Sprintf("%s (%s)", f.Name, strings.Join(f.SelectOptions, "/"))
		}
		if f.Type == models.FieldDate {
			prompt = f.Name + " (e.g. 2024-06-15)"
		}

		if f.Type == models.FieldFile {
			path, err := c.io.ReadInput(prompt + ", file path: ")
			if err != nil {
				return nil, nil, nil, fmt.Errorf("failed to read %s: %w", f.Name, err)
			}
			if path != "" {
				file, err := os.Open(path)
				if err != nil {
					return nil, nil, nil, fmt.Errorf("failed to open %s: %w", path, err)
				}
				data.SetFile(f.Key(), &schema.FileInput{Name: filepath.Base(path), Data: file})
			} else if current != nil {
				// Правка без нового файла оставляет прежний URL
				for _, v := range current.CustomFields {
					if v.Key() == f.Key() && v.Value != "" {
						data.Set(f.Key(), v.Value)
					}
				}
			}
			continue
		}

		value, err := c.io.ReadInput(prompt + ": ")
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to read %s: %w", f.Name, err)
		}
		if value == "" && current != nil {
			for _, v := range current.CustomFields {
				if v.Key() == f.Key() {
					value = v.Value
				}
			}
		}
		if value != "" {
			data.Set(f.Key(), value)
		}
	}

	previewPath, err := c.io.ReadInput("Preview image path (empty to skip): ")
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to read preview path: %w", err)
	}
	var preview *schema.FileInput
	if previewPath != "" {
		file, err := os.Open(previewPath)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to open preview: %w", err)
		}
		preview = &schema.FileInput{Name: filepath.Base(previewPath), Data: file}
	}

	return data, preview, location, nil
}

func (c *Cli) readBase(label, current string) (string, error) {
	prompt := label + ": "
	if current != "" {
		prompt = fmt.Sprintf("%s [%s]: ", label, current)
	}
	value, err := c.io.ReadInput(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", label, err)
	}
	if value == "" {
		return current, nil
	}
	return value, nil
}

func (c *Cli) readLocation(current *models.Marker) (*models.Location, error) {
	prompt := "Location (lat,lng): "
	if current != nil {
		prompt = fmt.Sprintf("Location (lat,lng) [%.5f,%.5f]: ", current.Location.Lat, current.Location.Lng)
	}

	input, err := c.io.ReadInput(prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to read location: %w", err)
	}
	if input == "" {
		if current != nil {
			loc := current.Location
			return &loc, nil
		}
		return nil, nil
	}

	parts := strings.SplitN(input, ",", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid location, expected lat,lng")
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude: %w", err)
	}
	return &models.Location{Lat: lat, Lng: lng}, nil
}

// explainMarkerError разворачивает ошибки валидации в построчный вывод
func (c *Cli) explainMarkerError(err error) error {
	var verr *markers.ValidationError
	if errors.As(err, &verr) {
		c.io.Println("Form is invalid:")
		for key, msg := range verr.Fields {
			c.io.Printf("  %s: %s\n", key, msg)
		}
	}
	return err
}

func currentValue(m *models.Marker, get func(*models.Marker) string) string {
	if m == nil {
		return ""
	}
	return get(m)
}
