package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/iudanet/mapkeeper/internal/client/layers"
	"github.com/iudanet/mapkeeper/internal/models"
)

func (c *Cli) runLayers(ctx context.Context, args []string) error {
	page := 1
	if len(args) > 0 {
		p, err := strconv.Atoi(args[0])
		if err != nil || p < 1 {
			return fmt.Errorf("invalid page number: %s", args[0])
		}
		page = p
	}

	if err := c.layers.FetchPage(ctx, page, layers.DefaultPageLimit); err != nil {
		return err
	}

	snap := c.layers.Snapshot()
	if len(snap.Layers) == 0 {
		c.io.Println("No layers yet.")
		return nil
	}

	c.io.Printf("%-26s %-24s %-8s %s\n", "ID", "NAME", "TYPE", "FIELDS")
	for _, l := range snap.Layers {
		c.io.Printf("%-26s %-24s %-8s %d\n", l.ID, l.Name, l.Type, len(l.CustomFields))
	}

	c.io.Println()
	c.io.Printf("Page %d of %d (%d layers total)\n",
		snap.Pagination.Page, snap.Pagination.TotalPages, snap.Pagination.TotalDocs)
	if snap.Pagination.HasNext {
		c.io.Printf("Run 'mapkeeper layers %d' for the next page.\n", snap.Pagination.Page+1)
	}
	return nil
}

func (c *Cli) runLayer(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: mapkeeper layer <id>")
	}

	if err := c.layers.FetchOne(ctx, args[0]); err != nil {
		return err
	}

	snap := c.layers.Snapshot()
	l := snap.CurrentLayer
	if l == nil {
		return fmt.Errorf("layer not loaded")
	}

	c.io.Printf("Layer: %s\n", l.Name)
	c.io.Printf("ID:    %s\n", l.ID)
	c.io.Printf("Type:  %s\n", l.Type)
	c.io.Println()

	if len(l.CustomFields) == 0 {
		c.io.Println("No custom fields.")
		return nil
	}

	c.io.Println("Custom fields:")
	for _, f := range l.CustomFields {
		required := ""
		if f.IsImportant {
			required = " (required)"
		}
		c.io.Printf("  %-20s %s%s\n", f.Name, f.Type, required)
		if f.Type == models.FieldSelect {
			c.io.Printf("  %-20s options: %s\n", "", strings.Join(f.SelectOptions, ", "))
		}
	}
	return nil
}

func (c *Cli) runLayerCreate(ctx context.Context) error {
	c.io.Println("=== Create Layer ===")
	c.io.Println()

	name, err := c.io.ReadInput("Name: ")
	if err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}

	typeInput, err := c.io.ReadInput("Type (private/public) [private]: ")
	if err != nil {
		return fmt.Errorf("failed to read type: %w", err)
	}
	layerType := models.LayerPrivate
	switch typeInput {
	case "", string(models.LayerPrivate):
	case string(models.LayerPublic):
		layerType = models.LayerPublic
	default:
		return fmt.Errorf("unknown layer type: %s", typeInput)
	}

	for {
		fieldName, err := c.io.ReadInput("Add custom field, name (empty to finish): ")
		if err != nil {
			return fmt.Errorf("failed to read field name: %w", err)
		}
		if fieldName == "" {
			break
		}

		fieldType, err := c.readFieldType()
		if err != nil {
			return err
		}

		important, err := c.io.ReadInput("Required? (y/N): ")
		if err != nil {
			return fmt.Errorf("failed to read flag: %w", err)
		}

		id := c.layers.AddField()
		c.layers.SetFieldName(id, fieldName)
		c.layers.SetFieldType(id, fieldType)
		c.layers.SetFieldImportant(id, strings.EqualFold(important, "y"))

		if fieldType == models.FieldSelect {
			for i := 0; ; i++ {
				opt, err := c.io.ReadInput("  Option (empty to finish): ")
				if err != nil {
					return fmt.Errorf("failed to read option: %w", err)
				}
				if opt == "" {
					break
				}
				c.layers.AddSelectOption(id)
				c.layers.SetSelectOption(id, i, opt)
			}
		}
	}

	if err := c.layers.CreateLayer(ctx, name, layerType); err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Layer created.")
	return nil
}

func (c *Cli) readFieldType() (models.FieldType, error) {
	input, err := c.io.ReadInput("Field type (text/multiline/date/file/select) [text]: ")
	if err != nil {
		return "", fmt.Errorf("failed to read field type: %w", err)
	}
	switch input {
	case "", string(models.FieldText):
		return models.FieldText, nil
	case string(models.FieldMultiline):
		return models.FieldMultiline, nil
	case string(models.FieldDate):
		return models.FieldDate, nil
	case string(models.FieldFile):
		return models.FieldFile, nil
	case string(models.FieldSelect):
		return models.FieldSelect, nil
	default:
		return "", fmt.Errorf("unknown field type: %s", input)
	}
}

func (c *Cli) runLayerDelete(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: mapkeeper layer-delete <id>")
	}

	confirm, err := c.io.ReadInput("Deleting the layer removes all its markers. Continue? (y/N): ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !strings.EqualFold(confirm, "y") {
		c.io.Println("Cancelled.")
		return nil
	}

	if err := c.layers.RemoveLayer(ctx, args[0]); err != nil {
		return err
	}

	c.io.Println("✓ Layer deleted.")
	return nil
}
