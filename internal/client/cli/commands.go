package cli

import (
	"context"
	"fmt"
)

// Run выполняет одну команду. Ошибку печатает вызывающий.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "profile":
		return c.runProfile(ctx)
	case "layers":
		return c.runLayers(ctx, args)
	case "layer":
		return c.runLayer(ctx, args)
	case "layer-create":
		return c.runLayerCreate(ctx)
	case "layer-delete":
		return c.runLayerDelete(ctx, args)
	case "markers":
		return c.runMarkers(ctx, args)
	case "marker-add":
		return c.runMarkerAdd(ctx, args)
	case "marker-edit":
		return c.runMarkerEdit(ctx, args)
	case "marker-delete":
		return c.runMarkerDelete(ctx, args)
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
}
