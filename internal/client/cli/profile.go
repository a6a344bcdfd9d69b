package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iudanet/mapkeeper/internal/client/schema"
	"github.com/iudanet/mapkeeper/internal/client/session"
)

func (c *Cli) runProfile(ctx context.Context) error {
	snap := c.session.Snapshot()
	if snap.CurrentUser == nil {
		return fmt.Errorf("not authenticated. Please run 'mapkeeper login' first")
	}

	c.io.Println("=== Update Profile ===")
	c.io.Printf("Current name: %s\n", snap.CurrentUser.FullName)
	c.io.Println()

	name, err := c.io.ReadInput("New full name (empty to keep): ")
	if err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}
	avatarPath, err := c.io.ReadInput("Avatar image path (empty to keep, '-' to remove): ")
	if err != nil {
		return fmt.Errorf("failed to read avatar path: %w", err)
	}

	var input session.UpdateProfileInput
	if name != "" {
		input.FullName = &name
	}

	switch avatarPath {
	case "":
	case "-":
		input.ClearAvatar = true
	default:
		f, err := os.Open(avatarPath)
		if err != nil {
			return fmt.Errorf("failed to open avatar file: %w", err)
		}
		defer f.Close()
		input.Avatar = &schema.FileInput{Name: filepath.Base(avatarPath), Data: f}
	}

	if input.FullName == nil && input.Avatar == nil && !input.ClearAvatar {
		c.io.Println("Nothing to update.")
		return nil
	}

	if err := c.session.UpdateProfile(ctx, snap.CurrentUser.ID, input); err != nil {
		return err
	}

	c.io.Println("✓ Profile updated.")
	return nil
}
