package cli

import (
	"context"
	"fmt"
	"time"
)

func (c *Cli) runRegister(ctx context.Context) error {
	c.io.Println("=== Register ===")
	c.io.Println()

	fullName, err := c.io.ReadInput("Full name: ")
	if err != nil {
		return fmt.Errorf("failed to read full name: %w", err)
	}
	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	if err := c.session.Register(ctx, fullName, email, password); err != nil {
		return err
	}

	snap := c.session.Snapshot()
	c.io.Println()
	c.io.Println("✓ Registration successful!")
	if snap.CurrentUser != nil {
		c.io.Printf("Logged in as %s <%s>\n", snap.CurrentUser.FullName, snap.CurrentUser.Email)
		if !snap.CurrentUser.IsActivated {
			c.io.Println("Check your inbox for the activation link.")
		}
	}
	return nil
}

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	if err := c.session.Login(ctx, email, password); err != nil {
		return err
	}

	snap := c.session.Snapshot()
	c.io.Println()
	c.io.Println("✓ Login successful!")
	if snap.CurrentUser != nil {
		c.io.Printf("Logged in as %s <%s>\n", snap.CurrentUser.FullName, snap.CurrentUser.Email)
	}
	c.io.Println("Your session has been saved.")
	return nil
}

func (c *Cli) runLogout(ctx context.Context) error {
	c.session.Logout(ctx)
	c.io.Println("✓ Logged out, local session cleared.")
	return nil
}

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Authentication Status ===")
	c.io.Println()

	snap := c.session.Snapshot()
	if snap.CurrentUser == nil {
		c.io.Println("Status: Not authenticated")
		c.io.Println()
		c.io.Println("Run 'mapkeeper login' to authenticate.")
		return nil
	}

	c.io.Println("Status: Authenticated")
	c.io.Printf("Name:  %s\n", snap.CurrentUser.FullName)
	c.io.Printf("Email: %s\n", snap.CurrentUser.Email)
	if !snap.CurrentUser.IsActivated {
		c.io.Println("⚠️  Account is not activated yet.")
	}

	if expiry, ok := c.session.TokenExpiry(); ok {
		c.io.Printf("Token expires: %s\n", expiry.Format(time.RFC3339))
		if remaining := time.Until(expiry); remaining > 0 {
			c.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))
		} else {
			c.io.Println("Token has expired, it will be refreshed on the next request.")
		}
	}
	return nil
}
