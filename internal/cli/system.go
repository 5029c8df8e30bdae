package cli

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/Jyriad/sleepfactor/internal/keyring"
	"github.com/Jyriad/sleepfactor/internal/storage/postgres"
)

type InitCmd struct {
	Force bool `help:"Force reset by deleting existing database before initialization."`
}

func (c *InitCmd) Run(ctx *Context) error {
	if c.Force {
		dbPath := ctx.Store.GetConfigPath()
		if _, err := os.Stat(dbPath); err == nil {
			// Close before deleting to prevent file locking issues
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing database: %w", err)
			}
			if err := os.Remove(dbPath); err != nil {
				return fmt.Errorf("failed to delete existing database: %w", err)
			}
			fmt.Printf("Deleted existing database at: %s\n", dbPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing database: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized sleepfactor storage at: %s\n", ctx.Store.GetConfigPath())
	return nil
}

// KeyringSetCmd stores database connection credentials in the OS keyring
type KeyringSetCmd struct {
	ConnectionString string `arg:"" help:"PostgreSQL connection string to store in keyring"`
}

func (c *KeyringSetCmd) Run(ctx *Context) error {
	if !strings.HasPrefix(c.ConnectionString, "postgres://") &&
		!strings.HasPrefix(c.ConnectionString, "postgresql://") &&
		!strings.Contains(c.ConnectionString, "host=") {
		return errors.New("connection string must be a valid PostgreSQL connection string")
	}

	if _, err := postgres.ValidateConnString(c.ConnectionString); err != nil {
		if errors.Is(err, postgres.ErrEmbeddedCredentials) {
			// Embedded credentials are acceptable inside the encrypted keyring.
			fmt.Println("Warning: connection string contains embedded credentials; it will be stored as-is in the encrypted OS keyring.")
		} else {
			return fmt.Errorf("invalid connection string: %w", err)
		}
	}

	if err := keyring.SetConnectionString(c.ConnectionString); err != nil {
		return fmt.Errorf("failed to store connection string in keyring: %w", err)
	}

	fmt.Println("Connection string stored in OS keyring.")
	return nil
}

// KeyringGetCmd retrieves database connection credentials from the OS keyring
type KeyringGetCmd struct{}

func (c *KeyringGetCmd) Run(ctx *Context) error {
	connStr, err := keyring.GetConnectionString()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no connection string found in keyring; use 'sleepfactor keyring set' to store one")
		}
		return fmt.Errorf("failed to retrieve connection string from keyring: %w", err)
	}

	fmt.Println(maskPassword(connStr))
	return nil
}

// KeyringDeleteCmd removes database connection credentials from the OS keyring
type KeyringDeleteCmd struct{}

func (c *KeyringDeleteCmd) Run(ctx *Context) error {
	if err := keyring.DeleteConnectionString(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no connection string found in keyring")
		}
		return fmt.Errorf("failed to delete connection string from keyring: %w", err)
	}

	fmt.Println("Connection string removed from OS keyring.")
	return nil
}

// maskPassword replaces any password in a connection string with asterisks
// before it is printed.
func maskPassword(connStr string) string {
	if u, err := url.Parse(connStr); err == nil && u.User != nil {
		if _, has := u.User.Password(); has {
			u.User = url.UserPassword(u.User.Username(), "****")
			return u.String()
		}
		return connStr
	}

	// DSN form: replace the password= value
	parts := strings.Fields(connStr)
	for i, part := range parts {
		if strings.HasPrefix(part, "password=") {
			parts[i] = "password=****"
		}
	}
	return strings.Join(parts, " ")
}
