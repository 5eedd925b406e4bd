package cli

import (
	"errors"
	"fmt"

	"github.com/julianstephens/ot/internal/storage"
)

type InitCmd struct {
	Force bool `help:"Overwrite stored data if it already exists."`
}

func (c *InitCmd) Run(ctx *Context) error {
	if c.Force {
		printWarning("Force option enabled: existing storage will be overwritten if it exists.")
	}

	if err := ctx.Store.Initialize(c.Force); err != nil {
		if errors.Is(err, storage.ErrAlreadyInitialized) {
			PrintError("Storage is already initialized. Use --force to overwrite.")
			return &ExitError{Code: 1}
		}
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	printSuccess(fmt.Sprintf("Storage initialized at %s", ctx.StatePath))
	return nil
}
