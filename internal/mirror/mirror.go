package mirror

import (
	"context"
	"fmt"
	"log"

	"Conecyl/internal/ccs"
	"Conecyl/internal/repo"
)

type Result struct {
	Written int `json:"written"`
	Aliases int `json:"aliases"`
	// Missing lists catalog names the repository does not report back
	// after writing.
	Missing []string `json:"missing"`
}

// Sync writes every catalog entry to r in name order, then reads the stored
// names back. It stops at the first failure; rows already written stay
// written.
func Sync(ctx context.Context, r repo.Repository, c *ccs.Catalog) (Result, error) {
	if err := r.EnsureSchema(ctx); err != nil {
		return Result{}, fmt.Errorf("ensure schema: %w", err)
	}
	aliases := c.Aliases()
	res := Result{Missing: []string{}}
	for _, name := range c.Names() {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		s, err := c.Get(name)
		if err != nil {
			return res, err
		}
		if err := r.Upsert(ctx, name, aliases[name], s); err != nil {
			return res, fmt.Errorf("upsert %s: %w", name, err)
		}
		res.Written++
		if aliases[name] != "" {
			res.Aliases++
		}
	}

	stored, err := r.Names(ctx)
	if err != nil {
		return res, fmt.Errorf("list mirrored names: %w", err)
	}
	present := make(map[string]bool, len(stored))
	for _, name := range stored {
		present[name] = true
	}
	for _, name := range c.Names() {
		if !present[name] {
			res.Missing = append(res.Missing, name)
		}
	}

	log.Printf("mirrored %d specimens (%d aliases, %d missing)", res.Written, res.Aliases, len(res.Missing))
	return res, nil
}
