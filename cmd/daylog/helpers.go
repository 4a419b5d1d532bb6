// Shared helpers for daylog subcommands.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/mesh-intelligence/daylog/internal/repo"
	"github.com/mesh-intelligence/daylog/pkg/types"
)

// loadSequence validates the merged config and runs the repository,
// returning the date-ordered record sequence.
func loadSequence() (types.Sequence, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	start, end, err := cfg.Range()
	if err != nil {
		return nil, err
	}
	r := repo.New(cfg.Folder, types.DefaultSchema(), logger)
	return r.Load(start, end)
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
