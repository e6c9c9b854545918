// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rename

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/assignment-renamer/pkg/types"
)

// Manifest is the YAML record of a planned run.
type Manifest struct {
	PlannedAt  string                  `yaml:"planned_at"`
	Folder     string                  `yaml:"folder"`
	Operations []types.RenameOperation `yaml:"operations"`
}

// WritePlan writes ops for folder to path as YAML.
func WritePlan(path, folder string, ops []types.RenameOperation) error {
	m := Manifest{
		PlannedAt:  time.Now().UTC().Format(time.RFC3339),
		Folder:     folder,
		Operations: ops,
	}
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling plan: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing plan %s: %w", path, err)
	}
	return nil
}
