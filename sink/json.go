package sink

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gridbrief/types"
)

// WriteJSON writes the ranked record set as an indented JSON array, one
// object per record.
func WriteJSON(path string, records []types.Record) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	b, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}

	return os.WriteFile(path, b, 0o644)
}
