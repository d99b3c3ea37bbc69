package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/conornaught0n/emg-energy-demo/internal/model"
)

// LoadFile reads a catalog override from a JSON file. The file holds a
// mapping from job type id to job type definition, the same shape the
// capture clients ship. Job type ids missing from the file fall back to
// nothing: the loaded catalog replaces the builtin one wholesale.
func LoadFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from operator config
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var raw map[string]model.JobType
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	c := make(Catalog, len(raw))
	for id, jt := range raw {
		// The JSON shape keys job types by id without repeating it
		// inside the object; fill it in when absent.
		if jt.ID == "" {
			jt.ID = id
		}
		c[id] = jt
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Load returns the catalog to use: the override file when path is
// non-empty, the builtin catalog otherwise.
func Load(path string) (Catalog, error) {
	if path == "" {
		return Builtin(), nil
	}
	return LoadFile(path)
}
