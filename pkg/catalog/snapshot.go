package catalog

import (
	"encoding/json"

	"github.com/agentstation/utc"

	"github.com/cinetech/cinetech/pkg/constants"
	"github.com/cinetech/cinetech/pkg/errors"
)

// Snapshot is the portable full-catalog document used for export, import,
// and backup. The wire format is UTF-8 JSON with the films, directors,
// exportedAt, and version top-level keys.
type Snapshot struct {
	Films      []*Film     `json:"films"`
	Directors  []*Director `json:"directors"`
	ExportedAt utc.Time    `json:"exportedAt"`
	Version    string      `json:"version"`
}

// Export produces a structurally complete copy of both collections,
// stamped with the export time and format version. Mutating the returned
// snapshot never affects the catalog.
func (c *Catalog) Export() *Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return &Snapshot{
		Films:      cloneFilms(c.films),
		Directors:  cloneDirectors(c.directors),
		ExportedAt: c.now(),
		Version:    constants.SnapshotVersion,
	}
}

// ParseSnapshot decodes a snapshot document, failing with an
// ImportFormatError when the films or directors key is absent or null.
// Individual records are not deep-validated here; callers confirm and
// commit the candidate through ReplaceAll.
func ParseSnapshot(data []byte) (*Snapshot, error) {
	var shape map[string]json.RawMessage
	if err := json.Unmarshal(data, &shape); err != nil {
		return nil, errors.WrapParse("json", "snapshot", err)
	}

	var missing []string
	for _, key := range []string{"films", "directors"} {
		raw, ok := shape[key]
		if !ok || string(raw) == "null" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, &errors.ImportFormatError{Missing: missing}
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, errors.WrapParse("json", "snapshot", err)
	}
	return &snap, nil
}

// ReplaceAll atomically replaces both collections with the snapshot's
// contents. A nil or malformed snapshot is rejected before any state
// changes, leaving the current catalog untouched.
func (c *Catalog) ReplaceAll(snap *Snapshot) error {
	if snap == nil || snap.Films == nil || snap.Directors == nil {
		missing := []string{}
		if snap == nil || snap.Films == nil {
			missing = append(missing, "films")
		}
		if snap == nil || snap.Directors == nil {
			missing = append(missing, "directors")
		}
		return &errors.ImportFormatError{Missing: missing}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.films = cloneFilms(snap.Films)
	c.directors = cloneDirectors(snap.Directors)
	c.resetIDMarksLocked()
	c.persistLocked()

	c.logger.Info().
		Int("films", len(c.films)).
		Int("directors", len(c.directors)).
		Msg("Catalog replaced from snapshot")
	return nil
}
