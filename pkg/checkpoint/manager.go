package checkpoint

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rodrigo1392/misc-tools/pkg/persist"
)

// MetadataVersion is the current checkpoint metadata format version.
const MetadataVersion = 1

// Sentinel errors for checkpoint validation.
var (
	ErrScriptsDirMismatch = errors.New("scripts dir mismatch")
	ErrSolverMismatch     = errors.New("solver mismatch")
)

// DefaultDir returns the default checkpoint directory (~/.misctools/checkpoints).
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	return filepath.Join(home, ".misctools", "checkpoints")
}

// DirHash computes a short hash of the scripts directory path for use
// as the checkpoint subdirectory name.
func DirHash(scriptsDir string) string {
	h := sha256.Sum256([]byte(scriptsDir))

	return hex.EncodeToString(h[:8]) // First 8 bytes = 16 hex chars.
}

// Directory permissions for checkpoints.
const dirPerm = 0o750

// Basename of the metadata file inside the checkpoint directory.
const metadataBase = "campaign"

// newPersister returns the persister for campaign metadata files.
func newPersister() *persist.Persister[Metadata] {
	return persist.NewPersister[Metadata](metadataBase, persist.NewJSONCodec())
}

// Manager coordinates the checkpoint of one parametric campaign.
type Manager struct {
	BaseDir string
	DirHash string
}

// NewManager creates a checkpoint manager for the campaign identified
// by dirHash.
func NewManager(baseDir, dirHash string) *Manager {
	return &Manager{
		BaseDir: baseDir,
		DirHash: dirHash,
	}
}

// CheckpointDir returns the directory for this campaign's checkpoint.
func (m *Manager) CheckpointDir() string {
	return filepath.Join(m.BaseDir, m.DirHash)
}

// MetadataPath returns the path to the metadata file.
func (m *Manager) MetadataPath() string {
	return filepath.Join(m.CheckpointDir(), metadataBase+".json")
}

// Exists returns true if a checkpoint exists for this campaign.
func (m *Manager) Exists() bool {
	_, err := os.Stat(m.MetadataPath())

	return err == nil
}

// Clear removes the checkpoint for this campaign.
func (m *Manager) Clear() error {
	cpDir := m.CheckpointDir()

	_, statErr := os.Stat(cpDir)
	if os.IsNotExist(statErr) {
		return nil
	}

	err := os.RemoveAll(cpDir)
	if err != nil {
		return fmt.Errorf("remove checkpoint dir: %w", err)
	}

	return nil
}

// Save writes the campaign state and its metadata. Earlier checkpoints
// of the same campaign are replaced atomically.
func (m *Manager) Save(state CampaignState, scriptsDir, solver string) error {
	cpDir := m.CheckpointDir()

	err := os.MkdirAll(cpDir, dirPerm)
	if err != nil {
		return fmt.Errorf("create checkpoint dir: %w", err)
	}

	meta := Metadata{
		Version:    MetadataVersion,
		ScriptsDir: scriptsDir,
		DirHash:    m.DirHash,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
		Solver:     solver,
		State:      state,
	}

	saveErr := newPersister().Save(cpDir, func() *Metadata { return &meta })
	if saveErr != nil {
		return fmt.Errorf("write metadata: %w", saveErr)
	}

	return nil
}

// LoadMetadata loads the checkpoint metadata.
func (m *Manager) LoadMetadata() (*Metadata, error) {
	var meta Metadata

	err := newPersister().Load(m.CheckpointDir(), func(loaded *Metadata) { meta = *loaded })
	if err != nil {
		return nil, fmt.Errorf("read metadata: %w", err)
	}

	return &meta, nil
}

// Load restores the campaign state.
func (m *Manager) Load() (*CampaignState, error) {
	meta, err := m.LoadMetadata()
	if err != nil {
		return nil, err
	}

	return &meta.State, nil
}

// Validate checks that the checkpoint belongs to the given scripts
// directory and solver.
func (m *Manager) Validate(scriptsDir, solver string) error {
	meta, err := m.LoadMetadata()
	if err != nil {
		return err
	}

	if meta.ScriptsDir != scriptsDir {
		return fmt.Errorf("%w: checkpoint has %q, got %q", ErrScriptsDirMismatch, meta.ScriptsDir, scriptsDir)
	}

	if meta.Solver != solver {
		return fmt.Errorf("%w: checkpoint has %q, got %q", ErrSolverMismatch, meta.Solver, solver)
	}

	return nil
}
