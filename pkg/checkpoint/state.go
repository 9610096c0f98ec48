// Package checkpoint provides state persistence for parametric solver
// campaigns, so interrupted runs resume at the first unfinished model.
package checkpoint

import "slices"

// CampaignState tracks which models of a parametric campaign finished.
type CampaignState struct {
	TotalModels     int   `json:"total_models"`
	CompletedModels []int `json:"completed_models"`
	LastModel       int   `json:"last_model"`
}

// Metadata holds checkpoint metadata for validation and resume.
type Metadata struct {
	Version    int           `json:"version"`
	ScriptsDir string        `json:"scripts_dir"`
	DirHash    string        `json:"dir_hash"`
	CreatedAt  string        `json:"created_at"`
	Solver     string        `json:"solver"`
	State      CampaignState `json:"state"`
}

// MarkCompleted records model number n as finished. The completed list
// stays sorted and free of duplicates.
func (s *CampaignState) MarkCompleted(n int) {
	s.LastModel = n

	if slices.Contains(s.CompletedModels, n) {
		return
	}

	s.CompletedModels = append(s.CompletedModels, n)
	slices.Sort(s.CompletedModels)
}

// IsCompleted reports whether model number n already finished.
func (s *CampaignState) IsCompleted(n int) bool {
	return slices.Contains(s.CompletedModels, n)
}
