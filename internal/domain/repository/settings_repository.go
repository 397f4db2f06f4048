package repository

import "context"

// SettingsRepository reads and writes the singleton site configuration
// document as a raw map so absent fields stay distinguishable.
type SettingsRepository interface {
	// Get reports exists=false, with a nil error, when the document is missing.
	Get(ctx context.Context) (doc map[string]interface{}, exists bool, err error)
	// Save merges doc into the stored document; fields not in doc are untouched.
	Save(ctx context.Context, doc map[string]interface{}) error
}
