package settings

import (
	"context"
	"errors"
)

var ErrSettingsNotFound = errors.New("settings not found")

// SettingsRepository defines the interface for settings data operations
// Consumers define this interface, not the MongoDB implementation
type SettingsRepository interface {
	Get(ctx context.Context) (*Settings, error)
	Save(ctx context.Context, s *Settings) error
}
