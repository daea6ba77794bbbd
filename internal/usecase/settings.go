package usecase

import (
	"context"

	"wildhaven/internal/domain/settings"
	"wildhaven/internal/pkg/result"
)

// SettingsUseCases exposes the singleton settings record. Reads and updates
// always produce a single object, never a collection.
type SettingsUseCases interface {
	GetSettings(ctx context.Context) result.Result[settings.Settings]
	UpdateSettings(ctx context.Context, input settings.UpdateInput) result.Result[settings.Settings]
}

type settingsUseCasesImpl struct {
	settings SettingsService
}

func NewSettingsUseCases(settingsService SettingsService) SettingsUseCases {
	return &settingsUseCasesImpl{settings: settingsService}
}

func (u *settingsUseCasesImpl) GetSettings(ctx context.Context) result.Result[settings.Settings] {
	return u.settings.GetSettings(ctx)
}

// UpdateSettings accepts a partial field set; only changed fields reach the
// adapter. An empty patch short-circuits to a plain read.
func (u *settingsUseCasesImpl) UpdateSettings(ctx context.Context, input settings.UpdateInput) result.Result[settings.Settings] {
	if input.IsEmpty() {
		return u.settings.GetSettings(ctx)
	}
	return u.settings.UpdateSettings(ctx, input)
}
