package store

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"wildhaven/internal/domain/settings"
	"wildhaven/internal/pkg/result"
	"wildhaven/internal/usecase"

	"github.com/jackc/pgx/v5"
)

// SettingsService is the row-store implementation of the Settings port.
// Settings is a singleton record: both operations collect the full provider
// response and force exactly-one-row semantics rather than truncating.
type SettingsService struct {
	db     Querier
	logger *slog.Logger
}

func NewSettingsService(db Querier, logger *slog.Logger) *SettingsService {
	return &SettingsService{db: db, logger: logger}
}

var _ usecase.SettingsService = (*SettingsService)(nil)

const selectSettings = `
SELECT id, min_booking_length, max_booking_length, max_guests_per_booking, breakfast_price
FROM settings`

func (s *SettingsService) GetSettings(ctx context.Context) result.Result[settings.Settings] {
	rows, err := s.db.Query(ctx, selectSettings)
	if err != nil {
		logQueryError(s.logger, "settings.get", err)
		return result.Err[settings.Settings](result.FromException(err, result.CodeSettingsLoadError, "errors.settingsLoad", 500))
	}
	collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[settingsRow])
	if err != nil {
		logQueryError(s.logger, "settings.get", err)
		return result.Err[settings.Settings](result.FromException(err, result.CodeSettingsLoadError, "errors.settingsLoad", 500))
	}
	row, err := exactlyOne(collected)
	if err != nil {
		logQueryError(s.logger, "settings.get", err)
		return result.Err[settings.Settings](result.FromException(err, result.CodeSettingsLoadError, "errors.settingsLoad", 500))
	}
	return result.Ok(toSettings(row))
}

func (s *SettingsService) UpdateSettings(ctx context.Context, input settings.UpdateInput) result.Result[settings.Settings] {
	assignments, args := settingsAssignments(input)
	if len(assignments) == 0 {
		return s.GetSettings(ctx)
	}

	// The settings table holds the single row with id = 1.
	query := fmt.Sprintf(`
UPDATE settings SET %s
WHERE id = 1
RETURNING id, min_booking_length, max_booking_length, max_guests_per_booking, breakfast_price`,
		strings.Join(assignments, ", "))

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		logQueryError(s.logger, "settings.update", err)
		return result.Err[settings.Settings](result.FromException(err, result.CodeSettingsUpdateError, "errors.settingsUpdate", 500))
	}
	collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[settingsRow])
	if err != nil {
		logQueryError(s.logger, "settings.update", err)
		return result.Err[settings.Settings](result.FromException(err, result.CodeSettingsUpdateError, "errors.settingsUpdate", 500))
	}
	row, err := exactlyOne(collected)
	if err != nil {
		logQueryError(s.logger, "settings.update", err)
		return result.Err[settings.Settings](result.FromException(err, result.CodeSettingsUpdateError, "errors.settingsUpdate", 500))
	}
	return result.Ok(toSettings(row))
}

// settingsAssignments builds the SET clause from the non-nil patch fields so
// only changed fields are sent.
func settingsAssignments(input settings.UpdateInput) ([]string, []any) {
	var assignments []string
	var args []any

	add := func(column string, value any) {
		args = append(args, value)
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if input.MinBookingLength != nil {
		add("min_booking_length", *input.MinBookingLength)
	}
	if input.MaxBookingLength != nil {
		add("max_booking_length", *input.MaxBookingLength)
	}
	if input.MaxGuestsPerBooking != nil {
		add("max_guests_per_booking", *input.MaxGuestsPerBooking)
	}
	if input.BreakfastPrice != nil {
		add("breakfast_price", *input.BreakfastPrice)
	}
	return assignments, args
}
