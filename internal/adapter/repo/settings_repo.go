package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"campaignd/internal/domain"
	"campaignd/internal/infra"
	"campaignd/internal/sqlinline"
)

// SettingsRepositoryPG stores the single settings row. When the row is
// missing (fresh database before seeding) defaults are returned instead of an
// error so the public flow keeps working.
type SettingsRepositoryPG struct {
	sql             infra.SQLExecutor
	defaultCurrency string
}

// NewSettingsRepository creates a settings repo. defaultCurrency is used when
// no settings row exists yet.
func NewSettingsRepository(sqlx infra.SQLExecutor, defaultCurrency string) *SettingsRepositoryPG {
	return &SettingsRepositoryPG{sql: sqlx, defaultCurrency: defaultCurrency}
}

// Get loads the current settings.
func (r *SettingsRepositoryPG) Get(ctx context.Context) (*domain.Settings, error) {
	var s domain.Settings
	row := r.sql.QueryRow(ctx, sqlinline.QSelectSettings)
	if err := row.Scan(&s.DefaultCurrency, &s.EmailNotifications); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &domain.Settings{DefaultCurrency: r.defaultCurrency, EmailNotifications: true}, nil
		}
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return &s, nil
}

// Update persists the settings row.
func (r *SettingsRepositoryPG) Update(ctx context.Context, s domain.Settings) error {
	if _, err := r.sql.Exec(ctx, sqlinline.QUpdateSettings, s.DefaultCurrency, s.EmailNotifications); err != nil {
		return fmt.Errorf("update settings: %w", err)
	}
	return nil
}

var _ domain.SettingsRepository = (*SettingsRepositoryPG)(nil)
