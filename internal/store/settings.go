package store

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
)

// ErrValidation is wrapped by every *ValidationError
var ErrValidation = errors.New("validation failed")

// ValidationError describes the first settings field that failed validation
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

var settingsValidator = newSettingsValidator()

func newSettingsValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("db"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// UpdateSettingsParams is a partial settings update. Nil fields are left untouched.
// MaxGameAgeYears and MaxEntriesPerCycle are cleared by passing 0; session strings are cleared by passing "".
type UpdateSettingsParams struct {
	PHPSessID            *string `json:"phpsessid"`
	UserAgent            *string `json:"user_agent"`
	XSRFToken            *string `json:"xsrf_token"`
	AutomationEnabled    *bool   `json:"automation_enabled"`
	AutojoinEnabled      *bool   `json:"autojoin_enabled"`
	SafetyCheckEnabled   *bool   `json:"safety_check_enabled"`
	AutoHideUnsafe       *bool   `json:"auto_hide_unsafe"`
	SafetyErrorPolicy    *string `json:"safety_error_policy"`
	AutojoinStartAt      *int    `json:"autojoin_start_at"`
	AutojoinStopAt       *int    `json:"autojoin_stop_at"`
	MinPrice             *int    `json:"min_price"`
	MinScore             *int    `json:"min_score"`
	MinReviews           *int    `json:"min_reviews"`
	MaxGameAgeYears      *int    `json:"max_game_age_years"`
	DLCEnabled           *bool   `json:"dlc_enabled"`
	ScanIntervalMinutes  *int    `json:"scan_interval_minutes"`
	MaxScanPages         *int    `json:"max_scan_pages"`
	MaxEntriesPerCycle   *int    `json:"max_entries_per_cycle"`
	EntryDelayMinSeconds *int    `json:"entry_delay_min_seconds"`
	EntryDelayMaxSeconds *int    `json:"entry_delay_max_seconds"`
}

// Apply returns a copy of current with the update applied.
func (p UpdateSettingsParams) Apply(current Settings) Settings {
	next := current
	if p.PHPSessID != nil {
		next.PHPSessID = optionalString(*p.PHPSessID)
	}
	if p.UserAgent != nil {
		next.UserAgent = *p.UserAgent
	}
	if p.XSRFToken != nil {
		next.XSRFToken = optionalString(*p.XSRFToken)
	}
	if p.AutomationEnabled != nil {
		next.AutomationEnabled = *p.AutomationEnabled
	}
	if p.AutojoinEnabled != nil {
		next.AutojoinEnabled = *p.AutojoinEnabled
	}
	if p.SafetyCheckEnabled != nil {
		next.SafetyCheckEnabled = *p.SafetyCheckEnabled
	}
	if p.AutoHideUnsafe != nil {
		next.AutoHideUnsafe = *p.AutoHideUnsafe
	}
	if p.SafetyErrorPolicy != nil {
		next.SafetyErrorPolicy = *p.SafetyErrorPolicy
	}
	if p.AutojoinStartAt != nil {
		next.AutojoinStartAt = *p.AutojoinStartAt
	}
	if p.AutojoinStopAt != nil {
		next.AutojoinStopAt = *p.AutojoinStopAt
	}
	if p.MinPrice != nil {
		next.MinPrice = *p.MinPrice
	}
	if p.MinScore != nil {
		next.MinScore = *p.MinScore
	}
	if p.MinReviews != nil {
		next.MinReviews = *p.MinReviews
	}
	if p.MaxGameAgeYears != nil {
		next.MaxGameAgeYears = optionalInt(*p.MaxGameAgeYears)
	}
	if p.DLCEnabled != nil {
		next.DLCEnabled = *p.DLCEnabled
	}
	if p.ScanIntervalMinutes != nil {
		next.ScanIntervalMinutes = *p.ScanIntervalMinutes
	}
	if p.MaxScanPages != nil {
		next.MaxScanPages = *p.MaxScanPages
	}
	if p.MaxEntriesPerCycle != nil {
		next.MaxEntriesPerCycle = optionalInt(*p.MaxEntriesPerCycle)
	}
	if p.EntryDelayMinSeconds != nil {
		next.EntryDelayMinSeconds = *p.EntryDelayMinSeconds
	}
	if p.EntryDelayMaxSeconds != nil {
		next.EntryDelayMaxSeconds = *p.EntryDelayMaxSeconds
	}
	return next
}

func optionalString(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func optionalInt(v int) *int {
	if v == 0 {
		return nil
	}
	return &v
}

// ValidateSettings checks the cross-field and range rules of a settings row
func ValidateSettings(settings Settings) error {
	err := settingsValidator.Struct(settings)
	if err == nil {
		return nil
	}
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		fe := validationErrs[0]
		return &ValidationError{Field: fe.Field(), Reason: validationReason(fe)}
	}
	return fmt.Errorf("failed to validate settings: %w", err)
}

func validationReason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "ltefield":
		return fmt.Sprintf("must be less than or equal to %s", settingsColumn(fe.Param()))
	case "gtefield":
		return fmt.Sprintf("must be greater than or equal to %s", settingsColumn(fe.Param()))
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed validation (%s)", fe.Tag())
	}
}

func settingsColumn(fieldName string) string {
	if f, ok := reflect.TypeOf(Settings{}).FieldByName(fieldName); ok {
		return f.Tag.Get("db")
	}
	return fieldName
}

const settingsColumns = `id, phpsessid, user_agent, xsrf_token, automation_enabled, autojoin_enabled,
	safety_check_enabled, auto_hide_unsafe, safety_error_policy, autojoin_start_at, autojoin_stop_at,
	min_price, min_score, min_reviews, max_game_age_years, dlc_enabled, scan_interval_minutes,
	max_scan_pages, max_entries_per_cycle, entry_delay_min_seconds, entry_delay_max_seconds,
	last_synced_at, updated_at`

const sqlEnsureSettings = `INSERT INTO settings (id) VALUES (1) ON CONFLICT (id) DO NOTHING`

const sqlGetSettings = `SELECT ` + settingsColumns + ` FROM settings WHERE id = 1`

// GetSettings returns the singleton settings row, creating it with defaults on first use
func (s *Store) GetSettings(ctx context.Context) (Settings, error) {
	if _, err := s.db.ExecContext(ctx, sqlEnsureSettings); err != nil {
		s.logger.Error(ctx, "failed to ensure settings row", err)
		return Settings{}, fmt.Errorf("failed to ensure settings row: %w", err)
	}
	var settings Settings
	if err := s.db.GetContext(ctx, &settings, sqlGetSettings); err != nil {
		s.logger.Error(ctx, "failed to get settings", err)
		return Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}

const sqlGetSettingsForUpdate = sqlGetSettings + ` FOR UPDATE`

const sqlUpdateSettings = `
UPDATE settings SET
	phpsessid = $1,
	user_agent = $2,
	xsrf_token = $3,
	automation_enabled = $4,
	autojoin_enabled = $5,
	safety_check_enabled = $6,
	auto_hide_unsafe = $7,
	safety_error_policy = $8,
	autojoin_start_at = $9,
	autojoin_stop_at = $10,
	min_price = $11,
	min_score = $12,
	min_reviews = $13,
	max_game_age_years = $14,
	dlc_enabled = $15,
	scan_interval_minutes = $16,
	max_scan_pages = $17,
	max_entries_per_cycle = $18,
	entry_delay_min_seconds = $19,
	entry_delay_max_seconds = $20,
	updated_at = NOW()
WHERE id = 1
RETURNING ` + settingsColumns

// UpdateSettings applies a partial update after validating the resulting row.
// A *ValidationError is returned without touching the database row.
func (s *Store) UpdateSettings(ctx context.Context, params UpdateSettingsParams) (Settings, error) {
	var updated Settings
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, sqlEnsureSettings); err != nil {
			return fmt.Errorf("failed to ensure settings row: %w", err)
		}
		var current Settings
		if err := tx.GetContext(ctx, &current, sqlGetSettingsForUpdate); err != nil {
			return fmt.Errorf("failed to lock settings: %w", err)
		}
		next := params.Apply(current)
		if err := ValidateSettings(next); err != nil {
			return err
		}
		return tx.GetContext(ctx, &updated, sqlUpdateSettings,
			next.PHPSessID,
			next.UserAgent,
			next.XSRFToken,
			next.AutomationEnabled,
			next.AutojoinEnabled,
			next.SafetyCheckEnabled,
			next.AutoHideUnsafe,
			next.SafetyErrorPolicy,
			next.AutojoinStartAt,
			next.AutojoinStopAt,
			next.MinPrice,
			next.MinScore,
			next.MinReviews,
			next.MaxGameAgeYears,
			next.DLCEnabled,
			next.ScanIntervalMinutes,
			next.MaxScanPages,
			next.MaxEntriesPerCycle,
			next.EntryDelayMinSeconds,
			next.EntryDelayMaxSeconds,
		)
	})
	if err != nil {
		if errors.Is(err, ErrValidation) {
			return Settings{}, err
		}
		s.logger.Error(ctx, "failed to update settings", err)
		return Settings{}, fmt.Errorf("failed to update settings: %w", err)
	}
	return updated, nil
}

const sqlTouchSettingsSynced = `UPDATE settings SET last_synced_at = $1 WHERE id = 1`

// TouchSettingsSynced records the last successful contact with the site
func (s *Store) TouchSettingsSynced(ctx context.Context, at time.Time) error {
	if _, err := s.db.ExecContext(ctx, sqlTouchSettingsSynced, at); err != nil {
		s.logger.Error(ctx, "failed to touch settings sync time", err)
		return fmt.Errorf("failed to touch settings sync time: %w", err)
	}
	return nil
}
