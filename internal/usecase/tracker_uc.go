package usecase

import (
	"context"
	"sort"
	"time"

	"womens-health-tracker/internal/domain"
	"womens-health-tracker/internal/domain/model"
	"womens-health-tracker/internal/domain/ports/repository"
	"womens-health-tracker/internal/infra/logging"

	"github.com/rs/zerolog"
)

// Compile-time check
var _ TrackerUseCase = (*trackerUC)(nil)

// TrackerUseCase exposes the record-store operations driven by the menu.
// Operations return typed results plus sentinel domain errors; turning them
// into user-facing text is the facade's job.
type TrackerUseCase interface {
	RegisterUser(ctx context.Context, username string) (*model.UserRecord, error)
	SetCycleDetails(ctx context.Context, username, lastCycleDate string, cycleLength int) (*model.UserRecord, error)
	AddSymptom(ctx context.Context, username, symptom string) (model.SymptomEntry, error)
	AddReminder(ctx context.Context, username, reminder string, daysBefore int) (model.ReminderEntry, error)
	Reminders(ctx context.Context, username string) ([]model.ReminderEntry, error)
	PredictNextCycle(ctx context.Context, username string) (model.Date, error)
	Symptoms(ctx context.Context, username string) ([]model.SymptomEntry, error)
}

type trackerUC struct {
	records repository.RecordRepository
	clock   func() time.Time
	log     *zerolog.Logger
}

// NewTrackerUseCase wires the tracker against a record repository. A nil
// clock falls back to time.Now; tests inject a fixed one.
func NewTrackerUseCase(records repository.RecordRepository, clock func() time.Time, logger *zerolog.Logger) *trackerUC {
	if clock == nil {
		clock = time.Now
	}
	return &trackerUC{
		records: records,
		clock:   clock,
		log:     logger,
	}
}

// RegisterUser creates a fresh record for the username. Duplicate usernames
// fail without touching the store or the file.
func (t *trackerUC) RegisterUser(ctx context.Context, username string) (*model.UserRecord, error) {
	defer logging.TraceDuration(t.log, "TrackerUC.RegisterUser")()

	exists, err := t.records.Exists(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateUser
	}
	rec := model.NewUserRecord()
	if err := t.records.Save(ctx, username, rec); err != nil {
		return nil, err
	}
	t.log.Info().Str("username", username).Msg("user registered")
	return rec, nil
}

// SetCycleDetails overwrites both cycle fields. The date must parse as
// YYYY-MM-DD; a failed parse leaves the prior record untouched. cycleLength
// is accepted without range validation, non-positive values included.
func (t *trackerUC) SetCycleDetails(ctx context.Context, username, lastCycleDate string, cycleLength int) (*model.UserRecord, error) {
	defer logging.TraceDuration(t.log, "TrackerUC.SetCycleDetails")()

	rec, err := t.records.Find(ctx, username)
	if err != nil {
		return nil, err
	}
	date, err := model.ParseDate(lastCycleDate)
	if err != nil {
		return nil, err
	}
	rec.LastCycleDate = &date
	rec.CycleLength = cycleLength
	if err := t.records.Save(ctx, username, rec); err != nil {
		return nil, err
	}
	t.log.Info().Str("username", username).Str("last_cycle_date", date.String()).
		Int("cycle_length", cycleLength).Msg("cycle details updated")
	return rec, nil
}

// AddSymptom appends a symptom dated today. No duplicate suppression.
func (t *trackerUC) AddSymptom(ctx context.Context, username, symptom string) (model.SymptomEntry, error) {
	defer logging.TraceDuration(t.log, "TrackerUC.AddSymptom")()

	rec, err := t.records.Find(ctx, username)
	if err != nil {
		return model.SymptomEntry{}, err
	}
	entry := model.SymptomEntry{Symptom: symptom, Date: model.DateOf(t.clock())}
	rec.Symptoms = append(rec.Symptoms, entry)
	if err := t.records.Save(ctx, username, rec); err != nil {
		return model.SymptomEntry{}, err
	}
	return entry, nil
}

// AddReminder schedules a reminder daysBefore days ahead of the predicted
// next cycle. daysBefore may be negative or exceed the cycle length; the
// resulting date is accepted without bound checking.
func (t *trackerUC) AddReminder(ctx context.Context, username, reminder string, daysBefore int) (model.ReminderEntry, error) {
	defer logging.TraceDuration(t.log, "TrackerUC.AddReminder")()

	rec, err := t.records.Find(ctx, username)
	if err != nil {
		return model.ReminderEntry{}, err
	}
	if !rec.HasCycleDetails() {
		return model.ReminderEntry{}, domain.ErrNoCycleDetails
	}
	entry := model.ReminderEntry{
		Reminder: reminder,
		Date:     rec.NextCycleDate().AddDays(-daysBefore),
	}
	rec.Reminders = append(rec.Reminders, entry)
	if err := t.records.Save(ctx, username, rec); err != nil {
		return model.ReminderEntry{}, err
	}
	return entry, nil
}

// Reminders returns the user's reminders sorted ascending by date. The sort
// is stable so reminders sharing a date keep insertion order. Read-only.
func (t *trackerUC) Reminders(ctx context.Context, username string) ([]model.ReminderEntry, error) {
	defer logging.TraceDuration(t.log, "TrackerUC.Reminders")()

	rec, err := t.records.Find(ctx, username)
	if err != nil {
		return nil, err
	}
	out := append([]model.ReminderEntry{}, rec.Reminders...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out, nil
}

// PredictNextCycle derives last_cycle_date + cycle_length days. Recomputed
// on every call, never persisted.
func (t *trackerUC) PredictNextCycle(ctx context.Context, username string) (model.Date, error) {
	defer logging.TraceDuration(t.log, "TrackerUC.PredictNextCycle")()

	rec, err := t.records.Find(ctx, username)
	if err != nil {
		return model.Date{}, err
	}
	if !rec.HasCycleDetails() {
		return model.Date{}, domain.ErrNoCycleDetails
	}
	return rec.NextCycleDate(), nil
}

// Symptoms returns the user's symptoms in logging order. Unlike reminders
// they are NOT date-sorted; the asymmetry is part of the contract.
func (t *trackerUC) Symptoms(ctx context.Context, username string) ([]model.SymptomEntry, error) {
	defer logging.TraceDuration(t.log, "TrackerUC.Symptoms")()

	rec, err := t.records.Find(ctx, username)
	if err != nil {
		return nil, err
	}
	return append([]model.SymptomEntry{}, rec.Symptoms...), nil
}
