package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"womens-health-tracker/internal/domain"
	"womens-health-tracker/internal/usecase"
)

// TrackerFacade turns typed usecase results into the exact text the menu
// prints. Success and failure share the same textual shape, so the driver
// forwards whatever comes back without branching on outcome. The strings
// match the original tracker word for word; users see no difference.
type TrackerFacade struct {
	Tracker usecase.TrackerUseCase
}

// NewTrackerFacade constructs a facade over the tracker usecase.
func NewTrackerFacade(tracker usecase.TrackerUseCase) *TrackerFacade {
	return &TrackerFacade{Tracker: tracker}
}

func (f *TrackerFacade) RegisterUser(ctx context.Context, username string) string {
	_, err := f.Tracker.RegisterUser(ctx, username)
	switch {
	case errors.Is(err, domain.ErrDuplicateUser):
		return fmt.Sprintf("Error: User '%s' already exists.", username)
	case err != nil:
		return fmt.Sprintf("Error: %v", err)
	}
	return fmt.Sprintf("User '%s' registered successfully!", username)
}

func (f *TrackerFacade) SetCycleDetails(ctx context.Context, username, lastCycleDate string, cycleLength int) string {
	_, err := f.Tracker.SetCycleDetails(ctx, username, lastCycleDate, cycleLength)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return userNotFound
	case errors.Is(err, domain.ErrInvalidDate):
		return "Error: Invalid date format. Use YYYY-MM-DD."
	case err != nil:
		return fmt.Sprintf("Error: %v", err)
	}
	return fmt.Sprintf("Cycle details updated for '%s'.", username)
}

func (f *TrackerFacade) AddSymptom(ctx context.Context, username, symptom string) string {
	_, err := f.Tracker.AddSymptom(ctx, username, symptom)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return userNotFound
	case err != nil:
		return fmt.Sprintf("Error: %v", err)
	}
	return fmt.Sprintf("Symptom '%s' logged for '%s'.", symptom, username)
}

func (f *TrackerFacade) AddReminder(ctx context.Context, username, reminder string, daysBefore int) string {
	entry, err := f.Tracker.AddReminder(ctx, username, reminder, daysBefore)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return userNotFound
	case errors.Is(err, domain.ErrNoCycleDetails):
		return noCycleDetails
	case err != nil:
		return fmt.Sprintf("Error: %v", err)
	}
	return fmt.Sprintf("Reminder '%s' added for %s on %s.", reminder, username, entry.Date)
}

func (f *TrackerFacade) ViewReminders(ctx context.Context, username string) string {
	reminders, err := f.Tracker.Reminders(ctx, username)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return userNotFound
	case err != nil:
		return fmt.Sprintf("Error: %v", err)
	}
	if len(reminders) == 0 {
		return "No reminders set."
	}
	lines := make([]string, 0, len(reminders))
	for _, r := range reminders {
		lines = append(lines, fmt.Sprintf("- %s on %s", r.Reminder, r.Date))
	}
	return strings.Join(lines, "\n")
}

func (f *TrackerFacade) PredictNextCycle(ctx context.Context, username string) string {
	next, err := f.Tracker.PredictNextCycle(ctx, username)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return userNotFound
	case errors.Is(err, domain.ErrNoCycleDetails):
		return noCycleDetails
	case err != nil:
		return fmt.Sprintf("Error: %v", err)
	}
	return fmt.Sprintf("Next cycle for %s is predicted on %s.", username, next)
}

func (f *TrackerFacade) ViewSymptoms(ctx context.Context, username string) string {
	symptoms, err := f.Tracker.Symptoms(ctx, username)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return userNotFound
	case err != nil:
		return fmt.Sprintf("Error: %v", err)
	}
	if len(symptoms) == 0 {
		return "No symptoms logged."
	}
	lines := make([]string, 0, len(symptoms))
	for _, s := range symptoms {
		lines = append(lines, fmt.Sprintf("- %s (logged on %s)", s.Symptom, s.Date))
	}
	return strings.Join(lines, "\n")
}

const (
	userNotFound   = "Error: User not found."
	noCycleDetails = "Error: No cycle details found. Please set your cycle details first."
)
