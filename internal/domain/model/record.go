package model

// DefaultCycleLength is assigned at registration until the user sets
// their own cycle details.
const DefaultCycleLength = 28

// SymptomEntry is one logged symptom. Entries are append-only and kept in
// logging order; the same symptom may be logged any number of times per day.
type SymptomEntry struct {
	Symptom string `json:"symptom"`
	Date    Date   `json:"date"`
}

// ReminderEntry is one scheduled reminder. The date is computed relative to
// the predicted next cycle at the time the reminder was added and may lie in
// the past.
type ReminderEntry struct {
	Reminder string `json:"reminder"`
	Date     Date   `json:"date"`
}

// UserRecord is the full persisted state for one username. Field order
// matches the key order of the store file written by earlier releases.
type UserRecord struct {
	LastCycleDate *Date           `json:"last_cycle_date"`
	CycleLength   int             `json:"cycle_length"`
	Symptoms      []SymptomEntry  `json:"symptoms"`
	Reminders     []ReminderEntry `json:"reminders"`
}

// NewUserRecord returns the record a freshly registered user starts with:
// no cycle details yet, default cycle length, empty sequences.
func NewUserRecord() *UserRecord {
	return &UserRecord{
		CycleLength: DefaultCycleLength,
		Symptoms:    []SymptomEntry{},
		Reminders:   []ReminderEntry{},
	}
}

// HasCycleDetails reports whether a last cycle date has ever been set.
// Predictions and reminders require it.
func (r *UserRecord) HasCycleDetails() bool {
	return r != nil && r.LastCycleDate != nil
}

// NextCycleDate derives the predicted start of the next cycle. It is
// recomputed on every call, never cached, so it always reflects the current
// cycle details. Callers must check HasCycleDetails first.
func (r *UserRecord) NextCycleDate() Date {
	return r.LastCycleDate.AddDays(r.CycleLength)
}

// Clone returns a deep copy so callers can mutate freely before Save.
func (r *UserRecord) Clone() *UserRecord {
	cp := *r
	if r.LastCycleDate != nil {
		d := *r.LastCycleDate
		cp.LastCycleDate = &d
	}
	cp.Symptoms = append([]SymptomEntry{}, r.Symptoms...)
	cp.Reminders = append([]ReminderEntry{}, r.Reminders...)
	return &cp
}

// Normalize repairs nil sequences after decoding hand-edited or truncated
// files; the store writes them as [] and never null.
func (r *UserRecord) Normalize() {
	if r.Symptoms == nil {
		r.Symptoms = []SymptomEntry{}
	}
	if r.Reminders == nil {
		r.Reminders = []ReminderEntry{}
	}
}
