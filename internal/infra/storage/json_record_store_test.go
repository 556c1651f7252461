// File: internal/infra/storage/json_record_store_test.go
package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"womens-health-tracker/internal/domain"
	"womens-health-tracker/internal/domain/model"
)

var dateComparer = cmp.Comparer(func(a, b model.Date) bool { return a.Equal(b) })

func newTestLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

func storePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "user_data.json")
}

func TestJSONRecordStore_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file yields an empty store", func(t *testing.T) {
		s, err := NewJSONRecordStore(storePath(t), newTestLogger())
		if err != nil {
			t.Fatalf("NewJSONRecordStore failed: %v", err)
		}
		if n, _ := s.Count(ctx); n != 0 {
			t.Errorf("expected empty store, got %d records", n)
		}
	})

	t.Run("corrupt file is quarantined and the store starts empty", func(t *testing.T) {
		path := storePath(t)
		corrupt := []byte(`{"alice": {"cycle_length": `)
		if err := os.WriteFile(path, corrupt, 0o644); err != nil {
			t.Fatalf("seed corrupt file: %v", err)
		}

		s, err := NewJSONRecordStore(path, newTestLogger())
		if err != nil {
			t.Fatalf("NewJSONRecordStore failed: %v", err)
		}
		if n, _ := s.Count(ctx); n != 0 {
			t.Errorf("expected empty store after corruption, got %d records", n)
		}

		// The original file must survive under a quarantine name.
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Errorf("expected corrupt file moved away, stat err=%v", err)
		}
		matches, err := filepath.Glob(path + ".corrupt-*")
		if err != nil || len(matches) != 1 {
			t.Fatalf("expected exactly one quarantine file, got %v (err=%v)", matches, err)
		}
		b, err := os.ReadFile(matches[0])
		if err != nil {
			t.Fatalf("read quarantine file: %v", err)
		}
		if string(b) != string(corrupt) {
			t.Errorf("quarantined bytes differ from original")
		}
	})

	t.Run("reads the format written by the original tool", func(t *testing.T) {
		path := storePath(t)
		seed := `{
    "alice": {
        "last_cycle_date": "2024-01-01",
        "cycle_length": 28,
        "symptoms": [
            {
                "symptom": "headache",
                "date": "2024-01-10"
            }
        ],
        "reminders": []
    },
    "carol": {
        "last_cycle_date": null,
        "cycle_length": 28,
        "symptoms": [],
        "reminders": []
    }
}`
		if err := os.WriteFile(path, []byte(seed), 0o644); err != nil {
			t.Fatalf("seed store file: %v", err)
		}

		s, err := NewJSONRecordStore(path, newTestLogger())
		if err != nil {
			t.Fatalf("NewJSONRecordStore failed: %v", err)
		}
		alice, err := s.Find(ctx, "alice")
		if err != nil {
			t.Fatalf("Find(alice) failed: %v", err)
		}
		if alice.LastCycleDate == nil || alice.LastCycleDate.String() != "2024-01-01" {
			t.Errorf("expected alice's last cycle date 2024-01-01, got %v", alice.LastCycleDate)
		}
		if len(alice.Symptoms) != 1 || alice.Symptoms[0].Symptom != "headache" {
			t.Errorf("expected one headache symptom, got %+v", alice.Symptoms)
		}
		carol, err := s.Find(ctx, "carol")
		if err != nil {
			t.Fatalf("Find(carol) failed: %v", err)
		}
		if carol.HasCycleDetails() {
			t.Errorf("expected carol without cycle details")
		}
	})
}

func TestJSONRecordStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := storePath(t)

	s, err := NewJSONRecordStore(path, newTestLogger())
	if err != nil {
		t.Fatalf("NewJSONRecordStore failed: %v", err)
	}

	alice := model.NewUserRecord()
	d := model.MustDate("2024-01-01")
	alice.LastCycleDate = &d
	alice.CycleLength = 30
	alice.Symptoms = append(alice.Symptoms,
		model.SymptomEntry{Symptom: "headache", Date: model.MustDate("2024-01-10")},
		model.SymptomEntry{Symptom: "cramps", Date: model.MustDate("2024-01-05")},
	)
	alice.Reminders = append(alice.Reminders,
		model.ReminderEntry{Reminder: "Buy supplies", Date: model.MustDate("2024-01-26")},
	)
	bob := model.NewUserRecord()

	if err := s.Save(ctx, "alice", alice); err != nil {
		t.Fatalf("Save(alice) failed: %v", err)
	}
	if err := s.Save(ctx, "bob", bob); err != nil {
		t.Fatalf("Save(bob) failed: %v", err)
	}

	// Reopen from disk and compare record by record.
	reopened, err := NewJSONRecordStore(path, newTestLogger())
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	if n, _ := reopened.Count(ctx); n != 2 {
		t.Fatalf("expected 2 records after reopen, got %d", n)
	}
	for name, want := range map[string]*model.UserRecord{"alice": alice, "bob": bob} {
		got, err := reopened.Find(ctx, name)
		if err != nil {
			t.Fatalf("Find(%s) after reopen failed: %v", name, err)
		}
		if diff := cmp.Diff(want, got, dateComparer); diff != "" {
			t.Errorf("record %s mismatch after round trip (-want +got):\n%s", name, diff)
		}
	}
}

func TestJSONRecordStore_WireFormat(t *testing.T) {
	ctx := context.Background()
	path := storePath(t)

	s, err := NewJSONRecordStore(path, newTestLogger())
	if err != nil {
		t.Fatalf("NewJSONRecordStore failed: %v", err)
	}
	rec := model.NewUserRecord()
	d := model.MustDate("2024-01-01")
	rec.LastCycleDate = &d
	if err := s.Save(ctx, "alice", rec); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read store file: %v", err)
	}
	want := strings.Join([]string{
		`{`,
		`    "alice": {`,
		`        "last_cycle_date": "2024-01-01",`,
		`        "cycle_length": 28,`,
		`        "symptoms": [],`,
		`        "reminders": []`,
		`    }`,
		`}`,
	}, "\n")
	if string(b) != want {
		t.Errorf("store file bytes mismatch:\n--- want ---\n%s\n--- got ---\n%s", want, b)
	}
}

func TestJSONRecordStore_Find(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown username", func(t *testing.T) {
		s, err := NewJSONRecordStore(storePath(t), newTestLogger())
		if err != nil {
			t.Fatalf("NewJSONRecordStore failed: %v", err)
		}
		_, err = s.Find(ctx, "bob")
		if err != domain.ErrUserNotFound {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("returns an isolated copy", func(t *testing.T) {
		s, err := NewJSONRecordStore(storePath(t), newTestLogger())
		if err != nil {
			t.Fatalf("NewJSONRecordStore failed: %v", err)
		}
		if err := s.Save(ctx, "alice", model.NewUserRecord()); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		got, _ := s.Find(ctx, "alice")
		got.CycleLength = 99
		got.Symptoms = append(got.Symptoms, model.SymptomEntry{Symptom: "x", Date: model.MustDate("2024-01-01")})

		again, _ := s.Find(ctx, "alice")
		if again.CycleLength != model.DefaultCycleLength || len(again.Symptoms) != 0 {
			t.Errorf("mutating a returned record leaked into the store: %+v", again)
		}
	})
}
