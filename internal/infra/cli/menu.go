// File: internal/infra/cli/menu.go
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"womens-health-tracker/internal/application"
)

// Menu is the interactive driver: a thin I/O wrapper over the facade. It
// reads raw lines, parses integer fields itself, and prints whatever text
// the facade returns. All operations run strictly serially.
type Menu struct {
	in     *bufio.Scanner
	out    io.Writer
	facade *application.TrackerFacade
	log    *zerolog.Logger
}

// NewMenu builds a menu reading from in and writing to out; tests inject
// scripted input and capture output.
func NewMenu(in io.Reader, out io.Writer, facade *application.TrackerFacade, logger *zerolog.Logger) *Menu {
	return &Menu{
		in:     bufio.NewScanner(in),
		out:    out,
		facade: facade,
		log:    logger,
	}
}

// Run loops over the 8-option menu until the user exits or input ends.
func (m *Menu) Run(ctx context.Context) error {
	fmt.Fprintln(m.out, "=== Welcome to Women's Health Tracker ===")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		m.printMenu()
		choice, ok := m.prompt("Choose an option (1-8): ")
		if !ok {
			return m.in.Err()
		}

		switch choice {
		case "1":
			username, ok := m.prompt("Enter your username: ")
			if !ok {
				return m.in.Err()
			}
			fmt.Fprintln(m.out, m.facade.RegisterUser(ctx, username))

		case "2":
			username, ok := m.prompt("Enter your username: ")
			if !ok {
				return m.in.Err()
			}
			lastCycleDate, ok := m.prompt("Enter last cycle date (YYYY-MM-DD): ")
			if !ok {
				return m.in.Err()
			}
			raw, ok := m.prompt("Enter cycle length in days: ")
			if !ok {
				return m.in.Err()
			}
			cycleLength, err := strconv.Atoi(raw)
			if err != nil {
				fmt.Fprintln(m.out, "Error: Cycle length must be an integer.")
				continue
			}
			fmt.Fprintln(m.out, m.facade.SetCycleDetails(ctx, username, lastCycleDate, cycleLength))

		case "3":
			username, ok := m.prompt("Enter your username: ")
			if !ok {
				return m.in.Err()
			}
			symptom, ok := m.prompt("Enter the symptom: ")
			if !ok {
				return m.in.Err()
			}
			fmt.Fprintln(m.out, m.facade.AddSymptom(ctx, username, symptom))

		case "4":
			username, ok := m.prompt("Enter your username: ")
			if !ok {
				return m.in.Err()
			}
			reminder, ok := m.prompt("Enter the reminder: ")
			if !ok {
				return m.in.Err()
			}
			raw, ok := m.prompt("Set the number of days before next cycle: ")
			if !ok {
				return m.in.Err()
			}
			daysBefore, err := strconv.Atoi(raw)
			if err != nil {
				fmt.Fprintln(m.out, "Error: Number of days must be an integer.")
				continue
			}
			fmt.Fprintln(m.out, m.facade.AddReminder(ctx, username, reminder, daysBefore))

		case "5":
			username, ok := m.prompt("Enter your username: ")
			if !ok {
				return m.in.Err()
			}
			fmt.Fprintln(m.out, "Reminders:\n"+m.facade.ViewReminders(ctx, username))

		case "6":
			username, ok := m.prompt("Enter your username: ")
			if !ok {
				return m.in.Err()
			}
			fmt.Fprintln(m.out, m.facade.PredictNextCycle(ctx, username))

		case "7":
			username, ok := m.prompt("Enter your username: ")
			if !ok {
				return m.in.Err()
			}
			fmt.Fprintln(m.out, "Symptoms:\n"+m.facade.ViewSymptoms(ctx, username))

		case "8":
			fmt.Fprintln(m.out, "Thank you for using Women's Health Tracker!")
			return nil

		default:
			fmt.Fprintln(m.out, "Invalid choice. Please try again.")
		}
	}
}

func (m *Menu) printMenu() {
	fmt.Fprint(m.out, "\nMenu:\n"+
		"1. Register User\n"+
		"2. Set Cycle Details\n"+
		"3. Add Symptom\n"+
		"4. Add Reminder\n"+
		"5. View Reminders\n"+
		"6. Predict Next Cycle\n"+
		"7. View Symptoms\n"+
		"8. Exit\n")
}

// prompt prints a label and returns the next input line, trimmed.
// ok is false once input is exhausted.
func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}
