package service_test

import (
	"errors"
	"testing"
	"time"

	"payroll-tracker/internal/repository"
	"payroll-tracker/internal/service"
)

func newTimeclock() *service.TimeclockService {
	return service.NewTimeclockService(
		repository.NewMemoryTimeEntryRepository(),
		repository.NewMemoryOpenSessionRepository(),
	)
}

func TestClockInAndOut(t *testing.T) {
	svc := newTimeclock()

	in := time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC)
	out := time.Date(2024, 1, 8, 17, 30, 0, 0, time.UTC)

	session, err := svc.ClockIn(in)
	if err != nil {
		t.Fatalf("ClockIn: %v", err)
	}
	if !session.ClockInTime.Equal(in) {
		t.Errorf("session clock-in = %v, want %v", session.ClockInTime, in)
	}

	active, err := svc.ActiveSession()
	if err != nil {
		t.Fatalf("ActiveSession: %v", err)
	}
	if active == nil {
		t.Fatal("expected an active session after clock in")
	}

	e, err := svc.ClockOut(out)
	if err != nil {
		t.Fatalf("ClockOut: %v", err)
	}
	if e.Hours != 8.5 {
		t.Errorf("entry hours = %v, want 8.5", e.Hours)
	}
	if e.ID == 0 {
		t.Error("expected entry to be assigned an ID")
	}
	if want := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC); !e.Date.Equal(want) {
		t.Errorf("entry date = %v, want %v", e.Date, want)
	}

	active, err = svc.ActiveSession()
	if err != nil {
		t.Fatalf("ActiveSession: %v", err)
	}
	if active != nil {
		t.Error("expected no active session after clock out")
	}
}

func TestClockInTwiceRefused(t *testing.T) {
	svc := newTimeclock()
	now := time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC)

	if _, err := svc.ClockIn(now); err != nil {
		t.Fatalf("ClockIn: %v", err)
	}
	_, err := svc.ClockIn(now.Add(time.Hour))
	if !errors.Is(err, service.ErrAlreadyClockedIn) {
		t.Errorf("second ClockIn error = %v, want ErrAlreadyClockedIn", err)
	}

	// The original session survives the refused attempt.
	active, err := svc.ActiveSession()
	if err != nil {
		t.Fatalf("ActiveSession: %v", err)
	}
	if active == nil || !active.ClockInTime.Equal(now) {
		t.Errorf("active session = %+v, want original clock-in %v", active, now)
	}
}

func TestClockOutWithoutSession(t *testing.T) {
	svc := newTimeclock()

	_, err := svc.ClockOut(time.Now())
	if !errors.Is(err, service.ErrNoOpenSession) {
		t.Errorf("ClockOut error = %v, want ErrNoOpenSession", err)
	}
}

func TestClockOutNonPositiveDuration(t *testing.T) {
	svc := newTimeclock()
	now := time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC)

	if _, err := svc.ClockIn(now); err != nil {
		t.Fatalf("ClockIn: %v", err)
	}

	for _, out := range []time.Time{now, now.Add(-time.Minute)} {
		_, err := svc.ClockOut(out)
		if !errors.Is(err, service.ErrNonPositiveDuration) {
			t.Errorf("ClockOut(%v) error = %v, want ErrNonPositiveDuration", out, err)
		}
	}

	// The session stays open so a later, valid clock-out still works.
	e, err := svc.ClockOut(now.Add(time.Hour))
	if err != nil {
		t.Fatalf("valid ClockOut after refusals: %v", err)
	}
	if e.Hours != 1.0 {
		t.Errorf("entry hours = %v, want 1.0", e.Hours)
	}
}

func record(t *testing.T, svc *service.TimeclockService, in, out time.Time) {
	t.Helper()
	if _, err := svc.ClockIn(in); err != nil {
		t.Fatalf("ClockIn(%v): %v", in, err)
	}
	if _, err := svc.ClockOut(out); err != nil {
		t.Fatalf("ClockOut(%v): %v", out, err)
	}
}

func TestEntriesInRange(t *testing.T) {
	svc := newTimeclock()

	day := func(d int) time.Time { return time.Date(2024, 1, d, 9, 0, 0, 0, time.UTC) }
	record(t, svc, day(5), day(5).Add(8*time.Hour))
	record(t, svc, day(20), day(20).Add(8*time.Hour))

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	entries, err := svc.EntriesInRange(start, end)
	if err != nil {
		t.Fatalf("EntriesInRange: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if want := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC); !entries[0].Date.Equal(want) {
		t.Errorf("entry date = %v, want %v", entries[0].Date, want)
	}
}

func TestEntriesInRangeInverted(t *testing.T) {
	svc := newTimeclock()
	record(t, svc,
		time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 5, 17, 0, 0, 0, time.UTC))

	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	entries, err := svc.EntriesInRange(start, end)
	if err != nil {
		t.Fatalf("EntriesInRange: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("inverted range returned %d entries, want 0", len(entries))
	}
}

func TestCurrentWeekEntries(t *testing.T) {
	svc := newTimeclock()

	// One entry inside the week of 2024-01-08, one the week before.
	record(t, svc,
		time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 10, 17, 0, 0, 0, time.UTC))
	record(t, svc,
		time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 3, 17, 0, 0, 0, time.UTC))

	today := time.Date(2024, 1, 12, 15, 0, 0, 0, time.UTC)
	entries, err := svc.CurrentWeekEntries(today)
	if err != nil {
		t.Fatalf("CurrentWeekEntries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if want := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC); !entries[0].Date.Equal(want) {
		t.Errorf("entry date = %v, want %v", entries[0].Date, want)
	}
}

func TestClearAllEntries(t *testing.T) {
	svc := newTimeclock()

	record(t, svc,
		time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 8, 17, 0, 0, 0, time.UTC))

	// Leave a session open; the clear wipes it too.
	if _, err := svc.ClockIn(time.Date(2024, 1, 9, 9, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("ClockIn: %v", err)
	}

	if err := svc.ClearAllEntries(); err != nil {
		t.Fatalf("ClearAllEntries: %v", err)
	}

	count, err := svc.EntryCount()
	if err != nil {
		t.Fatalf("EntryCount: %v", err)
	}
	if count != 0 {
		t.Errorf("count after clear = %d, want 0", count)
	}

	active, err := svc.ActiveSession()
	if err != nil {
		t.Fatalf("ActiveSession: %v", err)
	}
	if active != nil {
		t.Error("expected open session to be cleared as well")
	}
}

func TestEntryIDsSurviveClear(t *testing.T) {
	svc := newTimeclock()

	record(t, svc,
		time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 8, 17, 0, 0, 0, time.UTC))

	before, err := svc.AllEntries()
	if err != nil {
		t.Fatalf("AllEntries: %v", err)
	}
	if err := svc.ClearAllEntries(); err != nil {
		t.Fatalf("ClearAllEntries: %v", err)
	}

	record(t, svc,
		time.Date(2024, 1, 9, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 9, 17, 0, 0, 0, time.UTC))

	after, err := svc.AllEntries()
	if err != nil {
		t.Fatalf("AllEntries: %v", err)
	}

	// IDs keep climbing across a clear so an old ID is never reused.
	if after[0].ID <= before[0].ID {
		t.Errorf("entry ID %d after clear not greater than %d before", after[0].ID, before[0].ID)
	}
}
