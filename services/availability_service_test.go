package services

import (
	"context"
	"errors"
	"testing"

	"unirandevu.app/models"
)

func TestAddSlotFacultyOnly(t *testing.T) {
	for _, user := range []*models.User{studentUser(1), adminUser(2)} {
		slots := &fakeAvailabilityRepo{}
		svc := &AvailabilityService{availabilities: slots}

		_, err := svc.AddSlot(context.Background(), user, AddAvailabilityInput{DayOfWeek: "Monday"})
		if !errors.Is(err, ErrOnlyFacultyCanManage) {
			t.Fatalf("rol %s: beklenen ErrOnlyFacultyCanManage, gelen: %v", user.Role, err)
		}
		if len(slots.slots) != 0 {
			t.Fatalf("rol %s: aralık eklenmemeliydi", user.Role)
		}
	}
}

func TestAddSlotMarksSlotAvailable(t *testing.T) {
	slots := &fakeAvailabilityRepo{}
	svc := &AvailabilityService{availabilities: slots}

	slot, err := svc.AddSlot(context.Background(), facultyUser(7), AddAvailabilityInput{
		DayOfWeek: "Monday",
		StartTime: "09:00",
		EndTime:   "11:00",
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if slot.FacultyID != 7 {
		t.Fatalf("aralık öğretim üyesine bağlı değil: %d", slot.FacultyID)
	}
	if !slot.IsAvailable {
		t.Fatal("yeni aralık müsait olarak işaretlenmeli")
	}
}

// Çakışan aralıklar reddedilmez; mevcut davranış için regresyon testi.
func TestAddSlotAcceptsOverlap(t *testing.T) {
	slots := &fakeAvailabilityRepo{}
	svc := &AvailabilityService{availabilities: slots}
	faculty := facultyUser(7)

	inputs := []AddAvailabilityInput{
		{DayOfWeek: "Monday", StartTime: "09:00", EndTime: "11:00"},
		{DayOfWeek: "Monday", StartTime: "10:00", EndTime: "12:00"},
	}
	for _, input := range inputs {
		if _, err := svc.AddSlot(context.Background(), faculty, input); err != nil {
			t.Fatalf("add %s-%s: %v", input.StartTime, input.EndTime, err)
		}
	}

	list, err := svc.ListSlotsFor(context.Background(), faculty)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("iki aralık da kaydedilmeliydi, var: %d", len(list))
	}
}

func TestListSlotsForOwnSlotsOnly(t *testing.T) {
	slots := &fakeAvailabilityRepo{}
	svc := &AvailabilityService{availabilities: slots}

	if _, err := svc.AddSlot(context.Background(), facultyUser(1), AddAvailabilityInput{DayOfWeek: "Monday"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.AddSlot(context.Background(), facultyUser(2), AddAvailabilityInput{DayOfWeek: "Tuesday"}); err != nil {
		t.Fatalf("add: %v", err)
	}

	list, err := svc.ListSlotsFor(context.Background(), facultyUser(1))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].DayOfWeek != "Monday" {
		t.Fatalf("yalnızca kendi aralığı dönmeli, gelen: %+v", list)
	}

	if _, err := svc.ListSlotsFor(context.Background(), studentUser(3)); !errors.Is(err, ErrOnlyFacultyCanManage) {
		t.Fatalf("beklenen ErrOnlyFacultyCanManage, gelen: %v", err)
	}
}
