package cli

import (
	"context"
	"fmt"
	"strconv"
)

// Specialties lists the medical specialties.
func (a *App) Specialties(ctx context.Context) error {
	specialties, err := a.doctors.GetSpecialties(ctx)
	if err != nil {
		return err
	}
	for _, s := range specialties {
		fmt.Fprintf(a.out, "%4d  %s\n", s.SpecialtyID, s.Name)
	}
	return nil
}

// Doctors lists doctor profiles, optionally filtered by specialty id.
func (a *App) Doctors(ctx context.Context, args []string) error {
	var specialtyID int64
	if len(args) > 0 {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("usage: doctors [specialtyId]")
		}
		specialtyID = id
	}

	doctors, err := a.doctors.GetAll(ctx, specialtyID)
	if err != nil {
		return err
	}
	for _, d := range doctors {
		fmt.Fprintf(a.out, "%4d  Dr. %s %s, %s (%s)\n", d.DoctorID, d.FirstName, d.LastName, d.SpecialtyName, d.OfficeAddress)
	}
	return nil
}

// Availability lists a doctor's slots for an optional date range.
func (a *App) Availability(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: slots <doctorId> [from to]")
	}
	doctorID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("usage: slots <doctorId> [from to]")
	}
	var from, to string
	if len(args) >= 3 {
		from, to = args[1], args[2]
	}

	slots, err := a.doctors.GetAvailability(ctx, doctorID, from, to)
	if err != nil {
		return err
	}
	for _, s := range slots {
		fmt.Fprintf(a.out, "%4d  %s - %s  %s\n", s.SlotID, s.StartTime, s.EndTime, s.Status)
	}
	return nil
}
