package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/mediapp/client-go/internal/client/models"
)

// Book walks through the booking flow: hold the slot with a fresh
// reservation token, then request the appointment. A failed booking
// releases the hold.
func (a *App) Book(ctx context.Context) error {
	patientID, err := a.currentUserID(ctx)
	if err != nil {
		return fmt.Errorf("resolving patient id: %w", err)
	}

	doctorLine, err := GetSimpleText(a.reader, "Enter doctor id", a.out)
	if err != nil {
		return err
	}
	doctorID, err := strconv.ParseInt(doctorLine, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid doctor id")
	}

	slotLine, err := GetSimpleText(a.reader, "Enter slot id", a.out)
	if err != nil {
		return err
	}
	slotID, err := strconv.ParseInt(slotLine, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid slot id")
	}

	date, err := GetSimpleText(a.reader, "Enter appointment date (YYYY-MM-DD)", a.out)
	if err != nil {
		return err
	}
	startTime, err := GetSimpleText(a.reader, "Enter start time (HH:MM)", a.out)
	if err != nil {
		return err
	}

	reservationToken := uuid.NewString()
	if err := a.doctors.ReserveSlot(ctx, slotID, reservationToken); err != nil {
		return fmt.Errorf("reserving slot: %w", err)
	}

	appointmentID, err := a.bookings.Book(ctx, models.BookingRequest{
		PatientID:       patientID,
		DoctorID:        doctorID,
		SlotID:          slotID,
		AppointmentDate: date,
		StartTime:       startTime,
	})
	if err != nil {
		if releaseErr := a.doctors.ReleaseSlot(ctx, slotID); releaseErr != nil {
			a.log.Warn(ctx, "releasing slot after failed booking", "slot", slotID, "error", releaseErr)
		}
		return err
	}

	fmt.Fprintf(a.out, "Booked appointment %d\n", appointmentID)
	return nil
}

// Appointments lists the signed-in patient's appointments, optionally
// filtered by status.
func (a *App) Appointments(ctx context.Context, args []string) error {
	patientID, err := a.currentUserID(ctx)
	if err != nil {
		return fmt.Errorf("resolving patient id: %w", err)
	}

	var status models.AppointmentStatus
	if len(args) > 0 {
		status = models.AppointmentStatus(strings.ToUpper(args[0]))
	}

	page, err := a.bookings.GetPatientAppointments(ctx, patientID, 0, 0, status)
	if err != nil {
		return err
	}
	for _, ap := range page.Content {
		fmt.Fprintf(a.out, "%4d  %s %s  %s  %s\n", ap.AppointmentID, ap.AppointmentDate, ap.StartTime, ap.DoctorName, ap.Status)
	}
	fmt.Fprintf(a.out, "%d total\n", page.TotalElements)
	return nil
}

// Confirm requests a CONFIRMED transition for one appointment.
func (a *App) Confirm(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: confirm <appointmentId>")
	}
	appointmentID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("usage: confirm <appointmentId>")
	}
	if err := a.bookings.Confirm(ctx, appointmentID); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Confirmed")
	return nil
}

// Cancel requests a cancellation with a reason.
func (a *App) Cancel(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: cancel <appointmentId> <reason>")
	}
	appointmentID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("usage: cancel <appointmentId> <reason>")
	}
	reason := strings.Join(args[1:], " ")

	if err := a.bookings.Cancel(ctx, appointmentID, reason); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Cancelled")
	return nil
}
