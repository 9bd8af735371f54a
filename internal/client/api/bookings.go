package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/mediapp/client-go/internal/client/models"
	"github.com/mediapp/client-go/internal/client/normalize"
)

// DefaultBookingPageSize applies to appointment listings when the caller
// passes size <= 0.
const DefaultBookingPageSize = 10

// Bookings groups the appointment endpoints. Status transitions are
// server-authoritative; these calls only request them.
type Bookings struct {
	c *Client
}

func (c *Client) Bookings() *Bookings {
	return &Bookings{c: c}
}

// Book requests an appointment for a held slot and returns the new
// appointment id.
func (b *Bookings) Book(ctx context.Context, req models.BookingRequest) (int64, error) {
	raw, err := b.c.Do(ctx, http.MethodPost, "/bookings/book", req, nil)
	if err != nil {
		return 0, err
	}
	var resp struct {
		AppointmentID int64 `json:"appointmentId"`
	}
	if err := json.Unmarshal(normalize.Object(raw), &resp); err != nil {
		return 0, fmt.Errorf("decoding booking response: %w", err)
	}
	return resp.AppointmentID, nil
}

// GetByID fetches one appointment.
func (b *Bookings) GetByID(ctx context.Context, appointmentID int64) (models.Appointment, error) {
	raw, err := b.c.Do(ctx, http.MethodGet, fmt.Sprintf("/bookings/%d", appointmentID), nil, nil)
	if err != nil {
		return models.Appointment{}, err
	}
	var appointment models.Appointment
	if err := json.Unmarshal(normalize.Object(raw), &appointment); err != nil {
		return models.Appointment{}, fmt.Errorf("decoding appointment response: %w", err)
	}
	return appointment, nil
}

// GetPatientAppointments pages through a patient's appointment history,
// optionally filtered by status. Pagination is zero-based; size <= 0 falls
// back to DefaultBookingPageSize.
func (b *Bookings) GetPatientAppointments(ctx context.Context, patientID int64, page, size int, status models.AppointmentStatus) (models.AppointmentPage, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = DefaultBookingPageSize
	}
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))
	if status != "" {
		query.Set("status", string(status))
	}

	endpoint := fmt.Sprintf("/bookings/patient/%d?%s", patientID, query.Encode())
	raw, err := b.c.Do(ctx, http.MethodGet, endpoint, nil, nil)
	if err != nil {
		return models.AppointmentPage{}, err
	}

	var result models.AppointmentPage
	if err := json.Unmarshal(normalize.Object(raw), &result); err == nil && result.Content != nil {
		return result, nil
	}

	// Some gateway builds return a bare list instead of the page wrapper.
	appointments, err := decodeList[models.Appointment](raw, "appointment")
	if err != nil {
		return models.AppointmentPage{}, err
	}
	return models.AppointmentPage{Content: appointments, TotalElements: int64(len(appointments))}, nil
}

// GetDoctorAppointments lists a doctor's appointments for one date
// (YYYY-MM-DD).
func (b *Bookings) GetDoctorAppointments(ctx context.Context, doctorID int64, date string) ([]models.Appointment, error) {
	endpoint := fmt.Sprintf("/bookings/doctor/%d/date/%s", doctorID, url.PathEscape(date))
	raw, err := b.c.Do(ctx, http.MethodGet, endpoint, nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Appointment](raw, "appointment")
}

// Confirm asks the server to move an appointment to CONFIRMED.
func (b *Bookings) Confirm(ctx context.Context, appointmentID int64) error {
	_, err := b.c.Do(ctx, http.MethodPut, fmt.Sprintf("/bookings/confirm/%d", appointmentID), nil, nil)
	return err
}

// Cancel asks the server to cancel an appointment. The reason travels as a
// URL-escaped query parameter, spaces as %20.
func (b *Bookings) Cancel(ctx context.Context, appointmentID int64, reason string) error {
	endpoint := fmt.Sprintf("/bookings/cancel/%d?reason=%s", appointmentID, queryEscape(reason))
	_, err := b.c.Do(ctx, http.MethodPut, endpoint, nil, nil)
	return err
}

// queryEscape matches the escaping the gateway expects for query values:
// percent-encoding with %20 for spaces rather than "+".
func queryEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
