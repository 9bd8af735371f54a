package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/mediapp/client-go/internal/client/models"
	"github.com/mediapp/client-go/internal/client/normalize"
)

// Doctors groups the doctor-directory and availability endpoints.
type Doctors struct {
	c *Client
}

func (c *Client) Doctors() *Doctors {
	return &Doctors{c: c}
}

// GetAll lists doctor profiles, optionally filtered by specialty.
// specialtyID <= 0 means no filter.
func (d *Doctors) GetAll(ctx context.Context, specialtyID int64) ([]models.Doctor, error) {
	endpoint := "/doctors"
	if specialtyID > 0 {
		endpoint += "?specialtyId=" + strconv.FormatInt(specialtyID, 10)
	}
	raw, err := d.c.Do(ctx, http.MethodGet, endpoint, nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Doctor](raw, "doctor")
}

// GetByID fetches one doctor profile.
func (d *Doctors) GetByID(ctx context.Context, doctorID int64) (models.Doctor, error) {
	raw, err := d.c.Do(ctx, http.MethodGet, fmt.Sprintf("/doctors/%d", doctorID), nil, nil)
	if err != nil {
		return models.Doctor{}, err
	}
	var doctor models.Doctor
	if err := json.Unmarshal(normalize.Object(raw), &doctor); err != nil {
		return models.Doctor{}, fmt.Errorf("decoding doctor response: %w", err)
	}
	return doctor, nil
}

// GetSpecialties lists the known medical specialties.
func (d *Doctors) GetSpecialties(ctx context.Context) ([]models.Specialty, error) {
	raw, err := d.c.Do(ctx, http.MethodGet, "/doctors/specialties", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Specialty](raw, "specialty")
}

// GetAvailability lists a doctor's slots, normalized from the wire shape
// (the server sends a reserved flag, not a status). The from/to range is
// only applied when both bounds are given.
func (d *Doctors) GetAvailability(ctx context.Context, doctorID int64, from, to string) ([]models.AvailabilitySlot, error) {
	endpoint := fmt.Sprintf("/doctors/%d/availability", doctorID)
	if from != "" && to != "" {
		query := url.Values{}
		query.Set("from", from)
		query.Set("to", to)
		endpoint += "?" + query.Encode()
	}
	raw, err := d.c.Do(ctx, http.MethodGet, endpoint, nil, nil)
	if err != nil {
		return nil, err
	}

	items := normalize.Items(raw)
	slots := make([]models.AvailabilitySlot, 0, len(items))
	for _, item := range items {
		slot, err := normalize.Slot(item)
		if err != nil {
			return nil, fmt.Errorf("decoding availability item: %w", err)
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

// ReserveSlot places a short-lived hold on a slot. The reservation token
// identifies the hold so the subsequent booking (or release) can refer to
// it; callers usually generate a fresh UUID.
func (d *Doctors) ReserveSlot(ctx context.Context, slotID int64, reservationToken string) error {
	body := map[string]string{"reservationToken": reservationToken}
	_, err := d.c.Do(ctx, http.MethodPut, fmt.Sprintf("/doctors/availability/%d/reserve", slotID), body, nil)
	return err
}

// ReleaseSlot drops a hold placed by ReserveSlot.
func (d *Doctors) ReleaseSlot(ctx context.Context, slotID int64) error {
	_, err := d.c.Do(ctx, http.MethodPut, fmt.Sprintf("/doctors/availability/%d/release", slotID), nil, nil)
	return err
}

// CreateProfile attaches a professional profile to a registered doctor
// account.
func (d *Doctors) CreateProfile(ctx context.Context, data models.DoctorProfileData) error {
	_, err := d.c.Do(ctx, http.MethodPost, "/doctors/profiles", data, nil)
	return err
}

// decodeList unwraps any list envelope and unmarshals each item into T.
func decodeList[T any](raw json.RawMessage, what string) ([]T, error) {
	items := normalize.Items(raw)
	out := make([]T, 0, len(items))
	for _, item := range items {
		var v T
		if err := json.Unmarshal(item, &v); err != nil {
			return nil, fmt.Errorf("decoding %s item: %w", what, err)
		}
		out = append(out, v)
	}
	return out, nil
}
