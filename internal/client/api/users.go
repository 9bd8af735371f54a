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

// DefaultUserPageSize applies to patient/doctor listings when the caller
// passes size <= 0.
const DefaultUserPageSize = 50

// Users groups the user-account endpoints.
type Users struct {
	c *Client
}

func (c *Client) Users() *Users {
	return &Users{c: c}
}

// RegisterPatient creates a patient account and returns the new user id.
func (u *Users) RegisterPatient(ctx context.Context, data models.RegisterPatientData) (int64, error) {
	raw, err := u.c.Do(ctx, http.MethodPost, "/users/register/patient", data, nil)
	if err != nil {
		return 0, err
	}
	return decodeUserID(raw)
}

// RegisterDoctor creates a doctor account. The gateway guards this behind
// an admin credential carried in X-Admin-Token.
func (u *Users) RegisterDoctor(ctx context.Context, data models.RegisterDoctorData) (int64, error) {
	header := http.Header{}
	header.Set("X-Admin-Token", u.c.adminToken)
	raw, err := u.c.Do(ctx, http.MethodPost, "/users/register/doctor", data, header)
	if err != nil {
		return 0, err
	}
	return decodeUserID(raw)
}

func decodeUserID(raw json.RawMessage) (int64, error) {
	if len(raw) == 0 {
		return 0, nil
	}
	var resp struct {
		UserID int64 `json:"userId"`
	}
	if err := json.Unmarshal(normalize.Object(raw), &resp); err != nil {
		return 0, fmt.Errorf("decoding registration response: %w", err)
	}
	return resp.UserID, nil
}

// GetProfile fetches the account of the current bearer token.
func (u *Users) GetProfile(ctx context.Context) (models.User, error) {
	return u.getUser(ctx, "/users/me")
}

// GetUserDetails fetches an arbitrary account by id.
func (u *Users) GetUserDetails(ctx context.Context, userID int64) (models.User, error) {
	return u.getUser(ctx, fmt.Sprintf("/users/details/%d", userID))
}

func (u *Users) getUser(ctx context.Context, endpoint string) (models.User, error) {
	raw, err := u.c.Do(ctx, http.MethodGet, endpoint, nil, nil)
	if err != nil {
		return models.User{}, err
	}
	var user models.User
	if err := json.Unmarshal(normalize.Object(raw), &user); err != nil {
		return models.User{}, fmt.Errorf("decoding user response: %w", err)
	}
	return user, nil
}

// GetAllPatients lists patient accounts. Pagination is zero-based;
// size <= 0 falls back to DefaultUserPageSize. Records without a role
// default to PATIENT.
func (u *Users) GetAllPatients(ctx context.Context, page, size int) ([]models.User, error) {
	return u.listUsers(ctx, "/users/all/patients", page, size, models.RolePatient)
}

// GetAllDoctors lists doctor accounts, defaulting missing roles to DOCTOR.
func (u *Users) GetAllDoctors(ctx context.Context, page, size int) ([]models.User, error) {
	return u.listUsers(ctx, "/users/all/doctors", page, size, models.RoleDoctor)
}

func (u *Users) listUsers(ctx context.Context, endpoint string, page, size int, fallbackRole models.Role) ([]models.User, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = DefaultUserPageSize
	}
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))

	raw, err := u.c.Do(ctx, http.MethodGet, endpoint+"?"+query.Encode(), nil, nil)
	if err != nil {
		return nil, err
	}

	items := normalize.Items(raw)
	users := make([]models.User, 0, len(items))
	for _, item := range items {
		user, err := normalize.User(item, fallbackRole)
		if err != nil {
			return nil, fmt.Errorf("decoding user item: %w", err)
		}
		users = append(users, user)
	}
	return users, nil
}
