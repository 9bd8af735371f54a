// Package normalize collapses the gateway's inconsistent response shapes
// into the canonical models. The gateway wraps list payloads in several
// envelope variants and uses diverging field names for the same logical
// fields depending on which backing service produced the response; every
// variant observed in the wild is mapped here, once, at the boundary.
//
// Functions in this package perform no I/O and are deterministic.
package normalize

import (
	"bytes"
	"encoding/json"

	"github.com/mediapp/client-go/internal/client/models"
)

// listEnvelope matches the wrapped list shapes the gateway is known to emit.
type listEnvelope struct {
	Data    json.RawMessage `json:"data"`
	Content json.RawMessage `json:"content"`
	Items   json.RawMessage `json:"items"`
}

func asArray(raw json.RawMessage) ([]json.RawMessage, bool) {
	if len(raw) == 0 {
		return nil, false
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}
	if items == nil {
		// JSON null unmarshals without error but is not a list.
		return nil, false
	}
	return items, true
}

// Items extracts the item list from any recognized envelope shape.
// Shapes are checked in precedence order: a bare array, {data: [...]},
// {data: {content: [...]}}, {content: [...]}, {items: [...]}. When no
// shape matches the result is an empty (non-nil) slice, never an error:
// an unrecognized envelope is treated as carrying nothing.
func Items(raw json.RawMessage) []json.RawMessage {
	if items, ok := asArray(raw); ok {
		return items
	}

	var env listEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return []json.RawMessage{}
	}

	if len(env.Data) > 0 {
		if items, ok := asArray(env.Data); ok {
			return items
		}
		var inner struct {
			Content json.RawMessage `json:"content"`
		}
		if err := json.Unmarshal(env.Data, &inner); err == nil {
			if items, ok := asArray(inner.Content); ok {
				return items
			}
		}
	}
	if items, ok := asArray(env.Content); ok {
		return items
	}
	if items, ok := asArray(env.Items); ok {
		return items
	}
	return []json.RawMessage{}
}

// Object unwraps a {data: {...}} envelope around a single record and
// returns the payload as-is when no envelope is present.
func Object(raw json.RawMessage) json.RawMessage {
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return raw
	}
	if len(env.Data) > 0 && !bytes.Equal(env.Data, []byte("null")) {
		return env.Data
	}
	return raw
}

// userAliases carries every field name the user-facing services use for
// the same logical user record.
type userAliases struct {
	UserID      *int64      `json:"userId"`
	PatientID   *int64      `json:"patientId"`
	DoctorID    *int64      `json:"doctorId"`
	ID          *int64      `json:"id"`
	Email       string      `json:"email"`
	FirstName   string      `json:"firstName"`
	LastName    string      `json:"lastName"`
	PhoneNumber string      `json:"phoneNumber"`
	DateOfBirth string      `json:"dateOfBirth"`
	Role        models.Role `json:"role"`
}

// User maps one raw user item to the canonical model. Identity resolves as
// userId, then patientId, then doctorId, then id; fallbackRole applies when
// the record carries no role (patient and doctor listings omit it).
func User(raw json.RawMessage, fallbackRole models.Role) (models.User, error) {
	var a userAliases
	if err := json.Unmarshal(raw, &a); err != nil {
		return models.User{}, err
	}
	role := a.Role
	if role == "" {
		role = fallbackRole
	}
	return models.User{
		UserID:      firstID(a.UserID, a.PatientID, a.DoctorID, a.ID),
		Email:       a.Email,
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		PhoneNumber: a.PhoneNumber,
		DateOfBirth: a.DateOfBirth,
		Role:        role,
	}, nil
}

// notificationAliases covers the notification-log shape (logId,
// recipientUserId, messageType, sentAt) as well as the plain notification
// shape. MessageType and Read stay raw because the log service has been
// observed sending numbers where strings or booleans are expected.
type notificationAliases struct {
	LogID           *int64          `json:"logId"`
	NotificationID  *int64          `json:"notificationId"`
	ID              *int64          `json:"id"`
	RecipientUserID *int64          `json:"recipientUserId"`
	UserID          *int64          `json:"userId"`
	Message         string          `json:"message"`
	Body            string          `json:"body"`
	Text            string          `json:"text"`
	MessageType     json.RawMessage `json:"messageType"`
	Type            string          `json:"type"`
	Read            json.RawMessage `json:"read"`
	SentAt          string          `json:"sentAt"`
	CreatedAt       string          `json:"createdAt"`
	Timestamp       string          `json:"timestamp"`
}

// Notification maps one raw notification item to the canonical model.
// Precedence per field, first non-empty source wins:
//
//	id:        logId, notificationId, id
//	userId:    recipientUserId, userId
//	message:   message, body, text, stringified messageType
//	type:      messageType, type, "UNKNOWN"
//	createdAt: sentAt, createdAt, timestamp
//
// read is coerced to a boolean: absent, null, false, 0 and "" all read as
// unread.
func Notification(raw json.RawMessage) (models.Notification, error) {
	var a notificationAliases
	if err := json.Unmarshal(raw, &a); err != nil {
		return models.Notification{}, err
	}

	msgType := rawString(a.MessageType)

	message := a.Message
	if message == "" {
		message = a.Body
	}
	if message == "" {
		message = a.Text
	}
	if message == "" {
		message = msgType
	}

	typ := msgType
	if typ == "" {
		typ = a.Type
	}
	if typ == "" {
		typ = "UNKNOWN"
	}

	createdAt := a.SentAt
	if createdAt == "" {
		createdAt = a.CreatedAt
	}
	if createdAt == "" {
		createdAt = a.Timestamp
	}

	return models.Notification{
		NotificationID: firstID(a.LogID, a.NotificationID, a.ID),
		UserID:         firstID(a.RecipientUserID, a.UserID),
		Message:        message,
		Type:           typ,
		Read:           truthy(a.Read),
		CreatedAt:      createdAt,
	}, nil
}

// slotAliases is the availability-slot wire shape. The server transmits a
// boolean reserved flag instead of a status.
type slotAliases struct {
	SlotID    int64           `json:"slotId"`
	DoctorID  int64           `json:"doctorId"`
	StartTime string          `json:"startTime"`
	EndTime   string          `json:"endTime"`
	Reserved  json.RawMessage `json:"reserved"`
}

// Slot maps one raw availability item to the canonical model. Only an
// explicit reserved:false yields an AVAILABLE slot; true, a missing flag or
// a malformed value all read as RESERVED. BOOKED never originates here.
func Slot(raw json.RawMessage) (models.AvailabilitySlot, error) {
	var a slotAliases
	if err := json.Unmarshal(raw, &a); err != nil {
		return models.AvailabilitySlot{}, err
	}
	status := models.SlotReserved
	if bytes.Equal(bytes.TrimSpace(a.Reserved), []byte("false")) {
		status = models.SlotAvailable
	}
	return models.AvailabilitySlot{
		SlotID:    a.SlotID,
		DoctorID:  a.DoctorID,
		StartTime: a.StartTime,
		EndTime:   a.EndTime,
		Status:    status,
	}, nil
}

// firstID returns the first non-nil id, or 0.
func firstID(ids ...*int64) int64 {
	for _, id := range ids {
		if id != nil {
			return *id
		}
	}
	return 0
}

// rawString renders a raw JSON scalar as a plain string: JSON strings are
// unquoted, other scalars keep their literal text, null and absent values
// become "".
func rawString(raw json.RawMessage) string {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(bytes.TrimSpace(raw))
}

// truthy reports whether a raw JSON value is truthy: absent, null, false,
// 0 and "" are false, everything else is true.
func truthy(raw json.RawMessage) bool {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return false
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n != 0
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s != ""
	}
	return true
}
