package normalize

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediapp/client-go/internal/client/models"
)

func TestItems_AllEnvelopeShapesYieldSameItems(t *testing.T) {
	items := `[{"id":1},{"id":2},{"id":3}]`

	envelopes := map[string]string{
		"bare array":   items,
		"data array":   `{"data":` + items + `}`,
		"data.content": `{"data":{"content":` + items + `}}`,
		"content":      `{"content":` + items + `}`,
		"items":        `{"items":` + items + `}`,
	}

	var want []json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(items), &want))

	for name, envelope := range envelopes {
		t.Run(name, func(t *testing.T) {
			got := Items(json.RawMessage(envelope))
			require.Len(t, got, len(want))
			for i := range want {
				assert.JSONEq(t, string(want[i]), string(got[i]))
			}
		})
	}
}

func TestItems_PrecedenceDataOverContent(t *testing.T) {
	raw := json.RawMessage(`{"data":[{"id":1}],"content":[{"id":2}],"items":[{"id":3}]}`)
	got := Items(raw)
	require.Len(t, got, 1)
	assert.JSONEq(t, `{"id":1}`, string(got[0]))
}

func TestItems_DataObjectWithoutContentFallsThrough(t *testing.T) {
	raw := json.RawMessage(`{"data":{"note":"no list here"},"content":[{"id":2}]}`)
	got := Items(raw)
	require.Len(t, got, 1)
	assert.JSONEq(t, `{"id":2}`, string(got[0]))
}

func TestItems_UnrecognizedShapesYieldEmptySlice(t *testing.T) {
	cases := []string{
		`{}`,
		`{"data":"nope"}`,
		`{"foo":[1,2]}`,
		`"just a string"`,
		`null`,
		``,
	}
	for _, c := range cases {
		got := Items(json.RawMessage(c))
		require.NotNil(t, got, "input %q", c)
		assert.Empty(t, got, "input %q", c)
	}
}

func TestObject_UnwrapsDataEnvelope(t *testing.T) {
	raw := json.RawMessage(`{"data":{"userId":7}}`)
	assert.JSONEq(t, `{"userId":7}`, string(Object(raw)))
}

func TestObject_PassesThroughPlainObjects(t *testing.T) {
	raw := json.RawMessage(`{"userId":7}`)
	assert.JSONEq(t, `{"userId":7}`, string(Object(raw)))

	// null data is no envelope
	raw = json.RawMessage(`{"data":null,"userId":8}`)
	assert.JSONEq(t, `{"data":null,"userId":8}`, string(Object(raw)))
}

func TestUser_IdentityPrecedence(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int64
	}{
		{"userId wins", `{"userId":1,"patientId":2,"doctorId":3,"id":4}`, 1},
		{"patientId next", `{"patientId":2,"doctorId":3,"id":4}`, 2},
		{"doctorId next", `{"doctorId":3,"id":4}`, 3},
		{"id last", `{"id":4}`, 4},
		{"none", `{"email":"a@b.c"}`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := User(json.RawMessage(tt.raw), models.RolePatient)
			require.NoError(t, err)
			assert.Equal(t, tt.want, user.UserID)
		})
	}
}

func TestUser_FallbackRoleOnlyWhenMissing(t *testing.T) {
	user, err := User(json.RawMessage(`{"userId":1,"role":"ADMIN"}`), models.RolePatient)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)

	user, err = User(json.RawMessage(`{"userId":1}`), models.RoleDoctor)
	require.NoError(t, err)
	assert.Equal(t, models.RoleDoctor, user.Role)
}

func TestNotification_LogServiceAliases(t *testing.T) {
	raw := json.RawMessage(`{
		"logId": 11,
		"recipientUserId": 42,
		"messageType": "APPOINTMENT_CONFIRMED",
		"sentAt": "2026-01-15T10:00:00Z",
		"read": false
	}`)

	n, err := Notification(raw)
	require.NoError(t, err)
	assert.Equal(t, int64(11), n.NotificationID)
	assert.Equal(t, int64(42), n.UserID)
	assert.Equal(t, "APPOINTMENT_CONFIRMED", n.Message, "message falls back to messageType")
	assert.Equal(t, "APPOINTMENT_CONFIRMED", n.Type)
	assert.Equal(t, "2026-01-15T10:00:00Z", n.CreatedAt)
	assert.False(t, n.Read)
}

func TestNotification_CanonicalShapePassesThrough(t *testing.T) {
	raw := json.RawMessage(`{
		"notificationId": 5,
		"userId": 9,
		"message": "Your appointment was confirmed",
		"type": "BOOKING",
		"read": true,
		"createdAt": "2026-02-01T08:30:00Z"
	}`)

	n, err := Notification(raw)
	require.NoError(t, err)
	assert.Equal(t, int64(5), n.NotificationID)
	assert.Equal(t, int64(9), n.UserID)
	assert.Equal(t, "Your appointment was confirmed", n.Message)
	assert.Equal(t, "BOOKING", n.Type)
	assert.True(t, n.Read)
	assert.Equal(t, "2026-02-01T08:30:00Z", n.CreatedAt)
}

func TestNotification_FieldPrecedence(t *testing.T) {
	raw := json.RawMessage(`{
		"logId": 1, "notificationId": 2, "id": 3,
		"recipientUserId": 10, "userId": 20,
		"message": "m", "body": "b", "text": "t",
		"sentAt": "s", "createdAt": "c", "timestamp": "ts"
	}`)
	n, err := Notification(raw)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n.NotificationID)
	assert.Equal(t, int64(10), n.UserID)
	assert.Equal(t, "m", n.Message)
	assert.Equal(t, "s", n.CreatedAt)
}

func TestNotification_MessageFallbackChain(t *testing.T) {
	n, err := Notification(json.RawMessage(`{"body":"b","text":"t"}`))
	require.NoError(t, err)
	assert.Equal(t, "b", n.Message)

	n, err = Notification(json.RawMessage(`{"text":"t"}`))
	require.NoError(t, err)
	assert.Equal(t, "t", n.Message)

	// numeric messageType stringified, and used for both message and type
	n, err = Notification(json.RawMessage(`{"messageType":3}`))
	require.NoError(t, err)
	assert.Equal(t, "3", n.Message)
	assert.Equal(t, "3", n.Type)
}

func TestNotification_TypeDefaultsToUnknown(t *testing.T) {
	n, err := Notification(json.RawMessage(`{"message":"hi"}`))
	require.NoError(t, err)
	assert.Equal(t, "UNKNOWN", n.Type)
}

func TestNotification_ReadTruthiness(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{`{"read":true}`, true},
		{`{"read":false}`, false},
		{`{"read":1}`, true},
		{`{"read":0}`, false},
		{`{"read":"yes"}`, true},
		{`{"read":""}`, false},
		{`{"read":null}`, false},
		{`{}`, false},
	}
	for _, tt := range tests {
		n, err := Notification(json.RawMessage(tt.raw))
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, n.Read, tt.raw)
	}
}

func TestSlot_ReservedFlagMapping(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want models.SlotStatus
	}{
		{"explicit false is available", `{"slotId":1,"reserved":false}`, models.SlotAvailable},
		{"true is reserved", `{"slotId":1,"reserved":true}`, models.SlotReserved},
		{"missing is reserved", `{"slotId":1}`, models.SlotReserved},
		{"null is reserved", `{"slotId":1,"reserved":null}`, models.SlotReserved},
		{"garbage is reserved", `{"slotId":1,"reserved":"no"}`, models.SlotReserved},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot, err := Slot(json.RawMessage(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.want, slot.Status)
			assert.NotEqual(t, models.SlotBooked, slot.Status)
		})
	}
}

func TestSlot_CarriesTimesAndIDs(t *testing.T) {
	raw := json.RawMessage(`{"slotId":7,"doctorId":3,"startTime":"09:00","endTime":"09:30","reserved":false}`)
	slot, err := Slot(raw)
	require.NoError(t, err)
	assert.Equal(t, models.AvailabilitySlot{
		SlotID:    7,
		DoctorID:  3,
		StartTime: "09:00",
		EndTime:   "09:30",
		Status:    models.SlotAvailable,
	}, slot)
}
