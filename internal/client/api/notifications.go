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

// Notifications groups the notification endpoints. The backing log service
// uses its own field names (logId, recipientUserId, messageType, sentAt);
// everything returned here is already normalized.
type Notifications struct {
	c *Client
}

func (c *Client) Notifications() *Notifications {
	return &Notifications{c: c}
}

// GetUserNotifications pages through a user's notifications, newest first.
// Pagination is zero-based; size <= 0 falls back to DefaultBookingPageSize.
func (n *Notifications) GetUserNotifications(ctx context.Context, userID int64, page, size int) ([]models.Notification, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = DefaultBookingPageSize
	}
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))

	endpoint := fmt.Sprintf("/notifications/user/%d?%s", userID, query.Encode())
	raw, err := n.c.Do(ctx, http.MethodGet, endpoint, nil, nil)
	if err != nil {
		return nil, err
	}

	items := normalize.Items(raw)
	notifications := make([]models.Notification, 0, len(items))
	for _, item := range items {
		notification, err := normalize.Notification(item)
		if err != nil {
			return nil, fmt.Errorf("decoding notification item: %w", err)
		}
		notifications = append(notifications, notification)
	}
	return notifications, nil
}

// MarkAsRead flags one notification as read. The gateway answers 204.
func (n *Notifications) MarkAsRead(ctx context.Context, notificationID int64) error {
	_, err := n.c.Do(ctx, http.MethodPut, fmt.Sprintf("/notifications/%d/read", notificationID), nil, nil)
	return err
}

// GetUnreadCount returns the number of unread notifications for a user.
func (n *Notifications) GetUnreadCount(ctx context.Context, userID int64) (int64, error) {
	endpoint := fmt.Sprintf("/notifications/user/%d/unread/count", userID)
	raw, err := n.c.Do(ctx, http.MethodGet, endpoint, nil, nil)
	if err != nil {
		return 0, err
	}
	var resp struct {
		Count int64 `json:"count"`
	}
	if err := json.Unmarshal(normalize.Object(raw), &resp); err != nil {
		return 0, fmt.Errorf("decoding unread count response: %w", err)
	}
	return resp.Count, nil
}
