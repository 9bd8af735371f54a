package cli

import (
	"context"
	"fmt"
	"strconv"
)

// userIDArg resolves an optional explicit user id argument, defaulting to
// the signed-in user.
func (a *App) userIDArg(ctx context.Context, args []string) (int64, error) {
	if len(args) > 0 {
		return strconv.ParseInt(args[0], 10, 64)
	}
	return a.currentUserID(ctx)
}

// Notifications lists a user's notifications.
func (a *App) Notifications(ctx context.Context, args []string) error {
	userID, err := a.userIDArg(ctx, args)
	if err != nil {
		return err
	}

	notifications, err := a.notifications.GetUserNotifications(ctx, userID, 0, 0)
	if err != nil {
		return err
	}
	for _, n := range notifications {
		marker := " "
		if !n.Read {
			marker = "*"
		}
		fmt.Fprintf(a.out, "%s %4d  [%s] %s\n", marker, n.NotificationID, n.Type, n.Message)
	}
	return nil
}

// MarkRead flags one notification as read.
func (a *App) MarkRead(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: read <notificationId>")
	}
	notificationID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("usage: read <notificationId>")
	}
	if err := a.notifications.MarkAsRead(ctx, notificationID); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Marked as read")
	return nil
}

// UnreadCount prints the number of unread notifications.
func (a *App) UnreadCount(ctx context.Context, args []string) error {
	userID, err := a.userIDArg(ctx, args)
	if err != nil {
		return err
	}
	count, err := a.notifications.GetUnreadCount(ctx, userID)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%d unread\n", count)
	return nil
}
