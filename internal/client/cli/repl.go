package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Specialties(ctx context.Context) error
	Doctors(ctx context.Context, args []string) error
	Availability(ctx context.Context, args []string) error
	Book(ctx context.Context) error
	Appointments(ctx context.Context, args []string) error
	Confirm(ctx context.Context, args []string) error
	Cancel(ctx context.Context, args []string) error
	Notifications(ctx context.Context, args []string) error
	MarkRead(ctx context.Context, args []string) error
	UnreadCount(ctx context.Context, args []string) error
}

// runREPL reads commands line by line and dispatches them. The loop exits
// on scanner EOF or the exit/quit commands. Command errors are printed and
// never terminate the loop; every failure is local to the operation that
// triggered it.
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner, w io.Writer) {
	fmt.Fprintln(w, "MediApp client (type 'help' for commands)")

	for {
		fmt.Fprint(w, "mediapp> ")
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			printHelp(a.isLoggedIn(ctx), w)
		case "login":
			err = a.Login(ctx)
		case "register":
			err = a.Register(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "whoami":
			err = a.Whoami(ctx)
		case "specialties":
			err = a.Specialties(ctx)
		case "doctors":
			err = a.Doctors(ctx, args)
		case "slots":
			err = a.Availability(ctx, args)
		case "book":
			err = a.Book(ctx)
		case "appointments":
			err = a.Appointments(ctx, args)
		case "confirm":
			err = a.Confirm(ctx, args)
		case "cancel":
			err = a.Cancel(ctx, args)
		case "notifications":
			err = a.Notifications(ctx, args)
		case "read":
			err = a.MarkRead(ctx, args)
		case "unread":
			err = a.UnreadCount(ctx, args)
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}

		if err != nil {
			fmt.Fprintln(w, "error:", err)
		}
	}
}

func printHelp(loggedIn bool, w io.Writer) {
	if !loggedIn {
		fmt.Fprintln(w, "Available commands: login, register, specialties, doctors [specialtyId], slots <doctorId> [from to], exit")
		return
	}
	fmt.Fprintln(w, "Available commands: whoami, specialties, doctors [specialtyId], slots <doctorId> [from to], book, appointments, confirm <id>, cancel <id> <reason>, notifications, read <id>, unread, logout, exit")
}
