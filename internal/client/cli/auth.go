package cli

import (
	"context"
	"fmt"

	"github.com/mediapp/client-go/internal/client/models"
)

// Login prompts for credentials and signs in.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, models.LoginCredentials{Email: email, Password: password}); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Login successful")
	return nil
}

// Register prompts for patient details, creates the account and signs in.
func (a *App) Register(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	firstName, err := GetSimpleText(a.reader, "Enter first name", a.out)
	if err != nil {
		return err
	}
	lastName, err := GetSimpleText(a.reader, "Enter last name", a.out)
	if err != nil {
		return err
	}
	phone, err := GetSimpleText(a.reader, "Enter phone number", a.out)
	if err != nil {
		return err
	}
	dateOfBirth, err := GetSimpleText(a.reader, "Enter date of birth (YYYY-MM-DD)", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	data := models.RegisterPatientData{
		Email:       email,
		Password:    password,
		FirstName:   firstName,
		LastName:    lastName,
		PhoneNumber: phone,
		DateOfBirth: dateOfBirth,
	}
	if err := a.session.Register(ctx, data); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Registration successful, you are signed in")
	return nil
}

// Logout drops the session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// Whoami prints the loaded profile, falling back to access-token claims
// when no profile has been fetched yet.
func (a *App) Whoami(ctx context.Context) error {
	if user, ok := a.session.User(); ok {
		fmt.Fprintf(a.out, "%s %s <%s> (%s)\n", user.FirstName, user.LastName, user.Email, user.Role)
		return nil
	}

	if err := a.session.FetchUser(ctx); err == nil {
		user, _ := a.session.User()
		fmt.Fprintf(a.out, "%s %s <%s> (%s)\n", user.FirstName, user.LastName, user.Email, user.Role)
		return nil
	}

	claims, err := a.session.TokenClaims(ctx)
	if err != nil {
		return fmt.Errorf("not signed in")
	}
	fmt.Fprintf(a.out, "subject %s (%s), token expires %s\n", claims.Subject, claims.Role, claims.ExpiresAt)
	return nil
}
