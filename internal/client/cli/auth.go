package cli

import (
	"context"
	"os"

	"github.com/estudiantes/revista/internal/client/models"
	"github.com/estudiantes/revista/internal/common"
)

// getSimpleText, getPassword, getMultiline and getList are indirections used
// to facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
	getList       = GetList
	getInt        = GetInt
)

// Register prompts for the account profile and creates a new account.
// Registration does not log the user in; a separate login is required.
func (a *App) Register(ctx context.Context) error {
	profile := models.Profile{}
	var err error

	if profile.Name, err = getSimpleText(a.reader, "Enter full name", os.Stdout); err != nil {
		return err
	}
	if profile.Email, err = getSimpleText(a.reader, "Enter email", os.Stdout); err != nil {
		return err
	}
	if profile.Institution, err = getSimpleText(a.reader, "Enter institution", os.Stdout); err != nil {
		return err
	}
	if profile.StudyArea, err = getSimpleText(a.reader, "Enter study area", os.Stdout); err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	profile.Password = string(password)
	common.WipeByteArray(password)

	if err := a.session.Register(ctx, profile); err != nil {
		printlnFn("Registration failed:", err.Error())
		return err
	}

	printlnFn("Account created. Use 'login' to start a session.")
	return nil
}

// Login prompts for credentials and starts a session. On success the token
// is persisted so the session survives restarts.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	identity, err := a.session.Login(ctx, email, password)
	if err != nil {
		printlnFn("Login failed:", err.Error())
		return err
	}

	printlnFn("Logged in as", identity.Name)
	return nil
}

// Logout ends the session and erases the stored token. Logging out while
// not logged in is a no-op.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		printlnFn("Logout failed:", err.Error())
		return err
	}
	printlnFn("Logged out.")
	return nil
}

// WhoAmI prints the cached identity of the current session.
func (a *App) WhoAmI(ctx context.Context) error {
	identity := a.session.Current()
	if identity == nil {
		printlnFn("Not logged in.")
		return nil
	}
	printlnFn("Name:       ", identity.Name)
	printlnFn("Email:      ", identity.Email)
	printlnFn("Institution:", identity.Institution)
	printlnFn("Study area: ", identity.StudyArea)
	printlnFn("Role:       ", string(identity.Role))
	return nil
}
