package cli

import (
	"context"
	"fmt"

	"github.com/Svmi93/projetHygieneResto-sub000/internal/client/guard"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/common"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/dto"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/roles"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getFloat = GetFloat

// ask reads one answer per prompt, stopping at the first input error.
func (a *App) ask(prompts ...string) ([]string, error) {
	answers := make([]string, 0, len(prompts))
	for _, p := range prompts {
		s, err := getSimpleText(a.reader, p, a.out)
		if err != nil {
			return nil, err
		}
		answers = append(answers, s)
	}
	return answers, nil
}

// readPasswordString reads a password and wipes the raw bytes once copied.
func (a *App) readPasswordString() (string, error) {
	pw, err := getPassword(a.out)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(pw)
	return string(pw), nil
}

// Register creates an admin_client account for a restaurant. The server
// validates the fields; field errors are printed one per line.
func (a *App) Register(ctx context.Context) error {
	in, err := a.ask("Company name", "SIRET (14 digits)", "First name", "Last name", "Email", "Phone", "Address")
	if err != nil {
		return err
	}
	password, err := a.readPasswordString()
	if err != nil {
		return err
	}

	user, err := a.session.Register(ctx, dto.RegisterRequest{
		CompanyName: in[0],
		Siret:       in[1],
		FirstName:   in[2],
		LastName:    in[3],
		Email:       in[4],
		Phone:       in[5],
		Address:     in[6],
		Password:    password,
		Role:        roles.AdminClient.String(),
	})
	if err != nil {
		printFieldErrors(err)
		return err
	}

	printlnFn("Account created for", user.Email+". You can now log in.")
	return nil
}

// Login prompts for credentials and opens a session. On success the user
// lands on their role's home screen.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := a.readPasswordString()
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, email, password); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	snap := a.session.Snapshot()
	printlnFn("Logged in as", snap.User.Email, "("+snap.User.Role.String()+")")
	return a.Home(ctx)
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	printlnFn("Logged out")
	return nil
}

// Whoami shows the cached profile of the logged in user.
func (a *App) Whoami(ctx context.Context) error {
	return a.guarded(ctx, "profile", func(u *dto.UserProfile) error {
		w := newTable(a.out)
		fmt.Fprintf(w, "Email\t%s\n", u.Email)
		fmt.Fprintf(w, "Role\t%s\n", u.Role)
		fmt.Fprintf(w, "Name\t%s %s\n", u.FirstName, u.LastName)
		if u.CompanyName != "" {
			fmt.Fprintf(w, "Company\t%s\n", u.CompanyName)
		}
		if s := u.TenantSiret(); s != "" {
			fmt.Fprintf(w, "SIRET\t%s\n", s)
		}
		return w.Flush()
	})
}

// Home opens the landing screen of the current role.
func (a *App) Home(ctx context.Context) error {
	snap := a.session.Snapshot()
	if !snap.IsAuthenticated() {
		printlnFn("Not logged in")
		return nil
	}
	switch guard.Home(snap.User.Role) {
	case "admin-users":
		return a.Users(ctx)
	case "dashboard":
		return a.Dashboard(ctx)
	case "traceability":
		return a.Traceability(ctx)
	}
	return nil
}

// guarded runs fn only when the guard allows the current session on route.
// An anonymous user is sent to the login prompt; a role that may not open
// route is told where its home is.
func (a *App) guarded(ctx context.Context, route string, fn func(u *dto.UserProfile) error) error {
	r, ok := guard.Routes[route]
	if !ok {
		return fmt.Errorf("unknown route %q", route)
	}

	snap := a.session.Snapshot()
	d := guard.Decide(snap, r)
	switch d.Outcome {
	case guard.Loading:
		printlnFn("Session is still being verified, try again in a moment")
		return nil
	case guard.RedirectLogin:
		printlnFn("Please log in first")
		return a.Login(ctx)
	case guard.RedirectHome:
		printlnFn("Not available for your role. Your home screen is", d.Target+".")
		return nil
	default:
		return fn(snap.User)
	}
}
