package cli

import (
	"context"
	"fmt"

	"github.com/Svmi93/projetHygieneResto-sub000/internal/dto"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/roles"
)

// Users lists every account. super_admin only.
func (a *App) Users(ctx context.Context) error {
	return a.guarded(ctx, "admin-users", func(*dto.UserProfile) error {
		list, err := a.users.List(ctx)
		if err != nil {
			return err
		}
		w := newTable(a.out)
		fmt.Fprintln(w, "ID\tEMAIL\tROLE\tCOMPANY\tSIRET")
		for _, u := range list {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", u.ID, u.Email, u.Role, orDash(u.CompanyName), orDash(u.TenantSiret()))
		}
		return w.Flush()
	})
}

func (a *App) AddUser(ctx context.Context) error {
	return a.guarded(ctx, "admin-users", func(*dto.UserProfile) error {
		roleName, err := getSimpleText(a.reader, "Role (super_admin, admin_client, employer)", a.out)
		if err != nil {
			return err
		}
		role, err := roles.Parse(roleName)
		if err != nil {
			return err
		}

		req := dto.UserRequest{Role: role}
		in, err := a.ask("Email", "First name", "Last name")
		if err != nil {
			return err
		}
		req.Email, req.FirstName, req.LastName = in[0], in[1], in[2]

		switch role {
		case roles.AdminClient:
			in, err = a.ask("Company name", "SIRET (14 digits)")
			if err != nil {
				return err
			}
			req.CompanyName, req.Siret = in[0], in[1]
		case roles.Employer:
			in, err = a.ask("Employer's company SIRET")
			if err != nil {
				return err
			}
			req.ParentAdminSiret = in[0]
		}

		if req.Password, err = a.readPasswordString(); err != nil {
			return err
		}

		u, err := a.users.Create(ctx, req)
		if err != nil {
			printFieldErrors(err)
			return err
		}
		printlnFn("User created:", u.ID)
		return nil
	})
}

func (a *App) DeleteUser(ctx context.Context) error {
	return a.guarded(ctx, "admin-users", func(*dto.UserProfile) error {
		id, err := getSimpleText(a.reader, "User ID", a.out)
		if err != nil {
			return err
		}
		if err := a.users.Delete(ctx, id); err != nil {
			return err
		}
		printlnFn("User deleted")
		return nil
	})
}
