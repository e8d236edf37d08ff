package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"xetasuite/internal/console"
	"xetasuite/internal/models"
)

func (app *cli) users(ctx context.Context, args []string) {
	if len(args) == 0 {
		fatalf("users requires a subcommand: list, get, create, delete")
	}
	mgr := &console.UserManager{Repo: &console.UserRepository{Client: app.client}}
	sub, rest := args[0], args[1:]

	switch sub {
	case "list":
		params, _ := listFlags("users list", rest, "site_id")
		runList(ctx, mgr.Repo.List, params, []string{"ID", "NAME", "EMAIL", "SITE", "ROLES"}, func(u models.User) []string {
			site := ""
			if u.Site != nil {
				site = u.Site.Name
			}
			return []string{itoa(u.ID), u.FullName(), u.Email, site, strings.Join(u.Roles, ",")}
		})

	case "get":
		fs := flag.NewFlagSet("users get", flag.ExitOnError)
		fs.Parse(rest)
		res := mgr.Get(ctx, argID(fs, "users get"))
		if !res.Success {
			failResult(res.Message, res.Fields)
		}
		u := res.Data
		fmt.Printf("#%d %s <%s>\n", u.ID, u.FullName(), u.Email)
		fmt.Printf("roles: %s\n", strings.Join(u.Roles, ", "))
		if len(u.Permissions) > 0 {
			fmt.Printf("permissions: %s\n", strings.Join(u.Permissions, ", "))
		}
		if u.LastLoginAt != nil {
			fmt.Printf("last login: %s\n", u.LastLoginAt.Format("2006-01-02 15:04"))
		}

	case "create":
		fs := flag.NewFlagSet("users create", flag.ExitOnError)
		firstName := fs.String("first-name", "", "first name")
		lastName := fs.String("last-name", "", "last name")
		email := fs.String("email", "", "email")
		password := fs.String("password", "", "initial password")
		siteID := fs.Int("site", 0, "site id")
		roles := fs.String("roles", models.RoleTechnician, "comma-separated roles")
		perms := fs.String("permissions", "", "comma-separated permissions")
		fs.Parse(rest)

		in := console.UserInput{
			FirstName: *firstName,
			LastName:  *lastName,
			Email:     *email,
			Password:  *password,
			SiteID:    *siteID,
			Roles:     splitList(*roles),
		}
		in.Permissions = splitList(*perms)

		res := mgr.Create(ctx, in)
		if !res.Success {
			failResult(res.Message, res.Fields)
		}
		fmt.Printf("User #%d %s created.\n", res.Data.ID, res.Data.Email)

	case "delete":
		fs := flag.NewFlagSet("users delete", flag.ExitOnError)
		fs.Parse(rest)
		res := mgr.Delete(ctx, argID(fs, "users delete"))
		if !res.Success {
			failResult(res.Message, res.Fields)
		}
		fmt.Println("User deleted.")

	default:
		fatalf("unknown users subcommand: %s", sub)
	}
}

func (app *cli) cleanings(ctx context.Context, args []string) {
	if len(args) == 0 {
		fatalf("cleanings requires a subcommand: list, get, create, delete")
	}
	mgr := &console.CleaningManager{Repo: &console.CleaningRepository{Client: app.client}}
	sub, rest := args[0], args[1:]

	switch sub {
	case "list":
		params, _ := listFlags("cleanings list", rest, "site_id")
		runList(ctx, mgr.Repo.List, params, []string{"ID", "ITEM", "DONE BY", "DONE AT"}, func(c models.Cleaning) []string {
			item, doneBy := "", ""
			if c.Item != nil {
				item = c.Item.Name
			}
			if c.DoneBy != nil {
				doneBy = c.DoneBy.FullName()
			}
			return []string{itoa(c.ID), item, doneBy, c.DoneAt.Format("2006-01-02 15:04")}
		})

	case "get":
		fs := flag.NewFlagSet("cleanings get", flag.ExitOnError)
		fs.Parse(rest)
		res := mgr.Get(ctx, argID(fs, "cleanings get"))
		if !res.Success {
			failResult(res.Message, res.Fields)
		}
		c := res.Data
		fmt.Printf("#%d item %d at %s\n", c.ID, c.ItemID, c.DoneAt.Format("2006-01-02 15:04"))
		if c.Notes != "" {
			fmt.Printf("notes: %s\n", c.Notes)
		}

	case "create":
		fs := flag.NewFlagSet("cleanings create", flag.ExitOnError)
		itemID := fs.Int("item", 0, "item id")
		notes := fs.String("notes", "", "notes")
		fs.Parse(rest)
		if *itemID == 0 {
			fatalf("cleanings create requires -item")
		}

		res := mgr.Create(ctx, models.Cleaning{ItemID: *itemID, Notes: *notes})
		if !res.Success {
			failResult(res.Message, res.Fields)
		}
		fmt.Printf("Cleaning #%d recorded.\n", res.Data.ID)

	case "delete":
		fs := flag.NewFlagSet("cleanings delete", flag.ExitOnError)
		fs.Parse(rest)
		res := mgr.Delete(ctx, argID(fs, "cleanings delete"))
		if !res.Success {
			failResult(res.Message, res.Fields)
		}
		fmt.Println("Cleaning deleted.")

	default:
		fatalf("unknown cleanings subcommand: %s", sub)
	}
}

func (app *cli) maintenances(ctx context.Context, args []string) {
	if len(args) == 0 {
		fatalf("maintenances requires a subcommand: list, get, create, resolve, delete")
	}
	mgr := &console.MaintenanceManager{Repo: &console.MaintenanceRepository{Client: app.client}}
	sub, rest := args[0], args[1:]

	switch sub {
	case "list":
		params, _ := listFlags("maintenances list", rest, "resolved", "site_id")
		runList(ctx, mgr.Repo.List, params, []string{"ID", "ITEM", "DESCRIPTION", "STATUS"}, func(m models.Maintenance) []string {
			item := ""
			if m.Item != nil {
				item = m.Item.Name
			}
			status := "open"
			if m.Resolved {
				status = "resolved"
			}
			return []string{itoa(m.ID), item, m.Description, status}
		})

	case "get":
		fs := flag.NewFlagSet("maintenances get", flag.ExitOnError)
		fs.Parse(rest)
		res := mgr.Get(ctx, argID(fs, "maintenances get"))
		if !res.Success {
			failResult(res.Message, res.Fields)
		}
		m := res.Data
		fmt.Printf("#%d item %d: %s\n", m.ID, m.ItemID, m.Description)
		if m.Resolved && m.ResolvedAt != nil {
			fmt.Printf("resolved at %s\n", m.ResolvedAt.Format("2006-01-02 15:04"))
		} else {
			fmt.Println("still open")
		}

	case "create":
		fs := flag.NewFlagSet("maintenances create", flag.ExitOnError)
		itemID := fs.Int("item", 0, "item id")
		description := fs.String("description", "", "what is wrong")
		fs.Parse(rest)
		if *itemID == 0 {
			fatalf("maintenances create requires -item")
		}

		res := mgr.Create(ctx, models.Maintenance{ItemID: *itemID, Description: *description})
		if !res.Success {
			failResult(res.Message, res.Fields)
		}
		fmt.Printf("Maintenance #%d opened.\n", res.Data.ID)

	case "resolve":
		fs := flag.NewFlagSet("maintenances resolve", flag.ExitOnError)
		fs.Parse(rest)
		res := mgr.Resolve(ctx, argID(fs, "maintenances resolve"))
		if !res.Success {
			failResult(res.Message, res.Fields)
		}
		fmt.Printf("Maintenance #%d resolved.\n", res.Data.ID)

	case "delete":
		fs := flag.NewFlagSet("maintenances delete", flag.ExitOnError)
		fs.Parse(rest)
		res := mgr.Delete(ctx, argID(fs, "maintenances delete"))
		if !res.Success {
			failResult(res.Message, res.Fields)
		}
		fmt.Println("Maintenance deleted.")

	default:
		fatalf("unknown maintenances subcommand: %s", sub)
	}
}

func (app *cli) audit(ctx context.Context, args []string) {
	if len(args) == 0 || args[0] != "list" {
		fatalf("audit supports only: list")
	}
	mgr := &console.AuditLogManager{Repo: &console.AuditLogRepository{Client: app.client}}

	params, _ := listFlags("audit list", args[1:])
	runList(ctx, mgr.Repo.List, params, []string{"WHEN", "ACTOR", "ACTION", "ENTITY", "DETAIL"}, func(l models.AuditLog) []string {
		return []string{
			l.CreatedAt.Format("2006-01-02 15:04"),
			l.ActorName, l.Action, l.Entity + "#" + itoa(l.EntityID), l.Detail,
		}
	})
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
