package main

import (
	"context"
	"flag"
	"fmt"

	"xetasuite/internal/console"
	"xetasuite/internal/models"
)

func (app *cli) sites(ctx context.Context, args []string) {
	if len(args) == 0 {
		fatalf("sites requires a subcommand: list, get, create, update, delete")
	}
	mgr := &console.SiteManager{Repo: &console.SiteRepository{Client: app.client}}
	sub, rest := args[0], args[1:]

	switch sub {
	case "list":
		params, _ := listFlags("sites list", rest)
		runList(ctx, mgr.Repo.List, params, []string{"ID", "NAME", "CITY", "HQ"}, func(s models.Site) []string {
			return []string{itoa(s.ID), s.Name, s.City, yesNo(s.Headquarters)}
		})

	case "get":
		fs := flag.NewFlagSet("sites get", flag.ExitOnError)
		fs.Parse(rest)
		res := mgr.Get(ctx, argID(fs, "sites get"))
		if !res.Success {
			failResult(res.Message, res.Fields)
		}
		s := res.Data
		fmt.Printf("#%d %s\n%s, %s %s\nheadquarters: %s\n", s.ID, s.Name, s.Address, s.ZipCode, s.City, yesNo(s.Headquarters))

	case "create", "update":
		fs := flag.NewFlagSet("sites "+sub, flag.ExitOnError)
		id := fs.Int("id", 0, "site id (update only)")
		name := fs.String("name", "", "site name")
		address := fs.String("address", "", "street address")
		city := fs.String("city", "", "city")
		zip := fs.String("zip", "", "zip code")
		hq := fs.Bool("hq", false, "headquarters site")
		fs.Parse(rest)

		site := models.Site{ID: *id, Name: *name, Address: *address, City: *city, ZipCode: *zip, Headquarters: *hq}
		var res console.Result[models.Site]
		if sub == "create" {
			res = mgr.Create(ctx, site)
		} else {
			res = mgr.Update(ctx, site)
		}
		if !res.Success {
			failResult(res.Message, res.Fields)
		}
		fmt.Printf("Site #%d %s saved.\n", res.Data.ID, res.Data.Name)

	case "delete":
		fs := flag.NewFlagSet("sites delete", flag.ExitOnError)
		fs.Parse(rest)
		res := mgr.Delete(ctx, argID(fs, "sites delete"))
		if !res.Success {
			failResult(res.Message, res.Fields)
		}
		fmt.Println("Site deleted.")

	default:
		fatalf("unknown sites subcommand: %s", sub)
	}
}

func (app *cli) suppliers(ctx context.Context, args []string) {
	if len(args) == 0 {
		fatalf("suppliers requires a subcommand: list, get, create, update, delete")
	}
	mgr := &console.SupplierManager{Repo: &console.SupplierRepository{Client: app.client}}
	sub, rest := args[0], args[1:]

	switch sub {
	case "list":
		params, _ := listFlags("suppliers list", rest)
		runList(ctx, mgr.Repo.List, params, []string{"ID", "NAME", "CONTACT", "EMAIL", "PHONE"}, func(s models.Supplier) []string {
			return []string{itoa(s.ID), s.Name, s.ContactName, s.Email, s.Phone}
		})

	case "get":
		fs := flag.NewFlagSet("suppliers get", flag.ExitOnError)
		fs.Parse(rest)
		res := mgr.Get(ctx, argID(fs, "suppliers get"))
		if !res.Success {
			failResult(res.Message, res.Fields)
		}
		s := res.Data
		fmt.Printf("#%d %s\ncontact: %s <%s> %s\n", s.ID, s.Name, s.ContactName, s.Email, s.Phone)
		if s.Notes != "" {
			fmt.Printf("notes: %s\n", s.Notes)
		}

	case "create", "update":
		fs := flag.NewFlagSet("suppliers "+sub, flag.ExitOnError)
		id := fs.Int("id", 0, "supplier id (update only)")
		name := fs.String("name", "", "supplier name")
		contact := fs.String("contact", "", "contact name")
		email := fs.String("email", "", "contact email")
		phone := fs.String("phone", "", "contact phone")
		notes := fs.String("notes", "", "notes")
		fs.Parse(rest)

		supplier := models.Supplier{ID: *id, Name: *name, ContactName: *contact, Email: *email, Phone: *phone, Notes: *notes}
		var res console.Result[models.Supplier]
		if sub == "create" {
			res = mgr.Create(ctx, supplier)
		} else {
			res = mgr.Update(ctx, supplier)
		}
		if !res.Success {
			failResult(res.Message, res.Fields)
		}
		fmt.Printf("Supplier #%d %s saved.\n", res.Data.ID, res.Data.Name)

	case "delete":
		fs := flag.NewFlagSet("suppliers delete", flag.ExitOnError)
		fs.Parse(rest)
		res := mgr.Delete(ctx, argID(fs, "suppliers delete"))
		if !res.Success {
			failResult(res.Message, res.Fields)
		}
		fmt.Println("Supplier deleted.")

	default:
		fatalf("unknown suppliers subcommand: %s", sub)
	}
}

func (app *cli) categories(ctx context.Context, args []string) {
	if len(args) == 0 {
		fatalf("categories requires a subcommand: list, get, create, update, delete")
	}
	mgr := &console.ItemCategoryManager{Repo: &console.ItemCategoryRepository{Client: app.client}}
	sub, rest := args[0], args[1:]

	switch sub {
	case "list":
		params, _ := listFlags("categories list", rest)
		runList(ctx, mgr.Repo.List, params, []string{"ID", "NAME", "DESCRIPTION"}, func(c models.ItemCategory) []string {
			return []string{itoa(c.ID), c.Name, c.Description}
		})

	case "get":
		fs := flag.NewFlagSet("categories get", flag.ExitOnError)
		fs.Parse(rest)
		res := mgr.Get(ctx, argID(fs, "categories get"))
		if !res.Success {
			failResult(res.Message, res.Fields)
		}
		fmt.Printf("#%d %s\n%s\n", res.Data.ID, res.Data.Name, res.Data.Description)

	case "create", "update":
		fs := flag.NewFlagSet("categories "+sub, flag.ExitOnError)
		id := fs.Int("id", 0, "category id (update only)")
		name := fs.String("name", "", "category name")
		description := fs.String("description", "", "description")
		fs.Parse(rest)

		category := models.ItemCategory{ID: *id, Name: *name, Description: *description}
		var res console.Result[models.ItemCategory]
		if sub == "create" {
			res = mgr.Create(ctx, category)
		} else {
			res = mgr.Update(ctx, category)
		}
		if !res.Success {
			failResult(res.Message, res.Fields)
		}
		fmt.Printf("Category #%d %s saved.\n", res.Data.ID, res.Data.Name)

	case "delete":
		fs := flag.NewFlagSet("categories delete", flag.ExitOnError)
		fs.Parse(rest)
		res := mgr.Delete(ctx, argID(fs, "categories delete"))
		if !res.Success {
			failResult(res.Message, res.Fields)
		}
		fmt.Println("Category deleted.")

	default:
		fatalf("unknown categories subcommand: %s", sub)
	}
}
