package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"xetasuite/internal/console"
	"xetasuite/internal/models"
)

func (app *cli) items(ctx context.Context, args []string) {
	if len(args) == 0 {
		fatalf("items requires a subcommand: list, get, create, update, delete, stock, entries, qrcode, photo")
	}
	mgr := &console.ItemManager{Repo: &console.ItemRepository{Client: app.client}}
	sub, rest := args[0], args[1:]

	switch sub {
	case "list":
		params, _ := listFlags("items list", rest, "site_id")
		runList(ctx, mgr.Repo.List, params, []string{"ID", "REF", "NAME", "SITE", "STOCK", "STATUS"}, func(item models.Item) []string {
			site := ""
			if item.Site != nil {
				site = item.Site.Name
			}
			return []string{
				itoa(item.ID), item.Reference, item.Name, site,
				itoa(item.CurrentStock) + " " + item.Unit,
				console.StockStatusLabel(item.StockStatus),
			}
		})

	case "get":
		fs := flag.NewFlagSet("items get", flag.ExitOnError)
		fs.Parse(rest)
		res := mgr.Get(ctx, argID(fs, "items get"))
		if !res.Success {
			failResult(res.Message, res.Fields)
		}
		item := res.Data
		fmt.Printf("#%d %s (%s)\n", item.ID, item.Name, item.Reference)
		fmt.Printf("stock: %d %s (%s), warn at %d, critical at %d\n",
			item.CurrentStock, item.Unit, console.StockStatusLabel(item.StockStatus),
			item.WarningThreshold, item.CriticalThreshold)
		fmt.Printf("price: %s\n", console.FormatPrice(item.Price))
		if item.Site != nil {
			fmt.Printf("site: %s\n", item.Site.Name)
		}
		if item.PhotoURL != "" {
			fmt.Printf("photo: %s\n", item.PhotoURL)
		}

	case "create", "update":
		fs := flag.NewFlagSet("items "+sub, flag.ExitOnError)
		id := fs.Int("id", 0, "item id (update only)")
		name := fs.String("name", "", "item name")
		reference := fs.String("ref", "", "unique reference")
		description := fs.String("description", "", "description")
		siteID := fs.Int("site", 0, "site id")
		categoryID := fs.Int("category", 0, "category id")
		supplierID := fs.Int("supplier", 0, "supplier id")
		unit := fs.String("unit", "pcs", "stock unit")
		price := fs.Float64("price", 0, "unit price")
		warning := fs.Int("warning", 0, "warning threshold")
		critical := fs.Int("critical", 0, "critical threshold")
		fs.Parse(rest)

		item := models.Item{
			ID: *id, Name: *name, Reference: *reference, Description: *description,
			SiteID: *siteID, CategoryID: *categoryID, SupplierID: *supplierID,
			Unit: *unit, Price: *price,
			WarningThreshold: *warning, CriticalThreshold: *critical,
		}
		var res console.Result[models.Item]
		if sub == "create" {
			res = mgr.Create(ctx, item)
		} else {
			res = mgr.Update(ctx, item)
		}
		if !res.Success {
			failResult(res.Message, res.Fields)
		}
		fmt.Printf("Item #%d %s saved.\n", res.Data.ID, res.Data.Reference)

	case "delete":
		fs := flag.NewFlagSet("items delete", flag.ExitOnError)
		fs.Parse(rest)
		res := mgr.Delete(ctx, argID(fs, "items delete"))
		if !res.Success {
			failResult(res.Message, res.Fields)
		}
		fmt.Println("Item deleted.")

	case "stock":
		fs := flag.NewFlagSet("items stock", flag.ExitOnError)
		delta := fs.Int("delta", 0, "stock adjustment, negative to consume")
		reason := fs.String("reason", "", "adjustment reason")
		fs.Parse(rest)
		id := argID(fs, "items stock")

		res := mgr.AdjustStock(ctx, id, *delta, *reason)
		if !res.Success {
			failResult(res.Message, res.Fields)
		}
		item := res.Data
		fmt.Printf("Stock for %s is now %d %s (%s).\n",
			item.Reference, item.CurrentStock, item.Unit, console.StockStatusLabel(item.StockStatus))

	case "entries":
		fs := flag.NewFlagSet("items entries", flag.ExitOnError)
		fs.Parse(rest)
		id := argID(fs, "items entries")

		params, _ := listFlags("items entries", fs.Args()[1:])
		fetch := func(ctx context.Context, p models.ListParams) (console.Page[models.StockEntry], error) {
			return mgr.Repo.StockEntries(ctx, id, p)
		}
		runList(ctx, fetch, params, []string{"WHEN", "DELTA", "RESULT", "REASON"}, func(e models.StockEntry) []string {
			return []string{
				e.CreatedAt.Format("2006-01-02 15:04"),
				fmt.Sprintf("%+d", e.Delta), itoa(e.ResultingStock), e.Reason,
			}
		})

	case "qrcode":
		fs := flag.NewFlagSet("items qrcode", flag.ExitOnError)
		out := fs.String("out", "", "output file (default: item-<id>.png)")
		fs.Parse(rest)
		id := argID(fs, "items qrcode")

		png, err := mgr.Repo.QRCodePNG(ctx, id)
		if err != nil {
			fatal(err)
		}
		path := *out
		if path == "" {
			path = fmt.Sprintf("item-%d.png", id)
		}
		if err := os.WriteFile(path, png, 0o644); err != nil {
			fatal(err)
		}
		fmt.Printf("Wrote %s\n", path)

	case "photo":
		fs := flag.NewFlagSet("items photo", flag.ExitOnError)
		file := fs.String("file", "", "JPEG or PNG file to upload")
		fs.Parse(rest)
		id := argID(fs, "items photo")
		if *file == "" {
			fatalf("items photo requires -file")
		}

		data, err := os.ReadFile(*file)
		if err != nil {
			fatal(err)
		}
		contentType := "image/jpeg"
		if strings.EqualFold(filepath.Ext(*file), ".png") {
			contentType = "image/png"
		}

		item, err := mgr.Repo.UploadPhoto(ctx, id, filepath.Base(*file), contentType, data)
		if err != nil {
			fatal(err)
		}
		fmt.Printf("Photo uploaded: %s\n", item.PhotoURL)

	default:
		fatalf("unknown items subcommand: %s", sub)
	}
}
