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

const defaultServer = "http://localhost:4001"

func usage() {
	fmt.Fprint(os.Stdout, `Usage: xetactl [flags] <command> [args]

Commands:
  login -email <email> -password <password>   open a session
  logout                                      close the session
  me                                          show the logged-in user

  sites <list|get|create|update|delete>
  suppliers <list|get|create|update|delete>
  categories <list|get|create|update|delete>
  items <list|get|create|delete|stock|entries|qrcode|photo>
  users <list|get|create|delete>
  cleanings <list|get|create|delete>
  maintenances <list|get|create|resolve|delete>
  audit list
  watch                                       stream stock alerts

Flags:
  -server <url>   API address (default: $XETASUITE_SERVER or `+defaultServer+`)
  -h, -help       show this help and exit

List commands accept -page, -per-page, -search, -sort and -dir.
Site-scoped lists also take -site_id; maintenances list takes -resolved.
`)
}

func main() {
	fs := flag.NewFlagSet("xetactl", flag.ContinueOnError)

	server := os.Getenv("XETASUITE_SERVER")
	if server == "" {
		server = defaultServer
	}
	fs.StringVar(&server, "server", server, "")
	fs.Usage = usage

	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
	if fs.NArg() == 0 {
		usage()
		os.Exit(1)
	}

	client, err := console.NewClient(server)
	if err != nil {
		fatal(err)
	}
	client.SetSessionToken(loadSession())
	auth := console.NewAuth(client)

	app := &cli{client: client, auth: auth}
	ctx := context.Background()

	cmd, args := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "login":
		app.login(ctx, args)
	case "logout":
		app.logout(ctx)
	case "me":
		app.me(ctx)
	case "sites":
		app.sites(ctx, args)
	case "suppliers":
		app.suppliers(ctx, args)
	case "categories":
		app.categories(ctx, args)
	case "items":
		app.items(ctx, args)
	case "users":
		app.users(ctx, args)
	case "cleanings":
		app.cleanings(ctx, args)
	case "maintenances":
		app.maintenances(ctx, args)
	case "audit":
		app.audit(ctx, args)
	case "watch":
		app.watch(ctx)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}
}

type cli struct {
	client *console.Client
	auth   *console.Auth
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// failResult prints a manager failure, field errors included, and exits.
func failResult(message string, fields map[string]string) {
	if message != "" {
		fmt.Fprintf(os.Stderr, "error: %s\n", message)
	}
	for field, msg := range fields {
		fmt.Fprintf(os.Stderr, "  %s: %s\n", field, msg)
	}
	os.Exit(1)
}

func sessionPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "xetactl", "session")
}

func loadSession() string {
	data, err := os.ReadFile(sessionPath())
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func saveSession(token string) {
	path := sessionPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return
	}
	os.WriteFile(path, []byte(token), 0o600)
}

func clearSession() {
	os.Remove(sessionPath())
}

// listFlags parses the shared pagination flags of every list command, plus
// any entity-specific filter flags the command names.
func listFlags(name string, args []string, filterKeys ...string) (models.ListParams, *flag.FlagSet) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	page := fs.Int("page", 1, "page number")
	perPage := fs.Int("per-page", models.DefaultPerPage, "rows per page")
	search := fs.String("search", "", "search term")
	sortBy := fs.String("sort", "", "sort field")
	sortDir := fs.String("dir", models.SortAsc, "sort direction (asc|desc)")

	filterVals := make(map[string]*string, len(filterKeys))
	for _, key := range filterKeys {
		filterVals[key] = fs.String(key, "", "filter by "+key)
	}
	fs.Parse(args)

	params := models.ListParams{
		Page:    *page,
		PerPage: *perPage,
		Search:  *search,
		SortBy:  *sortBy,
		SortDir: *sortDir,
	}
	for key, val := range filterVals {
		if *val != "" {
			if params.Filters == nil {
				params.Filters = make(map[string]string, len(filterKeys))
			}
			params.Filters[key] = *val
		}
	}
	return params, fs
}

func (app *cli) login(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	fs.Parse(args)
	if *email == "" || *password == "" {
		fatalf("login requires -email and -password")
	}

	res := app.auth.Login(ctx, *email, *password)
	if !res.Success {
		failResult(res.Message, res.Fields)
	}

	saveSession(app.client.SessionToken())
	fmt.Printf("Logged in as %s (%s)\n", res.Data.FullName(), res.Data.Email)
}

func (app *cli) logout(ctx context.Context) {
	app.auth.Logout(ctx)
	clearSession()
	fmt.Println("Logged out.")
}

func (app *cli) me(ctx context.Context) {
	res := app.auth.CheckSession(ctx)
	if !res.Success {
		failResult(res.Message, res.Fields)
	}

	user := res.Data
	fmt.Printf("%s <%s>\n", user.FullName(), user.Email)
	fmt.Printf("Roles: %s\n", strings.Join(user.Roles, ", "))
	if user.Site != nil {
		fmt.Printf("Site: %s\n", user.Site.Name)
	}
	if len(user.Permissions) > 0 {
		fmt.Printf("Permissions: %s\n", strings.Join(user.Permissions, ", "))
	}
}

func (app *cli) watch(ctx context.Context) {
	stream, err := console.SubscribeAlerts(ctx, app.client, app.auth)
	if err != nil {
		fatal(err)
	}
	defer stream.Close()

	fmt.Println("Watching for stock alerts (Ctrl-C to stop)...")
	for {
		alert, err := stream.Next()
		if err != nil {
			fatal(err)
		}
		fmt.Printf("[%s] %s (%s): %d left\n",
			strings.ToUpper(alert.Status), alert.ItemName, alert.Reference, alert.Stock)
	}
}
