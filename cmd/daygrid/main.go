package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"daygrid/internal/cli"
	"daygrid/internal/constants"
	"daygrid/internal/engine"
	"daygrid/internal/errors"
	"daygrid/internal/feed"
	"daygrid/internal/logger"
	"daygrid/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database path for sqlite storage." type:"path" default:"${config_path}"`
	Storage string `help:"Storage backend (sqlite|postgres)." enum:"sqlite,postgres" default:"sqlite"`
	Debug   bool   `help:"Enable debug logging."`

	Init   cli.InitCmd   `cmd:"" help:"Initialize daygrid storage."`
	Tui    cli.TuiCmd    `cmd:"" help:"Launch the interactive timeline." default:"1"`
	Day    cli.DayCmd    `cmd:"" help:"Lay out and print the schedule for a day."`
	Doctor cli.DoctorCmd `cmd:"" help:"Check storage, configuration and locks."`

	Obligation struct {
		Add    cli.ObligationAddCmd    `cmd:"" help:"Add a recurring obligation."`
		List   cli.ObligationListCmd   `cmd:"" help:"List obligations."`
		Edit   cli.ObligationEditCmd   `cmd:"" help:"Edit an obligation."`
		Delete cli.ObligationDeleteCmd `cmd:"" help:"Delete an obligation."`
	} `cmd:"" help:"Manage recurring obligations."`

	Todo struct {
		Add      cli.TodoAddCmd      `cmd:"" help:"Add a one-off to-do."`
		List     cli.TodoListCmd     `cmd:"" help:"List to-dos."`
		Done     cli.TodoDoneCmd     `cmd:"" help:"Mark a to-do complete."`
		Postpone cli.TodoPostponeCmd `cmd:"" help:"Move a to-do to a later due window."`
		Delete   cli.TodoDeleteCmd   `cmd:"" help:"Delete a to-do."`
	} `cmd:"" help:"Manage one-off to-dos."`

	Calendar struct {
		SetURL     cli.CalendarSetURLCmd     `cmd:"" name:"set-url" help:"Set the iCalendar feed URL."`
		SetToken   cli.CalendarSetTokenCmd   `cmd:"" name:"set-token" help:"Store the feed bearer token in the OS keyring."`
		ClearToken cli.CalendarClearTokenCmd `cmd:"" name:"clear-token" help:"Remove the feed bearer token."`
		Sync       cli.CalendarSyncCmd       `cmd:"" help:"Fetch the feed and list a day's events."`
	} `cmd:"" help:"Manage the external calendar feed."`

	ConfigCmd struct {
		Show cli.ConfigShowCmd `cmd:"" help:"Show the day configuration."`
		Set  cli.ConfigSetCmd  `cmd:"" help:"Change the day configuration."`
	} `cmd:"" name:"config" help:"Manage working hours and breaks."`

	StorageCmd struct {
		SetConn   cli.StorageSetConnCmd   `cmd:"" name:"set-conn" help:"Store the Postgres connection string in the OS keyring."`
		ClearConn cli.StorageClearConnCmd `cmd:"" name:"clear-conn" help:"Remove the Postgres connection string."`
	} `cmd:"" name:"storage" help:"Manage storage credentials."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Day layout engine: obligations, to-dos and calendar blocks on one timeline"),
		kong.UsageOnError(),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	var store storage.Provider
	if CLI.Storage == "postgres" {
		store = storage.NewPostgresStore()
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}
	defer store.Close()

	appCtx := &cli.Context{
		Store:  store,
		Engine: engine.New(),
		Feed:   feed.NewClient(),
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
