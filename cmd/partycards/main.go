package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	Config string `kong:"default='partycards.hcl',type='path',help='HCL configuration file (missing file means defaults)'"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"withargs" help:"Play at the table in the terminal"`
	Simulate SimulateCmd      `cmd:"" help:"Play random rounds and report rule statistics"`
	Deal     DealCmd          `cmd:"" help:"Deal one pool face up"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("partycards"),
		kong.Description("A party card game of raises, forced draws and one WIN card"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
