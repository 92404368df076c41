package main

import (
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/plumekit/plume/cmd/plume/commands"
	"github.com/plumekit/plume/internal/version"
)

func main() {
	// A .env in the working directory may provide PLUME_REPO or EDITOR.
	_ = godotenv.Load()

	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("plume"),
		kong.Description("Compiles a flat-file blog repository into a static site."),
		kong.UsageOnError(),
		kong.Vars{"version": "plume " + version.Version},
	)
	ctx.FatalIfErrorf(ctx.Run(&commands.Global{}))
}
