package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/storekeeper/internal/app"
	"github.com/dmitrijs2005/storekeeper/internal/buildinfo"
	"github.com/dmitrijs2005/storekeeper/internal/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg := loadConfig(os.Args[1:])

	ctx := context.Background()
	a, err := app.NewApp(ctx, cfg, os.Stdin, os.Stdout)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := a.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}

}

// loadConfig turns the panic of a malformed config file or flag into a
// fatal log line.
func loadConfig(args []string) (cfg *config.Config) {
	defer func() {
		if r := recover(); r != nil {
			log.Fatalf("config error: %v", r)
		}
	}()
	return config.LoadConfig(args)
}
