// Command migrate applies the SQL migrations in db/migrations against the
// database given by DATABASE_URL, using the atlas CLI.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"ariga.io/atlas-go-sdk/atlasexec"
)

func main() {
	url := flag.String("url", os.Getenv("DATABASE_URL"), "database URL")
	dir := flag.String("dir", "file://db/migrations?format=golang-migrate", "migration directory URL")
	flag.Parse()

	if *url == "" {
		slog.Error("no database URL; set DATABASE_URL or pass -url")
		os.Exit(1)
	}

	client, err := atlasexec.NewClient(".", "atlas")
	if err != nil {
		slog.Error("failed to initialize atlas client", "error", err)
		os.Exit(1)
	}

	res, err := client.MigrateApply(context.Background(), &atlasexec.MigrateApplyParams{
		URL:    *url,
		DirURL: *dir,
	})
	if err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	slog.Info("migrations applied",
		"applied", len(res.Applied),
		"current", res.Current,
		"target", res.Target)
}
