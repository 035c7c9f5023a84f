// Command wikigen renders works from the film database into DokuWiki
// pages, either written to disk or served over HTTP for preview.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"filmwiki/internal/adapters/observability"
	"filmwiki/internal/shared"
	mysqlrepo "filmwiki/internal/storage/mysql"
)

var cfg shared.Config

var rootCmd = &cobra.Command{
	Use:   "wikigen",
	Short: "Generate DokuWiki pages for movies and series",
	Long: `wikigen reads works from the film database and assembles one localized
DokuWiki page per work: info box, cast and crew, company credits, filming
and production dates, and connections.

Settings come from the environment (MYSQL_DSN, OUTPUT_DIR, WIKI_LANG, ...);
flags override them.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = shared.Load()
		log.Logger = observability.NewLogger(cfg.AppEnv)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func openRepo(ctx context.Context) (*mysqlrepo.Repo, func(), error) {
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("ping database: %w", err)
	}
	log.Info().Msg("database connection ok")
	return mysqlrepo.New(db), func() { _ = db.Close() }, nil
}
