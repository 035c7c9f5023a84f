package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"filmwiki/internal/adapters/fswriter"
	"filmwiki/internal/app"
	"filmwiki/internal/content"
	"filmwiki/internal/domain"
	"filmwiki/internal/wiki/dokuwiki"
)

var (
	genKind     string
	genLang     string
	genOut      string
	genWorkers  int
	genFailFast bool
	genAuthor   string
)

var generateCmd = &cobra.Command{
	Use:   "generate [ID|*]",
	Short: "Write the page of one work, or of all published works",
	Long: `Writes <out>/<lang>/<kind>/<page>.txt for the given work id. With "*"
every work of the kind whose status is ok is generated; failing works are
reported and skipped unless --fail-fast is set.

Without an argument the kind, id and pages directory are asked for
interactively.

Example:
  wikigen generate --kind movie --lang de 74
  wikigen generate --kind series '*'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&genKind, "kind", "k", string(domain.KindMovie), "work kind: movie or series")
	generateCmd.Flags().StringVarP(&genLang, "lang", "l", "", "page language (default $WIKI_LANG)")
	generateCmd.Flags().StringVarP(&genOut, "out", "o", "", "pages directory (default $OUTPUT_DIR)")
	generateCmd.Flags().IntVarP(&genWorkers, "workers", "w", 0, "parallel pages for '*' (default $GEN_WORKERS)")
	generateCmd.Flags().BoolVar(&genFailFast, "fail-fast", false, "stop a batch at the first failing work")
	generateCmd.Flags().StringVar(&genAuthor, "author", "", "author named in the page header (default $WIKI_AUTHOR)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var t target
	var err error
	if len(args) == 1 {
		t, err = parseTarget(genKind, args[0])
	} else {
		if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
			return fmt.Errorf("missing work id; pass an id or '*'")
		}
		t, err = promptTarget(os.Stdin, cmd.OutOrStdout(), genKind, pick(genOut, cfg.OutputDir))
	}
	if err != nil {
		return err
	}

	lang := pick(genLang, cfg.Language)
	out := pick(t.out, pick(genOut, cfg.OutputDir))
	workers := cfg.Workers
	if genWorkers > 0 {
		workers = genWorkers
	}

	repo, closeRepo, err := openRepo(ctx)
	if err != nil {
		return err
	}
	defer closeRepo()

	svc := app.NewGenerateService(repo, fswriter.New(), dokuwiki.New(), out,
		app.WithWorkers(workers),
		app.WithFailFast(genFailFast),
		app.WithDBRate(cfg.DBQPS),
		app.WithPageOptions(content.WithAuthor(pick(genAuthor, cfg.Author))),
	)

	if !t.all {
		file, err := svc.GeneratePage(ctx, t.kind, t.id, lang)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), file)
		return nil
	}

	rep, err := svc.GenerateAll(ctx, t.kind, lang)
	for _, f := range rep.Failed {
		log.Error().Int64("id", f.ID).Err(f.Err).Msg("not generated")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d written, %d failed\n", len(rep.Written), len(rep.Failed))
	if err != nil {
		return err
	}
	if len(rep.Failed) > 0 {
		return fmt.Errorf("%d of %d %s pages failed", len(rep.Failed), len(rep.Failed)+len(rep.Written), t.kind)
	}
	return nil
}

func pick(flag, fallback string) string {
	if flag != "" {
		return flag
	}
	return fallback
}
