package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"todoseed/internal/gen"
	docfs "todoseed/internal/infra/document/fs"
	"todoseed/internal/infra/persistence/postgres"
	"todoseed/internal/infra/persistence/sqlite"
	"todoseed/internal/sink"
	"todoseed/pkg/domain"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the dataset and write both sinks",
	RunE:  runGenerate,
}

func init() {
	flags := generateCmd.Flags()
	flags.IntP("users", "n", 100000, "number of users to generate")
	flags.IntP("lists", "m", 100000, "number of task lists to generate")
	flags.Int64("seed", 0xCEDAA, "seed for the deterministic random source")
	flags.String("db", "entities.huge.db", "path of the SQLite database to write")
	flags.String("pg-dsn", "", "write to this Postgres DSN instead of SQLite")
	flags.String("out", "entities.huge.json", "path of the entity document to write")
	flags.Float64("default-team-probability", gen.DefaultTeamProbability,
		"chance a list reuses a default team instead of minting an extra one")
	flags.Bool("progress", true, "render per-phase progress bars")
	if err := viper.BindPFlags(flags); err != nil {
		panic(err)
	}
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := gen.Config{
		Users:                  viper.GetInt("users"),
		Lists:                  viper.GetInt("lists"),
		Seed:                   viper.GetInt64("seed"),
		DefaultTeamProbability: viper.GetFloat64("default-team-probability"),
	}
	if viper.GetBool("progress") {
		cfg.Progress = newProgressReporter()
	}

	started := time.Now()
	graph, err := gen.Generate(cfg)
	if err != nil {
		return fmt.Errorf("generate graph: %w", err)
	}
	logger.Info().
		Int("users", len(graph.Users)).
		Int("lists", len(graph.Lists)).
		Int("extra_teams", len(graph.ExtraTeams)).
		Dur("elapsed", time.Since(started)).
		Msg("graph assembled")

	if err := writeRelational(ctx, graph); err != nil {
		return err
	}
	return writeDocument(graph)
}

func writeRelational(ctx context.Context, graph *domain.Graph) error {
	dsn := viper.GetString("pg-dsn")
	dbPath := viper.GetString("db")

	var (
		store domain.RelationalSink
		err   error
	)
	if dsn != "" {
		store, err = postgres.New(ctx, dsn)
	} else {
		store, err = sqlite.New(dbPath)
	}
	if err != nil {
		return fmt.Errorf("open relational sink: %w", err)
	}
	defer func() { _ = store.Close() }()

	started := time.Now()
	if err := store.WriteGraph(ctx, graph); err != nil {
		// A half-written SQLite file must not be left claiming success.
		if dsn == "" {
			_ = os.Remove(dbPath)
		}
		return fmt.Errorf("write relational sink: %w", err)
	}
	logger.Info().Dur("elapsed", time.Since(started)).Msg("relational sink written")
	return nil
}

func writeDocument(graph *domain.Graph) error {
	out := viper.GetString("out")
	data, err := sink.EncodeDocument(graph)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	store, err := docfs.New(filepath.Dir(out))
	if err != nil {
		return fmt.Errorf("open document sink: %w", err)
	}
	started := time.Now()
	if err := store.Write(filepath.Base(out), data); err != nil {
		return fmt.Errorf("write document sink: %w", err)
	}
	logger.Info().Dur("elapsed", time.Since(started)).Int("bytes", len(data)).Msg("document sink written")
	return nil
}

// newProgressReporter renders one bar per pipeline phase.
func newProgressReporter() func(phase gen.Phase, done, total int) {
	var (
		current gen.Phase
		bar     *progressbar.ProgressBar
	)
	return func(phase gen.Phase, done, total int) {
		if phase != current {
			if bar != nil {
				_ = bar.Finish()
			}
			current = phase
			bar = progressbar.Default(int64(total), string(phase))
		}
		_ = bar.Set(done)
	}
}
