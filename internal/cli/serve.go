package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wordstorm/internal/server"
	"github.com/matzehuels/wordstorm/pkg/cache"
	"github.com/matzehuels/wordstorm/pkg/pipeline"
	"github.com/matzehuels/wordstorm/pkg/store"
)

// serveCommand creates the serve command running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		mongoURI  string
		mongoDB   string
		redisAddr string
		scope     string
		noCache   bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API.

Serves layout and render endpoints plus a saved-cloud library:

  POST   /v1/layout
  POST   /v1/render/{format}
  POST   /v1/clouds            GET /v1/clouds
  GET    /v1/clouds/{id}       DELETE /v1/clouds/{id}
  GET    /v1/clouds/{id}/render/{format}

Saved clouds live in MongoDB when --mongo-uri is set and in memory otherwise.
Results are cached in redis when --redis is set and on disk otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.config
			if addr != "" {
				cfg.Server.Addr = addr
			}
			if mongoURI != "" {
				cfg.Server.MongoURI = mongoURI
			}
			if mongoDB != "" {
				cfg.Server.MongoDatabase = mongoDB
			}
			if redisAddr != "" {
				cfg.Cache.Redis = redisAddr
			}
			return c.runServe(cmd.Context(), scope, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default :8080)")
	cmd.Flags().StringVar(&mongoURI, "mongo-uri", "", "MongoDB URI for saved clouds")
	cmd.Flags().StringVar(&mongoDB, "mongo-db", "", "MongoDB database (default wordstorm)")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "redis address for the result cache")
	cmd.Flags().StringVar(&scope, "cache-scope", "", "prefix for cache keys when sharing a backend")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, scope string, noCache bool) error {
	cc, err := c.newCache(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}
	var keyer cache.Keyer
	if scope != "" {
		keyer = cache.NewScopedKeyer(nil, scope)
	}
	runner := pipeline.NewRunner(cc, keyer, c.Logger)
	defer runner.Close()

	st, err := c.openServerStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	cfg := c.config.Server
	printSuccess("Listening on %s", cfg.Addr)
	return server.New(runner, st, c.Logger, cfg).ListenAndServe(ctx)
}

// openServerStore connects to MongoDB when configured and falls back to an
// in-memory store.
func (c *CLI) openServerStore(ctx context.Context) (store.Store, error) {
	cfg := c.config.Server
	if cfg.MongoURI == "" {
		c.Logger.Warn("no mongo uri configured, saved clouds are kept in memory")
		return store.NewMemoryStore(), nil
	}
	st, err := store.NewMongoStore(ctx, store.MongoConfig{
		URI:      cfg.MongoURI,
		Database: cfg.MongoDatabase,
	})
	if err != nil {
		return nil, err
	}
	c.Logger.Info("connected to mongo", "database", cfg.MongoDatabase)
	return st, nil
}
