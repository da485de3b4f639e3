package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zhangshv123/walmart-recommend/internal/catalog"
	"github.com/zhangshv123/walmart-recommend/internal/config"
	"github.com/zhangshv123/walmart-recommend/internal/model"
	"github.com/zhangshv123/walmart-recommend/internal/render"
	"github.com/zhangshv123/walmart-recommend/internal/service"
	"github.com/zhangshv123/walmart-recommend/internal/transport"
)

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recommend <search term>",
		Short: "Rank next-best-product recommendations by review score",
		Long: `recommend searches the catalog for a term, fetches recommendations for the
first matching product and prints them ranked by normalized review score.

Configuration is read from recommend.yaml (current directory or
~/.config/recommend) and RECOMMEND_* environment variables. The catalog
API key must be set through RECOMMEND_CATALOG_API_KEY or catalog.api_key.`,
		Version:      Version,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0])
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd
}

func run(cmd *cobra.Command, term string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer logger.Sync()

	client := catalog.NewClient(cfg.Catalog, transport.New(cfg.HTTPTimeout), logger)
	svc := service.NewService(client, model.NewRanker(client, logger), logger)

	logger.Debug("running pipeline", zap.String("term", term), zap.Int("limit", cfg.Limit))

	result, err := svc.GetRecommendations(cmd.Context(), term, cfg.Limit)
	if err != nil {
		return err
	}
	return render.Write(cmd.OutOrStdout(), cfg.OutputFormat, term, result)
}
