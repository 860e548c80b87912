package cli

import (
	"context"

	"go.uber.org/zap"

	"github.com/iliyamo/cardio-risk-service/internal/config"
	"github.com/iliyamo/cardio-risk-service/internal/features"
	"github.com/iliyamo/cardio-risk-service/internal/predictor"
)

// schema is the input layout every loaded model must accept.
func schema() predictor.Schema {
	return predictor.Schema{Features: features.Count, Columns: features.ColumnNames()}
}

// loadModel fetches and parses the artifact named by cfg.Model. The Redis
// connection, when one is needed, lives only as long as the fetch.
func loadModel(ctx context.Context, cfg config.Config, logger *zap.Logger) (predictor.Predictor, error) {
	var src predictor.Source = predictor.FileSource{Path: cfg.Model.Path}
	if cfg.Model.Source == config.SourceRedis {
		rdb, err := config.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		defer rdb.Close()
		src = predictor.RedisSource{Client: rdb, Key: cfg.Model.RedisKey}
	}

	p, err := predictor.Load(ctx, src, schema()) // fetch, parse, check the 18-column layout
	if err != nil {
		return nil, err
	}
	info := predictor.Describe(p)
	logger.Info("model loaded",
		zap.Stringer("source", src),
		zap.String("type", info.Type),
		zap.Int("size", info.Size),
		zap.Bool("probability", info.Probability),
	)
	return p, nil
}

// withModelPath points cfg at a local artifact when path is set.
func withModelPath(cfg config.Config, path string) config.Config {
	if path != "" {
		cfg.Model.Source = config.SourceFile
		cfg.Model.Path = path
	}
	return cfg
}
