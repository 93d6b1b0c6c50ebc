package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"
	"github.com/zarlcorp/core/pkg/zfilesystem"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/zarlcorp/zfake/internal/config"
	"github.com/zarlcorp/zfake/internal/dataset"
	"github.com/zarlcorp/zfake/internal/fake"
	"github.com/zarlcorp/zfake/internal/fieldconfig"
	"github.com/zarlcorp/zfake/internal/logger"
	"github.com/zarlcorp/zfake/internal/mask"
	"github.com/zarlcorp/zfake/internal/metrics"
	"github.com/zarlcorp/zfake/internal/output"
)

func runGenerate(cmd *cobra.Command, cfgPath string) error {
	cfg, err := config.Load(cfgPath, cmd.Flags())
	if err != nil {
		return err
	}
	// format and count are checked before any record is generated
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.New(cfg.LogLevel, zapcore.AddSync(cmd.ErrOrStderr())).
		With(zap.String("run", ulid.Make().String()))
	defer func() { _ = log.Sync() }()

	m := metrics.New()
	path, err := Generate(cmd.Context(), cfg, log, m)
	if err != nil {
		return err
	}

	if cfg.MetricsFile != "" {
		if err := m.WriteTextfile(cfg.MetricsFile); err != nil {
			log.Warn("write metrics file", zap.String("file", cfg.MetricsFile), zap.Error(err))
		}
	}

	printWritten(cmd.OutOrStdout(), cfg.OutputFormat(), path)
	return nil
}

// Generate runs one generation: load both config files, assemble
// cfg.Count records and write them in cfg's format under cfg.OutDir.
// cfg must be validated. It returns the path of the written file.
func Generate(ctx context.Context, cfg config.Config, log *zap.Logger, m *metrics.Metrics) (string, error) {
	loader := fieldconfig.NewLoader(log, m)
	custom := loader.CustomFields(dirFS(cfg.FieldsPath))
	rules := loader.MaskRules(dirFS(cfg.MaskPath))

	provider := fake.New(cfg.Seed)
	engine := mask.NewEngine(rules, provider, m)
	gen := dataset.NewGenerator(dataset.NewAssembler(provider, engine, custom), m)

	ds, err := gen.Generate(cfg.Count)
	if err != nil {
		return "", err
	}
	log.Debug("dataset generated",
		zap.Int("records", len(ds)),
		zap.Int("custom_fields", len(custom)),
		zap.Int("mask_rules", len(rules)))

	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}

	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	w := output.NewWriter(zfilesystem.NewOSFileSystem(cfg.OutDir))
	name, err := w.Write(cfg.OutputFormat(), ds)
	if err != nil {
		return "", err
	}

	path := filepath.Join(cfg.OutDir, name)
	log.Info("dataset written", zap.String("file", path), zap.Int("records", len(ds)))
	return path, nil
}

// dirFS roots an OS filesystem at the directory holding path.
func dirFS(path string) (fieldconfig.FileReader, string) {
	return zfilesystem.NewOSFileSystem(filepath.Dir(path)), filepath.Base(path)
}
