package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	jsoniter "github.com/json-iterator/go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"emotion-worker/config"
	"emotion-worker/internal/api"
	app "emotion-worker/internal/application"
	"emotion-worker/internal/container"
	"emotion-worker/internal/domain/entity"
	"emotion-worker/internal/infrastructure/models"
	"emotion-worker/internal/infrastructure/storage"
	"emotion-worker/internal/infrastructure/vision"
	"emotion-worker/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdin, os.Stdout).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	var (
		modelDirs     []string
		resizePercent int
		jpegQuality   int
		layout        string
		logFile       string
		logLevel      string
	)

	cmd := &cobra.Command{
		Use:           "emotion-worker",
		Short:         "Detects faces in base64 frames from stdin and writes emotion, gender and age as JSON lines",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return startupError(out, err.Error(), err)
			}

			flags := cmd.Flags()
			if flags.Changed("model-dir") {
				cfg.ModelDirs = modelDirs
			}
			if flags.Changed("resize-percent") {
				cfg.ResizePercent = resizePercent
			}
			if flags.Changed("jpeg-quality") {
				cfg.JPEGQuality = jpegQuality
			}
			if flags.Changed("layout") {
				cfg.TensorLayout = layout
			}
			if flags.Changed("log-file") {
				cfg.LogFile = logFile
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			}

			return run(cmd.Context(), cfg, in, out)
		},
	}

	cmd.Flags().StringArrayVar(&modelDirs, "model-dir", nil, "directory to search for model files (repeatable, first complete match wins)")
	cmd.Flags().IntVar(&resizePercent, "resize-percent", 75, "scale decoded frames to this percentage")
	cmd.Flags().IntVar(&jpegQuality, "jpeg-quality", 85, "JPEG quality of the annotated frame")
	cmd.Flags().StringVar(&layout, "layout", string(entity.LayoutNHWC), "model input tensor layout (nhwc or nchw)")
	cmd.Flags().StringVar(&logFile, "log-file", "emotion_detection.log", "log file path")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level")

	return cmd
}

func run(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return startupError(out, err.Error(), err)
	}

	closer, err := logger.Setup(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return startupError(out, err.Error(), err)
	}
	defer closer.Close()

	sessionRepo := storage.NewMemorySessionRepository(fmt.Sprintf("worker-%d", os.Getpid()))
	sessions := app.NewSessionService(sessionRepo)
	log.Info("emotion detection worker started")

	paths, err := models.Locate(cfg.SearchDirs(executableDir()), cfg.ModelFiles)
	if err != nil {
		log.Errorf("models: %s", err)
		_, _ = sessions.Fail(ctx)
		return startupError(out, entity.ErrModelsNotFound.Error(), err)
	}
	log.Infof("models: found in %s", paths.Dir)

	registry, err := vision.LoadRegistry(*paths)
	if err != nil {
		log.Errorf("models: %s", err)
		_, _ = sessions.Fail(ctx)
		return startupError(out, "Failed to load models: "+err.Error(), err)
	}
	defer registry.Close()
	log.Info("models: loaded successfully")

	opts := vision.Options{
		ResizePercent: cfg.ResizePercent,
		JPEGQuality:   cfg.JPEGQuality,
		ScaleFactor:   cfg.ScaleFactor,
		MinNeighbors:  cfg.MinNeighbors,
		MinFaceSize:   cfg.MinFaceSize,
	}
	layout, _ := entity.ParseLayout(cfg.TensorLayout)

	c := container.New(sessionRepo, container.Pipeline{
		Codec:     vision.NewCodec(opts),
		Localizer: vision.NewLocalizer(registry, opts),
		Sampler:   vision.NewSampler(),
		Annotator: vision.NewAnnotator(),
		Emotion:   registry.Emotion,
		Gender:    registry.Gender,
		Age:       registry.Age,
		Layout:    layout,
	})

	worker := api.NewWorker(in, out, c.FrameService, c.SessionService, cfg.MaxLineBytes)
	return worker.Run(ctx)
}

// startupError пишет единственную строку {"error": ...} до входа в цикл обслуживания.
func startupError(out io.Writer, message string, cause error) error {
	line, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(entity.ErrorResult{Error: message})
	if err == nil {
		_, _ = out.Write(append(line, '\n'))
	}
	return fmt.Errorf("startup: %w", cause)
}

func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}
