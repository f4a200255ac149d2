package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

// dualHandler пишет всё в основной handler, а ошибки дублирует в отдельный файл.
type dualHandler struct {
	coreHandler  slog.Handler
	errorHandler slog.Handler
}

func (h *dualHandler) Enabled(ctx context.Context, lvl slog.Level) bool {
	return h.coreHandler.Enabled(ctx, lvl) || h.errorHandler.Enabled(ctx, lvl)
}

func (h *dualHandler) Handle(ctx context.Context, r slog.Record) error {
	var err error

	if h.coreHandler.Enabled(ctx, r.Level) {
		if err = h.coreHandler.Handle(ctx, r); err != nil {
			return err
		}
	}

	// ошибка записи в файл не должна ронять основной лог
	if r.Level >= slog.LevelError && h.errorHandler.Enabled(ctx, r.Level) {
		_ = h.errorHandler.Handle(ctx, r.Clone())
	}

	return err
}

func (h *dualHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &dualHandler{
		coreHandler:  h.coreHandler.WithAttrs(attrs),
		errorHandler: h.errorHandler.WithAttrs(attrs),
	}
}

func (h *dualHandler) WithGroup(name string) slog.Handler {
	return &dualHandler{
		coreHandler:  h.coreHandler.WithGroup(name),
		errorHandler: h.errorHandler.WithGroup(name),
	}
}

func newCoreHandler(env string, out io.Writer) slog.Handler {
	level := slog.LevelDebug
	if env == EnvProd {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	switch env {
	case EnvDev:
		return slog.NewJSONHandler(out, opts)
	default:
		return slog.NewTextHandler(out, opts)
	}
}

// New собирает логгер поверх произвольных writer'ов. errOut может быть nil.
func New(env string, out, errOut io.Writer) *slog.Logger {
	core := newCoreHandler(env, out)
	if errOut == nil {
		return slog.New(core)
	}

	return slog.New(&dualHandler{
		coreHandler:  core,
		errorHandler: slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: slog.LevelError}),
	})
}

// Setup пишет в stdout, ошибки дополнительно в errorLogPath.
func Setup(env, errorLogPath string) *slog.Logger {
	if errorLogPath == "" {
		return New(env, os.Stdout, nil)
	}

	errorFile, err := os.OpenFile(errorLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		slog.Warn("Cannot open error log file", "path", errorLogPath, "error", err)
		return New(env, os.Stdout, nil)
	}

	return New(env, os.Stdout, errorFile)
}

// Discard нужен в тестах.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
