package semantics

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"indicator_semantics/internal/modules/config"
	"indicator_semantics/internal/modules/semantics/service"
)

// NewRegistry строит реестр один раз на процесс: встроенная схема или schema.file из конфига.
func NewRegistry(cfg *config.Config, log *zap.Logger) (*service.Registry, error) {
	defs := service.Catalog()
	if cfg.Schema.File != "" {
		var err error
		if defs, err = service.LoadCatalog(cfg.Schema.File); err != nil {
			return nil, err
		}
	}
	return service.NewRegistry(defs, service.RegistryOptions{
		RejectDuplicateSubjects: cfg.Schema.RejectDuplicateSubjects,
	}, log.Named("semantics"))
}

func Module() fx.Option {
	return fx.Module("semantics",
		fx.Provide(
			NewRegistry, // *service.Registry
		),
	)
}
