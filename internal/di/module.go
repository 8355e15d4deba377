package di

import (
	"go.uber.org/fx"

	"github.com/craftpine/storefront/internal/app"
	"github.com/craftpine/storefront/internal/config"
	"github.com/craftpine/storefront/internal/events"
	"github.com/craftpine/storefront/internal/logger"
	"github.com/craftpine/storefront/internal/pkg/auth"
	"github.com/craftpine/storefront/internal/server/http/handlers"
	"github.com/craftpine/storefront/internal/server/http/router"
	"github.com/craftpine/storefront/internal/storage/postgres"
	"github.com/craftpine/storefront/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		events.Module,
		usecase.Module,
		fx.Provide(func(f *app.StorefrontFacade) handlers.StorefrontFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
