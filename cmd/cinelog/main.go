package main

import (
	"context"
	"log/slog"
	"os"

	"cinelog/config"
	"cinelog/internal/delivery"
	"cinelog/internal/delivery/http"
	"cinelog/internal/delivery/http/middleware"
	"cinelog/internal/delivery/http/router/handler"
	"cinelog/internal/domain/repository"
	"cinelog/internal/domain/service"
	"cinelog/internal/infra/auth"
	"cinelog/internal/infra/catalog/tmdb"
	"cinelog/internal/infra/firebase"
	logs "cinelog/internal/infra/log"
	fsrepo "cinelog/internal/infra/persistence/firestore"
	"cinelog/internal/infra/session"
	"cinelog/internal/usecase"
	"cinelog/internal/usecase/impl"

	fstore "cloud.google.com/go/firestore"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			registerShutdown,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		firebase.NewApp,
		firebase.NewAuthClient,
		firebase.NewFirestoreClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				newFavoritesRepository,
				fx.ResultTags(`name:"favorites"`),
			),
			fx.Annotate(
				newWatchlistRepository,
				fx.ResultTags(`name:"watchlist"`),
			),
			fsrepo.NewReviewRepository,
		),
	)
}

func newFavoritesRepository(client *fstore.Client) repository.MovieListRepository {
	return fsrepo.NewMovieListRepository(client, "favorites")
}

func newWatchlistRepository(client *fstore.Client) repository.MovieListRepository {
	return fsrepo.NewMovieListRepository(client, "watchlist")
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewFirebaseAuthenticator,
			newSessionStore,
			tmdb.NewClient,
		),
	)
}

// newSessionStore creates the identity mirror store from config.
func newSessionStore(cfg *config.Config) service.SessionStore {
	path := ""
	if cfg.Session != nil {
		path = cfg.Session.MirrorPath
	}
	if path == "" {
		path = ".cinelog/session.json"
	}

	return session.NewFileStore(path)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewLibraryService,
			impl.NewCatalogService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewLibraryHandler,
			handler.NewCatalogHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// registerShutdown stops the event pumps before the process exits so the
// session mirror and subscriber channels wind down cleanly. The session
// manager closes first; that ends the subscription the library pump blocks on.
func registerShutdown(lc fx.Lifecycle, sessionUC usecase.SessionUsecase, libraryUC usecase.LibraryUsecase) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if err := sessionUC.Close(); err != nil {
				return err
			}

			return libraryUC.Close()
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
