package app

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/alexedwards/scs/v2"
	"gorm.io/gorm"

	"github.com/dnicolas/tienda/internal/adapters/catalogfile"
	"github.com/dnicolas/tienda/internal/adapters/httpserver"
	"github.com/dnicolas/tienda/internal/adapters/recs"
	"github.com/dnicolas/tienda/internal/adapters/repo/postgres"
	"github.com/dnicolas/tienda/internal/catalog"
	"github.com/dnicolas/tienda/internal/domain"
	"github.com/dnicolas/tienda/internal/session"
	"github.com/dnicolas/tienda/internal/usecase"
)

type App struct {
	Catalog  *usecase.CatalogUC
	Recs     *usecase.RecommendUC
	Sessions *scs.SessionManager
	Registry *session.Registry
}

// NewApp wires the catalog source, loads the product universe (load-or-fail)
// and builds the session machinery. db may be nil, in which case the catalog
// comes from CATALOG_FILE or the built-in seed and admin edits stay in memory.
func NewApp(ctx context.Context, db *gorm.DB) (*App, error) {
	var source domain.CatalogSource
	if db != nil {
		pg := postgres.NewCatalogSource(db)
		if err := pg.Migrate(); err != nil {
			return nil, err
		}
		if err := pg.SeedIfEmpty(ctx, catalog.Seed()); err != nil {
			return nil, err
		}
		source = pg
	} else {
		source = catalogfile.New(os.Getenv("CATALOG_FILE"), catalog.Seed())
	}

	products, err := source.Load(ctx)
	if err != nil {
		return nil, err
	}
	store := catalog.NewStore(products)

	recUC := &usecase.RecommendUC{}
	if gw := recs.NewGateway(os.Getenv("OPENAI_API_KEY"), os.Getenv("OPENAI_MODEL")); gw != nil {
		recUC.Recs = gw
	}

	sessions := scs.New()
	sessions.Lifetime = 12 * time.Hour
	sessions.Cookie.HttpOnly = true
	sessions.Cookie.Path = "/"

	return &App{
		Catalog:  &usecase.CatalogUC{Store: store, Source: source},
		Recs:     recUC,
		Sessions: sessions,
		Registry: session.NewRegistry(),
	}, nil
}

func (a *App) HTTPHandler() http.Handler {
	return httpserver.New(a.Sessions, a.Registry, a.Catalog, a.Recs)
}
