// Package storefront wires the local storefront: an embedded product
// database with a snapshot fallback, and one controller per concern (catalog,
// cart, wishlist, orders, profile, accounts, checkout), each persisting its
// own state. Controllers are explicit service objects constructed once here;
// there is no global state.
//
// The controllers assume the single logical thread of control of a UI event
// flow. Callers running them from multiple goroutines must serialize access
// themselves.
package storefront

import (
	"context"
	"io"
	"log"
	"os"

	"go.etcd.io/bbolt"

	"github.com/MostafaGhazall/E-commerce-Website/internal/config"
	"github.com/MostafaGhazall/E-commerce-Website/internal/db"
	"github.com/MostafaGhazall/E-commerce-Website/internal/domain"
	"github.com/MostafaGhazall/E-commerce-Website/internal/kvstore"
	productrepo "github.com/MostafaGhazall/E-commerce-Website/internal/repository/product"
	"github.com/MostafaGhazall/E-commerce-Website/internal/repository/state"
	"github.com/MostafaGhazall/E-commerce-Website/internal/seed"
	accountsvc "github.com/MostafaGhazall/E-commerce-Website/internal/service/account"
	cartsvc "github.com/MostafaGhazall/E-commerce-Website/internal/service/cart"
	catalogsvc "github.com/MostafaGhazall/E-commerce-Website/internal/service/catalog"
	checkoutsvc "github.com/MostafaGhazall/E-commerce-Website/internal/service/checkout"
	orderssvc "github.com/MostafaGhazall/E-commerce-Website/internal/service/orders"
	profilesvc "github.com/MostafaGhazall/E-commerce-Website/internal/service/profile"
	wishlistsvc "github.com/MostafaGhazall/E-commerce-Website/internal/service/wishlist"
)

// Persistence keys, one per controller.
const (
	cartStateKey     = "cart-storage"
	wishlistStateKey = "wishlist-storage"
	ordersStateKey   = "order-history-storage"
	profileStateKey  = "user-profile"
	accountsStateKey = "auth-storage"
)

type App struct {
	Catalog  *catalogsvc.Service
	Cart     *cartsvc.Service
	Wishlist *wishlistsvc.Service
	Orders   *orderssvc.Service
	Profile  *profilesvc.Service
	Accounts *accountsvc.Service
	Checkout *checkoutsvc.Service

	cfg      config.Config
	logger   *log.Logger
	database *bbolt.DB
	kv       *kvstore.Store
	products productrepo.Repository
}

// New builds the application once at process start. A database that cannot
// be opened is not fatal: the catalog degrades to the snapshot store and
// durable product writes report ErrStorageUnavailable.
func New(cfg config.Config, logger *log.Logger) (*App, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, err
	}

	kv, err := kvstore.Open(cfg.StateDir(), logger)
	if err != nil {
		return nil, err
	}

	app := &App{cfg: cfg, logger: logger, kv: kv}

	database, err := db.Open(cfg.DBPath(), cfg.DBOpenTimeout)
	if err != nil {
		logger.Printf("app: embedded database unavailable, running on snapshots: %v", err)
		app.products = productrepo.Unavailable{}
	} else {
		app.database = database
		app.products = productrepo.NewBolt(database, logger)
	}

	snapshots := productrepo.NewSnapshotStore(kv, logger)
	app.Catalog = catalogsvc.New(app.products, snapshots, logger)

	app.Cart, err = cartsvc.New(state.New[[]domain.CartLine](kv, cartStateKey, logger), logger)
	if err != nil {
		return nil, err
	}
	app.Wishlist, err = wishlistsvc.New(state.New[[]string](kv, wishlistStateKey, logger), logger)
	if err != nil {
		return nil, err
	}
	app.Orders, err = orderssvc.New(state.New[[]domain.Order](kv, ordersStateKey, logger), logger)
	if err != nil {
		return nil, err
	}
	app.Profile, err = profilesvc.New(state.New[domain.UserProfile](kv, profileStateKey, logger), logger)
	if err != nil {
		return nil, err
	}
	app.Accounts, err = accountsvc.New(state.New[[]domain.Account](kv, accountsStateKey, logger), logger)
	if err != nil {
		return nil, err
	}
	app.Checkout = checkoutsvc.New(app.Cart, app.Catalog, app.Orders, app.Profile, logger)

	return app, nil
}

// Start seeds the product store on first run and loads the catalog. Seeding
// failures degrade (the catalog falls back to its snapshot) rather than
// aborting startup.
func (a *App) Start(ctx context.Context) error {
	if err := seed.IfEmpty(ctx, a.products, a.kv, a.logger); err != nil {
		a.logger.Printf("app: seed skipped: %v", err)
	}
	a.Catalog.LoadProducts(ctx)
	return ctx.Err()
}

// Close releases the embedded database.
func (a *App) Close() error {
	if a.database != nil {
		return a.database.Close()
	}
	return nil
}
