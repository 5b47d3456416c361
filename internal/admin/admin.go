// Package admin implements the operator commands: applying migrations,
// seeding the development users and creating a user from the terminal.
package admin

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joseotaviopc/api-ari/internal/common"
	"github.com/joseotaviopc/api-ari/internal/dbx"
	"github.com/joseotaviopc/api-ari/internal/flagx"
	"github.com/joseotaviopc/api-ari/internal/logging"
	"github.com/joseotaviopc/api-ari/internal/server/auth"
	"github.com/joseotaviopc/api-ari/internal/server/config"
	"github.com/joseotaviopc/api-ari/internal/server/models"
	"github.com/joseotaviopc/api-ari/internal/server/repositories/memory"
	"github.com/joseotaviopc/api-ari/internal/server/repositories/repomanager"
	"github.com/joseotaviopc/api-ari/internal/server/services"
	"gorm.io/gorm"
)

// Usage is printed for unknown or missing commands.
const Usage = `usage: admin <command> [flags]

commands:
  migrate                          apply database migrations
  seed                             create or refresh the development users
  create-user -email E -name N     create a user, the password is read from the terminal
              [-base ID]`

var ErrUnknownCommand = errors.New("unknown command")

// SeedUser is a development account created by Seed.
type SeedUser struct {
	Email    string
	Password string
	Name     string
}

// DefaultSeed are the accounts Seed creates.
var DefaultSeed = []SeedUser{
	{Email: "alice@prisma.io", Password: "password123", Name: "Alice"},
	{Email: "bob@prisma.io", Password: "password456", Name: "Bob"},
}

type App struct {
	db            *gorm.DB
	sqlDB         *sql.DB
	repos         repomanager.RepositoryManager
	hasher        auth.PasswordHasher
	defaultBaseID int64
	logger        logging.Logger
	out           io.Writer
}

// New builds an App over an already opened store. db and sqlDB are nil for
// the in-memory store.
func New(db *gorm.DB, sqlDB *sql.DB, repos repomanager.RepositoryManager, hasher auth.PasswordHasher, defaultBaseID int64, logger logging.Logger, out io.Writer) *App {
	return &App{
		db:            db,
		sqlDB:         sqlDB,
		repos:         repos,
		hasher:        hasher,
		defaultBaseID: defaultBaseID,
		logger:        logger.With("module", "admin"),
		out:           out,
	}
}

// Open connects to the store the server configuration points at. The
// returned close function releases it.
func Open(c *config.Config) (*App, func() error, error) {
	logger, err := logging.New(c.LogLevel, c.LogFormat, os.Stderr)
	if err != nil {
		return nil, nil, err
	}
	hasher := auth.NewBcryptHasher(c.BcryptCost)

	if c.UsesMemoryStore() {
		return New(nil, nil, memory.NewManager(), hasher, c.DefaultBaseID, logger, os.Stdout), func() error { return nil }, nil
	}

	db, err := dbx.Open(c.DatabaseDSN)
	if err != nil {
		return nil, nil, fmt.Errorf("db init error: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("db init error: %w", err)
	}
	app := New(db, sqlDB, repomanager.NewPostgresRepositoryManager(), hasher, c.DefaultBaseID, logger, os.Stdout)
	return app, sqlDB.Close, nil
}

// Run dispatches args[0] to the matching command.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: none given\n%s", ErrUnknownCommand, Usage)
	}

	switch args[0] {
	case "migrate":
		return a.Migrate(ctx)
	case "seed":
		return a.Seed(ctx, DefaultSeed)
	case "create-user":
		return a.createUserCommand(ctx, args[1:])
	default:
		return fmt.Errorf("%w: %q\n%s", ErrUnknownCommand, args[0], Usage)
	}
}

// Migrate applies pending migrations.
func (a *App) Migrate(ctx context.Context) error {
	if err := a.repos.RunMigrations(ctx, a.sqlDB); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	fmt.Fprintln(a.out, "migrations applied")
	return nil
}

// Seed creates each user, or refreshes name, password and active flag of
// an existing one, in a single transaction. Running it twice is harmless.
func (a *App) Seed(ctx context.Context, seed []SeedUser) error {
	hashes := make([]string, len(seed))
	for i, u := range seed {
		h, err := a.hasher.Hash(ctx, u.Password)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", u.Email, err)
		}
		hashes[i] = h
	}

	return a.repos.InTx(ctx, a.db, func(ctx context.Context, tx *gorm.DB) error {
		repo := a.repos.Users(tx)
		for i, u := range seed {
			existing, err := repo.GetByEmail(ctx, u.Email)
			switch {
			case errors.Is(err, common.ErrorNotFound):
				created, err := repo.Create(ctx, &models.User{
					Email:        u.Email,
					PasswordHash: hashes[i],
					Name:         u.Name,
					IsActive:     true,
					BaseID:       a.defaultBaseID,
				})
				if err != nil {
					return fmt.Errorf("create %s: %w", u.Email, err)
				}
				fmt.Fprintf(a.out, "created %s (id=%d)\n", created.Email, created.ID)
			case err != nil:
				return fmt.Errorf("find %s: %w", u.Email, err)
			default:
				existing.Name = u.Name
				existing.PasswordHash = hashes[i]
				existing.IsActive = true
				if _, err := repo.Update(ctx, existing); err != nil {
					return fmt.Errorf("update %s: %w", u.Email, err)
				}
				fmt.Fprintf(a.out, "refreshed %s (id=%d)\n", existing.Email, existing.ID)
			}
		}
		return nil
	})
}

// CreateUser creates an active user in baseID. password is wiped before
// returning.
func (a *App) CreateUser(ctx context.Context, email, name string, password []byte, baseID int64) (*models.User, error) {
	defer common.WipeByteArray(password)

	if baseID <= 0 {
		baseID = a.defaultBaseID
	}
	svc := services.NewUserService(a.db, a.repos, a.hasher, baseID, a.logger)
	user, err := svc.Create(ctx, email, string(password), name)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(a.out, "created %s (id=%d, base=%d)\n", user.Email, user.ID, user.BaseID)
	return user, nil
}

func (a *App) createUserCommand(ctx context.Context, args []string) error {
	var (
		email, name string
		baseID      int64
	)
	fs := flag.NewFlagSet("create-user", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&email, "email", "", "user email")
	fs.StringVar(&name, "name", "", "user name")
	fs.Int64Var(&baseID, "base", 0, "base id, defaults to the configured default base")
	if err := fs.Parse(flagx.FilterArgs(args, []string{"-email", "-name", "-base"})); err != nil {
		return fmt.Errorf("create-user: %w", err)
	}
	if email == "" || name == "" {
		return fmt.Errorf("create-user: -email and -name are required\n%s", Usage)
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}
	if len(password) == 0 {
		return errors.New("create-user: empty password")
	}

	_, err = a.CreateUser(ctx, email, name, password, baseID)
	return err
}
