package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=./mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"salesdesk/infras/otel"
	"salesdesk/infras/postgres"
	"salesdesk/internal/domains/user/model"
	"salesdesk/shared/constant"
	"salesdesk/shared/failure"
)

type User interface {
	Insert(ctx context.Context, user model.User) error
	GetByID(ctx context.Context, id string) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateLastLogin(ctx context.Context, id string) error
	UpdatePassword(ctx context.Context, id, hashedPassword string) error
	UpdateTier(ctx context.Context, id, tier string) error
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, ot otel.Otel) User {
	return &repositoryImpl{
		db:   db,
		otel: ot,
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, user model.User) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Insert")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `INSERT INTO users (id, email, password, full_name, role, tier, active, created_at, modified_at, created_by, modified_by)
		VALUES (:id, :email, :password, :full_name, :role, :tier, :active, :created_at, :modified_at, :created_by, :modified_by)`

	_, err = r.db.Write.NamedExecContext(ctx, query, user)
	if err != nil {
		return fmt.Errorf("inserting user: %w", err)
	}

	return nil
}

func (r *repositoryImpl) GetByID(ctx context.Context, id string) (user model.User, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetByID")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = r.db.Read.GetContext(ctx, &user, `SELECT * FROM users WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user, failure.NotFound(model.EntityName) //nolint:wrapcheck
		}

		return user, fmt.Errorf("getting user by id: %w", err)
	}

	return user, nil
}

func (r *repositoryImpl) GetByEmail(ctx context.Context, email string) (user model.User, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetByEmail")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = r.db.Read.GetContext(ctx, &user, `SELECT * FROM users WHERE email = $1`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user, failure.NotFound(model.EntityName) //nolint:wrapcheck
		}

		return user, fmt.Errorf("getting user by email: %w", err)
	}

	return user, nil
}

func (r *repositoryImpl) ExistsByEmail(ctx context.Context, email string) (exists bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".ExistsByEmail")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = r.db.Read.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email)
	if err != nil {
		return false, fmt.Errorf("checking user existence: %w", err)
	}

	return exists, nil
}

func (r *repositoryImpl) UpdateLastLogin(ctx context.Context, id string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".UpdateLastLogin")
	defer scope.End()
	defer scope.TraceIfError(err)

	_, err = r.db.Write.ExecContext(ctx,
		`UPDATE users SET last_login = $1, modified_at = $1 WHERE id = $2`, time.Now(), id)
	if err != nil {
		return fmt.Errorf("updating last login: %w", err)
	}

	return nil
}

func (r *repositoryImpl) UpdatePassword(ctx context.Context, id, hashedPassword string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".UpdatePassword")
	defer scope.End()
	defer scope.TraceIfError(err)

	_, err = r.db.Write.ExecContext(ctx,
		`UPDATE users SET password = $1, modified_at = $2 WHERE id = $3`, hashedPassword, time.Now(), id)
	if err != nil {
		return fmt.Errorf("updating password: %w", err)
	}

	return nil
}

func (r *repositoryImpl) UpdateTier(ctx context.Context, id, tier string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".UpdateTier")
	defer scope.End()
	defer scope.TraceIfError(err)

	result, err := r.db.Write.ExecContext(ctx,
		`UPDATE users SET tier = $1, modified_at = $2 WHERE id = $3`, tier, time.Now(), id)
	if err != nil {
		return fmt.Errorf("updating tier: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}

	if affected == 0 {
		return failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	return nil
}
