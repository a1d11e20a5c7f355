package repositories

import (
	"context"
	"errors"

	"workshop-system/internal/entities"
	apperrors "workshop-system/pkg/errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const (
	userTable  = "users"
	userFields = "id, username, password_hash, role, full_name, created_at"
)

type UserRepositoryInterface interface {
	FindUserByID(ctx context.Context, id uint64) (*entities.User, error)
	FindUserByUsername(ctx context.Context, username string) (*entities.User, error)
	GetUsersByRole(ctx context.Context, role string) ([]entities.User, error)
	CreateUser(ctx context.Context, user *entities.User) (*entities.User, error)
}

type userRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewUserRepository(storage *pgxpool.Pool, logger *zap.Logger) UserRepositoryInterface {
	return &userRepository{storage: storage, logger: logger}
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var user entities.User
	err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Role, &user.FullName, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindUserByID(ctx context.Context, id uint64) (*entities.User, error) {
	query, args, err := sq.Select(userFields).From(userTable).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, err
	}
	return scanUser(r.storage.QueryRow(ctx, query, args...))
}

func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	query, args, err := sq.Select(userFields).From(userTable).
		Where(sq.Eq{"username": username}).
		PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, err
	}
	return scanUser(r.storage.QueryRow(ctx, query, args...))
}

func (r *userRepository) GetUsersByRole(ctx context.Context, role string) ([]entities.User, error) {
	query, args, err := sq.Select(userFields).From(userTable).
		Where(sq.Eq{"role": role}).
		OrderBy("full_name").
		PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]entities.User, 0)
	for rows.Next() {
		var user entities.User
		if err := rows.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Role, &user.FullName, &user.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) (*entities.User, error) {
	query, args, err := sq.Insert(userTable).
		Columns("username", "password_hash", "role", "full_name").
		Values(user.Username, user.PasswordHash, user.Role, user.FullName).
		Suffix("RETURNING " + userFields).
		PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, err
	}

	created, err := scanUser(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.ErrConflict
		}
		return nil, err
	}
	return created, nil
}
