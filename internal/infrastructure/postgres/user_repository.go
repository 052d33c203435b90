package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/oksasatya/go-lightbnb/internal/domain/entity"
	"github.com/oksasatya/go-lightbnb/internal/domain/repository"
)

const (
	selectUserByEmail = `SELECT *
FROM users
WHERE email = $1`

	selectUserByID = `SELECT *
FROM users
WHERE id = $1`

	insertUser = `INSERT INTO users (name, email, password)
VALUES ($1, $2, $3)
RETURNING *`
)

type UserRepository struct {
	db Querier
}

func NewUserRepository(db Querier) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts u as given. Duplicate emails are left for the unique
// constraint to reject and come back as repository.ErrDuplicateEmail.
func (r *UserRepository) Create(ctx context.Context, u *entity.User) (*entity.User, error) {
	return r.one(ctx, "create user", insertUser, u.Name, u.Email, u.Password)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	return r.one(ctx, "get user by id", selectUserByID, id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.one(ctx, "get user by email", selectUserByEmail, email)
}

func (r *UserRepository) one(ctx context.Context, op, sql string, args ...any) (*entity.User, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, translate(op, err)
	}
	u, err := pgx.CollectExactlyOneRow(rows, rowToUser)
	if err != nil {
		return nil, translate(op, err)
	}
	return &u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
