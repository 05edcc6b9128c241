package user

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/hanifmaulana/quotedesk/model"
)

type UserRepository interface {
	Create(ctx context.Context, req *model.UserEntity) (*model.UserEntity, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const insertUserQuery = `INSERT INTO user (name, email, phone, role, password_hash, created_at) VALUES (?, ?, ?, ?, ?, NOW())`

func (s *SQL) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertUserQuery, data.Name, data.Email, data.Phone, data.Role, data.PasswordHash)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

// Get returns the first user matching the filter, nil when none match.
func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	clauses := []string{"true"}
	args := make([]any, 0, 3)

	if filter.ID != 0 {
		clauses = append(clauses, "id = ?")
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		clauses = append(clauses, "email = ?")
		args = append(args, filter.Email)
	}
	if filter.Phone != "" {
		clauses = append(clauses, "phone = ?")
		args = append(args, filter.Phone)
	}

	query := `SELECT id, name, email, phone, role, password_hash, created_at, updated_at FROM user WHERE ` +
		strings.Join(clauses, " AND ") + ` LIMIT 1`

	var entity model.UserEntity
	if err := s.conn.GetContext(ctx, &entity, query, args...); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}
