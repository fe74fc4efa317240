package users

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, user User) error {
	const query = `
INSERT INTO users (id, name, email, password_hash, age, gender, education,
                   board_scores, grades, exam_results, interests, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now(), now())`
	interests, err := marshalInterests(user.Profile.Interests)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.PasswordHash,
		nullableInt(user.Profile.Age),
		nullableString(user.Profile.Gender),
		nullableString(user.Profile.Education),
		nullableString(user.Profile.BoardScores),
		nullableString(user.Profile.Grades),
		nullableString(user.Profile.ExamResults),
		interests,
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrExists
	}
	return err
}

func (r *PGRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	const query = `
SELECT id, name, email, password_hash, COALESCE(age, 0), COALESCE(gender, ''),
       COALESCE(education, ''), COALESCE(board_scores, ''), COALESCE(grades, ''),
       COALESCE(exam_results, ''), interests, created_at, updated_at
FROM users
WHERE email = $1
LIMIT 1`
	var user User
	var interests []byte
	err := r.DB.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Profile.Age,
		&user.Profile.Gender,
		&user.Profile.Education,
		&user.Profile.BoardScores,
		&user.Profile.Grades,
		&user.Profile.ExamResults,
		&interests,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	if len(interests) > 0 {
		if err := json.Unmarshal(interests, &user.Profile.Interests); err != nil {
			return User{}, err
		}
	}
	return user, nil
}

func (r *PGRepo) UpdateProfile(ctx context.Context, email string, profile Profile) (User, error) {
	const query = `
UPDATE users SET
  age = $2, gender = $3, education = $4, board_scores = $5,
  grades = $6, exam_results = $7, interests = $8, updated_at = now()
WHERE email = $1`
	interests, err := marshalInterests(profile.Interests)
	if err != nil {
		return User{}, err
	}
	res, err := r.DB.ExecContext(ctx, query, email,
		nullableInt(profile.Age),
		nullableString(profile.Gender),
		nullableString(profile.Education),
		nullableString(profile.BoardScores),
		nullableString(profile.Grades),
		nullableString(profile.ExamResults),
		interests,
	)
	if err != nil {
		return User{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return User{}, err
	}
	if affected == 0 {
		return User{}, ErrNotFound
	}
	return r.GetByEmail(ctx, email)
}

func marshalInterests(interests []string) (any, error) {
	if len(interests) == 0 {
		return nil, nil
	}
	return json.Marshal(interests)
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func nullableInt(value int) any {
	if value == 0 {
		return nil
	}
	return value
}
