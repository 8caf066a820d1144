package quiz

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const (
	bcryptCost = 12

	// SQLSTATE unique_violation
	pgUniqueViolation = "23505"
)

type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) CreateQuiz(ctx context.Context, ownerID string, q Quiz) (int64, error) {
	if err := q.Validate(); err != nil {
		return 0, err
	}
	if len(q.Questions) == 0 {
		return 0, ErrEmptyQuiz
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	var id int64
	err = tx.QueryRowContext(ctx, `INSERT INTO quizzes (owner_id,title,public,created_at)
		VALUES ($1,$2,$3,$4) RETURNING id`,
		ownerID, q.Title, q.Public, time.Now().Unix()).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert quiz: %w", err)
	}
	for i, qq := range q.Questions {
		_, err := tx.ExecContext(ctx, `INSERT INTO questions
			(quiz_id,number,prompt,option_1,option_2,option_3,option_4,correct_option,image_path)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
			id, i+1, qq.Prompt, qq.Option1, qq.Option2, qq.Option3, qq.Option4, qq.CorrectOption, qq.ImagePath)
		if err != nil {
			return 0, fmt.Errorf("insert question %d: %w", i+1, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

func (s *SQLStore) GetQuiz(ctx context.Context, id int64, viewerID string) (Quiz, error) {
	var q Quiz
	row := s.db.QueryRowContext(ctx, `SELECT title,public FROM quizzes
		WHERE id=$1 AND (public = TRUE OR owner_id=$2)`, id, viewerID)
	if err := row.Scan(&q.Title, &q.Public); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Quiz{}, ErrNotFound
		}
		return Quiz{}, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT prompt,option_1,option_2,option_3,option_4,correct_option,image_path
		FROM questions WHERE quiz_id=$1 ORDER BY number`, id)
	if err != nil {
		return Quiz{}, err
	}
	defer rows.Close()
	q.Questions = []Question{}
	for rows.Next() {
		var qq Question
		if err := rows.Scan(&qq.Prompt, &qq.Option1, &qq.Option2, &qq.Option3, &qq.Option4, &qq.CorrectOption, &qq.ImagePath); err != nil {
			return Quiz{}, err
		}
		q.Questions = append(q.Questions, qq)
	}
	return q, rows.Err()
}

func (s *SQLStore) ListQuizzes(ctx context.Context, opts ListOpts) ([]Summary, error) {
	query := `SELECT q.id, q.title, u.username, q.public, COUNT(qs.id)
		FROM quizzes q
		JOIN users u ON u.id = q.owner_id
		JOIN questions qs ON qs.quiz_id = q.id
		WHERE q.public = TRUE OR q.owner_id = $1
		GROUP BY q.id, q.title, u.username, q.public`
	args := []any{opts.ViewerID}
	if opts.Operator != "" {
		// operator comes from a fixed list, never from raw input
		if !slices.Contains(CountOperators, opts.Operator) {
			return nil, ErrUnsupportedFilter
		}
		query += ` HAVING COUNT(qs.id) ` + opts.Operator + ` $2`
		args = append(args, opts.Questions)
	}
	query += ` ORDER BY q.title, u.username`
	return s.summaries(ctx, query, args...)
}

func (s *SQLStore) SearchQuizzes(ctx context.Context, term, viewerID string) ([]Summary, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []Summary{}, nil
	}
	return s.summaries(ctx, `SELECT q.id, q.title, u.username, q.public, COUNT(qs.id)
		FROM quizzes q
		JOIN users u ON u.id = q.owner_id
		LEFT JOIN questions qs ON qs.quiz_id = q.id
		WHERE LOWER(q.title) LIKE '%' || LOWER($1) || '%'
		  AND (q.public = TRUE OR q.owner_id = $2)
		GROUP BY q.id, q.title, u.username, q.public
		ORDER BY q.title, u.username`, term, viewerID)
}

func (s *SQLStore) summaries(ctx context.Context, query string, args ...any) ([]Summary, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Summary{}
	for rows.Next() {
		var sm Summary
		if err := rows.Scan(&sm.ID, &sm.Title, &sm.Author, &sm.Public, &sm.QuestionCount); err != nil {
			return nil, err
		}
		out = append(out, sm)
	}
	return out, rows.Err()
}

func (s *SQLStore) CreateUser(ctx context.Context, username, password string) (User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return User{}, ErrMissingCredentials
	}
	_, err := s.UserByName(ctx, username)
	switch {
	case err == nil:
		return User{}, ErrUsernameTaken
	case !errors.Is(err, ErrNotFound):
		return User{}, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return User{}, err
	}
	u := User{ID: uuid.NewString(), Username: username}
	if err := s.insertUser(ctx, u, hash); err != nil {
		return User{}, err
	}
	return u, nil
}

// insertUser maps a unique violation to ErrUsernameTaken. The lookup in
// CreateUser can lose a race with a concurrent registration.
func (s *SQLStore) insertUser(ctx context.Context, u User, hash []byte) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO users (id,username,password_hash,created_at)
		VALUES ($1,$2,$3,$4)`, u.ID, u.Username, string(hash), time.Now().Unix())
	if isUniqueViolation(err) {
		return ErrUsernameTaken
	}
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if errors.As(err, &se) {
		return se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE || se.Code() == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	var pe *pgconn.PgError
	if errors.As(err, &pe) {
		return pe.Code == pgUniqueViolation
	}
	return false
}

func (s *SQLStore) UserByName(ctx context.Context, username string) (User, error) {
	var u User
	err := s.db.QueryRowContext(ctx, `SELECT id,username FROM users WHERE username=$1`,
		strings.TrimSpace(username)).Scan(&u.ID, &u.Username)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrNotFound
	}
	return u, err
}

func (s *SQLStore) Authenticate(ctx context.Context, username, password string) (User, error) {
	var u User
	var hash string
	err := s.db.QueryRowContext(ctx, `SELECT id,username,password_hash FROM users WHERE username=$1`,
		strings.TrimSpace(username)).Scan(&u.ID, &u.Username, &hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrBadCredentials
		}
		return User{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return User{}, ErrBadCredentials
	}
	return u, nil
}
