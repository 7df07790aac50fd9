// Package db wraps the Postgres access layer for articles and sessions.
package db

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Store wraps database access helpers.
type Store struct {
	pool *pgxpool.Pool
}

// New creates a Store backed by a pgx pool.
func New(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

// Close releases the pool resources.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Article represents a stored article record.
type Article struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Excerpt   string    `json:"excerpt"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	Author    string    `json:"author"`
	ImageURL  *string   `json:"image_url,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const articleColumns = `id, title, excerpt, content, category, author, image_url, status, created_at, updated_at`

const listArticlesSQL = `
    SELECT ` + articleColumns + `
    FROM articles
`

// ListArticles returns articles newest first, optionally restricted to
// published ones.
func (s *Store) ListArticles(ctx context.Context, onlyPublished bool) ([]Article, error) {
	sql := listArticlesSQL
	args := []any{}
	if onlyPublished {
		sql += " WHERE status = $1"
		args = append(args, "published")
	}
	sql += " ORDER BY created_at DESC"

	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	articles := make([]Article, 0)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

const getArticleSQL = `
    SELECT ` + articleColumns + `
    FROM articles
    WHERE id = $1
`

// GetArticle returns one article by id, or ErrNotFound.
func (s *Store) GetArticle(ctx context.Context, id string) (Article, error) {
	row := s.pool.QueryRow(ctx, getArticleSQL, id)
	a, err := scanArticle(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Article{}, ErrNotFound
	}
	return a, err
}

// NewArticle holds the validated fields for an insert.
type NewArticle struct {
	Title    string
	Excerpt  string
	Content  string
	Category string
	Author   string
	ImageURL *string
	Status   string
}

const createArticleSQL = `
    INSERT INTO articles (title, excerpt, content, category, author, image_url, status)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING ` + articleColumns

// CreateArticle inserts a new article and returns the stored record.
func (s *Store) CreateArticle(ctx context.Context, in NewArticle) (Article, error) {
	if in.Status == "" {
		in.Status = "draft"
	}
	row := s.pool.QueryRow(ctx, createArticleSQL,
		in.Title, in.Excerpt, in.Content, in.Category, in.Author, in.ImageURL, in.Status)
	return scanArticle(row)
}

// ArticlePatch holds the optional fields of a partial update. Nil fields are
// left untouched.
type ArticlePatch struct {
	Title    *string
	Excerpt  *string
	Content  *string
	Category *string
	Author   *string
	ImageURL *string
	Status   *string
}

// UpdateArticle applies a partial update and returns the stored record, or
// ErrNotFound when the id does not exist. updated_at is always bumped.
func (s *Store) UpdateArticle(ctx context.Context, id string, patch ArticlePatch) (Article, error) {
	set := "updated_at = NOW()"
	args := []any{id}
	argPos := 2

	assign := func(column string, value *string) {
		if value == nil {
			return
		}
		set += ", " + column + " = $" + strconv.Itoa(argPos)
		args = append(args, *value)
		argPos++
	}
	assign("title", patch.Title)
	assign("excerpt", patch.Excerpt)
	assign("content", patch.Content)
	assign("category", patch.Category)
	assign("author", patch.Author)
	assign("image_url", patch.ImageURL)
	assign("status", patch.Status)

	sql := "UPDATE articles SET " + set + " WHERE id = $1 RETURNING " + articleColumns

	row := s.pool.QueryRow(ctx, sql, args...)
	a, err := scanArticle(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Article{}, ErrNotFound
	}
	return a, err
}

const deleteArticleSQL = `
    DELETE FROM articles
    WHERE id = $1
`

// DeleteArticle removes an article, or returns ErrNotFound.
func (s *Store) DeleteArticle(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, deleteArticleSQL, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanArticle(row pgx.Row) (Article, error) {
	var a Article
	err := row.Scan(
		&a.ID,
		&a.Title,
		&a.Excerpt,
		&a.Content,
		&a.Category,
		&a.Author,
		&a.ImageURL,
		&a.Status,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}
