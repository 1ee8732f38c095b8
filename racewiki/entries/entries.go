package entries

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"
)

// postgres unique_violation
const uniqueViolation = "23505"

var _ Store = (*Repository)(nil)

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// returns entries whose cosine similarity to vector exceeds threshold, most similar first
func (r *Repository) FindBySimilarity(
	ctx context.Context,
	vector []float32,
	threshold float32,
	limit int,
) ([]ScoredEntry, error) {
	rows, err := r.db.Query(ctx, queryFindBySimilarity, pgvector.NewVector(vector), threshold, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to execute similarity query: %w", err)
	}

	defer rows.Close()

	var results []ScoredEntry

	for rows.Next() {
		var s ScoredEntry
		var category string

		err := rows.Scan(
			&s.ID,
			&s.Title,
			&s.Slug,
			&category,
			&s.Content,
			&s.ImageURL,
			&s.UpdatedAt,
			&s.HasEmbedding,
			&s.Similarity,
		)

		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		s.Category = Category(category)
		results = append(results, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return results, nil
}

// returns entries where any of fields contains substring, ignoring case
func (r *Repository) FindByPattern(ctx context.Context, fields []Field, substring string, limit int) ([]Entry, error) {
	where, err := patternPredicate(fields)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(queryFindByPatternTemplate, where)

	rows, err := r.db.Query(ctx, query, "%"+escapeLike(substring)+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to execute pattern query: %w", err)
	}

	return collectEntries(rows)
}

// returns every entry holding exactly this slug
func (r *Repository) FindBySlug(ctx context.Context, slug string) ([]Entry, error) {
	rows, err := r.db.Query(ctx, queryFindBySlug, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to execute slug query: %w", err)
	}

	return collectEntries(rows)
}

func (r *Repository) Get(ctx context.Context, id string) (*Entry, error) {
	return scanEntry(r.db.QueryRow(ctx, queryGet, id))
}

func (r *Repository) GetBySlug(ctx context.Context, slug string) (*Entry, error) {
	return scanEntry(r.db.QueryRow(ctx, queryFindBySlug, slug))
}

// returns one page of entries, newest first, and the total matching count
func (r *Repository) List(ctx context.Context, params ListParams) ([]Entry, int, error) {
	category := string(params.Category)

	var total int
	if err := r.db.QueryRow(ctx, queryCount, category).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, queryList, category, params.Limit, params.Offset)
	if err != nil {
		return nil, 0, err
	}

	list, err := collectEntries(rows)
	if err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *Repository) Create(ctx context.Context, draft Draft) (*Entry, error) {
	entry, err := scanEntry(r.db.QueryRow(
		ctx,
		queryCreate,
		draft.Title,
		draft.Slug,
		string(draft.Category),
		draft.Content,
		draft.ImageURL,
		vectorArg(draft.Embedding),
	))

	if err != nil {
		return nil, mapWriteError(err)
	}

	return entry, nil
}

func (r *Repository) Update(ctx context.Context, id string, draft Draft) (*Entry, error) {
	entry, err := scanEntry(r.db.QueryRow(
		ctx,
		queryUpdate,
		draft.Title,
		draft.Slug,
		string(draft.Category),
		draft.Content,
		draft.ImageURL,
		vectorArg(draft.Embedding),
		id,
	))

	if err != nil {
		return nil, mapWriteError(err)
	}

	return entry, nil
}

// inserts the draft or overwrites the entry that already holds its slug
func (r *Repository) UpsertBySlug(ctx context.Context, draft Draft) (*Entry, error) {
	return scanEntry(r.db.QueryRow(
		ctx,
		queryUpsertBySlug,
		draft.Title,
		draft.Slug,
		string(draft.Category),
		draft.Content,
		draft.ImageURL,
		vectorArg(draft.Embedding),
	))
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, queryDelete, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return ErrEntryNotFound
	}

	return nil
}

// returns entries that were saved without an embedding
func (r *Repository) ListWithoutEmbedding(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := r.db.Query(ctx, queryListWithoutEmbedding, limit)
	if err != nil {
		return nil, err
	}

	return collectEntries(rows)
}

// sets the embedding vector for an entry without touching updated_at
func (r *Repository) UpdateEmbedding(ctx context.Context, id string, embedding []float32) error {
	result, err := r.db.Exec(ctx, queryUpdateEmbedding, pgvector.NewVector(embedding), id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return ErrEntryNotFound
	}

	return nil
}

func scanEntry(row pgx.Row) (*Entry, error) {
	var e Entry
	var category string

	err := row.Scan(
		&e.ID,
		&e.Title,
		&e.Slug,
		&category,
		&e.Content,
		&e.ImageURL,
		&e.UpdatedAt,
		&e.HasEmbedding,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrEntryNotFound
	}

	if err != nil {
		return nil, err
	}

	e.Category = Category(category)

	return &e, nil
}

func collectEntries(rows pgx.Rows) ([]Entry, error) {
	defer rows.Close()

	var list []Entry

	for rows.Next() {
		var e Entry
		var category string

		err := rows.Scan(
			&e.ID,
			&e.Title,
			&e.Slug,
			&category,
			&e.Content,
			&e.ImageURL,
			&e.UpdatedAt,
			&e.HasEmbedding,
		)

		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		e.Category = Category(category)
		list = append(list, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return list, nil
}

// nil keeps NULL semantics for entries saved without an embedding
func vectorArg(embedding []float32) any {
	if len(embedding) == 0 {
		return nil
	}

	return pgvector.NewVector(embedding)
}

func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", ErrSlugTaken, pgErr.Detail)
	}

	return err
}

func patternPredicate(fields []Field) (string, error) {
	if len(fields) == 0 {
		return "", fmt.Errorf("no fields to match against")
	}

	predicates := make([]string, 0, len(fields))

	for _, f := range fields {
		switch f {
		case FieldTitle, FieldCategory:
			predicates = append(predicates, string(f)+" ILIKE $1")
		default:
			return "", fmt.Errorf("unsupported pattern field: %q", f)
		}
	}

	return strings.Join(predicates, " OR "), nil
}

// escapes LIKE wildcards so user input only ever matches literally
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
