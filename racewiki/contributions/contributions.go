package contributions

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store interface {
	Create(ctx context.Context, req *CreateRequest) (*Contribution, error)
	List(ctx context.Context, status Status, limit, offset int) ([]Contribution, int, error)
	UpdateStatus(ctx context.Context, id string, status Status) (*Contribution, error)
}

var _ Store = (*Service)(nil)

func New(db *pgxpool.Pool) *Service {
	return &Service{db: db}
}

func (s *Service) Create(ctx context.Context, req *CreateRequest) (*Contribution, error) {
	return scanContribution(s.db.QueryRow(
		ctx,
		queryCreate,
		strings.TrimSpace(req.Title),
		strings.TrimSpace(req.Category),
		normalizeImageURL(req.ImageURL),
		req.Content,
		req.Locale,
		req.SubmittedBy,
	))
}

// lists contributions newest first. an empty status lists everything.
func (s *Service) List(ctx context.Context, status Status, limit, offset int) ([]Contribution, int, error) {
	if status != "" && !status.Valid() {
		return nil, 0, ErrInvalidStatus
	}

	var total int
	if err := s.db.QueryRow(ctx, queryCount, string(status)).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := s.db.Query(ctx, queryList, string(status), limit, offset)
	if err != nil {
		return nil, 0, err
	}

	defer rows.Close()
	contributions := []Contribution{}

	for rows.Next() {
		c, err := scanContribution(rows)
		if err != nil {
			return nil, 0, err
		}

		contributions = append(contributions, *c)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return contributions, total, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id string, status Status) (*Contribution, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	return scanContribution(s.db.QueryRow(ctx, queryUpdateStatus, id, string(status)))
}

func scanContribution(row pgx.Row) (*Contribution, error) {
	var c Contribution
	var status string

	err := row.Scan(
		&c.ID,
		&c.Title,
		&c.Category,
		&c.ImageURL,
		&c.Content,
		&c.Locale,
		&c.SubmittedBy,
		&status,
		&c.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrContributionNotFound
	}

	if err != nil {
		return nil, err
	}

	c.Status = Status(status)

	return &c, nil
}

func normalizeImageURL(url *string) *string {
	if url == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*url)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
