package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"steady-compass/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel/trace"
)

type PgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const checkInSchema = `
CREATE TABLE IF NOT EXISTS check_ins (
    id BIGSERIAL PRIMARY KEY,
    user_id TEXT NOT NULL,
    description TEXT NOT NULL,
    occurred_at TIMESTAMPTZ NOT NULL,
    stress_level TEXT NOT NULL,
    stress_score DOUBLE PRECISION NOT NULL,
    dimension TEXT NOT NULL,
    emotion_type TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_check_ins_user_occurred
    ON check_ins (user_id, occurred_at DESC);
`

type CheckInRepository struct {
	pool   PgxPool
	tracer trace.Tracer
}

func NewCheckInRepository(pool PgxPool, tracer trace.Tracer) *CheckInRepository {
	return &CheckInRepository{pool: pool, tracer: tracer}
}

func (r *CheckInRepository) RunMigrations(ctx context.Context) error {
	_, span := r.tracer.Start(ctx, "checkin-repo.run-migrations")
	defer span.End()

	if _, err := r.pool.Exec(ctx, checkInSchema); err != nil {
		return fmt.Errorf("apply check-in schema: %w", err)
	}
	return nil
}

func (r *CheckInRepository) InsertCheckIn(ctx context.Context, checkIn domain.CheckIn) (domain.CheckIn, error) {
	_, span := r.tracer.Start(ctx, "checkin-repo.insert-check-in")
	defer span.End()

	row := r.pool.QueryRow(ctx,
		`INSERT INTO check_ins (user_id, description, occurred_at, stress_level, stress_score, dimension, emotion_type)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		checkIn.UserID,
		checkIn.Description,
		checkIn.OccurredAt.UTC(),
		string(checkIn.StressLevel),
		checkIn.StressScore,
		checkIn.Dimension,
		string(checkIn.EmotionType),
	)
	if err := row.Scan(&checkIn.ID); err != nil {
		return domain.CheckIn{}, err
	}
	return checkIn, nil
}

func (r *CheckInRepository) InsertCheckIns(ctx context.Context, checkIns []domain.CheckIn) error {
	if len(checkIns) == 0 {
		return nil
	}

	_, span := r.tracer.Start(ctx, "checkin-repo.insert-check-ins")
	defer span.End()

	batch := &pgx.Batch{}
	for _, c := range checkIns {
		batch.Queue(
			`INSERT INTO check_ins (user_id, description, occurred_at, stress_level, stress_score, dimension, emotion_type)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			c.UserID, c.Description, c.OccurredAt.UTC(), string(c.StressLevel), c.StressScore, c.Dimension, string(c.EmotionType),
		)
	}

	br := r.pool.SendBatch(ctx, batch)
	defer br.Close()

	for range checkIns {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return nil
}

func (r *CheckInRepository) ListCheckIns(ctx context.Context, filter domain.CheckInFilter) ([]domain.CheckIn, error) {
	_, span := r.tracer.Start(ctx, "checkin-repo.list-check-ins")
	defer span.End()

	args := make([]any, 0, 3)
	var sb strings.Builder
	sb.WriteString(`SELECT id, user_id, description, occurred_at, stress_level, stress_score, dimension, emotion_type
		FROM check_ins
		WHERE 1=1`)

	if filter.UserID != "" {
		args = append(args, filter.UserID)
		sb.WriteString(fmt.Sprintf(" AND user_id = $%d", len(args)))
	}
	if !filter.Since.IsZero() {
		args = append(args, filter.Since.UTC())
		sb.WriteString(fmt.Sprintf(" AND occurred_at >= $%d", len(args)))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	args = append(args, limit)
	sb.WriteString(fmt.Sprintf(" ORDER BY occurred_at DESC LIMIT $%d", len(args)))

	rows, err := r.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	checkIns := make([]domain.CheckIn, 0, limit)
	for rows.Next() {
		var c domain.CheckIn
		var level string
		var emotion string
		var occurredAt time.Time

		if err := rows.Scan(
			&c.ID,
			&c.UserID,
			&c.Description,
			&occurredAt,
			&level,
			&c.StressScore,
			&c.Dimension,
			&emotion,
		); err != nil {
			return nil, err
		}
		c.StressLevel = domain.ParseStressLevel(level)
		c.EmotionType = domain.EmotionType(emotion)
		c.OccurredAt = occurredAt.UTC()
		checkIns = append(checkIns, c)
	}

	return checkIns, rows.Err()
}
