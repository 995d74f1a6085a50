package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/vigilance-service/internal/domain"
)

// ReportRepository defines persistence access for violation reports.
type ReportRepository interface {
	Create(ctx context.Context, report *domain.Report) error
	ListByUser(ctx context.Context, userID int64) ([]domain.Report, error)
	GetByID(ctx context.Context, id int64) (*domain.Report, error)
	StatsByUser(ctx context.Context, userID int64) (*domain.ReportStats, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReportStatus) error
}

type reportRepository struct {
	pool *pgxpool.Pool
}

// NewReportRepository returns a Postgres-backed implementation.
func NewReportRepository(pool *pgxpool.Pool) ReportRepository {
	return &reportRepository{pool: pool}
}

func (r *reportRepository) Create(ctx context.Context, report *domain.Report) error {
	const query = `
        INSERT INTO reports (
            user_id, evidence_path, vehicle_type, vehicle_number,
            vehicle_model, date_time, issue_type, location,
            latitude, longitude, additional_details, status
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		report.UserID,
		report.EvidencePath,
		report.VehicleType,
		report.VehicleNumber,
		report.VehicleModel,
		report.DateTime,
		report.IssueType,
		report.Location,
		report.Latitude,
		report.Longitude,
		report.AdditionalDetails,
		report.Status,
	).Scan(&report.ID, &report.CreatedAt)
}

func (r *reportRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Report, error) {
	const query = `
        SELECT id, user_id, evidence_path, vehicle_type, vehicle_number,
               vehicle_model, date_time, issue_type, location,
               latitude, longitude, additional_details, status, created_at
        FROM reports WHERE user_id=$1
        ORDER BY created_at DESC, id DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reports := []domain.Report{}
	for rows.Next() {
		var report domain.Report
		if err := rows.Scan(
			&report.ID,
			&report.UserID,
			&report.EvidencePath,
			&report.VehicleType,
			&report.VehicleNumber,
			&report.VehicleModel,
			&report.DateTime,
			&report.IssueType,
			&report.Location,
			&report.Latitude,
			&report.Longitude,
			&report.AdditionalDetails,
			&report.Status,
			&report.CreatedAt,
		); err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, rows.Err()
}

func (r *reportRepository) GetByID(ctx context.Context, id int64) (*domain.Report, error) {
	const query = `
        SELECT id, user_id, evidence_path, vehicle_type, vehicle_number,
               vehicle_model, date_time, issue_type, location,
               latitude, longitude, additional_details, status, created_at
        FROM reports WHERE id=$1`

	var report domain.Report
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&report.ID,
		&report.UserID,
		&report.EvidencePath,
		&report.VehicleType,
		&report.VehicleNumber,
		&report.VehicleModel,
		&report.DateTime,
		&report.IssueType,
		&report.Location,
		&report.Latitude,
		&report.Longitude,
		&report.AdditionalDetails,
		&report.Status,
		&report.CreatedAt,
	); err != nil {
		return nil, translateErr(err)
	}
	return &report, nil
}

func (r *reportRepository) StatsByUser(ctx context.Context, userID int64) (*domain.ReportStats, error) {
	const query = `
        SELECT
            COUNT(*),
            COUNT(*) FILTER (WHERE status = 'Completed'),
            COUNT(*) FILTER (WHERE status = 'In Progress'),
            COUNT(*) FILTER (WHERE status = 'Rejected')
        FROM reports WHERE user_id=$1`

	var stats domain.ReportStats
	if err := r.pool.QueryRow(ctx, query, userID).Scan(
		&stats.Total,
		&stats.Completed,
		&stats.InProgress,
		&stats.Rejected,
	); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *reportRepository) UpdateStatus(ctx context.Context, id int64, status domain.ReportStatus) error {
	const query = `UPDATE reports SET status=$1 WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
