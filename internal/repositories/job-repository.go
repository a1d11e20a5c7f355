package repositories

import (
	"context"
	"errors"
	"time"

	"workshop-system/internal/entities"
	apperrors "workshop-system/pkg/errors"
	"workshop-system/pkg/utils"

	sq "github.com/Masterminds/squirrel"
	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const (
	jobTable  = "jobs"
	jobFields = "id, customer_name, contact_number, car_brand, car_model, year, registration_number, " +
		"vin, kms, entry_date, estimated_delivery, completion_date, assigned_mechanic, work_description, " +
		"notes, status, photos, invoice_amount, confirm_complete, created_at, updated_at"
)

// dbJob mirrors the jobs row; nullable columns scan through null/v8 types.
type dbJob struct {
	ID                 string
	CustomerName       string
	ContactNumber      string
	CarBrand           string
	CarModel           string
	Year               int
	RegistrationNumber string
	VIN                null.String
	Kms                null.Int64
	EntryDate          time.Time
	EstimatedDelivery  time.Time
	CompletionDate     null.Time
	AssignedMechanic   string
	WorkDescription    string
	Notes              null.String
	Status             string
	Photos             []string
	InvoiceAmount      null.Float64
	ConfirmComplete    bool
	CreatedAt          time.Time
	UpdatedAt          null.Time
}

func (db *dbJob) toEntity() *entities.Job {
	return &entities.Job{
		ID:                 db.ID,
		CustomerName:       db.CustomerName,
		ContactNumber:      db.ContactNumber,
		CarBrand:           db.CarBrand,
		CarModel:           db.CarModel,
		Year:               db.Year,
		RegistrationNumber: db.RegistrationNumber,
		VIN:                db.VIN.Ptr(),
		Kms:                db.Kms.Ptr(),
		EntryDate:          db.EntryDate,
		EstimatedDelivery:  db.EstimatedDelivery,
		CompletionDate:     db.CompletionDate.Ptr(),
		AssignedMechanic:   db.AssignedMechanic,
		WorkDescription:    db.WorkDescription,
		Notes:              db.Notes.Ptr(),
		Status:             entities.JobStatus(db.Status),
		Photos:             db.Photos,
		InvoiceAmount:      db.InvoiceAmount.Ptr(),
		ConfirmComplete:    db.ConfirmComplete,
		CreatedAt:          db.CreatedAt,
		UpdatedAt:          db.UpdatedAt.Ptr(),
	}
}

type JobRepositoryInterface interface {
	GetJobs(ctx context.Context, mechanicUsername string, filter utils.JobFilter) ([]entities.Job, uint64, error)
	FindJob(ctx context.Context, id string) (*entities.Job, error)
	FindJobInTx(ctx context.Context, tx pgx.Tx, id string) (*entities.Job, error)
	CreateJob(ctx context.Context, job *entities.Job) (*entities.Job, error)
	UpdateJob(ctx context.Context, id string, sets map[string]interface{}) (*entities.Job, error)
	UpdateJobInTx(ctx context.Context, tx pgx.Tx, id string, sets map[string]interface{}) (*entities.Job, error)
	AppendPhoto(ctx context.Context, id string, photoURL string) error
	DeleteJob(ctx context.Context, id string) error
}

type jobRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewJobRepository(storage *pgxpool.Pool, logger *zap.Logger) JobRepositoryInterface {
	return &jobRepository{storage: storage, logger: logger}
}

func scanJob(row pgx.Row) (*entities.Job, error) {
	var db dbJob
	err := row.Scan(
		&db.ID, &db.CustomerName, &db.ContactNumber, &db.CarBrand, &db.CarModel, &db.Year,
		&db.RegistrationNumber, &db.VIN, &db.Kms, &db.EntryDate, &db.EstimatedDelivery,
		&db.CompletionDate, &db.AssignedMechanic, &db.WorkDescription, &db.Notes, &db.Status,
		&db.Photos, &db.InvoiceAmount, &db.ConfirmComplete, &db.CreatedAt, &db.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, err
	}
	return db.toEntity(), nil
}

// listConditions builds the WHERE clause shared by the list and count
// queries: mechanic scoping, exact status match and a case-insensitive
// substring search across customer name, brand, model and registration.
func listConditions(mechanicUsername string, filter utils.JobFilter) sq.And {
	conditions := sq.And{}
	if mechanicUsername != "" {
		conditions = append(conditions, sq.Eq{"assigned_mechanic": mechanicUsername})
	}
	if filter.Status != "" {
		conditions = append(conditions, sq.Eq{"status": filter.Status})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		conditions = append(conditions, sq.Or{
			sq.ILike{"customer_name": pattern},
			sq.ILike{"car_brand": pattern},
			sq.ILike{"car_model": pattern},
			sq.ILike{"registration_number": pattern},
		})
	}
	return conditions
}

func (r *jobRepository) GetJobs(ctx context.Context, mechanicUsername string, filter utils.JobFilter) ([]entities.Job, uint64, error) {
	conditions := listConditions(mechanicUsername, filter)

	countBuilder := sq.Select("COUNT(*)").From(jobTable).PlaceholderFormat(sq.Dollar)
	if len(conditions) > 0 {
		countBuilder = countBuilder.Where(conditions)
	}
	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Job{}, 0, nil
	}

	listBuilder := sq.Select(jobFields).From(jobTable).
		OrderBy("created_at DESC").
		Limit(filter.Limit).Offset(filter.Offset).
		PlaceholderFormat(sq.Dollar)
	if len(conditions) > 0 {
		listBuilder = listBuilder.Where(conditions)
	}
	query, args, err := listBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	jobs := make([]entities.Job, 0, filter.Limit)
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, *job)
	}
	return jobs, total, rows.Err()
}

func (r *jobRepository) FindJob(ctx context.Context, id string) (*entities.Job, error) {
	return r.findJob(ctx, r.storage, id)
}

func (r *jobRepository) FindJobInTx(ctx context.Context, tx pgx.Tx, id string) (*entities.Job, error) {
	return r.findJob(ctx, tx, id)
}

func (r *jobRepository) findJob(ctx context.Context, q Querier, id string) (*entities.Job, error) {
	query, args, err := sq.Select(jobFields).From(jobTable).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, err
	}
	return scanJob(q.QueryRow(ctx, query, args...))
}

func (r *jobRepository) CreateJob(ctx context.Context, job *entities.Job) (*entities.Job, error) {
	query, args, err := sq.Insert(jobTable).
		Columns("id", "customer_name", "contact_number", "car_brand", "car_model", "year",
			"registration_number", "vin", "kms", "entry_date", "estimated_delivery",
			"assigned_mechanic", "work_description", "notes", "status", "photos", "invoice_amount").
		Values(job.ID, job.CustomerName, job.ContactNumber, job.CarBrand, job.CarModel, job.Year,
			job.RegistrationNumber, null.StringFromPtr(job.VIN), null.Int64FromPtr(job.Kms),
			job.EntryDate, job.EstimatedDelivery, job.AssignedMechanic, job.WorkDescription,
			null.StringFromPtr(job.Notes), string(job.Status), job.Photos,
			null.Float64FromPtr(job.InvoiceAmount)).
		Suffix("RETURNING " + jobFields).
		PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, err
	}

	created, err := scanJob(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return nil, apperrors.ErrConflict
			case "23503":
				return nil, apperrors.ErrUnknownMechanic
			}
		}
		return nil, err
	}
	return created, nil
}

func (r *jobRepository) UpdateJob(ctx context.Context, id string, sets map[string]interface{}) (*entities.Job, error) {
	return r.updateJob(ctx, r.storage, id, sets)
}

func (r *jobRepository) UpdateJobInTx(ctx context.Context, tx pgx.Tx, id string, sets map[string]interface{}) (*entities.Job, error) {
	return r.updateJob(ctx, tx, id, sets)
}

func (r *jobRepository) updateJob(ctx context.Context, q Querier, id string, sets map[string]interface{}) (*entities.Job, error) {
	if len(sets) == 0 {
		return r.findJob(ctx, q, id)
	}
	sets["updated_at"] = sq.Expr("NOW()")

	query, args, err := sq.Update(jobTable).
		SetMap(sets).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + jobFields).
		PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, err
	}

	updated, err := scanJob(q.QueryRow(ctx, query, args...))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, apperrors.ErrUnknownMechanic
		}
		return nil, err
	}
	return updated, nil
}

// AppendPhoto adds one photo reference to the end of the job's photo
// sequence. Existing entries are never reordered or removed.
func (r *jobRepository) AppendPhoto(ctx context.Context, id string, photoURL string) error {
	result, err := r.storage.Exec(ctx,
		"UPDATE jobs SET photos = array_append(photos, $1), updated_at = NOW() WHERE id = $2",
		photoURL, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrJobNotFound
	}
	return nil
}

func (r *jobRepository) DeleteJob(ctx context.Context, id string) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM jobs WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrJobNotFound
	}
	return nil
}
