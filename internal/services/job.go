package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"workshop-system/internal/dto"
	"workshop-system/internal/entities"
	"workshop-system/internal/repositories"
	apperrors "workshop-system/pkg/errors"
	"workshop-system/pkg/filestorage"
	"workshop-system/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

type JobServiceInterface interface {
	CreateJob(ctx context.Context, payload dto.CreateJobDTO) (*entities.Job, error)
	GetJobs(ctx context.Context, username, role string, filter utils.JobFilter) ([]entities.Job, uint64, error)
	FindJob(ctx context.Context, id, username, role string) (*entities.Job, error)
	UpdateJob(ctx context.Context, id string, payload dto.UpdateJobDTO, username, role string, force bool) (*entities.Job, error)
	AddPhoto(ctx context.Context, id, username, role string, file io.Reader, filename string) (*entities.Job, error)
	DeleteJob(ctx context.Context, id string) error
}

type JobService struct {
	jobRepo     repositories.JobRepositoryInterface
	userRepo    repositories.UserRepositoryInterface
	txManager   repositories.TxManagerInterface
	fileStorage filestorage.FileStorageInterface
	logger      *zap.Logger
}

func NewJobService(
	jobRepo repositories.JobRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	txManager repositories.TxManagerInterface,
	fileStorage filestorage.FileStorageInterface,
	logger *zap.Logger,
) JobServiceInterface {
	return &JobService{
		jobRepo:     jobRepo,
		userRepo:    userRepo,
		txManager:   txManager,
		fileStorage: fileStorage,
		logger:      logger,
	}
}

// verifyMechanic ensures the username belongs to an existing mechanic
// before a job is attached to it.
func (s *JobService) verifyMechanic(ctx context.Context, username string) error {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return apperrors.ErrUnknownMechanic
		}
		return err
	}
	if user.Role != entities.RoleMechanic {
		return apperrors.NewInvalidInputError("user %q is not a mechanic", username)
	}
	return nil
}

func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.NewInvalidInputError("invalid date %q, expected YYYY-MM-DD", value)
	}
	return t, nil
}

func (s *JobService) CreateJob(ctx context.Context, payload dto.CreateJobDTO) (*entities.Job, error) {
	if err := s.verifyMechanic(ctx, payload.AssignedMechanic); err != nil {
		return nil, err
	}

	entryDate, err := parseDate(payload.EntryDate)
	if err != nil {
		return nil, err
	}
	estimatedDelivery, err := parseDate(payload.EstimatedDelivery)
	if err != nil {
		return nil, err
	}

	job := &entities.Job{
		ID:                 uuid.NewString(),
		CustomerName:       payload.CustomerName,
		ContactNumber:      payload.ContactNumber,
		CarBrand:           payload.CarBrand,
		CarModel:           payload.CarModel,
		Year:               payload.Year,
		RegistrationNumber: strings.ToUpper(payload.RegistrationNumber),
		VIN:                upperPtr(payload.VIN),
		Kms:                payload.Kms,
		EntryDate:          entryDate,
		EstimatedDelivery:  estimatedDelivery,
		AssignedMechanic:   payload.AssignedMechanic,
		WorkDescription:    payload.WorkDescription,
		Status:             entities.StatusPending,
		Photos:             []string{},
		InvoiceAmount:      payload.InvoiceAmount,
	}

	created, err := s.jobRepo.CreateJob(ctx, job)
	if err != nil {
		s.logger.Error("failed to create job", zap.Error(err), zap.String("customer", payload.CustomerName))
		return nil, err
	}

	s.logger.Info("job created",
		zap.String("job_id", created.ID),
		zap.String("mechanic", created.AssignedMechanic))
	return created, nil
}

func (s *JobService) GetJobs(ctx context.Context, username, role string, filter utils.JobFilter) ([]entities.Job, uint64, error) {
	mechanicScope := ""
	if role == entities.RoleMechanic {
		mechanicScope = username
	}
	return s.jobRepo.GetJobs(ctx, mechanicScope, filter)
}

func (s *JobService) FindJob(ctx context.Context, id, username, role string) (*entities.Job, error) {
	job, err := s.jobRepo.FindJob(ctx, id)
	if err != nil {
		return nil, err
	}
	if role == entities.RoleMechanic && job.AssignedMechanic != username {
		return nil, apperrors.ErrForbidden
	}
	return job, nil
}

// Mechanics may only touch status, notes and confirm_complete on a job
// assigned to them. Everything else is manager territory.
func mechanicTouchesForbiddenFields(payload dto.UpdateJobDTO) bool {
	return payload.CustomerName != nil ||
		payload.ContactNumber != nil ||
		payload.CarBrand != nil ||
		payload.CarModel != nil ||
		payload.Year != nil ||
		payload.RegistrationNumber != nil ||
		payload.VIN != nil ||
		payload.Kms != nil ||
		payload.EntryDate != nil ||
		payload.AssignedMechanic != nil ||
		payload.WorkDescription != nil ||
		payload.EstimatedDelivery != nil ||
		payload.InvoiceAmount != nil
}

func (s *JobService) UpdateJob(ctx context.Context, id string, payload dto.UpdateJobDTO, username, role string, force bool) (*entities.Job, error) {
	var updated *entities.Job

	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		job, err := s.jobRepo.FindJobInTx(ctx, tx, id)
		if err != nil {
			return err
		}

		if role == entities.RoleMechanic {
			if job.AssignedMechanic != username {
				return apperrors.ErrForbidden
			}
			if mechanicTouchesForbiddenFields(payload) {
				return apperrors.ErrForbidden
			}
		}

		sets, err := s.buildJobSets(ctx, job, payload, role, force)
		if err != nil {
			return err
		}
		if len(sets) == 0 {
			updated = job
			return nil
		}

		updated, err = s.jobRepo.UpdateJobInTx(ctx, tx, id, sets)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// buildJobSets translates the patch into column assignments, enforcing
// the status lifecycle and keeping completion_date in step with it.
func (s *JobService) buildJobSets(ctx context.Context, job *entities.Job, payload dto.UpdateJobDTO, role string, force bool) (map[string]interface{}, error) {
	sets := map[string]interface{}{}

	if payload.CustomerName != nil {
		sets["customer_name"] = *payload.CustomerName
	}
	if payload.ContactNumber != nil {
		sets["contact_number"] = *payload.ContactNumber
	}
	if payload.CarBrand != nil {
		sets["car_brand"] = *payload.CarBrand
	}
	if payload.CarModel != nil {
		sets["car_model"] = *payload.CarModel
	}
	if payload.Year != nil {
		sets["year"] = *payload.Year
	}
	if payload.RegistrationNumber != nil {
		sets["registration_number"] = strings.ToUpper(*payload.RegistrationNumber)
	}
	if payload.VIN != nil {
		sets["vin"] = strings.ToUpper(*payload.VIN)
	}
	if payload.Kms != nil {
		sets["kms"] = *payload.Kms
	}
	if payload.EntryDate != nil {
		entryDate, err := parseDate(*payload.EntryDate)
		if err != nil {
			return nil, err
		}
		sets["entry_date"] = entryDate
	}
	if payload.EstimatedDelivery != nil {
		estimatedDelivery, err := parseDate(*payload.EstimatedDelivery)
		if err != nil {
			return nil, err
		}
		sets["estimated_delivery"] = estimatedDelivery
	}
	if payload.AssignedMechanic != nil && *payload.AssignedMechanic != job.AssignedMechanic {
		if err := s.verifyMechanic(ctx, *payload.AssignedMechanic); err != nil {
			return nil, err
		}
		sets["assigned_mechanic"] = *payload.AssignedMechanic
	}
	if payload.WorkDescription != nil {
		sets["work_description"] = *payload.WorkDescription
	}
	if payload.InvoiceAmount != nil {
		sets["invoice_amount"] = *payload.InvoiceAmount
	}
	if payload.ConfirmComplete != nil {
		sets["confirm_complete"] = *payload.ConfirmComplete
	}

	// Identical notes are a no-op so repeated saves do not churn updated_at.
	if payload.Notes != nil && utils.DiffPtr(job.Notes, payload.Notes) {
		sets["notes"] = *payload.Notes
	}

	if payload.Status != nil {
		target := entities.JobStatus(*payload.Status)
		if err := CanTransition(job.Status, target, role, force); err != nil {
			return nil, err
		}
		if target != job.Status {
			sets["status"] = string(target)
			if target == entities.StatusDone {
				sets["completion_date"] = time.Now()
			} else if target.IsActive() && job.CompletionDate != nil {
				// Forced back into active work: the old completion stamp no
				// longer describes the job.
				sets["completion_date"] = nil
			}
		}
	}

	return sets, nil
}

func (s *JobService) AddPhoto(ctx context.Context, id, username, role string, file io.Reader, filename string) (*entities.Job, error) {
	job, err := s.FindJob(ctx, id, username, role)
	if err != nil {
		return nil, err
	}

	photoURL, err := s.fileStorage.Save(file, filename, "jobs")
	if err != nil {
		s.logger.Error("failed to store job photo", zap.Error(err), zap.String("job_id", id))
		return nil, err
	}

	if err := s.jobRepo.AppendPhoto(ctx, id, photoURL); err != nil {
		// The row vanished between the lookup and the append; drop the orphan.
		if delErr := s.fileStorage.Delete(photoURL); delErr != nil {
			s.logger.Warn("failed to remove orphaned photo", zap.Error(delErr), zap.String("url", photoURL))
		}
		return nil, err
	}

	job.Photos = append(job.Photos, photoURL)
	return job, nil
}

func (s *JobService) DeleteJob(ctx context.Context, id string) error {
	job, err := s.jobRepo.FindJob(ctx, id)
	if err != nil {
		return err
	}
	if err := s.jobRepo.DeleteJob(ctx, id); err != nil {
		return err
	}
	for _, photoURL := range job.Photos {
		if delErr := s.fileStorage.Delete(photoURL); delErr != nil {
			s.logger.Warn("failed to delete job photo file", zap.Error(delErr), zap.String("url", photoURL))
		}
	}
	return nil
}

func upperPtr(v *string) *string {
	if v == nil {
		return nil
	}
	upper := strings.ToUpper(*v)
	return &upper
}
