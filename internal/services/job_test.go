package services

import (
	"context"
	"testing"
	"time"

	"workshop-system/internal/dto"
	"workshop-system/internal/entities"
	apperrors "workshop-system/pkg/errors"
	"workshop-system/pkg/utils"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeJobRepo struct {
	jobs map[string]*entities.Job
}

func newFakeJobRepo(jobs ...*entities.Job) *fakeJobRepo {
	m := map[string]*entities.Job{}
	for _, j := range jobs {
		m[j.ID] = j
	}
	return &fakeJobRepo{jobs: m}
}

func (f *fakeJobRepo) GetJobs(_ context.Context, mechanicUsername string, filter utils.JobFilter) ([]entities.Job, uint64, error) {
	out := []entities.Job{}
	for _, j := range f.jobs {
		if mechanicUsername != "" && j.AssignedMechanic != mechanicUsername {
			continue
		}
		out = append(out, *j)
	}
	out = FilterJobs(out, filter.Status, filter.Search)
	return out, uint64(len(out)), nil
}

func (f *fakeJobRepo) FindJob(_ context.Context, id string) (*entities.Job, error) {
	job, ok := f.jobs[id]
	if !ok {
		return nil, apperrors.ErrJobNotFound
	}
	copied := *job
	return &copied, nil
}

func (f *fakeJobRepo) FindJobInTx(ctx context.Context, _ pgx.Tx, id string) (*entities.Job, error) {
	return f.FindJob(ctx, id)
}

func (f *fakeJobRepo) CreateJob(_ context.Context, job *entities.Job) (*entities.Job, error) {
	copied := *job
	copied.CreatedAt = time.Now()
	f.jobs[job.ID] = &copied
	return &copied, nil
}

func (f *fakeJobRepo) UpdateJob(_ context.Context, id string, sets map[string]interface{}) (*entities.Job, error) {
	job, ok := f.jobs[id]
	if !ok {
		return nil, apperrors.ErrJobNotFound
	}
	applyJobSets(job, sets)
	copied := *job
	return &copied, nil
}

func (f *fakeJobRepo) UpdateJobInTx(ctx context.Context, _ pgx.Tx, id string, sets map[string]interface{}) (*entities.Job, error) {
	return f.UpdateJob(ctx, id, sets)
}

func (f *fakeJobRepo) AppendPhoto(_ context.Context, id string, photoURL string) error {
	job, ok := f.jobs[id]
	if !ok {
		return apperrors.ErrJobNotFound
	}
	job.Photos = append(job.Photos, photoURL)
	return nil
}

func (f *fakeJobRepo) DeleteJob(_ context.Context, id string) error {
	if _, ok := f.jobs[id]; !ok {
		return apperrors.ErrJobNotFound
	}
	delete(f.jobs, id)
	return nil
}

func applyJobSets(job *entities.Job, sets map[string]interface{}) {
	for column, value := range sets {
		switch column {
		case "status":
			job.Status = entities.JobStatus(value.(string))
		case "notes":
			v := value.(string)
			job.Notes = &v
		case "confirm_complete":
			job.ConfirmComplete = value.(bool)
		case "completion_date":
			if value == nil {
				job.CompletionDate = nil
			} else {
				t := value.(time.Time)
				job.CompletionDate = &t
			}
		case "assigned_mechanic":
			job.AssignedMechanic = value.(string)
		case "invoice_amount":
			v := value.(float64)
			job.InvoiceAmount = &v
		}
	}
}

type fakeUserRepo struct {
	users map[string]*entities.User
}

func (f *fakeUserRepo) FindUserByID(_ context.Context, id uint64) (*entities.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserRepo) FindUserByUsername(_ context.Context, username string) (*entities.User, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetUsersByRole(_ context.Context, role string) ([]entities.User, error) {
	out := []entities.User{}
	for _, u := range f.users {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *entities.User) (*entities.User, error) {
	if _, ok := f.users[user.Username]; ok {
		return nil, apperrors.ErrConflict
	}
	f.users[user.Username] = user
	return user, nil
}

type fakeTxManager struct{}

func (fakeTxManager) RunInTransaction(_ context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

func newTestJobService(jobRepo *fakeJobRepo, userRepo *fakeUserRepo) JobServiceInterface {
	return NewJobService(jobRepo, userRepo, fakeTxManager{}, nil, zap.NewNop())
}

func mechanicUsers() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entities.User{
		"rudhan": {ID: 2, Username: "rudhan", Role: entities.RoleMechanic, FullName: "Rudhan K"},
		"admin":  {ID: 1, Username: "admin", Role: entities.RoleManager, FullName: "Workshop Manager"},
	}}
}

func pendingJob(id, mechanic string) *entities.Job {
	return &entities.Job{
		ID:                 id,
		CustomerName:       "Arjun Menon",
		ContactNumber:      "+91 98400 12345",
		CarBrand:           "Hyundai",
		CarModel:           "Creta",
		Year:               2021,
		RegistrationNumber: "TN-10-AB-1234",
		EntryDate:          time.Now(),
		EstimatedDelivery:  time.Now().Add(72 * time.Hour),
		AssignedMechanic:   mechanic,
		WorkDescription:    "Stage 1 remap",
		Status:             entities.StatusPending,
		Photos:             []string{},
	}
}

func TestCreateJob_UnknownMechanicRejected(t *testing.T) {
	svc := newTestJobService(newFakeJobRepo(), mechanicUsers())

	_, err := svc.CreateJob(context.Background(), dto.CreateJobDTO{
		CustomerName:       "Arjun Menon",
		ContactNumber:      "+91 98400 12345",
		CarBrand:           "Hyundai",
		CarModel:           "Creta",
		Year:               2021,
		RegistrationNumber: "tn-10-ab-1234",
		EntryDate:          "2026-08-01",
		EstimatedDelivery:  "2026-08-10",
		AssignedMechanic:   "nobody",
		WorkDescription:    "Stage 1 remap",
	})
	assert.ErrorIs(t, err, apperrors.ErrUnknownMechanic)
}

func TestCreateJob_NormalizesAndDefaults(t *testing.T) {
	repo := newFakeJobRepo()
	svc := newTestJobService(repo, mechanicUsers())

	vin := "malbb51rlhm123456"
	created, err := svc.CreateJob(context.Background(), dto.CreateJobDTO{
		CustomerName:       "Arjun Menon",
		ContactNumber:      "+91 98400 12345",
		CarBrand:           "Hyundai",
		CarModel:           "Creta",
		Year:               2021,
		RegistrationNumber: "tn-10-ab-1234",
		VIN:                &vin,
		EntryDate:          "2026-08-01",
		EstimatedDelivery:  "2026-08-10",
		AssignedMechanic:   "rudhan",
		WorkDescription:    "Stage 1 remap",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, entities.StatusPending, created.Status)
	assert.Equal(t, "TN-10-AB-1234", created.RegistrationNumber)
	require.NotNil(t, created.VIN)
	assert.Equal(t, "MALBB51RLHM123456", *created.VIN)
	assert.Empty(t, created.Photos)
}

func TestUpdateJob_MechanicCannotTouchManagerFields(t *testing.T) {
	repo := newFakeJobRepo(pendingJob("job-1", "rudhan"))
	svc := newTestJobService(repo, mechanicUsers())

	name := "Someone Else"
	_, err := svc.UpdateJob(context.Background(), "job-1",
		dto.UpdateJobDTO{CustomerName: &name}, "rudhan", entities.RoleMechanic, false)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestUpdateJob_MechanicCannotTouchOthersJobs(t *testing.T) {
	repo := newFakeJobRepo(pendingJob("job-1", "suresh"))
	svc := newTestJobService(repo, mechanicUsers())

	status := string(entities.StatusInProgress)
	_, err := svc.UpdateJob(context.Background(), "job-1",
		dto.UpdateJobDTO{Status: &status}, "rudhan", entities.RoleMechanic, false)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestUpdateJob_CompletionDateFollowsStatus(t *testing.T) {
	job := pendingJob("job-1", "rudhan")
	job.Status = entities.StatusInProgress
	repo := newFakeJobRepo(job)
	svc := newTestJobService(repo, mechanicUsers())

	status := string(entities.StatusDone)
	updated, err := svc.UpdateJob(context.Background(), "job-1",
		dto.UpdateJobDTO{Status: &status}, "rudhan", entities.RoleMechanic, false)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusDone, updated.Status)
	require.NotNil(t, updated.CompletionDate)

	// A manager forcing the job back into work clears the stamp.
	back := string(entities.StatusInProgress)
	reverted, err := svc.UpdateJob(context.Background(), "job-1",
		dto.UpdateJobDTO{Status: &back}, "admin", entities.RoleManager, true)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusInProgress, reverted.Status)
	assert.Nil(t, reverted.CompletionDate)
}

func TestUpdateJob_StatusSkipRejected(t *testing.T) {
	repo := newFakeJobRepo(pendingJob("job-1", "rudhan"))
	svc := newTestJobService(repo, mechanicUsers())

	status := string(entities.StatusDone)
	_, err := svc.UpdateJob(context.Background(), "job-1",
		dto.UpdateJobDTO{Status: &status}, "rudhan", entities.RoleMechanic, false)

	var inputErr *apperrors.InvalidInputError
	assert.ErrorAs(t, err, &inputErr)
}

func TestUpdateJob_IdenticalNotesAreNoOp(t *testing.T) {
	job := pendingJob("job-1", "rudhan")
	notes := "waiting on parts"
	job.Notes = &notes
	before := job.UpdatedAt
	repo := newFakeJobRepo(job)
	svc := newTestJobService(repo, mechanicUsers())

	updated, err := svc.UpdateJob(context.Background(), "job-1",
		dto.UpdateJobDTO{Notes: &notes}, "rudhan", entities.RoleMechanic, false)
	require.NoError(t, err)
	assert.Equal(t, before, updated.UpdatedAt)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, notes, *updated.Notes)
}

func TestUpdateJob_NotesSetWhenPreviouslyEmpty(t *testing.T) {
	repo := newFakeJobRepo(pendingJob("job-1", "rudhan"))
	svc := newTestJobService(repo, mechanicUsers())

	notes := "waiting on parts"
	updated, err := svc.UpdateJob(context.Background(), "job-1",
		dto.UpdateJobDTO{Notes: &notes}, "rudhan", entities.RoleMechanic, false)
	require.NoError(t, err)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, notes, *updated.Notes)
}

func TestUpdateJob_ReassignToUnknownMechanicRejected(t *testing.T) {
	repo := newFakeJobRepo(pendingJob("job-1", "rudhan"))
	svc := newTestJobService(repo, mechanicUsers())

	mechanic := "ghost"
	_, err := svc.UpdateJob(context.Background(), "job-1",
		dto.UpdateJobDTO{AssignedMechanic: &mechanic}, "admin", entities.RoleManager, false)
	assert.ErrorIs(t, err, apperrors.ErrUnknownMechanic)
}

func TestFindJob_MechanicScoping(t *testing.T) {
	repo := newFakeJobRepo(pendingJob("job-1", "suresh"))
	svc := newTestJobService(repo, mechanicUsers())

	_, err := svc.FindJob(context.Background(), "job-1", "rudhan", entities.RoleMechanic)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	job, err := svc.FindJob(context.Background(), "job-1", "admin", entities.RoleManager)
	require.NoError(t, err)
	assert.Equal(t, "job-1", job.ID)
}
