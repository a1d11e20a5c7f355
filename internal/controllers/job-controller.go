package controllers

import (
	"net/http"
	"strconv"

	"workshop-system/internal/dto"
	"workshop-system/internal/entities"
	"workshop-system/internal/services"
	apperrors "workshop-system/pkg/errors"
	"workshop-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type JobController struct {
	jobService services.JobServiceInterface
	logger     *zap.Logger
}

func NewJobController(jobService services.JobServiceInterface, logger *zap.Logger) *JobController {
	return &JobController{jobService: jobService, logger: logger}
}

func jobToDTO(job *entities.Job) dto.JobDTO {
	out := dto.JobDTO{
		ID:                 job.ID,
		CustomerName:       job.CustomerName,
		ContactNumber:      job.ContactNumber,
		CarBrand:           job.CarBrand,
		CarModel:           job.CarModel,
		Year:               job.Year,
		RegistrationNumber: job.RegistrationNumber,
		VIN:                utils.SafeDeref(job.VIN),
		Kms:                job.Kms,
		EntryDate:          job.EntryDate.Format("2006-01-02"),
		AssignedMechanic:   job.AssignedMechanic,
		WorkDescription:    job.WorkDescription,
		EstimatedDelivery:  job.EstimatedDelivery.Format("2006-01-02"),
		Status:             string(job.Status),
		Photos:             job.Photos,
		InvoiceAmount:      job.InvoiceAmount,
		Notes:              utils.SafeDeref(job.Notes),
		ConfirmComplete:    job.ConfirmComplete,
		CreatedAt:          job.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if out.Photos == nil {
		out.Photos = []string{}
	}
	if job.CompletionDate != nil {
		out.CompletionDate = job.CompletionDate.Format("2006-01-02")
	}
	return out
}

func callerIdentity(ctx echo.Context) (username, role string, err error) {
	reqCtx := ctx.Request().Context()
	username, err = utils.GetUsernameFromCtx(reqCtx)
	if err != nil {
		return "", "", err
	}
	role, err = utils.GetRoleFromCtx(reqCtx)
	if err != nil {
		return "", "", err
	}
	return username, role, nil
}

func (c *JobController) Create(ctx echo.Context) error {
	var payload dto.CreateJobDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	job, err := c.jobService.CreateJob(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, jobToDTO(job), "job created", http.StatusCreated)
}

func (c *JobController) List(ctx echo.Context) error {
	username, role, err := callerIdentity(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	filter := utils.ParseJobFilterFromQuery(ctx.QueryParams())
	jobs, total, err := c.jobService.GetJobs(ctx.Request().Context(), username, role, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	list := make([]dto.JobDTO, 0, len(jobs))
	for i := range jobs {
		list = append(list, jobToDTO(&jobs[i]))
	}
	return utils.SuccessResponse(ctx, list, "jobs list", http.StatusOK, total)
}

func (c *JobController) Get(ctx echo.Context) error {
	username, role, err := callerIdentity(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	job, err := c.jobService.FindJob(ctx.Request().Context(), ctx.Param("id"), username, role)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, jobToDTO(job), "job details", http.StatusOK)
}

func (c *JobController) Update(ctx echo.Context) error {
	username, role, err := callerIdentity(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateJobDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	force, _ := strconv.ParseBool(ctx.QueryParam("force"))
	job, err := c.jobService.UpdateJob(ctx.Request().Context(), ctx.Param("id"), payload, username, role, force)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, jobToDTO(job), "job updated", http.StatusOK)
}

func (c *JobController) UploadPhoto(ctx echo.Context) error {
	username, role, err := callerIdentity(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	fileHeader, err := ctx.FormFile("photo")
	if err != nil {
		return utils.ErrorResponse(ctx, apperrorBadUpload(err), c.logger)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	defer file.Close()

	if err := utils.ValidateFile(fileHeader, file, "job_photo"); err != nil {
		return utils.ErrorResponse(ctx, apperrorBadUpload(err), c.logger)
	}

	job, err := c.jobService.AddPhoto(ctx.Request().Context(), ctx.Param("id"), username, role, file, fileHeader.Filename)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, jobToDTO(job), "photo uploaded", http.StatusOK)
}

func apperrorBadUpload(err error) error {
	return apperrors.NewHttpError(http.StatusBadRequest, err.Error(), err, nil)
}

func (c *JobController) Delete(ctx echo.Context) error {
	if err := c.jobService.DeleteJob(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "job deleted", http.StatusOK)
}
