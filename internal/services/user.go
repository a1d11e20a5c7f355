package services

import (
	"context"

	"workshop-system/internal/dto"
	"workshop-system/internal/entities"
	"workshop-system/internal/repositories"

	"go.uber.org/zap"
)

type UserServiceInterface interface {
	GetMe(ctx context.Context, userID uint64) (*dto.UserDTO, error)
	GetMechanics(ctx context.Context) ([]dto.ShortUserDTO, error)
}

type UserService struct {
	userRepo repositories.UserRepositoryInterface
	logger   *zap.Logger
}

func NewUserService(userRepo repositories.UserRepositoryInterface, logger *zap.Logger) UserServiceInterface {
	return &UserService{userRepo: userRepo, logger: logger}
}

func (s *UserService) GetMe(ctx context.Context, userID uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return userToDTO(user), nil
}

// GetMechanics lists the usernames a job can be assigned to.
func (s *UserService) GetMechanics(ctx context.Context) ([]dto.ShortUserDTO, error) {
	users, err := s.userRepo.GetUsersByRole(ctx, entities.RoleMechanic)
	if err != nil {
		return nil, err
	}

	mechanics := make([]dto.ShortUserDTO, 0, len(users))
	for _, user := range users {
		mechanics = append(mechanics, dto.ShortUserDTO{
			ID:       user.ID,
			Username: user.Username,
			FullName: user.FullName,
		})
	}
	return mechanics, nil
}
