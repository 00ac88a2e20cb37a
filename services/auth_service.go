// services/auth_service.go
package services

import (
	"context"

	"carelink/interfaces"
	"carelink/models"
	"carelink/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userRepo    interfaces.UserRepository
	patientRepo interfaces.PatientRepository
	jwtService  *utils.JWTService
}

func NewAuthService(userRepo interfaces.UserRepository, patientRepo interfaces.PatientRepository, jwtService *utils.JWTService) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		patientRepo: patientRepo,
		jwtService:  jwtService,
	}
}

// Register creates a user account and, for the patient role, an empty medical
// profile alongside it so the dispatch workflow can resolve the patient later.
func (as *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	existing, err := as.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if svcErr, ok := utils.GetServiceError(err); !ok || svcErr.Code != "NOT_FOUND" {
			return nil, err
		}
	}
	if existing != nil {
		return nil, utils.NewConflictError("Email is already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, utils.NewInternalError("Failed to process password")
	}

	user := &models.User{
		Email:            req.Email,
		Password:         string(hashed),
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Phone:            req.Phone,
		Role:             models.RolePatient,
		EmergencyContact: req.EmergencyContact,
	}

	if err := as.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	patient := &models.Patient{UserID: user.ID}
	if err := as.patientRepo.Create(ctx, patient); err != nil {
		// The account exists without a profile; surface the failure instead
		// of leaving the caller with a token that cannot trigger an SOS.
		return nil, err
	}

	logrus.WithField("userId", user.ID.Hex()).Info("User registered")

	return as.buildAuthResponse(user)
}

func (as *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := as.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if svcErr, ok := utils.GetServiceError(err); ok && svcErr.Code == "NOT_FOUND" {
			return nil, utils.NewInvalidCredentialsError()
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, utils.NewUnauthorizedError("Account is deactivated")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, utils.NewInvalidCredentialsError()
	}

	if err := as.userRepo.UpdateLastLogin(ctx, user.ID.Hex()); err != nil {
		logrus.Warnf("Failed to update last login for user %s: %v", user.ID.Hex(), err)
	}

	return as.buildAuthResponse(user)
}

func (as *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	pair, err := as.jwtService.RefreshToken(refreshToken)
	if err != nil {
		return nil, utils.NewUnauthorizedError("Invalid refresh token")
	}

	return &models.TokenPair{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    pair.TokenType,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

func (as *AuthService) buildAuthResponse(user *models.User) (*models.AuthResponse, error) {
	pair, err := as.jwtService.GenerateTokenPair(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return nil, utils.NewInternalError("Failed to generate tokens")
	}

	return &models.AuthResponse{
		User:         *user,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    pair.TokenType,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}
