package service

import (
	"context"
	"crmserver/internal/contract"
	"crmserver/internal/domain/entity"
	cognitoclient "crmserver/internal/infrastructure/aws/cognito"
	"crmserver/internal/infrastructure/aws/storage"
	"crmserver/internal/utils"
	"crmserver/internal/utils/apierror"
	"crmserver/internal/utils/uid"
	"mime/multipart"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type UserRepository interface {
	FindByID(id int64) (*entity.User, error)
	FindActiveBySub(sub string) (*entity.User, error)
	FindActiveByEmail(email string) (*entity.User, error)
	ExistsByEmail(email string) (bool, error)
	Save(user *entity.User) error
}

type UserService struct {
	UserRepo UserRepository
	Validate *validator.Validate
	Cognito  cognitoclient.CognitoInterface
	Storage  storage.S3Client
}

func NewUserService(userRepo UserRepository, validate *validator.Validate, cogClient cognitoclient.CognitoInterface, s3 storage.S3Client) *UserService {
	return &UserService{
		UserRepo: userRepo,
		Validate: validate,
		Cognito:  cogClient,
		Storage:  s3,
	}
}

// CreateUser registers the principal on the IDP and mirrors it as a local
// row; the local row is the system of record for profile data and ownership.
func (u *UserService) CreateUser(req *contract.CreateUserRequest) apierror.ErrorResponse {
	utils.Sanitize(req)
	if valerr := u.Validate.Struct(req); valerr != nil {
		return apierror.FromValidationError(valerr)
	}

	exists, err := u.UserRepo.ExistsByEmail(req.Email)
	if err != nil {
		log.Errorf("failed to check email: %v", err)
		return apierror.InternalServerError
	}

	if exists {
		return apierror.IDPExistingEmailError
	}

	sub, err := u.Cognito.SignUp(context.Background(), req.Email, req.Password)
	if err != nil {
		return utils.MapCognitoError(err)
	}

	now := utils.NowUTC()
	user := &entity.User{
		ID:        uid.Generate(),
		SubUUID:   sub,
		Username:  req.Username,
		Email:     req.Email,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.UserRepo.Save(user); err != nil {
		log.Errorf("failed to save user: %v", err)
		return apierror.InternalServerError
	}
	return nil
}

func (u *UserService) ConfirmSignup(req *contract.ConfirmSignupRequest) apierror.ErrorResponse {
	utils.Sanitize(req)
	if valerr := u.Validate.Struct(req); valerr != nil {
		return apierror.FromValidationError(valerr)
	}

	if err := u.Cognito.ConfirmAccount(context.Background(), req.Email, req.Code); err != nil {
		return utils.MapCognitoError(err)
	}

	user, err := u.UserRepo.FindActiveByEmail(req.Email)
	if err != nil {
		log.Errorf("failed to fetch user: %v", err)
		return apierror.InternalServerError
	}

	if user != nil && !user.EmailVerified {
		user.EmailVerified = true
		user.UpdatedAt = utils.NowUTC()
		if err := u.UserRepo.Save(user); err != nil {
			log.Errorf("failed to mark user verified: %v", err)
			return apierror.InternalServerError
		}
	}
	return nil
}

func (u *UserService) ResendConfirmation(req *contract.ResendConfirmRequest) apierror.ErrorResponse {
	utils.Sanitize(req)
	if valerr := u.Validate.Struct(req); valerr != nil {
		return apierror.FromValidationError(valerr)
	}

	if err := u.Cognito.ResendConfirmation(context.Background(), req.Email); err != nil {
		return utils.MapCognitoError(err)
	}
	return nil
}

func (u *UserService) Login(req *contract.UserLoginRequest) (*contract.UserLoginResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := u.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	tokens, err := u.Cognito.SignIn(context.Background(), req.Email, req.Password)
	if err != nil {
		return nil, utils.MapCognitoError(err)
	}

	return &contract.UserLoginResponse{
		AccessToken: tokens.AccessToken,
		IDToken:     tokens.IDToken,
	}, nil
}

func (u *UserService) GetProfile(actor *entity.User) (*contract.UserResponse, apierror.ErrorResponse) {
	return toUserResponse(actor), nil
}

func (u *UserService) UpdateProfile(actor *entity.User, req *contract.UpdateProfileRequest) (*contract.UserResponse, apierror.ErrorResponse) {
	if valerr := u.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	if req.Username != nil {
		actor.Username = *req.Username
	}
	if req.FirstName != nil {
		actor.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		actor.LastName = *req.LastName
	}
	if req.Birthday != nil {
		actor.Birthday = req.Birthday
	}
	if req.Location != nil {
		actor.Location = *req.Location
	}

	actor.UpdatedAt = utils.NowUTC()
	if err := u.UserRepo.Save(actor); err != nil {
		log.Errorf("failed to update profile: %v", err)
		return nil, apierror.InternalServerError
	}
	return toUserResponse(actor), nil
}

// DeactivateProfile soft deletes: the row stays so owned companies and
// authored interactions keep a valid reference, but the principal can no
// longer authenticate.
func (u *UserService) DeactivateProfile(actor *entity.User) apierror.ErrorResponse {
	actor.Active = false
	actor.UpdatedAt = utils.NowUTC()

	if err := u.UserRepo.Save(actor); err != nil {
		log.Errorf("failed to deactivate user: %v", err)
		return apierror.InternalServerError
	}
	return nil
}

func (u *UserService) UploadAvatar(actor *entity.User, fileHeader *multipart.FileHeader) (*contract.UserResponse, apierror.ErrorResponse) {
	key, apierr := uploadAvatar(u.Storage, fileHeader)
	if apierr != nil {
		return nil, apierr
	}

	old := actor.AvatarKey
	actor.AvatarKey = key
	actor.UpdatedAt = utils.NowUTC()

	if err := u.UserRepo.Save(actor); err != nil {
		log.Errorf("failed to save avatar key: %v", err)
		return nil, apierror.InternalServerError
	}

	if old != "" {
		_ = u.Storage.DeleteFile(old)
	}
	return toUserResponse(actor), nil
}
