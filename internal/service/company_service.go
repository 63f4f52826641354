package service

import (
	"context"
	"crmserver/internal/contract"
	"crmserver/internal/domain/entity"
	"crmserver/internal/domain/events"
	"crmserver/internal/domain/policy"
	"crmserver/internal/infrastructure/aws/storage"
	"crmserver/internal/utils"
	"crmserver/internal/utils/apierror"
	"errors"
	"io"
	"mime/multipart"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

type CompanyRepository interface {
	FindPage(offset, limit int) ([]*entity.Company, error)
	FindByID(id int) (*entity.Company, error)
	CreateWithContacts(company *entity.Company, phones []*entity.Phone, emails []*entity.Email) error
	UpdateWithContacts(company *entity.Company, phones []*entity.Phone, emails []*entity.Email, deletePhoneIDs, deleteEmailIDs []int) error
	Delete(company *entity.Company) error
	Count() (int64, error)
	CountProjects(companyIDs []int) (map[int]int64, error)
}

type DefaultCompanyService struct {
	CompanyRepo CompanyRepository
	Policy      *policy.CompanyPolicy
	Editor      *CompanyEditor
	Feed        *FeedService
	Storage     storage.S3Client
	PageSize    int
}

func NewCompanyService(
	companyRepo CompanyRepository,
	companyPolicy *policy.CompanyPolicy,
	editor *CompanyEditor,
	feed *FeedService,
	s3 storage.S3Client,
	pageSize int,
) *DefaultCompanyService {
	return &DefaultCompanyService{
		CompanyRepo: companyRepo,
		Policy:      companyPolicy,
		Editor:      editor,
		Feed:        feed,
		Storage:     s3,
		PageSize:    pageSize,
	}
}

func (s *DefaultCompanyService) GetCompanies(page int) (*contract.CompanyListResponse, apierror.ErrorResponse) {
	if page < 1 {
		page = 1
	}

	companies, err := s.CompanyRepo.FindPage((page-1)*s.PageSize, s.PageSize)
	if err != nil {
		log.Errorf("failed to fetch companies: %v", err)
		return nil, apierror.InternalServerError
	}

	total, err := s.CompanyRepo.Count()
	if err != nil {
		log.Errorf("failed to count companies: %v", err)
		return nil, apierror.InternalServerError
	}

	ids := make([]int, len(companies))
	for i, company := range companies {
		ids[i] = company.ID
	}

	counts, err := s.CompanyRepo.CountProjects(ids)
	if err != nil {
		log.Errorf("failed to count projects: %v", err)
		return nil, apierror.InternalServerError
	}

	items := make([]*contract.CompanyListItem, len(companies))
	for i, company := range companies {
		items[i] = &contract.CompanyListItem{
			ID:           company.ID,
			Name:         company.Name,
			Location:     company.Location,
			AvatarKey:    company.AvatarKey,
			OwnerID:      company.OwnerID,
			ProjectCount: counts[company.ID],
		}
	}

	return &contract.CompanyListResponse{
		Companies: items,
		Page:      page,
		PageSize:  s.PageSize,
		Total:     total,
	}, nil
}

func (s *DefaultCompanyService) GetCompany(companyID int) (*contract.CompanyResponse, apierror.ErrorResponse) {
	company, err := s.CompanyRepo.FindByID(companyID)
	if err != nil {
		log.Errorf("failed to fetch company: %v", err)
		return nil, apierror.InternalServerError
	}

	if company == nil {
		return nil, apierror.NotFoundError
	}
	return toCompanyResponse(company), nil
}

// CreateCompany is the composite create: validate everything, then write the
// parent and only afterwards its contact rows. Any field problem anywhere
// means nothing at all is written.
func (s *DefaultCompanyService) CreateCompany(actor *entity.User, req *contract.CreateCompanyRequest) (*contract.CompanyResponse, apierror.ErrorResponse) {
	contacts, valerr := s.Editor.ValidateCreate(req)
	if valerr != nil {
		return nil, valerr
	}

	company := &entity.Company{
		Name:               req.Name,
		DirectorName:       req.DirectorName,
		DirectorSurname:    req.DirectorSurname,
		DirectorPatronymic: req.DirectorPatronymic,
		About:              req.About,
		Location:           req.Location,
		OwnerID:            actor.ID,
		CreatedAt:          utils.NowUTC(),
	}

	if err := s.CompanyRepo.CreateWithContacts(company, contacts.Phones, contacts.Emails); err != nil {
		log.Errorf("failed to create company: %v", err)
		return nil, apierror.InternalServerError
	}

	company.Phones = contacts.Phones
	company.Emails = contacts.Emails

	resp := toCompanyResponse(company)
	go s.Feed.Broadcast(context.Background(), &events.CompanyCreated{CompanyResponse: resp})
	return resp, nil
}

// UpdateCompany runs the ownership guard first: a non-owner is turned away
// with a bare access-denied before any validation happens, so the outcome
// cannot depend on what they sent.
func (s *DefaultCompanyService) UpdateCompany(actor *entity.User, companyID int, req *contract.UpdateCompanyRequest) (*contract.CompanyResponse, apierror.ErrorResponse) {
	company, err := s.CompanyRepo.FindByID(companyID)
	if err != nil {
		log.Errorf("failed to fetch company: %v", err)
		return nil, apierror.InternalServerError
	}

	if apierr := s.Policy.CanModify(company, actor); apierr != nil {
		return nil, apierr
	}

	contacts, valerr := s.Editor.ValidateUpdate(req)
	if valerr != nil {
		return nil, valerr
	}

	company.Name = req.Name
	company.DirectorName = req.DirectorName
	company.DirectorSurname = req.DirectorSurname
	company.DirectorPatronymic = req.DirectorPatronymic
	company.About = req.About
	company.Location = req.Location
	company.UpdatedAt = &req.UpdatedAt

	// The parent keeps its preloaded relations out of the save; the diff
	// below is the single source of truth for contact rows.
	company.Phones = nil
	company.Emails = nil
	company.Projects = nil

	err = s.CompanyRepo.UpdateWithContacts(company, contacts.Phones, contacts.Emails, contacts.DeletePhoneIDs, contacts.DeleteEmailIDs)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// A slot named a contact row this company does not have
		return nil, apierror.NotFoundError
	}
	if err != nil {
		log.Errorf("failed to update company: %v", err)
		return nil, apierror.InternalServerError
	}

	fresh, err := s.CompanyRepo.FindByID(companyID)
	if err != nil || fresh == nil {
		log.Errorf("failed to reload company after update: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := toCompanyResponse(fresh)
	go s.Feed.Broadcast(context.Background(), &events.CompanyUpdated{CompanyResponse: resp})
	return resp, nil
}

func (s *DefaultCompanyService) DeleteCompany(actor *entity.User, companyID int) apierror.ErrorResponse {
	company, err := s.CompanyRepo.FindByID(companyID)
	if err != nil {
		log.Errorf("failed to fetch company: %v", err)
		return apierror.InternalServerError
	}

	if apierr := s.Policy.CanModify(company, actor); apierr != nil {
		return apierr
	}

	if err := s.CompanyRepo.Delete(company); err != nil {
		log.Errorf("failed to delete company: %v", err)
		return apierror.InternalServerError
	}

	go s.Feed.Broadcast(context.Background(), &events.CompanyDeleted{CompanyID: companyID})
	return nil
}

// UploadAvatar stores a new company avatar in the bucket and records its key.
// Owner-gated like every other company mutation.
func (s *DefaultCompanyService) UploadAvatar(actor *entity.User, companyID int, fileHeader *multipart.FileHeader) (*contract.CompanyResponse, apierror.ErrorResponse) {
	company, err := s.CompanyRepo.FindByID(companyID)
	if err != nil {
		log.Errorf("failed to fetch company: %v", err)
		return nil, apierror.InternalServerError
	}

	if apierr := s.Policy.CanModify(company, actor); apierr != nil {
		return nil, apierr
	}

	key, apierr := uploadAvatar(s.Storage, fileHeader)
	if apierr != nil {
		return nil, apierr
	}

	old := company.AvatarKey
	company.AvatarKey = key

	phones := company.Phones
	emails := company.Emails
	company.Phones = nil
	company.Emails = nil
	company.Projects = nil

	if err := s.CompanyRepo.UpdateWithContacts(company, nil, nil, nil, nil); err != nil {
		log.Errorf("failed to save company avatar: %v", err)
		return nil, apierror.InternalServerError
	}

	if old != "" {
		// Best effort; a dangling object is not worth failing the request
		_ = s.Storage.DeleteFile(old)
	}

	company.Phones = phones
	company.Emails = emails
	return toCompanyResponse(company), nil
}

// uploadAvatar is shared by the company and profile avatar endpoints.
func uploadAvatar(bucket storage.S3Client, fileHeader *multipart.FileHeader) (string, apierror.ErrorResponse) {
	ext, ok := utils.CheckFileExt(fileHeader.Filename, contract.ValidAvatarFileTypes)
	if !ok {
		return "", apierror.NewInvalidFileExtError(ext)
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Errorf("failed to open avatar file: %v", err)
		return "", apierror.InternalServerError
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Errorf("failed to read avatar file: %v", err)
		return "", apierror.InternalServerError
	}

	filename := uuid.NewString() + filepath.Ext(fileHeader.Filename)
	key, err := bucket.UploadFile(data, filename)
	if err != nil {
		log.Errorf("failed to upload avatar: %v", err)
		return "", apierror.InternalServerError
	}
	return key, nil
}
