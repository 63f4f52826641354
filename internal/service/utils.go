package service

import (
	"crmserver/internal/contract"
	"crmserver/internal/domain/entity"
	"crmserver/internal/utils"
)

func toCompanyResponse(company *entity.Company) *contract.CompanyResponse {
	phones := make([]*contract.PhoneResponse, len(company.Phones))
	for i, phone := range company.Phones {
		phones[i] = &contract.PhoneResponse{ID: phone.ID, Number: phone.Number}
	}

	emails := make([]*contract.EmailResponse, len(company.Emails))
	for i, email := range company.Emails {
		emails[i] = &contract.EmailResponse{ID: email.ID, Address: email.Address}
	}

	var projects []*contract.ProjectResponse
	for _, project := range company.Projects {
		projects = append(projects, toProjectResponse(project, nil))
	}

	return &contract.CompanyResponse{
		ID:                 company.ID,
		Name:               company.Name,
		DirectorName:       company.DirectorName,
		DirectorSurname:    company.DirectorSurname,
		DirectorPatronymic: company.DirectorPatronymic,
		About:              company.About,
		Location:           company.Location,
		AvatarKey:          company.AvatarKey,
		OwnerID:            company.OwnerID,
		CreatedAt:          utils.FormatEpoch(company.CreatedAt),
		UpdatedAt:          company.UpdatedAt,
		Phones:             phones,
		Emails:             emails,
		Projects:           projects,
	}
}

func toProjectResponse(project *entity.Project, interactionCount *int64) *contract.ProjectResponse {
	return &contract.ProjectResponse{
		ID:               project.ID,
		CompanyID:        project.CompanyID,
		CreatedByID:      project.CreatedByID,
		Name:             project.Name,
		About:            project.About,
		StartDate:        project.StartDate,
		EndDate:          project.EndDate,
		Status:           string(project.Status),
		Price:            project.Price,
		InteractionCount: interactionCount,
		CreatedAt:        utils.FormatEpoch(project.CreatedAt),
		UpdatedAt:        utils.FormatEpoch(project.UpdatedAt),
	}
}

func toInteractionResponse(interaction *entity.Interaction) *contract.InteractionResponse {
	return &contract.InteractionResponse{
		ID:          interaction.ID,
		ProjectID:   interaction.ProjectID,
		ManagerID:   interaction.ManagerID,
		Method:      string(interaction.Method),
		Rating:      int(interaction.Rating),
		About:       interaction.About,
		PublishedAt: utils.FormatEpoch(interaction.PublishedAt),
	}
}

func toUserResponse(user *entity.User) *contract.UserResponse {
	return &contract.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Birthday:  user.Birthday,
		Location:  user.Location,
		AvatarKey: user.AvatarKey,
		CreatedAt: utils.FormatEpoch(user.CreatedAt),
		UpdatedAt: utils.FormatEpoch(user.UpdatedAt),
	}
}
