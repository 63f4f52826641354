package policy

import (
	"crmserver/internal/domain/entity"
	"crmserver/internal/utils/apierror"
)

// CompanyPolicy is the ownership guard for company mutations. Only the user
// recorded as owner may update or delete a company; the check runs before
// any validation or persistence work, and a failed check yields a fixed
// access-denied outcome that carries nothing derived from the payload.
//
// Projects and interactions deliberately have no counterpart policy: any
// authenticated principal may mutate them.
type CompanyPolicy struct{}

func NewCompanyPolicy() *CompanyPolicy {
	return &CompanyPolicy{}
}

// CanModify authorizes update and delete alike. Equality is on the identity
// key only, never on display attributes.
func (p *CompanyPolicy) CanModify(company *entity.Company, actor *entity.User) apierror.ErrorResponse {
	if company == nil {
		return apierror.NotFoundError
	}

	if company.OwnerID != actor.ID {
		return apierror.AccessDeniedError
	}
	return nil
}
