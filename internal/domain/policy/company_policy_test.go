package policy

import (
	"crmserver/internal/domain/entity"
	"crmserver/internal/utils/apierror"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanModifyAllowsOwner(t *testing.T) {
	p := NewCompanyPolicy()
	owner := &entity.User{ID: 10}
	company := &entity.Company{ID: 1, OwnerID: 10}

	require.Nil(t, p.CanModify(company, owner))
}

func TestCanModifyDeniesNonOwner(t *testing.T) {
	p := NewCompanyPolicy()
	intruder := &entity.User{ID: 11}
	company := &entity.Company{ID: 1, OwnerID: 10}

	apierr := p.CanModify(company, intruder)
	require.Equal(t, apierror.AccessDeniedError, apierr)
	require.Equal(t, 403, apierr.Code())
}

func TestCanModifyMissingCompany(t *testing.T) {
	p := NewCompanyPolicy()
	actor := &entity.User{ID: 10}

	apierr := p.CanModify(nil, actor)
	require.Equal(t, apierror.NotFoundError, apierr)
}
