package service

import (
	"crmserver/internal/contract"
	"crmserver/internal/utils/validators"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

func newTestEditor(t *testing.T) *CompanyEditor {
	t.Helper()
	validate := validator.New()
	validate.RegisterTagNameFunc(validators.TagName)
	require.NoError(t, validate.RegisterValidation("capitalized", validators.Capitalized))
	return NewCompanyEditor(validate)
}

func validCreateRequest() *contract.CreateCompanyRequest {
	return &contract.CreateCompanyRequest{
		Name:               "Acme",
		DirectorName:       "Jane",
		DirectorSurname:    "Doe",
		DirectorPatronymic: "X",
		About:              "Anvils and rockets",
		Location:           "Berlin",
		Phones:             []contract.PhoneSlot{{Number: "123456789012"}},
		Emails:             []contract.EmailSlot{{Address: "a@b.com"}},
	}
}

func TestValidateCreateAcceptsValidComposite(t *testing.T) {
	editor := newTestEditor(t)

	contacts, apierr := editor.ValidateCreate(validCreateRequest())
	require.Nil(t, apierr)
	require.Len(t, contacts.Phones, 1)
	require.Len(t, contacts.Emails, 1)
	require.Equal(t, "123456789012", contacts.Phones[0].Number)
	require.Equal(t, "a@b.com", contacts.Emails[0].Address)
	require.Empty(t, contacts.DeletePhoneIDs)
	require.Empty(t, contacts.DeleteEmailIDs)
}

func TestValidateCreateCollectsEveryProblem(t *testing.T) {
	editor := newTestEditor(t)

	req := validCreateRequest()
	req.Name = "A" // below min
	req.DirectorName = "jane"
	req.Phones = []contract.PhoneSlot{{Number: "12345"}}
	req.Emails = []contract.EmailSlot{{Address: "not-an-email"}}

	contacts, apierr := editor.ValidateCreate(req)
	require.Nil(t, contacts)
	require.NotNil(t, apierr)
	require.Equal(t, 400, apierr.Code())
	require.Contains(t, apierr.Errors, "name")
	require.Contains(t, apierr.Errors, "director_name")
	require.Contains(t, apierr.Errors, "phones[0].number")
	require.Contains(t, apierr.Errors, "emails[0].address")
}

func TestValidateCreateChildProblemAlone(t *testing.T) {
	editor := newTestEditor(t)

	req := validCreateRequest()
	req.Phones = []contract.PhoneSlot{{Number: "12345"}}

	contacts, apierr := editor.ValidateCreate(req)
	require.Nil(t, contacts)
	require.NotNil(t, apierr)
	require.Len(t, apierr.Errors, 1)
	require.Contains(t, apierr.Errors, "phones[0].number")
}

func TestValidateCreateSkipsBlankSlots(t *testing.T) {
	editor := newTestEditor(t)

	req := validCreateRequest()
	req.Phones = []contract.PhoneSlot{{}, {}}
	req.Emails = []contract.EmailSlot{{}, {}}

	contacts, apierr := editor.ValidateCreate(req)
	require.Nil(t, apierr)
	require.Empty(t, contacts.Phones)
	require.Empty(t, contacts.Emails)
}

func TestValidateCreateStripsStrayIDs(t *testing.T) {
	editor := newTestEditor(t)

	req := validCreateRequest()
	req.Phones = []contract.PhoneSlot{{ID: 99, Number: "123456789012"}}
	req.Emails = []contract.EmailSlot{{ID: 42, Address: "a@b.com"}}

	contacts, apierr := editor.ValidateCreate(req)
	require.Nil(t, apierr)
	require.Zero(t, contacts.Phones[0].ID)
	require.Zero(t, contacts.Emails[0].ID)
}

func TestValidateCreateIgnoresDeleteMarkers(t *testing.T) {
	editor := newTestEditor(t)

	req := validCreateRequest()
	req.Phones = []contract.PhoneSlot{{ID: 7, Number: "123456789012", Delete: true}}

	contacts, apierr := editor.ValidateCreate(req)
	require.Nil(t, apierr)
	require.Empty(t, contacts.Phones)
	require.Empty(t, contacts.DeletePhoneIDs)
}

func validUpdateRequest() *contract.UpdateCompanyRequest {
	return &contract.UpdateCompanyRequest{
		Name:               "Acme",
		DirectorName:       "Jane",
		DirectorSurname:    "Doe",
		DirectorPatronymic: "X",
		About:              "Anvils and rockets",
		Location:           "Berlin",
		UpdatedAt:          "2026-08-31",
	}
}

func TestValidateUpdateRequiresExplicitDate(t *testing.T) {
	editor := newTestEditor(t)

	req := validUpdateRequest()
	req.UpdatedAt = ""

	contacts, apierr := editor.ValidateUpdate(req)
	require.Nil(t, contacts)
	require.NotNil(t, apierr)
	require.Contains(t, apierr.Errors, "updated_at")
}

func TestValidateUpdateRejectsMalformedDate(t *testing.T) {
	editor := newTestEditor(t)

	req := validUpdateRequest()
	req.UpdatedAt = "31/08/2026"

	_, apierr := editor.ValidateUpdate(req)
	require.NotNil(t, apierr)
	require.Contains(t, apierr.Errors, "updated_at")
}

func TestValidateUpdateHonorsDeleteMarkers(t *testing.T) {
	editor := newTestEditor(t)

	req := validUpdateRequest()
	req.Phones = []contract.PhoneSlot{
		{ID: 1, Delete: true},
		{ID: 2, Number: "210987654321"},
		{Number: "123456789012"},
	}
	req.Emails = []contract.EmailSlot{{ID: 5, Delete: true}}

	contacts, apierr := editor.ValidateUpdate(req)
	require.Nil(t, apierr)
	require.Equal(t, []int{1}, contacts.DeletePhoneIDs)
	require.Equal(t, []int{5}, contacts.DeleteEmailIDs)
	require.Len(t, contacts.Phones, 2)
	require.Equal(t, 2, contacts.Phones[0].ID)
	require.Zero(t, contacts.Phones[1].ID)
}

func TestValidateUpdateDeleteMarkerNeedsID(t *testing.T) {
	editor := newTestEditor(t)

	req := validUpdateRequest()
	req.Phones = []contract.PhoneSlot{{Number: "123456789012", Delete: true}}

	contacts, apierr := editor.ValidateUpdate(req)
	require.Nil(t, contacts)
	require.NotNil(t, apierr)
	require.Contains(t, apierr.Errors, "phones[0].id")
}

func TestValidateCreateIsRepeatable(t *testing.T) {
	editor := newTestEditor(t)

	build := func() *contract.CreateCompanyRequest {
		req := validCreateRequest()
		req.About = ""
		req.Phones = []contract.PhoneSlot{{Number: "12345"}}
		return req
	}

	_, first := editor.ValidateCreate(build())
	_, second := editor.ValidateCreate(build())
	require.NotNil(t, first)
	require.NotNil(t, second)
	require.Equal(t, first.Errors, second.Errors)
}
