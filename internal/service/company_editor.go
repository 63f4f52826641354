package service

import (
	"crmserver/internal/contract"
	"crmserver/internal/domain/entity"
	"crmserver/internal/utils"
	"crmserver/internal/utils/apierror"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CompanyEditor is the validation half of the composite save. It checks the
// parent payload and every submitted contact slot independently, and either
// returns the full set of field problems or the contact rows ready to
// persist. It never writes anything itself: the save is all-or-nothing
// because nothing is committed until this phase is clean.
type CompanyEditor struct {
	Validate *validator.Validate
}

func NewCompanyEditor(validate *validator.Validate) *CompanyEditor {
	return &CompanyEditor{Validate: validate}
}

// ValidatedContacts is the outcome of a clean validation phase. Rows keep
// their IDs, so on update the repository can tell inserts from rewrites.
type ValidatedContacts struct {
	Phones         []*entity.Phone
	Emails         []*entity.Email
	DeletePhoneIDs []int
	DeleteEmailIDs []int
}

// ValidateCreate runs phase one for a create. Delete markers make no sense
// without persisted rows, so marked slots are skipped like blank ones.
func (e *CompanyEditor) ValidateCreate(req *contract.CreateCompanyRequest) (*ValidatedContacts, *apierror.StructuredError) {
	utils.Sanitize(req)
	se := apierror.NewStructured(http.StatusBadRequest)

	if err := e.Validate.Struct(req); err != nil {
		se.AddValidation("", err)
	}

	contacts := e.validateSlots(req.Phones, req.Emails, false, se)
	if !se.Empty() {
		return nil, se
	}

	// No prior identity exists on create; stray IDs in the payload must not
	// turn inserts into rewrites.
	for _, phone := range contacts.Phones {
		phone.ID = 0
	}
	for _, email := range contacts.Emails {
		email.ID = 0
	}
	return contacts, nil
}

// ValidateUpdate is the update flavor: delete markers are honored, and the
// parent payload must carry an explicit, well-formed last-updated date
// (enforced by the request's own validate tags).
func (e *CompanyEditor) ValidateUpdate(req *contract.UpdateCompanyRequest) (*ValidatedContacts, *apierror.StructuredError) {
	utils.Sanitize(req)
	se := apierror.NewStructured(http.StatusBadRequest)

	if err := e.Validate.Struct(req); err != nil {
		se.AddValidation("", err)
	}

	contacts := e.validateSlots(req.Phones, req.Emails, true, se)
	if !se.Empty() {
		return nil, se
	}
	return contacts, nil
}

// validateSlots walks both child collections. Blank slots are not errors,
// they are simply not submitted; this is what lets the fixed-size UI slot
// allocation coexist with "zero contacts is valid".
func (e *CompanyEditor) validateSlots(phones []contract.PhoneSlot, emails []contract.EmailSlot, honorDeletes bool, se *apierror.StructuredError) *ValidatedContacts {
	contacts := &ValidatedContacts{}

	for i := range phones {
		slot := phones[i]
		slot.Number = strings.TrimSpace(slot.Number)

		if slot.Blank() {
			continue
		}

		if slot.Delete {
			if !honorDeletes {
				continue
			}
			if slot.ID <= 0 {
				se.Add(fmt.Sprintf("phones[%d].id", i), "Cannot delete a row that was never saved")
				continue
			}
			contacts.DeletePhoneIDs = append(contacts.DeletePhoneIDs, slot.ID)
			continue
		}

		if err := e.Validate.Struct(&slot); err != nil {
			se.AddValidation(fmt.Sprintf("phones[%d]", i), err)
			continue
		}

		contacts.Phones = append(contacts.Phones, &entity.Phone{
			ID:     slot.ID,
			Number: slot.Number,
		})
	}

	for i := range emails {
		slot := emails[i]
		slot.Address = strings.TrimSpace(slot.Address)

		if slot.Blank() {
			continue
		}

		if slot.Delete {
			if !honorDeletes {
				continue
			}
			if slot.ID <= 0 {
				se.Add(fmt.Sprintf("emails[%d].id", i), "Cannot delete a row that was never saved")
				continue
			}
			contacts.DeleteEmailIDs = append(contacts.DeleteEmailIDs, slot.ID)
			continue
		}

		if err := e.Validate.Struct(&slot); err != nil {
			se.AddValidation(fmt.Sprintf("emails[%d]", i), err)
			continue
		}

		contacts.Emails = append(contacts.Emails, &entity.Email{
			ID:      slot.ID,
			Address: slot.Address,
		})
	}

	return contacts
}
