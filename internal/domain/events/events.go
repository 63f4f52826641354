package events

import "crmserver/internal/contract"

// SocketEvent is anything the feed can broadcast to connected dashboards.
type SocketEvent interface {
	GetType() contract.EventType
}

type Ack struct{}

func (*Ack) GetType() contract.EventType {
	return contract.EventAck
}

type SessionExpired struct{}

func (*SessionExpired) GetType() contract.EventType {
	return contract.EventSessionExpired
}

type CompanyCreated struct {
	*contract.CompanyResponse
}

func (e *CompanyCreated) GetType() contract.EventType {
	return contract.EventCompanyCreated
}

type CompanyUpdated struct {
	*contract.CompanyResponse
}

func (e *CompanyUpdated) GetType() contract.EventType {
	return contract.EventCompanyUpdated
}

type CompanyDeleted struct {
	CompanyID int `json:"id"`
}

func (e *CompanyDeleted) GetType() contract.EventType {
	return contract.EventCompanyDeleted
}

type ProjectCreated struct {
	*contract.ProjectResponse
}

func (e *ProjectCreated) GetType() contract.EventType {
	return contract.EventProjectCreated
}

type ProjectUpdated struct {
	*contract.ProjectResponse
}

func (e *ProjectUpdated) GetType() contract.EventType {
	return contract.EventProjectUpdated
}

type ProjectDeleted struct {
	ProjectID int `json:"id"`
}

func (e *ProjectDeleted) GetType() contract.EventType {
	return contract.EventProjectDeleted
}

type InteractionCreated struct {
	*contract.InteractionResponse
}

func (e *InteractionCreated) GetType() contract.EventType {
	return contract.EventInteractionCreated
}

type InteractionDeleted struct {
	InteractionID int `json:"id"`
}

func (e *InteractionDeleted) GetType() contract.EventType {
	return contract.EventInteractionDeleted
}
