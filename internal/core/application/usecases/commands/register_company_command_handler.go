package commands

import (
	"context"

	"buildmarket/internal/core/domain/model/company"
)

// RegisterCompanyCommandHandler handles the business logic for company registration.
type RegisterCompanyCommandHandler struct {
	uowFactory CompanyUoWFactory
}

// NewRegisterCompanyCommandHandler creates a handler for company registration.
func NewRegisterCompanyCommandHandler(uowFactory CompanyUoWFactory) RegisterCompanyCommandHandler {
	return RegisterCompanyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the company registration command.
func (h *RegisterCompanyCommandHandler) Handle(ctx context.Context, cmd RegisterCompanyCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	newCompany, err := company.NewCompany(cmd.CompanyID(), cmd.UserID(), cmd.Name(), cmd.Role())
	if err != nil {
		return err
	}

	if err = uow.CompanyRepository().Add(ctx, newCompany); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
