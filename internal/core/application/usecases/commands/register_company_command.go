package commands

import (
	"errors"

	"buildmarket/internal/core/domain/model/company"
	"buildmarket/internal/core/domain/model/kernel"
	"buildmarket/internal/pkg/guard"
)

var ErrRegisterCompanyCommandIsNotConstructed = errors.New(
	"RegisterCompanyCommand must be created via NewRegisterCompanyCommand constructor",
)

// RegisterCompanyCommand represents a request to register a market participant.
// The role is fixed at registration and never changes afterwards.
//
// Example:
//
//	cmd, err := NewRegisterCompanyCommand(
//	    kernel.NewUUID(), userID, "Meyer Bau GmbH", company.RoleContractor,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid company data: %w", err)
//	}
//
//	handler := NewRegisterCompanyCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register company: %w", err)
//	}
type RegisterCompanyCommand struct { //nolint:recvcheck //using for validation
	companyID kernel.UUID
	userID    kernel.UUID
	name      string
	role      company.Role

	guard guard.ConstructorGuard
}

// NewRegisterCompanyCommand creates a command to register a new company.
func NewRegisterCompanyCommand(
	companyID kernel.UUID, userID kernel.UUID, name string, role company.Role,
) (RegisterCompanyCommand, error) {
	cmd := RegisterCompanyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCompanyID(companyID),
		cmd.setUserID(userID),
		cmd.setName(name),
		cmd.setRole(role),
	); err != nil {
		return RegisterCompanyCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterCompanyCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCompanyCommandIsNotConstructed)
}

func (c RegisterCompanyCommand) CompanyID() kernel.UUID {
	return c.companyID
}

func (c RegisterCompanyCommand) UserID() kernel.UUID {
	return c.userID
}

func (c RegisterCompanyCommand) Name() string {
	return c.name
}

func (c RegisterCompanyCommand) Role() company.Role {
	return c.role
}

func (c *RegisterCompanyCommand) setCompanyID(companyID kernel.UUID) error {
	if err := companyID.Validate(); err != nil {
		return err
	}
	c.companyID = companyID
	return nil
}

func (c *RegisterCompanyCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *RegisterCompanyCommand) setName(name string) error {
	if name == "" {
		return errors.New("name is required")
	}
	c.name = name
	return nil
}

func (c *RegisterCompanyCommand) setRole(role company.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}
