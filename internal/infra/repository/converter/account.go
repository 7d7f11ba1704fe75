package converter

import (
	"carconnect/internal/domain/account"
	"carconnect/internal/domain/admin"
	"carconnect/internal/domain/customer"
	sqlc "carconnect/internal/infra/sqlc/generated"
	"carconnect/internal/pkg/pgconv"
)

func CustomerToInfra(c *customer.Customer) sqlc.CreateCustomerParams {
	p := c.Profile()
	return sqlc.CreateCustomerParams{
		FirstName:        p.FirstName,
		LastName:         p.LastName,
		Email:            p.Email,
		PhoneNumber:      pgconv.OptionalStringToPgtype(p.PhoneNumber),
		Address:          pgconv.OptionalStringToPgtype(c.Address()),
		Username:         c.Username().String(),
		PasswordHash:     c.PasswordHash(),
		RegistrationDate: pgconv.TimeToPgtype(c.RegistrationDate()),
	}
}

// CustomerFromInfra trusts stored rows; validation happened on the way in.
func CustomerFromInfra(row sqlc.Customers) (*customer.Customer, error) {
	username, err := account.NewUsername(row.Username)
	if err != nil {
		return nil, err
	}
	profile := account.Profile{
		FirstName:   row.FirstName,
		LastName:    row.LastName,
		Email:       row.Email,
		PhoneNumber: pgconv.StringFromPgtype(row.PhoneNumber),
	}
	return customer.ReconstructCustomer(
		row.ID,
		profile,
		pgconv.StringFromPgtype(row.Address),
		username,
		row.PasswordHash,
		pgconv.TimeFromPgtype(row.RegistrationDate),
	), nil
}

func AdminToInfra(a *admin.Admin) sqlc.CreateAdminParams {
	p := a.Profile()
	return sqlc.CreateAdminParams{
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Email:        p.Email,
		PhoneNumber:  pgconv.OptionalStringToPgtype(p.PhoneNumber),
		Username:     a.Username().String(),
		PasswordHash: a.PasswordHash(),
		Role:         a.Role(),
		JoinDate:     pgconv.TimeToPgtype(a.JoinDate()),
	}
}

func AdminFromInfra(row sqlc.Admins) (*admin.Admin, error) {
	username, err := account.NewUsername(row.Username)
	if err != nil {
		return nil, err
	}
	profile := account.Profile{
		FirstName:   row.FirstName,
		LastName:    row.LastName,
		Email:       row.Email,
		PhoneNumber: pgconv.StringFromPgtype(row.PhoneNumber),
	}
	return admin.ReconstructAdmin(
		row.ID,
		profile,
		username,
		row.PasswordHash,
		row.Role,
		pgconv.TimeFromPgtype(row.JoinDate),
	), nil
}
