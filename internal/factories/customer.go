package factories

import (
	"fmt"

	"github.com/foodyatra/foodyatra/internal/models"
)

type CustomerFactory struct{}

func (cf *CustomerFactory) CreateCustomer() models.Customer {
	return models.Customer{
		Name:    fake.Person().Name(),
		Phone:   randomPhone(),
		Address: fmt.Sprintf("%s, near %s", fake.Address().StreetAddress(), fake.Address().StreetName()),
	}
}
