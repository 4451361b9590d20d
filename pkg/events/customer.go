package events

// Customer event types, published by customer-service.
const (
	TypeCustomerCreated = "customer.created"
	TypeCustomerUpdated = "customer.updated"
	TypeCustomerDeleted = "customer.deleted"
)

type CustomerCreated struct {
	Metadata
	CustomerID int64  `json:"customer_id"`
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Company    string `json:"company"`
	Industry   string `json:"industry"`
	AssignedTo string `json:"assigned_to"`
}

func (*CustomerCreated) Domain() Domain { return DomainCustomer }

func NewCustomerCreated(customerID int64, email, firstName, lastName, company, industry, assignedTo string) *CustomerCreated {
	return &CustomerCreated{
		Metadata:   newMetadata(TypeCustomerCreated, SourceCustomerService),
		CustomerID: customerID,
		Email:      email,
		FirstName:  firstName,
		LastName:   lastName,
		Company:    company,
		Industry:   industry,
		AssignedTo: assignedTo,
	}
}

type CustomerUpdated struct {
	Metadata
	CustomerID int64  `json:"customer_id"`
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Company    string `json:"company"`
	Industry   string `json:"industry"`
	AssignedTo string `json:"assigned_to"`
}

func (*CustomerUpdated) Domain() Domain { return DomainCustomer }

func NewCustomerUpdated(customerID int64, email, firstName, lastName, company, industry, assignedTo string) *CustomerUpdated {
	return &CustomerUpdated{
		Metadata:   newMetadata(TypeCustomerUpdated, SourceCustomerService),
		CustomerID: customerID,
		Email:      email,
		FirstName:  firstName,
		LastName:   lastName,
		Company:    company,
		Industry:   industry,
		AssignedTo: assignedTo,
	}
}

type CustomerDeleted struct {
	Metadata
	CustomerID int64  `json:"customer_id"`
	Email      string `json:"email"`
}

func (*CustomerDeleted) Domain() Domain { return DomainCustomer }

func NewCustomerDeleted(customerID int64, email string) *CustomerDeleted {
	return &CustomerDeleted{
		Metadata:   newMetadata(TypeCustomerDeleted, SourceCustomerService),
		CustomerID: customerID,
		Email:      email,
	}
}
