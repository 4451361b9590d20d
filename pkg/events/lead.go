package events

// Lead event types, published by sales-service.
const (
	TypeLeadCreated      = "lead.created"
	TypeLeadUpdated      = "lead.updated"
	TypeLeadDeleted      = "lead.deleted"
	TypeLeadConverted    = "lead.converted"
	TypeLeadStageChanged = "lead.stage.changed"
	TypeLeadAssigned     = "lead.assigned"
	TypeLeadClosed       = "lead.closed"
)

type LeadCreated struct {
	Metadata
	LeadID        int64   `json:"lead_id"`
	Email         string  `json:"email"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	Company       string  `json:"company"`
	Industry      string  `json:"industry"`
	AssignedTo    string  `json:"assigned_to"`
	ExpectedValue float64 `json:"expected_value"`
	Status        string  `json:"status"`
}

func (*LeadCreated) Domain() Domain { return DomainLead }

func NewLeadCreated(leadID int64, email, firstName, lastName, company, industry, assignedTo string, expectedValue float64, status string) *LeadCreated {
	return &LeadCreated{
		Metadata:      newMetadata(TypeLeadCreated, SourceSalesService),
		LeadID:        leadID,
		Email:         email,
		FirstName:     firstName,
		LastName:      lastName,
		Company:       company,
		Industry:      industry,
		AssignedTo:    assignedTo,
		ExpectedValue: expectedValue,
		Status:        status,
	}
}

type LeadUpdated struct {
	Metadata
	LeadID        int64   `json:"lead_id"`
	Email         string  `json:"email"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	Company       string  `json:"company"`
	Industry      string  `json:"industry"`
	AssignedTo    string  `json:"assigned_to"`
	ExpectedValue float64 `json:"expected_value"`
	Status        string  `json:"status"`
}

func (*LeadUpdated) Domain() Domain { return DomainLead }

func NewLeadUpdated(leadID int64, email, firstName, lastName, company, industry, assignedTo string, expectedValue float64, status string) *LeadUpdated {
	return &LeadUpdated{
		Metadata:      newMetadata(TypeLeadUpdated, SourceSalesService),
		LeadID:        leadID,
		Email:         email,
		FirstName:     firstName,
		LastName:      lastName,
		Company:       company,
		Industry:      industry,
		AssignedTo:    assignedTo,
		ExpectedValue: expectedValue,
		Status:        status,
	}
}

type LeadDeleted struct {
	Metadata
	LeadID int64  `json:"lead_id"`
	Email  string `json:"email"`
}

func (*LeadDeleted) Domain() Domain { return DomainLead }

func NewLeadDeleted(leadID int64, email string) *LeadDeleted {
	return &LeadDeleted{
		Metadata: newMetadata(TypeLeadDeleted, SourceSalesService),
		LeadID:   leadID,
		Email:    email,
	}
}

type LeadConverted struct {
	Metadata
	LeadID        int64  `json:"lead_id"`
	Email         string `json:"email"`
	CustomerID    int64  `json:"customer_id"`
	OpportunityID int64  `json:"opportunity_id"`
}

func (*LeadConverted) Domain() Domain { return DomainLead }

func NewLeadConverted(leadID int64, email string, customerID, opportunityID int64) *LeadConverted {
	return &LeadConverted{
		Metadata:      newMetadata(TypeLeadConverted, SourceSalesService),
		LeadID:        leadID,
		Email:         email,
		CustomerID:    customerID,
		OpportunityID: opportunityID,
	}
}

type LeadStageChanged struct {
	Metadata
	LeadID     int64  `json:"lead_id"`
	CustomerID int64  `json:"customer_id"`
	OldStage   string `json:"old_stage"`
	NewStage   string `json:"new_stage"`
	AssignedTo int64  `json:"assigned_to"`
}

func (*LeadStageChanged) Domain() Domain { return DomainLead }

func NewLeadStageChanged(leadID, customerID int64, oldStage, newStage string, assignedTo int64) *LeadStageChanged {
	return &LeadStageChanged{
		Metadata:   newMetadata(TypeLeadStageChanged, SourceSalesService),
		LeadID:     leadID,
		CustomerID: customerID,
		OldStage:   oldStage,
		NewStage:   newStage,
		AssignedTo: assignedTo,
	}
}

type LeadAssigned struct {
	Metadata
	LeadID        int64 `json:"lead_id"`
	CustomerID    int64 `json:"customer_id"`
	OldAssignedTo int64 `json:"old_assigned_to"`
	NewAssignedTo int64 `json:"new_assigned_to"`
}

func (*LeadAssigned) Domain() Domain { return DomainLead }

func NewLeadAssigned(leadID, customerID, oldAssignedTo, newAssignedTo int64) *LeadAssigned {
	return &LeadAssigned{
		Metadata:      newMetadata(TypeLeadAssigned, SourceSalesService),
		LeadID:        leadID,
		CustomerID:    customerID,
		OldAssignedTo: oldAssignedTo,
		NewAssignedTo: newAssignedTo,
	}
}

type LeadClosed struct {
	Metadata
	LeadID     int64   `json:"lead_id"`
	CustomerID int64   `json:"customer_id"`
	Stage      string  `json:"stage"`
	Value      float64 `json:"value"`
	AssignedTo int64   `json:"assigned_to"`
}

func (*LeadClosed) Domain() Domain { return DomainLead }

func NewLeadClosed(leadID, customerID int64, stage string, value float64, assignedTo int64) *LeadClosed {
	return &LeadClosed{
		Metadata:   newMetadata(TypeLeadClosed, SourceSalesService),
		LeadID:     leadID,
		CustomerID: customerID,
		Stage:      stage,
		Value:      value,
		AssignedTo: assignedTo,
	}
}
