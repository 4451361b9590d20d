package events

// Opportunity event types, published by sales-service.
const (
	TypeOpportunityCreated = "opportunity.created"
	TypeOpportunityUpdated = "opportunity.updated"
	TypeOpportunityDeleted = "opportunity.deleted"
	TypeOpportunityWon     = "opportunity.won"
	TypeOpportunityLost    = "opportunity.lost"
)

type OpportunityCreated struct {
	Metadata
	OpportunityID int64   `json:"opportunity_id"`
	Name          string  `json:"name"`
	CustomerID    string  `json:"customer_id"`
	LeadID        string  `json:"lead_id"`
	AssignedTo    string  `json:"assigned_to"`
	Amount        float64 `json:"amount"`
	Stage         string  `json:"stage"`
	Type          string  `json:"type"`
}

func (*OpportunityCreated) Domain() Domain { return DomainOpportunity }

func NewOpportunityCreated(opportunityID int64, name, customerID, leadID, assignedTo string, amount float64, stage, opportunityType string) *OpportunityCreated {
	return &OpportunityCreated{
		Metadata:      newMetadata(TypeOpportunityCreated, SourceSalesService),
		OpportunityID: opportunityID,
		Name:          name,
		CustomerID:    customerID,
		LeadID:        leadID,
		AssignedTo:    assignedTo,
		Amount:        amount,
		Stage:         stage,
		Type:          opportunityType,
	}
}

type OpportunityUpdated struct {
	Metadata
	OpportunityID int64   `json:"opportunity_id"`
	Name          string  `json:"name"`
	CustomerID    string  `json:"customer_id"`
	LeadID        string  `json:"lead_id"`
	AssignedTo    string  `json:"assigned_to"`
	Amount        float64 `json:"amount"`
	Stage         string  `json:"stage"`
	Type          string  `json:"type"`
}

func (*OpportunityUpdated) Domain() Domain { return DomainOpportunity }

func NewOpportunityUpdated(opportunityID int64, name, customerID, leadID, assignedTo string, amount float64, stage, opportunityType string) *OpportunityUpdated {
	return &OpportunityUpdated{
		Metadata:      newMetadata(TypeOpportunityUpdated, SourceSalesService),
		OpportunityID: opportunityID,
		Name:          name,
		CustomerID:    customerID,
		LeadID:        leadID,
		AssignedTo:    assignedTo,
		Amount:        amount,
		Stage:         stage,
		Type:          opportunityType,
	}
}

type OpportunityDeleted struct {
	Metadata
	OpportunityID int64  `json:"opportunity_id"`
	Name          string `json:"name"`
}

func (*OpportunityDeleted) Domain() Domain { return DomainOpportunity }

func NewOpportunityDeleted(opportunityID int64, name string) *OpportunityDeleted {
	return &OpportunityDeleted{
		Metadata:      newMetadata(TypeOpportunityDeleted, SourceSalesService),
		OpportunityID: opportunityID,
		Name:          name,
	}
}

type OpportunityWon struct {
	Metadata
	OpportunityID int64   `json:"opportunity_id"`
	Name          string  `json:"name"`
	Amount        float64 `json:"amount"`
	CustomerID    string  `json:"customer_id"`
}

func (*OpportunityWon) Domain() Domain { return DomainOpportunity }

func NewOpportunityWon(opportunityID int64, name string, amount float64, customerID string) *OpportunityWon {
	return &OpportunityWon{
		Metadata:      newMetadata(TypeOpportunityWon, SourceSalesService),
		OpportunityID: opportunityID,
		Name:          name,
		Amount:        amount,
		CustomerID:    customerID,
	}
}

type OpportunityLost struct {
	Metadata
	OpportunityID int64  `json:"opportunity_id"`
	Name          string `json:"name"`
	Reason        string `json:"reason"`
	CustomerID    string `json:"customer_id"`
}

func (*OpportunityLost) Domain() Domain { return DomainOpportunity }

func NewOpportunityLost(opportunityID int64, name, reason, customerID string) *OpportunityLost {
	return &OpportunityLost{
		Metadata:      newMetadata(TypeOpportunityLost, SourceSalesService),
		OpportunityID: opportunityID,
		Name:          name,
		Reason:        reason,
		CustomerID:    customerID,
	}
}
