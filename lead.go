package acculynx

import "time"

// Customer is an AccuLynx customer record.
type Customer struct {
	ID        string     `json:"id"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Email     string     `json:"email,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	Address   *Address   `json:"address,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Lead is an AccuLynx lead record.
type Lead struct {
	ID        string     `json:"id"`
	Status    string     `json:"status,omitempty"`
	Source    string     `json:"source,omitempty"`
	Customer  *Customer  `json:"customer,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
	Notes     string     `json:"notes,omitempty"`
}

// User identifies the user who performed an action, as returned in lead
// history entries.
type User struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
	Link      string `json:"_link,omitempty"`
}

// LeadHistory is a single entry in a lead's action history.
type LeadHistory struct {
	ID          string     `json:"id"`
	Action      string     `json:"action"`
	CreatedDate *time.Time `json:"createdDate,omitempty"`
	CreatedBy   *User      `json:"createdBy,omitempty"`
	Link        string     `json:"_link,omitempty"`
}

// CreateLeadRequest is the payload for creating a new lead. FirstName and
// LastName are required; everything else is optional and omitted when empty.
type CreateLeadRequest struct {
	FirstName     string     `json:"firstName"`
	LastName      string     `json:"lastName"`
	Email         string     `json:"email,omitempty"`
	Phone         string     `json:"phone,omitempty"`
	Address       *Address   `json:"address,omitempty"`
	Source        string     `json:"source,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	Status        string     `json:"status,omitempty"`
	SalesRepID    string     `json:"salesRepId,omitempty"`
	TradeTypeIDs  []string   `json:"tradeTypeIds,omitempty"`
	JobCategoryID int        `json:"jobCategoryId,omitempty"`
	WorkTypeID    int        `json:"workTypeId,omitempty"`
	LeadSourceID  string     `json:"leadSourceId,omitempty"`
	Milestone     string     `json:"milestone,omitempty"`
	MilestoneDate *time.Time `json:"milestoneDate,omitempty"`
	Priority      string     `json:"priority,omitempty"`
}

// Validate checks the request before it is sent to the API.
func (r *CreateLeadRequest) Validate() error {
	var problems []string
	if r.FirstName == "" {
		problems = append(problems, "firstName is required")
	}
	if r.LastName == "" {
		problems = append(problems, "lastName is required")
	}
	if len(problems) > 0 {
		return &ValidationError{Errors: problems}
	}
	return nil
}
