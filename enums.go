package acculynx

// DateFilterType selects which date field job filtering and sorting apply to.
type DateFilterType string

const (
	// FilterCreatedDate filters or sorts by the job creation date.
	FilterCreatedDate DateFilterType = "CreatedDate"
	// FilterModifiedDate filters or sorts by the last modification date.
	FilterModifiedDate DateFilterType = "ModifiedDate"
	// FilterMilestoneDate filters or sorts by the current milestone date.
	FilterMilestoneDate DateFilterType = "MilestoneDate"
)

// SortOrder specifies the direction of sorted listings.
type SortOrder string

const (
	// SortAscending sorts oldest first.
	SortAscending SortOrder = "Ascending"
	// SortDescending sorts newest first.
	SortDescending SortOrder = "Descending"
)

// AccountType identifies the ledger account a paid payment is booked against.
type AccountType string

const (
	AccountTypeMaterials     AccountType = "Materials"
	AccountTypeLabor         AccountType = "Labor"
	AccountTypeSubcontractor AccountType = "Subcontractor"
	AccountTypeOther         AccountType = "Other"
)
