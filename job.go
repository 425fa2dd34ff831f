package acculynx

import "time"

// State is a US state reference within an address.
type State struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Link         string `json:"_link,omitempty"`
}

// Country is a country reference within an address.
type Country struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Link         string `json:"_link,omitempty"`
}

// GeoLocation is a latitude/longitude pair for a job site.
type GeoLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// TradeType classifies the trade a job belongs to (roofing, siding, ...).
type TradeType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// JobCategory groups jobs within a company-defined category.
type JobCategory struct {
	ID         int    `json:"id"`
	CategoryID int    `json:"categoryId"`
	Name       string `json:"name"`
}

// WorkType describes the kind of work performed on a job.
type WorkType struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	SystemDefault bool   `json:"systemDefault"`
	Link          string `json:"_link,omitempty"`
}

// LeadSource identifies where a lead or job originated.
type LeadSource struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ParentID string `json:"parentId,omitempty"`
	Link     string `json:"_link,omitempty"`
}

// Address is a postal address. All fields are optional; the server omits
// whatever it does not know.
type Address struct {
	Street1 string   `json:"street1,omitempty"`
	City    string   `json:"city,omitempty"`
	State   *State   `json:"state,omitempty"`
	ZipCode string   `json:"zipCode,omitempty"`
	Country *Country `json:"country,omitempty"`
}

// Contact is a reference to a contact record.
type Contact struct {
	ID   string `json:"id"`
	Link string `json:"_link,omitempty"`
}

// JobContact associates a contact with a job.
type JobContact struct {
	ID                string  `json:"id"`
	Contact           Contact `json:"contact"`
	IsPrimary         bool    `json:"isPrimary"`
	RelationToPrimary string  `json:"relationToPrimary"`
	Link              string  `json:"_link,omitempty"`
}

// Job is an AccuLynx job record. The ID and other server-assigned fields are
// immutable once set; the SDK never writes them back.
type Job struct {
	ID               string       `json:"id"`
	Contacts         []JobContact `json:"contacts"`
	LocationAddress  *Address     `json:"locationAddress,omitempty"`
	GeoLocation      *GeoLocation `json:"geoLocation,omitempty"`
	TradeTypes       []TradeType  `json:"tradeTypes,omitempty"`
	JobCategory      *JobCategory `json:"jobCategory,omitempty"`
	WorkType         *WorkType    `json:"workType,omitempty"`
	LeadSource       *LeadSource  `json:"leadSource,omitempty"`
	LeadDeadReason   string       `json:"leadDeadReason,omitempty"`
	CurrentMilestone string       `json:"currentMilestone,omitempty"`
	MilestoneDate    *time.Time   `json:"milestoneDate,omitempty"`
	CreatedDate      *time.Time   `json:"createdDate,omitempty"`
	ModifiedDate     *time.Time   `json:"modifiedDate,omitempty"`
	JobName          string       `json:"jobName,omitempty"`
	JobNumber        string       `json:"jobNumber,omitempty"`
	Priority         string       `json:"priority,omitempty"`
	Link             string       `json:"_link,omitempty"`
}

// Customer returns the primary contact on the job, or nil if none is marked
// primary.
func (j *Job) Customer() *Contact {
	for i := range j.Contacts {
		if j.Contacts[i].IsPrimary {
			return &j.Contacts[i].Contact
		}
	}
	return nil
}

// PaymentResult is the server's record of a created payment.
type PaymentResult struct {
	ID          string     `json:"id,omitempty"`
	Amount      float64    `json:"amount"`
	PaymentDate *time.Time `json:"paymentDate,omitempty"`
	PaymentType string     `json:"paymentType,omitempty"`
	CheckNumber string     `json:"checkNumber,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	Link        string     `json:"_link,omitempty"`
}

// JobMessage is the server's record of a created job message.
type JobMessage struct {
	ID      string `json:"id,omitempty"`
	Message string `json:"message"`
	Link    string `json:"_link,omitempty"`
}

// UploadResult is the server's record of an uploaded document or photo/video.
type UploadResult struct {
	ID       string `json:"id,omitempty"`
	FileName string `json:"fileName,omitempty"`
	Link     string `json:"_link,omitempty"`
}
