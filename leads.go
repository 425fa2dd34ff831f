package acculynx

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// CreateLead creates a new lead. The request is validated client-side before
// any bytes go on the wire.
//
// This endpoint lives on the v1 API, unlike the rest of the SDK which uses v2.
func (c *Client) CreateLead(ctx context.Context, req *CreateLeadRequest) (*Lead, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, &ValidationError{Errors: []string{"request is required"}}
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var lead Lead
	if err := c.apiClient.DoV1(ctx, "POST", "/leads", nil, req, &lead); err != nil {
		return nil, wrapResourceError(err, ResourceLead)
	}
	return &lead, nil
}

// GetLeadHistory returns the history of actions performed on a lead, newest
// first as returned by the server. Related resources named in includes (for
// example "createdBy") are embedded in each entry.
func (c *Client) GetLeadHistory(ctx context.Context, leadID string, includes ...string) ([]*LeadHistory, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	query := url.Values{}
	if len(includes) > 0 {
		query.Set("includes", strings.Join(includes, ","))
	}

	var history []*LeadHistory
	path := fmt.Sprintf("/leads/%s/history", url.PathEscape(leadID))
	if err := c.apiClient.Do(ctx, "GET", path, query, nil, &history); err != nil {
		return nil, wrapResourceError(err, ResourceLead)
	}
	return history, nil
}
