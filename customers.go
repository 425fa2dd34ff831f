package acculynx

import (
	"context"
	"net/url"
	"strconv"
)

// ListCustomers retrieves a page of customers. limit caps the number of
// customers returned (default 100 when zero); offset skips that many records.
func (c *Client) ListCustomers(ctx context.Context, limit, offset int) ([]*Customer, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = 100
	}
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))

	var result struct {
		Customers []*Customer `json:"customers"`
	}
	if err := c.apiClient.Do(ctx, "GET", "/customers", query, nil, &result); err != nil {
		return nil, wrapResourceError(err, ResourceCustomer)
	}
	return result.Customers, nil
}
