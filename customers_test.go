package acculynx

import (
	"context"
	"errors"
	"net/http"
	"testing"
)

func TestListCustomers(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v2/customers" {
			t.Errorf("path = %s, want /api/v2/customers", r.URL.Path)
		}
		if got := r.URL.Query().Get("limit"); got != "25" {
			t.Errorf("limit = %q, want 25", got)
		}
		if got := r.URL.Query().Get("offset"); got != "50" {
			t.Errorf("offset = %q, want 50", got)
		}
		writeJSON(t, w, map[string]any{
			"customers": []map[string]any{
				{"id": "cust-1", "firstName": "Jane", "lastName": "Doe"},
				{"id": "cust-2", "firstName": "John", "lastName": "Smith"},
			},
		})
	}))

	customers, err := client.ListCustomers(context.Background(), 25, 50)
	if err != nil {
		t.Fatalf("ListCustomers() error = %v", err)
	}
	if len(customers) != 2 {
		t.Fatalf("len(customers) = %d, want 2", len(customers))
	}
	if customers[0].ID != "cust-1" || customers[0].FirstName != "Jane" {
		t.Errorf("customers[0] = %+v", customers[0])
	}
}

func TestListCustomers_DefaultLimit(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("limit"); got != "100" {
			t.Errorf("limit = %q, want default 100", got)
		}
		if got := r.URL.Query().Get("offset"); got != "0" {
			t.Errorf("offset = %q, want 0", got)
		}
		writeJSON(t, w, map[string]any{"customers": []any{}})
	}))

	customers, err := client.ListCustomers(context.Background(), 0, 0)
	if err != nil {
		t.Fatalf("ListCustomers() error = %v", err)
	}
	if len(customers) != 0 {
		t.Errorf("len(customers) = %d, want 0", len(customers))
	}
}

func TestListCustomers_NotFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "not found"}`))
	}))

	_, err := client.ListCustomers(context.Background(), 0, 0)
	if !errors.Is(err, ErrCustomerNotFound) {
		t.Errorf("error = %v, want ErrCustomerNotFound", err)
	}
}
