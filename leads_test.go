package acculynx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
)

func TestCreateLead_PostsToV1(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/api/v1/leads" {
			t.Errorf("path = %s, want /api/v1/leads (lead creation is a v1 endpoint)", r.URL.Path)
		}

		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		if body["firstName"] != "Jane" {
			t.Errorf("firstName = %v, want Jane", body["firstName"])
		}
		if body["lastName"] != "Doe" {
			t.Errorf("lastName = %v, want Doe", body["lastName"])
		}
		if _, present := body["email"]; present {
			t.Error("empty email should be omitted from the payload")
		}

		writeJSON(t, w, map[string]any{"id": "lead-1", "status": "New"})
	}))

	lead, err := client.CreateLead(context.Background(), &CreateLeadRequest{
		FirstName: "Jane",
		LastName:  "Doe",
	})
	if err != nil {
		t.Fatalf("CreateLead() error = %v", err)
	}
	if lead.ID != "lead-1" {
		t.Errorf("ID = %s, want lead-1", lead.ID)
	}
}

func TestCreateLead_Validation(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for an invalid lead")
	}))

	tests := []struct {
		name string
		req  *CreateLeadRequest
	}{
		{"nil request", nil},
		{"missing first name", &CreateLeadRequest{LastName: "Doe"}},
		{"missing last name", &CreateLeadRequest{FirstName: "Jane"}},
		{"missing both", &CreateLeadRequest{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.CreateLead(context.Background(), tt.req)
			var valErr *ValidationError
			if !errors.As(err, &valErr) {
				t.Fatalf("expected ValidationError, got %T: %v", err, err)
			}
		})
	}
}

func TestCreateLead_NotFoundMapsToLead(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "not found"}`))
	}))

	_, err := client.CreateLead(context.Background(), &CreateLeadRequest{
		FirstName: "Jane",
		LastName:  "Doe",
	})
	if !errors.Is(err, ErrLeadNotFound) {
		t.Errorf("error = %v, want ErrLeadNotFound", err)
	}
	if errors.Is(err, ErrJobNotFound) {
		t.Error("lead 404 should not match ErrJobNotFound")
	}
}

func TestGetLeadHistory(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v2/leads/lead-1/history" {
			t.Errorf("path = %s, want /api/v2/leads/lead-1/history", r.URL.Path)
		}
		if got := r.URL.Query().Get("includes"); got != "createdBy" {
			t.Errorf("includes = %q, want createdBy", got)
		}
		// History is a top-level array, not an envelope.
		writeJSON(t, w, []map[string]any{
			{
				"id":     "hist-2",
				"action": "StatusChanged",
				"createdBy": map[string]any{
					"id":        "user-1",
					"firstName": "Sam",
				},
			},
			{"id": "hist-1", "action": "Created"},
		})
	}))

	history, err := client.GetLeadHistory(context.Background(), "lead-1", "createdBy")
	if err != nil {
		t.Fatalf("GetLeadHistory() error = %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("len(history) = %d, want 2", len(history))
	}
	if history[0].Action != "StatusChanged" {
		t.Errorf("Action = %s, want StatusChanged", history[0].Action)
	}
	if history[0].CreatedBy == nil || history[0].CreatedBy.ID != "user-1" {
		t.Errorf("CreatedBy = %+v, want user-1", history[0].CreatedBy)
	}
}

func TestGetLeadHistory_NotFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "lead not found"}`))
	}))

	_, err := client.GetLeadHistory(context.Background(), "missing")
	if !errors.Is(err, ErrLeadNotFound) {
		t.Errorf("error = %v, want ErrLeadNotFound", err)
	}
}
