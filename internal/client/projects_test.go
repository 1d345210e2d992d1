package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/information-sharing-networks/teamsd/internal/types"
)

func sampleProject() types.Project {
	return types.Project{
		ID:          1,
		Date:        "2024-03-01T10:00:00Z",
		Name:        "A",
		Description: "first project",
		Active:      true,
		Team: types.Team{
			ID:          2,
			Name:        "Platform",
			Description: "platform team",
			Users: []types.User{
				{
					ID:      5,
					Profile: types.Profile{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Phone: "555-0100"},
					IsAdmin: true,
					Active:  true,
					Status:  "JOINED",
				},
			},
		},
	}
}

func TestListProjects(t *testing.T) {
	want := []types.Project{sampleProject()}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if r.URL.Path != "/company/1/teams/2/projects" {
			t.Errorf("path = %s, want /company/1/teams/2/projects", r.URL.Path)
		}
		if r.ContentLength > 0 {
			t.Errorf("GET request should not have a body")
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer server.Close()

	c := NewClient(server.URL)
	got, err := c.ListProjects(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("ListProjects() error = %v", err)
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListProjects() = %+v, want %+v", got, want)
	}
}

func TestListProjectsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	got, err := NewClient(server.URL).ListProjects(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("ListProjects() error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("ListProjects() = %#v, want an empty non-nil slice", got)
	}
}

func TestCreateProject(t *testing.T) {
	payload := types.Project{
		Name:        "X",
		Description: "new project",
		Active:      true,
		Team:        types.Team{Name: "Platform", Description: "platform team"},
	}
	wantBody, err := json.Marshal(payload)
	if err != nil {
		t.Fatal(err)
	}

	// echo the body back with an assigned id
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/company/1/teams/2/projects" {
			t.Errorf("path = %s, want /company/1/teams/2/projects", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", ct)
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Fatalf("reading body: %v", err)
		}
		if string(body) != string(wantBody) {
			t.Errorf("body = %s, want %s", body, wantBody)
		}

		var p types.Project
		if err := json.Unmarshal(body, &p); err != nil {
			t.Fatalf("decoding body: %v", err)
		}
		p.ID = 99
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(p)
	}))
	defer server.Close()

	got, err := NewClient(server.URL).CreateProject(context.Background(), 1, 2, payload)
	if err != nil {
		t.Fatalf("CreateProject() error = %v", err)
	}

	want := payload
	want.ID = 99
	if !reflect.DeepEqual(*got, want) {
		t.Errorf("CreateProject() = %+v, want %+v", *got, want)
	}
}

func TestUpdateProject(t *testing.T) {
	update := types.ProjectUpdate{Name: "Renamed", Description: "", Active: false}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("method = %s, want PATCH", r.Method)
		}
		if r.URL.Path != "/company/1/teams/2/projects/3" {
			t.Errorf("path = %s, want /company/1/teams/2/projects/3", r.URL.Path)
		}

		body, _ := io.ReadAll(r.Body)
		want := `{"name":"Renamed","description":"","active":false}`
		if string(body) != want {
			t.Errorf("body = %s, want %s", body, want)
		}

		_ = json.NewEncoder(w).Encode(types.Project{ID: 3, Name: "Renamed"})
	}))
	defer server.Close()

	got, err := NewClient(server.URL).UpdateProject(context.Background(), 1, 2, 3, update)
	if err != nil {
		t.Fatalf("UpdateProject() error = %v", err)
	}
	if got.ID != 3 || got.Name != "Renamed" || got.Active {
		t.Errorf("UpdateProject() = %+v", got)
	}
}

func TestPathParameters(t *testing.T) {
	tests := []struct {
		name      string
		baseURL   string
		companyID int64
		teamID    int64
		projectID int64
		wantPath  string
	}{
		{"small ids", "", 1, 2, 3, "/company/1/teams/2/projects/3"},
		{"large ids", "", 9007199254740993, 40, 123456789, "/company/9007199254740993/teams/40/projects/123456789"},
		{"zero ids", "", 0, 0, 0, "/company/0/teams/0/projects/0"},
		{"base url with trailing slash", "/", 4, 5, 6, "/company/4/teams/5/projects/6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				_, _ = w.Write([]byte(`{}`))
			}))
			defer server.Close()

			c := NewClient(server.URL + tt.baseURL)
			if _, err := c.UpdateProject(context.Background(), tt.companyID, tt.teamID, tt.projectID, types.ProjectUpdate{}); err != nil {
				t.Fatalf("UpdateProject() error = %v", err)
			}
			if gotPath != tt.wantPath {
				t.Errorf("path = %s, want %s", gotPath, tt.wantPath)
			}
		})
	}
}

func TestRequestHeaders(t *testing.T) {
	var gotRequestID, gotAccept, gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get("X-Request-ID")
		gotAccept = r.Header.Get("Accept")
		gotContentType = r.Header.Get("Content-Type")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	c := NewClient(server.URL)

	if _, err := c.ListProjects(context.Background(), 1, 2); err != nil {
		t.Fatalf("ListProjects() error = %v", err)
	}
	if gotRequestID == "" {
		t.Error("expected a generated X-Request-ID header")
	}
	if gotAccept != "application/json" {
		t.Errorf("Accept = %q, want application/json", gotAccept)
	}
	if gotContentType != "" {
		t.Errorf("Content-Type = %q, want none on a GET without body", gotContentType)
	}

	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "gateway-req-1")
	if _, err := c.ListProjects(ctx, 1, 2); err != nil {
		t.Fatalf("ListProjects() error = %v", err)
	}
	if gotRequestID != "gateway-req-1" {
		t.Errorf("X-Request-ID = %q, want the gateway request id", gotRequestID)
	}
}

func TestClientErrors(t *testing.T) {
	closed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	closedURL := closed.URL
	closed.Close()

	tests := []struct {
		name            string
		handler         http.HandlerFunc
		wantKind        ErrorKind
		wantStatus      int
		wantUserMessage string
	}{
		{
			name:       "network failure",
			wantKind:   KindConnection,
			wantStatus: 0,
		},
		{
			name: "not found with backend message",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte(`{"message":"This team was not found."}`))
			},
			wantKind:        KindAPI,
			wantStatus:      http.StatusNotFound,
			wantUserMessage: "This team was not found.",
		},
		{
			name: "server error without body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantKind:        KindAPI,
			wantStatus:      http.StatusInternalServerError,
			wantUserMessage: "The service is temporarily unavailable. Please try again later.",
		},
		{
			name: "invalid json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`<html>not json</html>`))
			},
			wantKind:   KindDecode,
			wantStatus: 0,
		},
		{
			name: "empty body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			},
			wantKind:   KindDecode,
			wantStatus: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			baseURL := closedURL
			if tt.handler != nil {
				server := httptest.NewServer(tt.handler)
				defer server.Close()
				baseURL = server.URL
			}

			projects, err := NewClient(baseURL).ListProjects(context.Background(), 1, 2)
			if err == nil {
				t.Fatalf("ListProjects() = %v, want error", projects)
			}
			if projects != nil {
				t.Errorf("ListProjects() returned %v alongside an error", projects)
			}

			var ce *ClientError
			if !errors.As(err, &ce) {
				t.Fatalf("error %T is not a *ClientError", err)
			}
			if ce.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", ce.Kind, tt.wantKind)
			}
			if ce.StatusCode != tt.wantStatus {
				t.Errorf("StatusCode = %d, want %d", ce.StatusCode, tt.wantStatus)
			}
			if tt.wantUserMessage != "" && ce.UserError() != tt.wantUserMessage {
				t.Errorf("UserError() = %q, want %q", ce.UserError(), tt.wantUserMessage)
			}
			if ce.Error() == "" {
				t.Error("expected a log message")
			}
		})
	}
}

func TestErrorKindString(t *testing.T) {
	if KindDecode.String() != "decode" {
		t.Errorf("KindDecode.String() = %q", KindDecode.String())
	}
	if ErrorKind(42).String() != "ErrorKind(42)" {
		t.Errorf("unexpected name for an unknown kind: %q", ErrorKind(42).String())
	}
}
