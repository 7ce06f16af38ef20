package oracle

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/api"
)

func newTestServer(t *testing.T) *api.Client {
	t.Helper()
	server := httptest.NewServer(New().Handler())
	t.Cleanup(server.Close)
	return api.NewClient(server.URL, server.Client())
}

func TestServer_SessionLifecycle(t *testing.T) {
	client := newTestServer(t)
	ctx := context.Background()

	id, err := client.CreateSession(ctx)
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if id == "" {
		t.Fatal("expected a session id")
	}

	status, err := client.FetchStatus(ctx, id)
	if err != nil {
		t.Fatalf("FetchStatus: %v", err)
	}
	if status.Question == nil || status.Question.ID != "age" {
		t.Fatalf("first question = %+v, want age", status.Question)
	}
	if status.Question.Kind() != api.KindNumeric {
		t.Errorf("age kind = %v, want numeric", status.Question.Kind())
	}

	if err := client.DeleteSession(ctx, id); err != nil {
		t.Fatalf("DeleteSession: %v", err)
	}

	_, err = client.FetchStatus(ctx, id)
	var nerr *api.NetworkError
	if !errors.As(err, &nerr) || nerr.StatusCode != http.StatusNotFound {
		t.Fatalf("status after delete: err = %v, want a 404", err)
	}
}

func TestServer_AnswerMismatchConflicts(t *testing.T) {
	client := newTestServer(t)
	ctx := context.Background()

	id, err := client.CreateSession(ctx)
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	err = client.SubmitAnswer(ctx, id, api.AnswerPayload{
		QuestionID: "not-the-current-question",
		Value:      []string{"yes"},
	})
	var nerr *api.NetworkError
	if !errors.As(err, &nerr) || nerr.StatusCode != http.StatusConflict {
		t.Fatalf("mismatched answer: err = %v, want a 409", err)
	}
}

func TestServer_DriveToDiagnosis(t *testing.T) {
	client := newTestServer(t)
	ctx := context.Background()

	id, err := client.CreateSession(ctx)
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	answers := map[string][]string{
		"age":                        {"45"},
		"duration":                   {"months to years"},
		"severity":                   {"mild"},
		"has_symptom_lump_or_growth": {"yes"},
		"locations":                  {"Arms", "Trunk"},
		"has_symptom_soft_lump":      {"yes"},
	}

	for i := 0; i < len(answers)+1; i++ {
		status, err := client.FetchStatus(ctx, id)
		if err != nil {
			t.Fatalf("FetchStatus: %v", err)
		}
		if status.Question == nil {
			if status.Diagnosis == nil {
				t.Fatal("finished session must carry a diagnosis")
			}
			if status.Diagnosis.Disease != "Lipoma" {
				t.Errorf("Disease = %q, want Lipoma", status.Diagnosis.Disease)
			}
			if status.Progress != 100 {
				t.Errorf("Progress = %v, want 100", status.Progress)
			}
			return
		}

		vals, ok := answers[status.Question.ID]
		if !ok {
			t.Fatalf("no scripted answer for question %q", status.Question.ID)
		}
		err = client.SubmitAnswer(ctx, id, api.AnswerPayload{
			QuestionID: status.Question.ID,
			Value:      vals,
			IsMultiple: status.Question.IsMultiple,
		})
		if err != nil {
			t.Fatalf("SubmitAnswer %q: %v", status.Question.ID, err)
		}
	}
	t.Fatal("session never reached a diagnosis")
}
