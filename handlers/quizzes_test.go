package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
)

func TestQuizListUnknownCourseIsEmptyNot404(t *testing.T) {
	_, router := newTestEnv(t)

	rr := doJSON(t, router, http.MethodGet, "/quiz/9999", nil, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 for unknown course, got %d", rr.Code)
	}
	if strings.TrimSpace(rr.Body.String()) != "[]" {
		t.Fatalf("expected empty list, got %s", rr.Body.String())
	}
}

func TestQuizInvalidCourseID(t *testing.T) {
	_, router := newTestEnv(t)

	rr := doJSON(t, router, http.MethodGet, "/quiz/abc", nil, "")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestSubmitQuizRequiresIdentity(t *testing.T) {
	_, router := newTestEnv(t)

	body := map[string]string{"question": "2+2?", "answer": "4"}

	rr := doJSON(t, router, http.MethodPost, "/quiz/1", body, "")
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d body=%s", rr.Code, rr.Body.String())
	}

	// An invalid token on this endpoint is the same as no token.
	rr = doJSON(t, router, http.MethodPost, "/quiz/1", body, "bogus-token")
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with invalid token, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestSubmitQuizMissingFields(t *testing.T) {
	_, router := newTestEnv(t)

	registerUser(t, router, "sam", "pw", "student")
	token := loginUser(t, router, "sam", "pw")

	rr := doJSON(t, router, http.MethodPost, "/quiz/1", map[string]string{"question": "2+2?"}, token)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestSubmitQuizAndFetch(t *testing.T) {
	_, router := newTestEnv(t)

	registerUser(t, router, "sam", "pw", "student")
	token := loginUser(t, router, "sam", "pw")

	rr := doJSON(t, router, http.MethodPost, "/quiz/7", map[string]string{
		"question": "What is 2+2?",
		"answer":   "4",
	}, token)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}

	list := doJSON(t, router, http.MethodGet, "/quiz/7", nil, "")
	if list.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", list.Code)
	}

	var quizzes []map[string]interface{}
	if err := json.Unmarshal(list.Body.Bytes(), &quizzes); err != nil {
		t.Fatalf("failed to decode list %q: %v", list.Body.String(), err)
	}
	if len(quizzes) != 1 {
		t.Fatalf("expected one quiz, got %d: %s", len(quizzes), list.Body.String())
	}
	if quizzes[0]["question"] != "What is 2+2?" {
		t.Fatalf("unexpected question: %+v", quizzes[0])
	}

	// Answers are write-only.
	if strings.Contains(list.Body.String(), "\"answer\"") {
		t.Fatalf("answer leaked in quiz list: %s", list.Body.String())
	}
}
