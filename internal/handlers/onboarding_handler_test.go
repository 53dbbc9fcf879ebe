package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/DandaAkhilReddy/ReddyFitBack/internal/repository"
	"github.com/DandaAkhilReddy/ReddyFitBack/internal/services"
	"github.com/gofiber/fiber/v2"
)

type stubOnboardingService struct {
	err       error
	lastEmail string
	lastInput repository.OnboardingInput
}

func (s *stubOnboardingService) SubmitOnboarding(_ context.Context, email string, input repository.OnboardingInput) error {
	s.lastEmail = email
	s.lastInput = input
	return s.err
}

func newOnboardingTestApp(service *stubOnboardingService) *fiber.App {
	app := fiber.New()
	app.Post("/api/onboarding", NewOnboardingHandler(service).SubmitOnboarding)
	return app
}

func TestSubmitOnboardingReturnsSuccessContract(t *testing.T) {
	service := &stubOnboardingService{}
	app := newOnboardingTestApp(service)

	body := `{"email":"newuser@test.com","fitness_goal":"Weight Loss","feature_interest":["AI Workout Plans","Meal Plans"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/onboarding", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload["message"] != "Onboarding saved successfully" {
		t.Fatalf("expected success message, got %#v", payload["message"])
	}
	if payload["success"] != true {
		t.Fatalf("expected success=true, got %#v", payload["success"])
	}

	if service.lastEmail != "newuser@test.com" {
		t.Fatalf("expected email forwarded, got %q", service.lastEmail)
	}
	if service.lastInput.FitnessGoal == nil || *service.lastInput.FitnessGoal != "Weight Loss" {
		t.Fatal("expected fitness_goal forwarded")
	}
	want := []string{"AI Workout Plans", "Meal Plans"}
	if !reflect.DeepEqual(service.lastInput.FeatureInterest, want) {
		t.Fatalf("expected feature interest %v in order, got %v", want, service.lastInput.FeatureInterest)
	}
}

func TestSubmitOnboardingUnknownProfileReturns404(t *testing.T) {
	app := newOnboardingTestApp(&stubOnboardingService{err: services.ErrProfileNotFound})

	req := httptest.NewRequest(http.MethodPost, "/api/onboarding", strings.NewReader(`{"email":"ghost@test.com"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload["error"] != "User not found. Please create profile first." {
		t.Fatalf("unexpected error message %#v", payload["error"])
	}
}

func TestSubmitOnboardingMissingEmailReturns400(t *testing.T) {
	app := newOnboardingTestApp(&stubOnboardingService{err: services.ErrEmailRequired})

	req := httptest.NewRequest(http.MethodPost, "/api/onboarding", strings.NewReader(`{"fitness_goal":"Weight Loss"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestSubmitOnboardingStoreFailureReturns500WithDetails(t *testing.T) {
	app := newOnboardingTestApp(&stubOnboardingService{err: context.DeadlineExceeded})

	req := httptest.NewRequest(http.MethodPost, "/api/onboarding", strings.NewReader(`{"email":"a@test.com"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload["details"] == nil {
		t.Fatal("expected details in store-error response")
	}
}
