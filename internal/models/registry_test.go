package models

import (
	"testing"

	"github.com/lorenzotomasdiez/reverse-turing/internal/openrouter"
)

func TestNewRegistryFiltersFreeModels(t *testing.T) {
	models := []openrouter.Model{
		{ID: "free-model", Name: "Free", Pricing: &openrouter.Pricing{Prompt: "0", Completion: "0"}},
		{ID: "paid-model", Name: "Paid", Pricing: &openrouter.Pricing{Prompt: "0.01", Completion: "0.02"}},
		{ID: "half-free", Name: "HalfFree", Pricing: &openrouter.Pricing{Prompt: "0", Completion: "0.01"}},
	}

	r := NewRegistry(models)
	free := r.FreeModels()

	if len(free) != 1 {
		t.Fatalf("expected 1 free model, got %d", len(free))
	}
	if free[0].ID != "free-model" {
		t.Fatalf("expected free-model, got %s", free[0].ID)
	}
}

func TestNewRegistryExcludesNilPricing(t *testing.T) {
	models := []openrouter.Model{
		{ID: "no-pricing", Name: "NoPricing", Pricing: nil},
		{ID: "free-model", Name: "Free", Pricing: &openrouter.Pricing{Prompt: "0", Completion: "0"}},
	}

	r := NewRegistry(models)
	free := r.FreeModels()

	if len(free) != 1 {
		t.Fatalf("expected 1 free model, got %d", len(free))
	}
	if free[0].ID != "free-model" {
		t.Fatalf("expected free-model, got %s", free[0].ID)
	}
}

func TestAssignModelsCoversEveryName(t *testing.T) {
	models := []openrouter.Model{
		{ID: "a", Name: "A", Pricing: &openrouter.Pricing{Prompt: "0", Completion: "0"}},
		{ID: "b", Name: "B", Pricing: &openrouter.Pricing{Prompt: "0", Completion: "0"}},
		{ID: "c", Name: "C", Pricing: &openrouter.Pricing{Prompt: "0", Completion: "0"}},
	}

	r := NewRegistry(models)
	assigned := r.AssignModels([]string{"Riley Jordan", "Sam Taylor"})

	if len(assigned) != 2 {
		t.Fatalf("expected 2 assignments, got %d", len(assigned))
	}
	if assigned["Riley Jordan"] != "a" || assigned["Sam Taylor"] != "b" {
		t.Fatalf("unexpected assignments: %v", assigned)
	}
}

func TestAssignModelsWrapsAround(t *testing.T) {
	models := []openrouter.Model{
		{ID: "a", Name: "A", Pricing: &openrouter.Pricing{Prompt: "0", Completion: "0"}},
		{ID: "b", Name: "B", Pricing: &openrouter.Pricing{Prompt: "0", Completion: "0"}},
	}

	r := NewRegistry(models)
	assigned := r.AssignModels([]string{"p1", "p2", "p3", "p4", "p5"})

	if len(assigned) != 5 {
		t.Fatalf("expected 5 assignments, got %d", len(assigned))
	}
	// Should cycle: a, b, a, b, a
	if assigned["p1"] != "a" || assigned["p2"] != "b" || assigned["p3"] != "a" || assigned["p5"] != "a" {
		t.Fatalf("expected wrap-around pattern, got %v", assigned)
	}
}

func TestAssignModelsEmptyRegistry(t *testing.T) {
	r := NewRegistry(nil)
	if assigned := r.AssignModels([]string{"p1"}); assigned != nil {
		t.Fatalf("expected nil from empty registry, got %v", assigned)
	}
}

func TestJudgeModel(t *testing.T) {
	r := NewRegistry([]openrouter.Model{
		{ID: "a", Name: "A", Pricing: &openrouter.Pricing{Prompt: "0", Completion: "0"}},
		{ID: "b", Name: "B", Pricing: &openrouter.Pricing{Prompt: "0", Completion: "0"}},
	})
	if got := r.JudgeModel(); got != "a" {
		t.Fatalf("expected first free model, got %q", got)
	}
	if got := NewRegistry(nil).JudgeModel(); got != "" {
		t.Fatalf("expected empty judge model from empty registry, got %q", got)
	}
}

func TestDefaultFreeModelsNonEmpty(t *testing.T) {
	defaults := DefaultFreeModels()
	if len(defaults) == 0 {
		t.Fatal("expected non-empty default free models list")
	}
}
