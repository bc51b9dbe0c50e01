package recipe

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"recipe-ideas/internal/core/ai/service"
	"recipe-ideas/internal/infrastructure/config"
)

type fakeTextService struct {
	content string
	err     error
	calls   int
}

func (f *fakeTextService) ProcessRequest(ctx context.Context, prompt string) (*service.Response, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &service.Response{Content: f.content}, nil
}

type fakeResolver struct {
	url   string
	calls int
}

func (f *fakeResolver) Resolve(ctx context.Context, prompt string) string {
	f.calls++
	return f.url
}

func testConfig(aiEnabled bool) *config.Config {
	cfg := &config.Config{}
	cfg.OpenRouter.Enabled = aiEnabled
	cfg.Generation.Delay = 0
	return cfg
}

func newTestGenerator(t *testing.T, cfg *config.Config, ai TextService, hooks Hooks) (*Generator, *fakeResolver) {
	t.Helper()
	resolver := &fakeResolver{url: "http://example.com/dish.png"}
	mock := NewMockSynthesizer(rand.New(rand.NewSource(7)))
	return NewGenerator(cfg, ai, resolver, mock, hooks), resolver
}

func TestGenerateEmptyIngredients(t *testing.T) {
	notices := 0
	gen, resolver := newTestGenerator(t, testConfig(false), nil, Hooks{
		OnValidation: func(string) { notices++ },
	})

	got, err := gen.Generate(context.Background(), Input{MealType: MealAny})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d recipes", len(got))
	}
	if notices != 1 {
		t.Fatalf("expected exactly one validation notice, got %d", notices)
	}
	if resolver.calls != 0 {
		t.Fatalf("image resolver called %d times for empty result", resolver.calls)
	}
}

func TestGenerateCatalogMatch(t *testing.T) {
	gen, resolver := newTestGenerator(t, testConfig(false), nil, Hooks{})

	got, err := gen.Generate(context.Background(), Input{
		Ingredients: []string{"chicken", "rice"},
		MealType:    MealDinner,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !containsTitle(got, "Chicken and Rice Bowl") {
		t.Fatalf("expected Chicken and Rice Bowl, got %v", titles(got))
	}
	if resolver.calls != len(got) {
		t.Fatalf("resolver called %d times for %d recipes", resolver.calls, len(got))
	}
	for _, r := range got {
		if r.Image != "http://example.com/dish.png" {
			t.Errorf("recipe %q image = %q, want resolved url", r.Title, r.Image)
		}
	}
}

func TestGenerateMockFallback(t *testing.T) {
	gen, _ := newTestGenerator(t, testConfig(false), nil, Hooks{})

	got, err := gen.Generate(context.Background(), Input{
		Ingredients: []string{"kale"},
		MealType:    MealAny,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) < 1 || len(got) > 3 {
		t.Fatalf("expected 1..3 mock recipes, got %d", len(got))
	}
	for _, r := range got {
		if r.Title != "Kale Delight" {
			t.Errorf("title = %q, want Kale Delight", r.Title)
		}
	}
}

func TestGenerateAIPath(t *testing.T) {
	ai := &fakeTextService{content: `[{"title": "Kale Stir Fry"}]`}
	gen, _ := newTestGenerator(t, testConfig(true), ai, Hooks{})

	got, err := gen.Generate(context.Background(), Input{
		Ingredients: []string{"kale"},
		MealType:    MealAny,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ai.calls != 1 {
		t.Fatalf("ai called %d times, want 1", ai.calls)
	}
	if len(got) != 1 || got[0].Title != "Kale Stir Fry" {
		t.Fatalf("unexpected recipes: %v", titles(got))
	}
}

func TestGenerateAIFailureFallsBack(t *testing.T) {
	fallbacks := map[string]int{}
	ai := &fakeTextService{err: errors.New("upstream down")}
	gen, _ := newTestGenerator(t, testConfig(true), ai, Hooks{
		OnFallback: func(stage string, reason error) { fallbacks[stage]++ },
	})

	got, err := gen.Generate(context.Background(), Input{
		Ingredients: []string{"kale"},
		MealType:    MealAny,
	})
	if err != nil {
		t.Fatalf("generation must not fail when AI is down: %v", err)
	}
	if len(got) == 0 {
		t.Fatal("expected fallback recipes, got none")
	}
	if fallbacks["text-generation"] != 1 {
		t.Fatalf("fallback hook calls = %v, want one text-generation", fallbacks)
	}
}

func TestGenerateUnparsableAIResponseFallsBack(t *testing.T) {
	ai := &fakeTextService{content: "I am not JSON at all"}
	gen, _ := newTestGenerator(t, testConfig(true), ai, Hooks{})

	got, err := gen.Generate(context.Background(), Input{
		Ingredients: []string{"chicken", "rice"},
		MealType:    MealDinner,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !containsTitle(got, "Chicken and Rice Bowl") {
		t.Fatalf("expected catalog fallback, got %v", titles(got))
	}
}

func TestGenerateRespectsCancellation(t *testing.T) {
	cfg := testConfig(false)
	cfg.Generation.Delay = time.Second
	gen, _ := newTestGenerator(t, cfg, nil, Hooks{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gen.Generate(ctx, Input{Ingredients: []string{"kale"}, MealType: MealAny})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
