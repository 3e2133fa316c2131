package estimate

import (
	"context"
	"errors"
	"testing"

	"calring/internal/model"
)

func TestParseResponse_WellFormedMeal(t *testing.T) {
	r, err := parseResponse(`{"type":"meal","name":"chicken burrito","cals":650,"protein":38,"fiber":9,"sugar":6,"fat":22,"confidence":"high"}`)
	if err != nil {
		t.Fatalf("parseResponse: %v", err)
	}

	if r.Type != model.Meal || r.Name != "chicken burrito" {
		t.Fatalf("got %+v", r)
	}
	if r.Cals != 650 || r.Protein != 38 || r.Fat != 22 {
		t.Fatalf("numbers wrong: %+v", r)
	}
	if r.Confidence != "high" {
		t.Fatalf("confidence = %q", r.Confidence)
	}
}

func TestParseResponse_ExerciseZeroesMacros(t *testing.T) {
	// Macro values in an exercise reply are model noise; they must not
	// leak into the result.
	r, err := parseResponse(`{"type":"exercise","name":"5k run","cals":380,"protein":12,"fat":3,"confidence":"medium"}`)
	if err != nil {
		t.Fatalf("parseResponse: %v", err)
	}

	if r.Type != model.Exercise {
		t.Fatalf("type = %v, want exercise", r.Type)
	}
	if r.Protein != 0 || r.Fiber != 0 || r.Sugar != 0 || r.Fat != 0 {
		t.Fatalf("macros not zeroed: %+v", r)
	}
}

func TestParseResponse_ToleratesFencesAndProse(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"code fence", "```json\n{\"type\":\"meal\",\"name\":\"oatmeal\",\"cals\":320}\n```"},
		{"leading prose", `Here is the estimate: {"type":"meal","name":"oatmeal","cals":320}`},
		{"string number", `{"type":"meal","name":"oatmeal","cals":"320"}`},
		{"number with unit", `{"type":"meal","name":"oatmeal","cals":"320 kcal"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := parseResponse(tc.content)
			if err != nil {
				t.Fatalf("parseResponse: %v", err)
			}
			if r.Cals != 320 {
				t.Fatalf("cals = %f, want 320", r.Cals)
			}
		})
	}
}

func TestParseResponse_Rejections(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"no json", "I cannot estimate that."},
		{"missing cals", `{"type":"meal","name":"mystery"}`},
		{"negative cals", `{"type":"meal","name":"mystery","cals":-100}`},
		{"unparseable cals", `{"type":"meal","name":"mystery","cals":"unknown"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := parseResponse(tc.content); !errors.Is(err, ErrEstimateRejected) {
				t.Fatalf("err = %v, want ErrEstimateRejected", err)
			}
		})
	}
}

func TestParseResponse_MacroNoiseDegradesToZero(t *testing.T) {
	r, err := parseResponse(`{"type":"meal","name":"salad","cals":210,"protein":"lots","fat":-5}`)
	if err != nil {
		t.Fatalf("parseResponse: %v", err)
	}
	if r.Protein != 0 || r.Fat != 0 {
		t.Fatalf("bad macros should degrade to zero, got %+v", r)
	}
	if r.Cals != 210 {
		t.Fatalf("cals = %f", r.Cals)
	}
}

func TestCacheKey_NormalizesWhitespaceAndCase(t *testing.T) {
	a := cacheKey("Two  Eggs and toast", 180)
	b := cacheKey("two eggs and toast ", 180)
	if a != b {
		t.Fatal("equivalent descriptions must share a cache key")
	}

	if cacheKey("two eggs and toast", 180) == cacheKey("two eggs and toast", 200) {
		t.Fatal("weight must be part of the cache key")
	}
}

func TestCache_RoundTrip(t *testing.T) {
	c := NewCache()
	key := cacheKey("5k run", 180)

	if _, ok := c.Get(key); ok {
		t.Fatal("empty cache reported a hit")
	}

	want := Result{Type: model.Exercise, Name: "5k run", Cals: 380}
	c.Put(key, want)

	got, ok := c.Get(key)
	if !ok || got != want {
		t.Fatalf("Get = %+v, %v; want %+v", got, ok, want)
	}
}

func TestNewClient_EmptyKeyIsNil(t *testing.T) {
	if c := NewClient("  ", "", ""); c != nil {
		t.Fatal("blank key should produce a nil client")
	}

	var c *Client
	if _, err := c.Estimate(context.Background(), "two eggs", 180); !errors.Is(err, ErrNoAPIKey) {
		t.Fatalf("nil client err = %v, want ErrNoAPIKey", err)
	}
}
