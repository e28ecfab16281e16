package practicum

import (
	"errors"
	"testing"
)

func TestCheckResponseValid(t *testing.T) {
	t.Parallel()
	raw := map[string]any{
		"homeworks": []any{
			map[string]any{"homework_name": "hw1", "status": "reviewing"},
			map[string]any{"homework_name": "hw0", "status": "approved"},
		},
		"current_date": float64(1700000600),
	}

	page, err := CheckResponse(raw)
	if err != nil {
		t.Fatalf("CheckResponse: %v", err)
	}
	if len(page.Homeworks) != 2 {
		t.Fatalf("expected 2 homeworks, got %d", len(page.Homeworks))
	}
	if page.Homeworks[0].Name != "hw1" {
		t.Fatalf("first record = %+v, expected the list order preserved", page.Homeworks[0])
	}
	if page.CurrentDate != 1700000600 {
		t.Fatalf("CurrentDate = %d", page.CurrentDate)
	}
}

func TestCheckResponseEmptyList(t *testing.T) {
	t.Parallel()
	page, err := CheckResponse(map[string]any{
		"homeworks":    []any{},
		"current_date": float64(42),
	})
	if err != nil {
		t.Fatalf("CheckResponse: %v", err)
	}
	if len(page.Homeworks) != 0 {
		t.Fatalf("expected empty list, got %d records", len(page.Homeworks))
	}
	if page.CurrentDate != 42 {
		t.Fatalf("CurrentDate = %d, want 42", page.CurrentDate)
	}
}

func TestCheckResponseInvalid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		raw     map[string]any
		wantErr error
	}{
		{
			name:    "homeworks key missing",
			raw:     map[string]any{"current_date": float64(1)},
			wantErr: ErrIncorrectSchema,
		},
		{
			name:    "homeworks not a list",
			raw:     map[string]any{"homeworks": "nope", "current_date": float64(1)},
			wantErr: ErrMalformedResponse,
		},
		{
			name:    "element not an object",
			raw:     map[string]any{"homeworks": []any{"nope"}, "current_date": float64(1)},
			wantErr: ErrMalformedResponse,
		},
		{
			name: "element missing name",
			raw: map[string]any{
				"homeworks":    []any{map[string]any{"status": "approved"}},
				"current_date": float64(1),
			},
			wantErr: ErrMalformedResponse,
		},
		{
			name: "element missing status",
			raw: map[string]any{
				"homeworks":    []any{map[string]any{"homework_name": "hw"}},
				"current_date": float64(1),
			},
			wantErr: ErrMalformedResponse,
		},
		{
			name:    "current_date missing",
			raw:     map[string]any{"homeworks": []any{}},
			wantErr: ErrIncorrectSchema,
		},
		{
			name:    "current_date not a number",
			raw:     map[string]any{"homeworks": []any{}, "current_date": "soon"},
			wantErr: ErrMalformedResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := CheckResponse(tt.raw); !errors.Is(err, tt.wantErr) {
				t.Fatalf("CheckResponse error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
