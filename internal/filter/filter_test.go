package filter

import (
	"reflect"
	"testing"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name       string
		data       any
		expression string
		want       any
		wantErr    bool
	}{
		{
			name:       "empty expression returns data unchanged",
			data:       map[string]string{"path": "app.js"},
			expression: "",
			want:       map[string]string{"path": "app.js"},
		},
		{
			name:       "select field",
			data:       map[string]any{"path": "app.js", "lines": 42},
			expression: ".path",
			want:       "app.js",
		},
		{
			name:       "select nested field",
			data:       map[string]any{"plan": map[string]any{"linesKept": 30}},
			expression: ".plan.linesKept",
			want:       30,
		},
		{
			name:       "array index",
			data:       map[string]any{"tail": []any{"a", "b", "c"}},
			expression: ".tail[0]",
			want:       "a",
		},
		{
			name: "map over array",
			data: map[string]any{"findings": []any{
				map[string]any{"path": "app.js"},
				map[string]any{"path": "editor.js"},
			}},
			expression: ".findings[].path",
			want:       []any{"app.js", "editor.js"},
		},
		{
			name:       "invalid expression",
			data:       map[string]string{"path": "app.js"},
			expression: ".invalid[",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(tt.data, tt.expression)
			if (err != nil) != tt.wantErr {
				t.Errorf("Apply() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Apply() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyToJSON(t *testing.T) {
	input := []byte(`{"findings":[{"path":"app.js"},{"path":"editor.js"}]}`)

	result, err := ApplyToJSON(input, ".findings[].path")
	if err != nil {
		t.Fatalf("ApplyToJSON() error = %v", err)
	}

	expected := `[
  "app.js",
  "editor.js"
]`
	if string(result) != expected {
		t.Errorf("ApplyToJSON() = %s, want %s", result, expected)
	}
}

func TestApplyToJSON_EmptyExpressionPassesThrough(t *testing.T) {
	input := []byte(`{"path":"app.js"}`)

	result, err := ApplyToJSON(input, "")
	if err != nil {
		t.Fatalf("ApplyToJSON() error = %v", err)
	}
	if string(result) != string(input) {
		t.Errorf("ApplyToJSON() = %s, want input unchanged", result)
	}
}
