package errors

import (
	"fmt"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil error",
			err:  nil,
			want: "",
		},
		{
			name: "simple error",
			err:  fmt.Errorf("something broke"),
			want: "Error: something broke",
		},
		{
			name: "wrapped error",
			err:  fmt.Errorf("outer: %w", fmt.Errorf("inner")),
			want: "Error: outer: inner",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.err); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatf(t *testing.T) {
	got := Formatf("habit %q not found", "caffeine")
	want := `Error: habit "caffeine" not found`
	if got != want {
		t.Errorf("Formatf() = %q, want %q", got, want)
	}
}
