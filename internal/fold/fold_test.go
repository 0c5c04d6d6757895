package fold

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		same bool
	}{
		{"ascii case", "Length", "LENGTH", true},
		{"mixed", "lEnGtH", "length", true},
		{"different", "Length", "Time", false},
		{"greek", "ΘΕΡΜΟΚΡΑΣΙΑ", "θερμοκρασια", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.same, Key(tt.a) == Key(tt.b))
			assert.Equal(t, tt.same, Equal(tt.a, tt.b))
		})
	}
}
