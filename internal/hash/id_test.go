package hash

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestID(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty string", "", 0xef46db3751d8e999},
		{"short string", "test", 0x4fdcca5ddb678139},
		{"long string", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, ID(tt.data))
		})
	}
}

func TestUnitID(t *testing.T) {
	assert.Equal(t, ID("position/Meter"), UnitID("Position", "Meter"))
	assert.Equal(t, UnitID("Position", "Foot"), UnitID("POSITION", "Foot"))
	assert.NotEqual(t, UnitID("Position", "Foot"), UnitID("Position", "foot"))
	assert.NotEqual(t, UnitID("Position", "Meter"), UnitID("Velocity", "Meter"))
}

func randString(n int) string {
	const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	b := make([]byte, n)
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := range b {
		b[i] = letters[seededRand.Intn(len(letters))]
	}

	return string(b)
}

func BenchmarkUnitID(b *testing.B) {
	category := randString(10)
	unit := randString(12)
	b.ResetTimer()
	for b.Loop() {
		UnitID(category, unit)
	}
}
