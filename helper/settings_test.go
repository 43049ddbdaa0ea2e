package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateVerificationPin(t *testing.T) {
	for i := 0; i < 100; i++ {
		pin := GenerateVerificationPin()
		assert.Len(t, pin, 4)
		for _, r := range pin {
			assert.True(t, r >= '0' && r <= '9', "pin %q has non-digit", pin)
		}
		// never starts with zero so it always reads as four digits
		assert.NotEqual(t, byte('0'), pin[0])
	}
}
