package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "ad***@isms.local", MaskEmail("admin@isms.local"))
	assert.Equal(t, "an***@example.com", MaskEmail("analyst@example.com"))
	// короткая локальная часть остаётся видимой целиком
	assert.Equal(t, "ab***@example.com", MaskEmail("ab@example.com"))
	// логины без домена маскируются полностью
	assert.Equal(t, "***", MaskEmail("operator"))
	assert.Equal(t, "***", MaskEmail("@example.com"))
	assert.Equal(t, "***", MaskEmail(""))
}
