package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 312.5, Round2(312.499999999))
	assert.Equal(t, 0.33, Round2(1.0/3.0))
	assert.Equal(t, -2.68, Round2(-2.684))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "2500.00", FormatMoney(2500))
	assert.Equal(t, "312.50", FormatMoney(312.499999999))
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "8.0", FormatHours(8))
	assert.Equal(t, "7.5", FormatHours(7.5))
}

func TestEscapeTelegramMarkdown(t *testing.T) {
	assert.Equal(t, "обычный текст", EscapeTelegramMarkdown("обычный текст"))
	assert.Equal(t, "a\\_b\\*c\\`d\\[e", EscapeTelegramMarkdown("a_b*c`d[e"))
}
