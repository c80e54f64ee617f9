package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	// Register should be safe to call multiple times
	Register()
	Register()

	assert.NotPanics(t, func() {
		IncHTTP("test_endpoint")
		IncInquiry("pending")
		IncConfirmation("confirmed")
		IncCorruptLedgerRecord("pending")
		IncSearchQuery("hit")
	})
}
