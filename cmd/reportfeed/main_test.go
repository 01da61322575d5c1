package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestGetEnv verifies string environment overrides and defaults
func TestGetEnv(t *testing.T) {
	assert.Equal(t, "fallback", getEnv("REPORTFEED_TEST_UNSET", "fallback"))

	t.Setenv("REPORTFEED_OUTPUT", "custom.xml")
	assert.Equal(t, "custom.xml", getEnv("REPORTFEED_OUTPUT", "feed.xml"))
}

// TestGetEnvInt verifies integer environment overrides, including the
// candidate cap knob, and that malformed values fall back to the default
func TestGetEnvInt(t *testing.T) {
	assert.Equal(t, 0, getEnvInt("REPORTFEED_CANDIDATE_CAP", 0))

	t.Setenv("REPORTFEED_CANDIDATE_CAP", "25")
	assert.Equal(t, 25, getEnvInt("REPORTFEED_CANDIDATE_CAP", 0))

	t.Setenv("REPORTFEED_CANDIDATE_CAP", "plenty")
	assert.Equal(t, 0, getEnvInt("REPORTFEED_CANDIDATE_CAP", 0))
}

// TestGetEnvDuration verifies duration environment overrides
func TestGetEnvDuration(t *testing.T) {
	assert.Equal(t, time.Minute, getEnvDuration("REPORTFEED_TIMEOUT", time.Minute))

	t.Setenv("REPORTFEED_TIMEOUT", "45s")
	assert.Equal(t, 45*time.Second, getEnvDuration("REPORTFEED_TIMEOUT", time.Minute))
}

// TestGetEnvBool verifies boolean environment overrides
func TestGetEnvBool(t *testing.T) {
	assert.False(t, getEnvBool("REPORTFEED_FAIL_ON_EMPTY", false))

	t.Setenv("REPORTFEED_FAIL_ON_EMPTY", "true")
	assert.True(t, getEnvBool("REPORTFEED_FAIL_ON_EMPTY", false))

	t.Setenv("REPORTFEED_FAIL_ON_EMPTY", "maybe")
	assert.False(t, getEnvBool("REPORTFEED_FAIL_ON_EMPTY", false))
}
