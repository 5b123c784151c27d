package cron

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_JobRunsWithArgs(t *testing.T) {
	var got []string
	Register("registrytest", "@every 1h", func(args ...string) { got = args })
	defer Unregister("registrytest")

	j, ok := Jobs()["registrytest"]
	require.True(t, ok, "registrytest not listed")
	assert.Equal(t, "@every 1h", j.Schedule)

	j.Run("full")
	assert.Equal(t, []string{"full"}, got)
}

func TestRegister_DuplicateNamePanics(t *testing.T) {
	Register("dupjob", "@hourly", func(...string) {})
	defer Unregister("dupjob")
	assert.Panics(t, func() { Register("dupjob", "@daily", func(...string) {}) })
}

func TestJobs_ReturnsCopy(t *testing.T) {
	Register("copyjob", "@hourly", func(...string) {})
	defer Unregister("copyjob")

	jobs := Jobs()
	delete(jobs, "copyjob")
	_, ok := Jobs()["copyjob"]
	assert.True(t, ok)
}
