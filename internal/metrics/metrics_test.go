package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestOutcome(t *testing.T) {
	c := WorkflowOutcomes.WithLabelValues("genre", "delete", ResultBlocked)
	before := testutil.ToFloat64(c)

	Outcome("genre", "delete", ResultBlocked)
	Outcome("genre", "delete", ResultBlocked)

	assert.Equal(t, before+2, testutil.ToFloat64(c))
}

func TestRegistryGathers(t *testing.T) {
	Outcome("bookinstance", "create", ResultCreated)

	n, err := testutil.GatherAndCount(Registry, "catalog_workflow_outcomes_total")
	assert.NoError(t, err)
	assert.Positive(t, n)
}
