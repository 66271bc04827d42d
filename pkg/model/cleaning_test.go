package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleaningReportString(t *testing.T) {
	report := &CleaningReport{}
	report.Append(CleaningAction{Stage: "column_names", Column: "city_name", Detail: `renamed from " City Name"`})
	report.Append(CleaningAction{Stage: "missing_values", Column: "age", Detail: "imputed 1 missing values with median 2"})
	report.Append(CleaningAction{Stage: "missing_values", Column: "status", Detail: `imputed 2 missing values with mode "active"`})
	report.Append(CleaningAction{Stage: "duplicate_rows", Detail: "found 1 duplicate rows"})

	want := `data cleaning report
====================

[column_names]
  city_name: renamed from " City Name"

[missing_values]
  age: imputed 1 missing values with median 2
  status: imputed 2 missing values with mode "active"

[duplicate_rows]
  found 1 duplicate rows
`

	assert.Equal(t, want, report.String())

	// same action sequence renders the same text
	assert.Equal(t, report.String(), report.String())
}

func TestCleaningReportEmpty(t *testing.T) {
	report := &CleaningReport{}
	assert.Contains(t, report.String(), "no actions recorded")
}

func TestActionsForStage(t *testing.T) {
	report := &CleaningReport{}
	report.Append(CleaningAction{Stage: "outliers", Column: "a", Detail: "first"})
	report.Append(CleaningAction{Stage: "cardinality", Column: "b", Detail: "other"})
	report.Append(CleaningAction{Stage: "outliers", Column: "c", Detail: "second"})

	actions := report.ActionsForStage("outliers")
	require.Len(t, actions, 2)
	assert.Equal(t, "first", actions[0].Detail)
	assert.Equal(t, "second", actions[1].Detail)

	assert.Empty(t, report.ActionsForStage("missing_values"))
}
