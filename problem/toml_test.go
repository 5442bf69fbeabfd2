package problem_test

import (
	"testing"

	"github.com/coderelay/backend/problem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCatalog = `
[[problems]]
id = "1"
label = "A"
number = 1
title = "Warmup"
description = "First problem"
max_points = 100

[[problems.sections]]
key = "A"
title = "Parsing"
points = 20

[[problems.sections]]
key = "B"
title = "Full solution"
points = 30

[[problems]]
id = "2"
label = "A"
number = 2
title = "Graphs"
max_points = 20

[[problems.sections]]
key = "A"
points = 20
`

func TestParseCatalog(t *testing.T) {
	problems, err := problem.ParseCatalog([]byte(sampleCatalog))
	require.NoError(t, err)
	require.Len(t, problems, 2)

	first := problems[0]
	assert.Equal(t, "1", first.ID)
	assert.Equal(t, "Warmup", first.Title)
	require.Len(t, first.Sections, 2)
	assert.Equal(t, "A", first.Sections[0].Key, "section order preserved")
	assert.Equal(t, "B", first.Sections[1].Key)
	assert.Equal(t, 30, first.Sections[1].Points)
}

func TestParseCatalogDerivesMaxPoints(t *testing.T) {
	problems, err := problem.ParseCatalog([]byte(`
[[problems]]
id = "1"

[[problems.sections]]
key = "A"
points = 30

[[problems.sections]]
key = "B"
`))
	require.NoError(t, err)
	require.Len(t, problems, 1)
	// 30 declared + 20 default for the unpriced section
	assert.Equal(t, 50, problems[0].MaxPoints)
}

func TestParseCatalogRejectsZeroSections(t *testing.T) {
	_, err := problem.ParseCatalog([]byte(`
[[problems]]
id = "1"
title = "Empty"
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no sections")
}

func TestParseCatalogRejectsDuplicateSectionKeys(t *testing.T) {
	_, err := problem.ParseCatalog([]byte(`
[[problems]]
id = "1"

[[problems.sections]]
key = "A"

[[problems.sections]]
key = "A"
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate section key")
}

func TestProblemSrvcLookups(t *testing.T) {
	problems, err := problem.ParseCatalog([]byte(sampleCatalog))
	require.NoError(t, err)
	srvc := problem.NewProblemSrvc(problems)

	p, ok := srvc.Get("1")
	require.True(t, ok)
	assert.Equal(t, "Warmup", p.Title)

	assert.True(t, srvc.HasSection("1", "B"))
	assert.False(t, srvc.HasSection("1", "Z"))
	assert.False(t, srvc.HasSection("404", "A"))

	specs := srvc.ProvisionSpecs()
	require.Len(t, specs, 2)
	assert.Equal(t, "1", specs[0].ProblemID)
	require.Len(t, specs[0].Sections, 2)
	assert.Equal(t, 30, specs[0].Sections[1].Points)
}
