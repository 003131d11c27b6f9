package analyzer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/depgraph/model"
)

func TestDefault_ReturnsAllFiveAnalyzers(t *testing.T) {
	names := map[string]bool{}
	for _, a := range Default() {
		names[a.Name()] = true
	}
	assert.Len(t, names, 5)
	for _, want := range []string{"parameter-flow", "crud", "logical", "nested-resource", "constraint"} {
		assert.True(t, names[want], "missing analyzer %s", want)
	}
}

type failingAnalyzer struct{}

func (failingAnalyzer) Name() string { return "failing" }
func (failingAnalyzer) Analyze([]*model.Operation) ([]*Candidate, error) {
	return nil, errors.New("boom")
}

type panickingAnalyzer struct{}

func (panickingAnalyzer) Name() string { return "panicking" }
func (panickingAnalyzer) Analyze([]*model.Operation) ([]*Candidate, error) {
	panic("unexpected")
}

func TestRun_IsolatesAFailingAnalyzerFromItsSiblings(t *testing.T) {
	create := newPetOp("createPet", model.POST, "/pet")
	get := newPetOp("getPet", model.GET, "/pet/{petId}")

	result := Run(context.Background(), []*model.Operation{create, get}, WithAnalyzers(CRUD{}, failingAnalyzer{}))
	require.Error(t, result.Failed)
	assert.NotEmpty(t, result.Candidates)
}

func TestRun_RecoversAPanickingAnalyzer(t *testing.T) {
	create := newPetOp("createPet", model.POST, "/pet")
	get := newPetOp("getPet", model.GET, "/pet/{petId}")

	result := Run(context.Background(), []*model.Operation{create, get}, WithAnalyzers(CRUD{}, panickingAnalyzer{}))
	require.Error(t, result.Failed)
	assert.Contains(t, result.Failed.Error(), "panicked")
	assert.NotEmpty(t, result.Candidates)
}

func TestRun_CancelledContextFailsFast(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := Run(ctx, nil, WithAnalyzers(CRUD{}))
	assert.Error(t, result.Failed)
	assert.Empty(t, result.Candidates)
}
