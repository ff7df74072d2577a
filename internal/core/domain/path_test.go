package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stint/internal/core/domain"
)

func TestTaskPath(t *testing.T) {
	p := domain.NewTaskPath("/release/docs/")

	assert.Equal(t, "release/docs", p.String())
	assert.Equal(t, "docs", p.Base())
	assert.Equal(t, "release", p.Parent().String())
	assert.Equal(t, 1, p.Depth())
	assert.True(t, p.Parent().Parent().IsZero())
	assert.Equal(t, domain.NewTaskPath("release/docs"), p)
	assert.Equal(t, p, domain.NewTaskPath("release").Child("docs"))
	assert.Equal(t, domain.NewTaskPath("top"), domain.TaskPath{}.Child("top"))
}

func TestTaskPath_Zero(t *testing.T) {
	var p domain.TaskPath

	assert.True(t, p.IsZero())
	assert.Empty(t, p.String())
	assert.Equal(t, 0, p.Depth())
}

func TestTaskPathJSON(t *testing.T) {
	type wrapper struct {
		Path domain.TaskPath `json:"path"`
	}

	data, err := json.Marshal(wrapper{Path: domain.NewTaskPath("a/b")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"path":"a/b"}`, string(data))

	var out wrapper
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "a/b", out.Path.String())
}

func TestValidTaskName(t *testing.T) {
	assert.True(t, domain.ValidTaskName("docs"))
	assert.False(t, domain.ValidTaskName(""))
	assert.False(t, domain.ValidTaskName("  "))
	assert.False(t, domain.ValidTaskName("a/b"))
}
