package gemini_test

import (
	"context"
	"testing"

	"github.com/gujnews/khabar"
	"github.com/gujnews/khabar/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_GenerateArticle_RequiresKeypoints(t *testing.T) {
	t.Parallel()

	g := gemini.NewGenerator(nil, "") // nil client ok for this test

	_, err := g.GenerateArticle(context.Background(), "", "source material")

	require.Error(t, err)
	assert.Equal(t, khabar.EINVALID, khabar.ErrorCode(err))
	assert.Contains(t, khabar.ErrorMessage(err), "keypoints required")
}

func TestBuildConfig(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.SystemInstruction)
	require.Len(t, config.SystemInstruction.Parts, 1)
	assert.Contains(t, config.SystemInstruction.Parts[0].Text, "Gujarati News Editor")
	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.7, float64(*config.Temperature), 0.001)
	assert.Equal(t, "application/json", config.ResponseMIMEType)
}
