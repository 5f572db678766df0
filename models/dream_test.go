package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetContent_SplitsAndTrims(t *testing.T) {
	t.Parallel()

	rec := NewDreamRecord(nil)
	rec.SetContent("  空を飛ぶ \n\n 追いかけられた \n")

	assert.Equal(t, []string{"空を飛ぶ", "追いかけられた"}, rec.Tokens)
	assert.Equal(t, "空を飛ぶ\n追いかけられた", rec.Content())
}

func TestApplyAnalysis_OverwritesPrevious(t *testing.T) {
	t.Parallel()

	rec := NewDreamRecord([]string{"夢"})
	rec.ApplyAnalysis("最初の分析", 1, "h1")
	rec.ApplyAnalysis("二回目の分析", 2, "h2")

	assert.Equal(t, "二回目の分析", rec.LastAnalysis)
	assert.Equal(t, 2, rec.AnalysisCount)
	assert.Equal(t, "h2", rec.LastContentHash)
}

func TestRemoveImage_RemovesExactlyOneKeepsOrder(t *testing.T) {
	t.Parallel()

	rec := NewDreamRecord([]string{"夢"})
	a := NewDreamImage("data:a", ImageSourceUser)
	b := NewDreamImage("data:b", ImageSourceAI)
	c := NewDreamImage("data:c", ImageSourceUser)
	rec.AddImage(a)
	rec.AddImage(b)
	rec.AddImage(c)

	require.True(t, rec.RemoveImage(b.ID))

	require.Len(t, rec.Images, 2)
	assert.Equal(t, a.ID, rec.Images[0].ID)
	assert.Equal(t, c.ID, rec.Images[1].ID)
	for _, img := range rec.Images {
		assert.NotEqual(t, b.ID, img.ID)
	}
}

func TestRemoveImage_UnknownID(t *testing.T) {
	t.Parallel()

	rec := NewDreamRecord([]string{"夢"})
	rec.AddImage(NewDreamImage("data:a", ImageSourceUser))

	assert.False(t, rec.RemoveImage("nope"))
	assert.Len(t, rec.Images, 1)
}

func TestHooks_RoundtripRawColumns(t *testing.T) {
	t.Parallel()

	rec := NewDreamRecord([]string{"断片", "その2"})
	rec.AddImage(NewDreamImage("data:x", ImageSourceAI))
	require.NoError(t, rec.BeforeSave())

	loaded := &DreamRecord{TokensRaw: rec.TokensRaw, ImagesRaw: rec.ImagesRaw}
	require.NoError(t, loaded.AfterFind())

	assert.Equal(t, rec.Tokens, loaded.Tokens)
	require.Len(t, loaded.Images, 1)
	assert.Equal(t, rec.Images[0].ID, loaded.Images[0].ID)
}
