package questionnaire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoQuestions() []Question {
	return []Question{
		{ID: "place", Text: "どこにいた？", Options: []string{"家", "海"}},
		{ID: "feeling", Text: "どんな気分だった？", Options: []string{"楽しい", "怖い"}},
	}
}

func TestSelect_ToggleIsIdempotentAfterTwoApplications(t *testing.T) {
	t.Parallel()

	s := NewSession(twoQuestions())
	s.Select("家")
	s.Select("海")
	require.Equal(t, []string{"家", "海"}, s.Answers())

	s.Select("家")
	assert.Equal(t, []string{"海"}, s.Answers())

	s.Select("家")
	assert.Equal(t, []string{"海", "家"}, s.Answers())
}

func TestAddCustom_TrimsAndIgnoresBlank(t *testing.T) {
	t.Parallel()

	s := NewSession(twoQuestions())
	s.AddCustom("  屋上  ")
	s.AddCustom("   ")
	assert.Equal(t, []string{"屋上"}, s.Answers())
}

func TestNextAndSkip_AdvanceWithoutAnswers(t *testing.T) {
	t.Parallel()

	s := NewSession(twoQuestions())
	_, done := s.Next()
	assert.False(t, done)
	assert.Equal(t, 1, s.Index())

	// Skip behaves exactly like next at the last question: it completes.
	answers, done := s.Skip()
	assert.True(t, done)
	assert.NotNil(t, answers)
}

func TestComplete_EmitsCollectedMapping(t *testing.T) {
	t.Parallel()

	s := NewSession(twoQuestions())
	s.Select("家")
	s.AddCustom("屋上")
	s.Next()
	s.Select("怖い")

	answers, done := s.Next()
	require.True(t, done)
	assert.Equal(t, []string{"家", "屋上"}, answers["place"])
	assert.Equal(t, []string{"怖い"}, answers["feeling"])
}

func TestBack_ClampsAtZeroAndKeepsAnswers(t *testing.T) {
	t.Parallel()

	s := NewSession(twoQuestions())
	s.Select("家")
	s.Next()
	s.Select("楽しい")

	s.Back()
	assert.Equal(t, 0, s.Index())
	assert.Equal(t, []string{"家"}, s.Answers())

	s.Back()
	assert.Equal(t, 0, s.Index(), "back clamps at the first question")

	// The answer entered on the second question survived the back step.
	s.Next()
	assert.Equal(t, []string{"楽しい"}, s.Answers())
}

func TestCancel_DiscardsAnswersAtAnyState(t *testing.T) {
	t.Parallel()

	s := NewSession(twoQuestions())
	s.Select("家")
	s.Next()
	s.Select("怖い")

	s.Cancel()

	assert.Empty(t, s.Answers(), "canceled session keeps nothing")
	answers, done := s.Next()
	assert.True(t, done, "a canceled session is over")
	assert.Nil(t, answers, "cancel never yields a result")

	// Late input is inert too.
	s.Select("楽しい")
	s.AddCustom("屋上")
	answers, _ = s.Next()
	assert.Nil(t, answers)
}

func TestCancel_OnFirstQuestion(t *testing.T) {
	t.Parallel()

	s := NewSession(twoQuestions())
	s.Cancel()

	answers, done := s.Next()
	assert.True(t, done)
	assert.Nil(t, answers)
	assert.Equal(t, Question{}, s.Current())
}

func TestEmptyQuestionList_CompletesImmediately(t *testing.T) {
	t.Parallel()

	s := NewSession(nil)

	assert.Equal(t, Question{}, s.Current())
	assert.Empty(t, s.Answers())
	s.Select("家")
	s.AddCustom("屋上")

	answers, done := s.Next()
	require.True(t, done)
	assert.Empty(t, answers)
}

func TestDefaultQuestions(t *testing.T) {
	t.Parallel()

	qs := Questions()
	require.Len(t, qs, 5)
	assert.Equal(t, "place", qs[0].ID)
	assert.Equal(t, "object", qs[4].ID)
	for _, q := range qs {
		assert.NotEmpty(t, q.Text)
		assert.NotEmpty(t, q.Options)
	}
}
