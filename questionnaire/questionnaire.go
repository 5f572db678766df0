// Package questionnaire is the guided flow that helps a half-asleep user
// fill in a dream record: a fixed question sequence with multi-select
// options and free-text additions. It holds no persistence; on completion
// the caller receives the collected answers and does what it wants with
// them.
package questionnaire

import "strings"

// Question is one step of the flow.
type Question struct {
	ID      string
	Text    string
	Options []string
}

// Questions returns the default dream questionnaire.
func Questions() []Question {
	return []Question{
		{
			ID:      "place",
			Text:    "どこにいた？",
			Options: []string{"家", "学校", "職場", "外", "知らない場所", "空", "海", "山"},
		},
		{
			ID:      "people",
			Text:    "誰がいた？",
			Options: []string{"自分だけ", "家族", "友人", "恋人", "知らない人", "有名人", "動物"},
		},
		{
			ID:      "action",
			Text:    "何をしていた？",
			Options: []string{"歩く", "走る", "飛ぶ", "話す", "見てる", "逃げる", "探す", "食べる"},
		},
		{
			ID:      "feeling",
			Text:    "どんな気分だった？",
			Options: []string{"楽しい", "怖い", "悲しい", "不思議", "懐かしい", "焦る", "安心"},
		},
		{
			ID:      "object",
			Text:    "印象的だったものは？",
			Options: []string{"乗り物", "食べ物", "水", "火", "光", "闇", "鏡", "扉"},
		},
	}
}

// Session is one pass through a question list. Zero answers are fine at
// every step; nothing blocks on missing input. An empty question list is
// a session that completes immediately.
type Session struct {
	questions []Question
	index     int
	answers   map[string][]string
	canceled  bool
}

func NewSession(questions []Question) *Session {
	return &Session{
		questions: questions,
		answers:   make(map[string][]string),
	}
}

// Current returns the active question, or the zero Question once the
// session is canceled or has nothing to ask.
func (s *Session) Current() Question {
	if s.canceled || s.index >= len(s.questions) {
		return Question{}
	}
	return s.questions[s.index]
}

// Index returns the active question position.
func (s *Session) Index() int {
	return s.index
}

// Answers returns the collected answers for the active question, in the
// order they were given.
func (s *Session) Answers() []string {
	id := s.Current().ID
	if id == "" {
		return nil
	}
	return s.answers[id]
}

// Select toggles an option on the active question: selecting an already
// selected option deselects it.
func (s *Session) Select(option string) {
	id := s.Current().ID
	if id == "" {
		return
	}
	current := s.answers[id]
	for i, o := range current {
		if o == option {
			s.answers[id] = append(current[:i], current[i+1:]...)
			return
		}
	}
	s.answers[id] = append(current, option)
}

// AddCustom appends a free-text answer to the active question. Blank
// input is ignored.
func (s *Session) AddCustom(text string) {
	text = strings.TrimSpace(text)
	id := s.Current().ID
	if text == "" || id == "" {
		return
	}
	s.answers[id] = append(s.answers[id], text)
}

// Next advances to the following question. From the last question it
// instead returns the full answer mapping and true. After Cancel it only
// reports the session as over, never a result.
func (s *Session) Next() (map[string][]string, bool) {
	if s.canceled {
		return nil, true
	}
	if s.index >= len(s.questions)-1 {
		return s.answers, true
	}
	s.index++
	return nil, false
}

// Skip advances without requiring answers. It behaves exactly like Next;
// the difference is only in what the UI labels it.
func (s *Session) Skip() (map[string][]string, bool) {
	return s.Next()
}

// Back returns to the previous question, clamped at the first one.
// Already-entered answers are kept.
func (s *Session) Back() {
	if s.index > 0 {
		s.index--
	}
}

// Cancel exits the flow with no result, at any state. Collected answers
// are discarded; the caller gets nothing to persist.
func (s *Session) Cancel() {
	s.canceled = true
	s.answers = make(map[string][]string)
}
