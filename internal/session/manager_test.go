package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"courierbot/internal/constants"
)

func TestGetState_DefaultIdle(t *testing.T) {
	sm := NewSessionManager()
	assert.Equal(t, constants.STATE_IDLE, sm.GetState(100))
}

func TestSetStateAndHistory(t *testing.T) {
	sm := NewSessionManager()

	sm.SetState(100, constants.STATE_ADVICE_TOPIC)
	sm.SetState(100, constants.STATE_ADVICE_QUESTION)

	assert.Equal(t, constants.STATE_ADVICE_QUESTION, sm.GetState(100))
	assert.Equal(t, []string{constants.STATE_ADVICE_TOPIC, constants.STATE_ADVICE_QUESTION}, sm.GetHistory(100))
}

func TestSetState_NoDuplicateHistoryEntry(t *testing.T) {
	sm := NewSessionManager()

	sm.SetState(100, constants.STATE_SHIFT_INPUT)
	sm.SetState(100, constants.STATE_SHIFT_INPUT)

	assert.Equal(t, []string{constants.STATE_SHIFT_INPUT}, sm.GetHistory(100))
}

func TestPopState(t *testing.T) {
	sm := NewSessionManager()

	sm.SetState(100, constants.STATE_ADVICE_TOPIC)
	sm.SetState(100, constants.STATE_ADVICE_QUESTION)

	assert.Equal(t, constants.STATE_ADVICE_TOPIC, sm.PopState(100))
	assert.Equal(t, constants.STATE_ADVICE_TOPIC, sm.GetState(100))

	// История исчерпана - возврат к IDLE.
	assert.Equal(t, constants.STATE_IDLE, sm.PopState(100))
	assert.Equal(t, constants.STATE_IDLE, sm.GetState(100))
}

func TestPopState_EmptyHistory(t *testing.T) {
	sm := NewSessionManager()
	assert.Equal(t, constants.STATE_IDLE, sm.PopState(100))
}

func TestClearState(t *testing.T) {
	sm := NewSessionManager()

	sm.SetState(100, constants.STATE_SHIFT_INPUT)
	sm.ClearState(100)

	assert.Equal(t, constants.STATE_IDLE, sm.GetState(100))
	assert.Equal(t, []string{constants.STATE_IDLE}, sm.GetHistory(100))
}

func TestStatesAreIsolatedPerChat(t *testing.T) {
	sm := NewSessionManager()

	sm.SetState(100, constants.STATE_SHIFT_INPUT)
	assert.Equal(t, constants.STATE_IDLE, sm.GetState(200))
}

func TestTempAdviceLifecycle(t *testing.T) {
	sm := NewSessionManager()

	assert.Equal(t, TempAdviceData{}, sm.GetTempAdvice(100))

	sm.UpdateTempAdvice(100, TempAdviceData{Topic: constants.ADVICE_TOPIC_LEGAL, MenuMessageID: 55})
	adviceData := sm.GetTempAdvice(100)
	assert.Equal(t, constants.ADVICE_TOPIC_LEGAL, adviceData.Topic)
	assert.Equal(t, 55, adviceData.MenuMessageID)

	sm.ClearTempAdvice(100)
	assert.Equal(t, TempAdviceData{}, sm.GetTempAdvice(100))
}

func TestGetHistory_ReturnsCopy(t *testing.T) {
	sm := NewSessionManager()
	sm.SetState(100, constants.STATE_SHIFT_INPUT)

	history := sm.GetHistory(100)
	history[0] = "mutated"

	assert.Equal(t, []string{constants.STATE_SHIFT_INPUT}, sm.GetHistory(100))
}
