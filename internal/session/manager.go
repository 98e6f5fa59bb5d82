package session

import (
	"log"
	"sync"

	"courierbot/internal/constants"
)

// TempAdviceData - временные данные диалога ИИ-советов: выбранная тема и
// ID сообщения с меню, которое редактируется по ходу диалога.
// TempAdviceData holds transient AI advice dialog data: the selected topic
// and the ID of the menu message edited throughout the dialog.
type TempAdviceData struct {
	Topic         string
	MenuMessageID int
}

// SessionManager управляет состояниями пользователей и временными данными диалогов.
// SessionManager manages user states and temporary dialog data.
type SessionManager struct {
	userStates     map[int64]string   // Ключ: chatID, Значение: текущее состояние (например, constants.STATE_SHIFT_INPUT) / Key: chatID, Value: current state
	userStateMutex sync.RWMutex       // Мьютекс для безопасного доступа к userStates и userHistory / Mutex for safe access to userStates and userHistory
	userHistory    map[int64][]string // Ключ: chatID, Значение: слайс строк состояний (история) / Key: chatID, Value: slice of state strings (history)

	tempAdvice      map[int64]TempAdviceData // Ключ: chatID пользователя / Key: user chatID
	tempAdviceMutex sync.RWMutex             // Мьютекс для безопасного доступа к tempAdvice / Mutex for safe access to tempAdvice
}

// NewSessionManager создает и возвращает новый экземпляр SessionManager.
// NewSessionManager creates and returns a new instance of SessionManager.
func NewSessionManager() *SessionManager {
	return &SessionManager{
		userStates:  make(map[int64]string),
		userHistory: make(map[int64][]string),
		tempAdvice:  make(map[int64]TempAdviceData),
	}
}

// --- Управление состоянием пользователя (User State) ---
// --- User State Management ---

// GetState возвращает текущее состояние пользователя.
// Если состояние для пользователя не установлено, возвращает STATE_IDLE.
// GetState returns the current user state.
// If no state is set for the user, returns STATE_IDLE.
func (sm *SessionManager) GetState(chatID int64) string {
	sm.userStateMutex.RLock()
	defer sm.userStateMutex.RUnlock()
	state, ok := sm.userStates[chatID]
	if !ok {
		return constants.STATE_IDLE // Состояние по умолчанию / Default state
	}
	return state
}

// SetState устанавливает новое состояние для пользователя и добавляет его в историю.
// SetState sets a new state for the user and adds it to history.
func (sm *SessionManager) SetState(chatID int64, state string) {
	sm.userStateMutex.Lock()
	defer sm.userStateMutex.Unlock()

	sm.userStates[chatID] = state
	if _, exists := sm.userHistory[chatID]; !exists {
		sm.userHistory[chatID] = []string{}
	}
	// Предотвращаем дублирование последнего состояния в истории, если оно такое же
	// Prevent duplication of the last state in history if it's the same
	historyLen := len(sm.userHistory[chatID])
	if historyLen == 0 || sm.userHistory[chatID][historyLen-1] != state {
		sm.userHistory[chatID] = append(sm.userHistory[chatID], state)
	}
	log.Printf("SessionManager.SetState: Состояние для chatID %d установлено: %s, история: %v", chatID, state, sm.userHistory[chatID])
}

// PopState удаляет последнее состояние из истории и устанавливает предыдущее как текущее.
// Возвращает новое текущее состояние. Если история пуста или содержит одно состояние, устанавливает STATE_IDLE.
// PopState removes the last state from history and sets the previous one as current.
// Returns the new current state. If history is empty or contains one state, sets STATE_IDLE.
func (sm *SessionManager) PopState(chatID int64) string {
	sm.userStateMutex.Lock()
	defer sm.userStateMutex.Unlock()

	history, ok := sm.userHistory[chatID]
	if ok && len(history) > 1 {
		// Удаляем последнее состояние из истории / Remove last state from history
		sm.userHistory[chatID] = history[:len(history)-1]
		// Новое текущее состояние - это теперь последнее в урезанной истории / New current state is now the last in the truncated history
		newState := sm.userHistory[chatID][len(sm.userHistory[chatID])-1]
		sm.userStates[chatID] = newState
		log.Printf("SessionManager.PopState: Для chatID %d новое состояние: %s, история: %v", chatID, newState, sm.userHistory[chatID])
		return newState
	}

	// Если история пуста или содержит только одно состояние (обычно IDLE), возвращаем IDLE
	// If history is empty or contains only one state (usually IDLE), return IDLE
	sm.userStates[chatID] = constants.STATE_IDLE
	sm.userHistory[chatID] = []string{constants.STATE_IDLE} // Сбрасываем историю к IDLE / Reset history to IDLE
	log.Printf("SessionManager.PopState: Для chatID %d история пуста или содержит одно состояние, установлено: %s", chatID, constants.STATE_IDLE)
	return constants.STATE_IDLE
}

// GetHistory возвращает копию истории состояний пользователя.
// GetHistory returns a copy of the user's state history.
func (sm *SessionManager) GetHistory(chatID int64) []string {
	sm.userStateMutex.RLock()
	defer sm.userStateMutex.RUnlock()
	if history, ok := sm.userHistory[chatID]; ok {
		// Возвращаем копию, чтобы избежать модификации оригинального слайса извне
		// Return a copy to avoid modifying the original slice from outside
		historyCopy := make([]string, len(history))
		copy(historyCopy, history)
		return historyCopy
	}
	return []string{} // Возвращаем пустой слайс, если истории нет / Return empty slice if no history
}

// ClearState сбрасывает состояние пользователя к STATE_IDLE и очищает его историю состояний.
// ClearState resets the user's state to STATE_IDLE and clears their state history.
func (sm *SessionManager) ClearState(chatID int64) {
	sm.userStateMutex.Lock()
	defer sm.userStateMutex.Unlock()
	sm.userStates[chatID] = constants.STATE_IDLE
	sm.userHistory[chatID] = []string{constants.STATE_IDLE} // Инициализируем историю с IDLE / Initialize history with IDLE
	log.Printf("SessionManager.ClearState: Состояние и история для chatID %d очищены (установлено в IDLE).", chatID)
}

// --- Управление временными данными советов (Temp Advice) ---
// --- Temp Advice Management ---

// GetTempAdvice возвращает временные данные диалога советов для пользователя.
// Если данных нет, возвращает пустой экземпляр TempAdviceData.
// GetTempAdvice returns temporary advice dialog data for the user.
// If no data exists, returns an empty TempAdviceData instance.
func (sm *SessionManager) GetTempAdvice(chatID int64) TempAdviceData {
	sm.tempAdviceMutex.RLock()
	defer sm.tempAdviceMutex.RUnlock()
	return sm.tempAdvice[chatID]
}

// UpdateTempAdvice обновляет временные данные диалога советов для пользователя.
// UpdateTempAdvice updates temporary advice dialog data for the user.
func (sm *SessionManager) UpdateTempAdvice(chatID int64, adviceData TempAdviceData) {
	sm.tempAdviceMutex.Lock()
	defer sm.tempAdviceMutex.Unlock()
	sm.tempAdvice[chatID] = adviceData
}

// ClearTempAdvice удаляет временные данные диалога советов для пользователя.
// ClearTempAdvice deletes temporary advice dialog data for the user.
func (sm *SessionManager) ClearTempAdvice(chatID int64) {
	sm.tempAdviceMutex.Lock()
	defer sm.tempAdviceMutex.Unlock()
	delete(sm.tempAdvice, chatID)
	log.Printf("SessionManager.ClearTempAdvice: Временные данные советов для chatID %d удалены.", chatID)
}
