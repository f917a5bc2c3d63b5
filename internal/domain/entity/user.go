package entity

// UserState состояние пользователя в диалоге
type UserState string

const (
	StateMainMenu      UserState = "main_menu"      // В главном меню
	StateAwaitingPhoto UserState = "awaiting_photo" // Ожидание фото платы
	StateProcessing    UserState = "processing"     // Обработка изображения
)

// User представляет пользователя бота
type User struct {
	ID     int64          // Telegram User ID
	ChatID int64          // Telegram Chat ID
	State  UserState      // Текущее состояние пользователя
	Option AnalysisOption // Выбранная опция анализа
}

// NewUser создаёт нового пользователя с начальным состоянием
func NewUser(userID, chatID int64) *User {
	return &User{
		ID:     userID,
		ChatID: chatID,
		State:  StateMainMenu,
		Option: OptionBoth,
	}
}

// SetState обновляет состояние пользователя
func (u *User) SetState(state UserState) {
	u.State = state
}

// SetOption запоминает выбранную опцию анализа
func (u *User) SetOption(option AnalysisOption) {
	u.Option = option
}
