package constants

// Состояния диалога с пользователем
// User dialog states
const (
	STATE_IDLE            = "idle"
	STATE_SHIFT_INPUT     = "shift_input"     // Ожидание блока данных смены / Waiting for the shift data block
	STATE_ORDER_INPUT     = "order_input"     // Ожидание блока данных заказа / Waiting for the order data block
	STATE_ADVICE_TOPIC    = "advice_topic"    // Выбор темы ИИ совета / Choosing an AI advice topic
	STATE_ADVICE_QUESTION = "advice_question" // Ожидание вопроса для ИИ совета / Waiting for the AI advice question
)

// Callback data главного меню и подменю
// Callback data for the main menu and submenus
const (
	CALLBACK_PROFILE       = "profile"
	CALLBACK_ADD_SHIFT     = "add_shift"
	CALLBACK_ADD_ORDER     = "add_order"
	CALLBACK_AI_ADVICE     = "ai_advice"
	CALLBACK_SERVICE_MENU  = "service_menu"
	CALLBACK_EXPORT_SHIFTS = "export_shifts"
	CALLBACK_SHARE_BOT     = "share_bot"
	CALLBACK_BACK_TO_MAIN  = "back_to_main"

	CALLBACK_PREFIX_SERVICE = "service_" // service_yandex_food и т.д.
)

// Темы ИИ советов (совпадают с callback data кнопок)
// AI advice topics (match button callback data)
const (
	ADVICE_TOPIC_OPTIMIZATION = "optimization"
	ADVICE_TOPIC_LEGAL        = "legal"
	ADVICE_TOPIC_NUTRITION    = "nutrition"
	ADVICE_TOPIC_VEHICLE      = "vehicle"
)

// Сервисы доставки
// Delivery services
const (
	SERVICE_YANDEX_EXPRESS = "yandex_express"
	SERVICE_YANDEX_FOOD    = "yandex_food"
	SERVICE_GLOVO          = "glovo"

	DEFAULT_SERVICE = SERVICE_YANDEX_FOOD
)

// ServiceNames сопоставляет ключ сервиса с отображаемым названием.
// ServiceNames maps a service key to its display name.
var ServiceNames = map[string]string{
	SERVICE_YANDEX_EXPRESS: "Яндекс Экспресс",
	SERVICE_YANDEX_FOOD:    "Яндекс Еда",
	SERVICE_GLOVO:          "Глово",
}

// Лимиты валидации данных смены
// Shift data validation limits
const (
	SHIFT_INPUT_LINES     = 5
	ORDER_INPUT_LINES     = 4
	MAX_ORDERS_PER_SHIFT  = 25
	MAX_SHIFT_EARNINGS    = 6000.0
	MIN_SHIFT_YEAR        = 2022
	SHIFT_DATE_LAYOUT     = "02.01.2006"
	SHIFT_TIME_LAYOUT     = "15:04"
	SHIFT_DATETIME_LAYOUT = "02.01.2006 15:04"
)

// Лимиты ИИ советов
// AI advice limits
const (
	MAX_ADVICE_PER_DAY      = 6
	MAX_ADVICE_QUESTION_LEN = 120
)

// Интервалы времени суток для детальной статистики (границы часов, включительно)
// Time-of-day bands for detailed statistics (hour bounds, inclusive)
const (
	TIME_OF_DAY_MORNING = "morning" // 06:00 - 11:59
	TIME_OF_DAY_DAY     = "day"     // 12:00 - 17:59
	TIME_OF_DAY_EVENING = "evening" // 18:00 - 23:59
	TIME_OF_DAY_NIGHT   = "night"   // 00:00 - 05:59
)

// Статусы заказов
// Order statuses
const (
	ORDER_STATUS_PENDING   = "pending"
	ORDER_STATUS_COMPLETED = "completed"
)
