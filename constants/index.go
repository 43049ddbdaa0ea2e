package constants

// Order lifecycle. Transitions only move forward along
// pending -> preparing -> ready -> served; cancelled is reachable
// from any non-terminal status.
const (
	STATUS_PENDING   = "pending"
	STATUS_PREPARING = "preparing"
	STATUS_READY     = "ready"
	STATUS_SERVED    = "served"
	STATUS_CANCELLED = "cancelled"
)

// shop_settings keys
const (
	SETTING_ADMIN_PIN        = "admin_pin"
	SETTING_VERIFICATION_PIN = "verification_pin"
)

// Fan-out event types, mirrored by the dashboard and tracking clients.
const (
	EVENT_INSERT = "INSERT"
	EVENT_UPDATE = "UPDATE"
	EVENT_DELETE = "DELETE"
)

const (
	ERROR_INTERNAL_ERROR    = "Internal server error"
	MISSING_LOGIN_INPUT     = "Missing login input"
	INVALID_PIN             = "Invalid PIN"
	ORDER_NOT_FOUND         = "Order not found"
	MENU_ITEM_NOT_FOUND     = "Menu item not found"
	SETTING_NOT_FOUND       = "Setting not found"
	VERIFICATION_FAILED     = "Invalid verification code"
	INVALID_TRANSITION      = "Invalid status transition"
	STATUS_CONFLICT         = "Order was updated by someone else"
	STORE_UNAVAILABLE       = "Store temporarily unavailable"
	DATA_INPUT_IS_NOT_VALID = "Input is not valid"
)
