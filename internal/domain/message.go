package domain

// Advisory message codes returned on slot search results.
// "No valid slot" conditions are advisory, not errors (a legitimate empty
// result), so they travel as coded messages instead of Go errors.
const (
	CodeInvalidDoorGroup    = "INVALID_DOORGROUP"
	CodeNoDefaultDoorGroup  = "NO_DEFAULT_DOOR_GROUP"
	CodeSameDockRestriction = "SAME_DOCK_RESTRICTION"
	CodeDockDateThreshold   = "DOCK_DATE_THRESHOLD"
	CodeDockCutoff          = "DOCK_CUTOFF"
)

// Message коды и тексты рекомендательных сообщений движка
type Message struct {
	Code string
	Text string
}

// NewMessage создает сообщение с кодом и текстом
func NewMessage(code, text string) Message {
	return Message{Code: code, Text: text}
}
