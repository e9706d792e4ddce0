package submission

import "encoding/json"

// Receipt ответ приемника заявок
// Содержимое тела не интерпретируется, важен только корректный JSON
type Receipt struct {
	StatusCode int
	Body       json.RawMessage
}
