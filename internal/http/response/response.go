// Package response содержит вспомогательные типы для формирования JSON-ответов.
// Все ошибки и служебные подтверждения отдаются в форме {"message": "..."}
// с локализованным текстом для интерфейса панели.
package response

// Message описывает тело ответа с единственным человекочитаемым сообщением.
type Message struct {
	Message string `json:"message"`
}

// Error возвращает тело ответа об ошибке с переданным сообщением.
func Error(msg string) Message {
	return Message{Message: msg}
}

// OK возвращает тело успешного ответа с переданным сообщением.
func OK(msg string) Message {
	return Message{Message: msg}
}
