// Package sl содержит вспомогательные функции для работы с логгером slog.
// Основная цель — упростить формирование структурированных полей лога,
// например, для передачи информации об ошибках и календарных датах.
package sl

import (
	"log/slog"
	"time"
)

// Err возвращает slog.Attr с ключом "error" и значением текста ошибки.
// Удобно использовать в логировании для единообразного вывода ошибок.
//
// Пример:
//
//	log.Error("failed to do something", sl.Err(err))
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}

// Date возвращает slog.Attr с календарной датой в формате YYYY-MM-DD.
// Ядро оперирует датами без времени суток, поэтому время в лог не пишется.
func Date(key string, t time.Time) slog.Attr {
	return slog.Attr{
		Key:   key,
		Value: slog.StringValue(t.Format("2006-01-02")),
	}
}
