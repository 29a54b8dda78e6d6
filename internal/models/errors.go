package models

import "errors"

// Доменные ошибки ядра. Сервисы оборачивают их через fmt.Errorf("%s: %w", op, err),
// поэтому проверять ошибку нужно через errors.Is.
var (
	// ErrPlantNotFound возвращается, когда операция ссылается на идентификатор
	// растения, отсутствующий в каталоге или в коллекции пользователя.
	ErrPlantNotFound = errors.New("plant not found")

	// ErrAlreadyWatered возвращается при повторной попытке полить растение
	// в тот же день. Операция полива идемпотентна в пределах одного дня.
	ErrAlreadyWatered = errors.New("plant already watered on this day")

	// ErrInvalidRange возвращается, когда у диапазона предпочтений нижняя
	// граница больше верхней или границы выходят за пределы шкалы.
	ErrInvalidRange = errors.New("invalid preference range")

	// ErrInvalidArgument возвращается при некорректном аргументе операции,
	// например пустом имени пользователя или нулевой дате.
	ErrInvalidArgument = errors.New("invalid argument")
)
