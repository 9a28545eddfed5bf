package zip_service

import "errors"

var (
	ErrContextDone = errors.New("отмена контекста")

	// Ошибки входных данных: клиент прислал то, что нельзя упаковать.
	ErrInvalidDescriptor = errors.New("некорректное описание файла")
	ErrInvalidContent    = errors.New("содержимое файла не является корректной строкой base64")

	// Внутренние ошибки.
	ErrArchiveBuild = errors.New("не удалось собрать архив")
	ErrUpload       = errors.New("не удалось загрузить архив в хранилище")
)

// IsInvalidInput сообщает, вызвана ли ошибка данными запроса, а не сбоем сервиса.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidDescriptor) || errors.Is(err, ErrInvalidContent)
}
