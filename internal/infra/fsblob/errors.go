package fsblob

import "errors"

var (
	ErrBlobNotFound     = errors.New("объект не найден")
	ErrTargetEmpty      = errors.New("контейнер и имя объекта не могут быть пустыми")
	ErrInvalidName      = errors.New("недопустимое имя контейнера или объекта")
	ErrContextDone      = errors.New("отмена контекста")
	ErrMkdirFailed      = errors.New("не удалось создать директорию")
	ErrFileCreateFailed = errors.New("не удалось создать файл")
	ErrFileWriteFailed  = errors.New("не удалось записать файл")
	ErrFileReadFailed   = errors.New("не удалось прочитать файл")
	ErrRenameFailed     = errors.New("не удалось переименовать файл")
)
