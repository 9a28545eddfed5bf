package inmem

import "errors"

var (
	ErrBlobNotFound = errors.New("объект не найден")
	ErrTargetEmpty  = errors.New("контейнер и имя объекта не могут быть пустыми")
	ErrContextDone  = errors.New("отмена контекста")
)
