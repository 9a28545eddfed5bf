package azureblob

import "errors"

var (
	ErrNoConnectionString = errors.New("не задана строка подключения к Azure Storage")
	ErrClientCreate       = errors.New("не удалось создать клиент Azure Storage")
	ErrTargetEmpty        = errors.New("контейнер и имя объекта не могут быть пустыми")
	ErrUploadFailed       = errors.New("не удалось загрузить объект в Azure Storage")
	ErrDownloadFailed     = errors.New("не удалось получить объект из Azure Storage")
	ErrBlobNotFound       = errors.New("объект не найден")
)
