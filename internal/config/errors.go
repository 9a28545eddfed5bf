package config

import "errors"

var (
	ErrUnknownBackend     = errors.New("неизвестный тип хранилища")
	ErrNoConnectionString = errors.New("не задана строка подключения к хранилищу")
	ErrNoStorageDir       = errors.New("не задана директория хранилища")
	ErrCompressionLevel   = errors.New("уровень сжатия должен быть от -1 до 9")
)
