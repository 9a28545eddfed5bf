package models

import "time"

// FileDescriptor.FileContent - указатель, чтобы отличить отсутствующее поле
// от пустой строки: пустая строка - корректный base64 для пустого файла.
type FileDescriptor struct {
	FileName    string  `json:"FileName,omitempty"`
	FileContent *string `json:"FileContent" validate:"required"`
}

type ArchiveEntry struct {
	Name string
	Data []byte
}

type UploadTarget struct {
	Container   string
	Blob        string
	ContentType string
}

// OrdersReadyTarget - единственное место назначения, куда загружается архив.
var OrdersReadyTarget = UploadTarget{
	Container:   "ordersready",
	Blob:        "files.zip",
	ContentType: "application/zip",
}

type StoredBlob struct {
	Container   string
	Name        string
	ContentType string
	Data        []byte
	UpdatedAt   time.Time
}
