package ports

import "io"

// StoragePort คือ interface สำหรับ object storage
// ทำให้เปลี่ยน storage provider ได้ง่าย (MinIO, R2, S3)
type StoragePort interface {
	// UploadFile อัปโหลดไฟล์ไปยัง storage
	// path: เส้นทางที่จะเก็บไฟล์ (เช่น "avatars/uuid.png")
	// return: URL ที่เข้าถึงไฟล์ได้
	UploadFile(file io.Reader, size int64, path string, contentType string) (string, error)

	// DeleteFile ลบไฟล์จาก storage
	DeleteFile(path string) error

	// GetFileURL รับ URL สำหรับเข้าถึงไฟล์
	GetFileURL(path string) string

	// GetProviderName ชื่อ provider (s3)
	GetProviderName() string
}
