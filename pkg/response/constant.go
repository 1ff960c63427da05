package response

const (
	MessageSuccess = "Success"

	ValidationErrorCode     = 1
	InternalServerErrorCode = 500

	DateTimeFormat = "2006-01-02 15:04:05"
)
