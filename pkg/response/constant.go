package response

const (
	StatusSuccess = "success"
	StatusError   = "error"

	DefaultErrorMessage = "Something went wrong"
)
