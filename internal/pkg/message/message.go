package message

const (
	InvalidInput    = "Invalid input."
	TooManyRequests = "Too many requests."
	RequestCanceled = "Request cancelled or timed out."

	FmtErrStatusCode = "rec.Code = %d, want: %d"
)
