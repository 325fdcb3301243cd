package dto

// Response is the envelope every endpoint answers with. Status is
// "OK" on success and a short error tag otherwise; Body is omitted
// when an operation has nothing to return.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Body    any    `json:"body,omitempty"`
}

// OK wraps a body in a success envelope.
func OK(body any) Response {
	return Response{Status: "OK", Body: body}
}

// OKOnly returns a success envelope without a body.
func OKOnly() Response {
	return Response{Status: "OK"}
}

// Error wraps an error in the envelope.
func Error(status, message string) Response {
	return Response{Status: status, Message: message}
}
