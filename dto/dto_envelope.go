package dto

// Response envelope shared by every endpoint. end_point echoes the original
// request URL and method the HTTP verb, so clients can correlate cached
// responses with the call that produced them.

type Response struct {
	Status   string      `json:"status"    example:"success"`
	EndPoint string      `json:"end_point" example:"/api/salin-tempel/64f1c0ffee"`
	Method   string      `json:"method"    example:"GET"`
	Data     interface{} `json:"data"`
}

// ListResponse adds the pagination cursors. next/previous are absolute URLs
// or null; count is the collection total, not the page size.
type ListResponse struct {
	Status   string      `json:"status"    example:"success"`
	EndPoint string      `json:"end_point" example:"/api/salin-tempel?offset=0&limit=10"`
	Method   string      `json:"method"    example:"GET"`
	Data     interface{} `json:"data"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Count    int64       `json:"count"`
}

type FailResponse struct {
	Status   string   `json:"status"    example:"fail"`
	EndPoint string   `json:"end_point" example:"/api/salin-tempel"`
	Method   string   `json:"method"    example:"POST"`
	Message  string   `json:"message"   example:"Failed to create salin tempel."`
	Errors   []string `json:"errors,omitempty"`
}
