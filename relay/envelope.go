package relay

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/codingconcepts/animerelay/models"
)

// Kind identifies which body a Response carries.
type Kind int

const (
	KindJSON Kind = iota
	KindPlainText
	KindBinary
)

func (k Kind) String() string {
	switch k {
	case KindJSON:
		return "json"
	case KindPlainText:
		return "text"
	case KindBinary:
		return "binary"
	default:
		return "unknown"
	}
}

// corsHeaders are attached to every Response, successful or not.
var corsHeaders = [][2]string{
	{"Access-Control-Allow-Origin", "*"},
	{"Access-Control-Allow-Methods", "GET, OPTIONS"},
	{"Access-Control-Allow-Headers", "Content-Type"},
}

// Response is the envelope every API result is returned in. Use JSON,
// PlainText or Binary to build one.
type Response struct {
	Kind        Kind
	Status      int
	ContentType string
	Body        []byte
}

// JSON returns a Response forwarding body as-is with an application/json
// content type. body is not validated.
func JSON(status int, body string) Response {
	return Response{
		Kind:        KindJSON,
		Status:      status,
		ContentType: "application/json",
		Body:        []byte(body),
	}
}

// PlainText returns a text/plain Response carrying message.
func PlainText(status int, message string) Response {
	return Response{
		Kind:        KindPlainText,
		Status:      status,
		ContentType: "text/plain",
		Body:        []byte(message),
	}
}

// Binary returns a Response forwarding body with the given content type.
func Binary(status int, contentType string, body []byte) Response {
	return Response{
		Kind:        KindBinary,
		Status:      status,
		ContentType: contentType,
		Body:        body,
	}
}

// ErrorResponse maps err onto a PlainText Response. The message is the
// error's text; the status follows its type.
func ErrorResponse(err error) Response {
	return PlainText(StatusOf(err), err.Error())
}

// StatusOf returns the HTTP status an error maps to.
func StatusOf(err error) int {
	var notFound *models.ErrNotFound
	var invalid *models.ErrInvalid
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &invalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Write serialises the Response. This is the only place headers are set, so
// all three kinds carry the same CORS headers.
func (r Response) Write(w http.ResponseWriter) error {
	h := w.Header()
	for _, kv := range corsHeaders {
		h.Set(kv[0], kv[1])
	}
	h.Set("Content-Type", r.ContentType)
	h.Set("Content-Length", strconv.Itoa(len(r.Body)))

	w.WriteHeader(r.Status)
	_, err := w.Write(r.Body)
	return err
}
