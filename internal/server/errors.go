package server

import (
	"errors"
	"net/http"

	"github.com/thomas/portfolio-cms/internal/content"
	"github.com/thomas/portfolio-cms/internal/schemas"
)

// HTTPStatus returns the appropriate HTTP status code for a store or
// validation error.
func HTTPStatus(err error) int {
	var notFound *content.ErrItemNotFound
	var catNotFound *content.ErrCategoryNotFound
	var catExists *content.ErrCategoryExists
	var outOfRange *content.ErrIndexOutOfRange
	var unknownSection *content.ErrUnknownSection
	var validation *schemas.ValidationError

	switch {
	case errors.As(err, &notFound), errors.As(err, &catNotFound):
		return http.StatusNotFound
	case errors.As(err, &catExists):
		return http.StatusConflict
	case errors.As(err, &outOfRange), errors.As(err, &unknownSection), errors.As(err, &validation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
