package annc

import (
	"net/http"

	"github.com/coderelay/backend/srvcerror"
)

const ErrCodeContentEmpty = "announcement_content_empty"

func newErrContentEmpty() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeContentEmpty,
		"Announcement content must not be empty",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeAnncNotFound = "announcement_not_found"

func newErrAnncNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeAnncNotFound,
		"Announcement not found",
	).SetHttpStatusCode(http.StatusNotFound)
}
