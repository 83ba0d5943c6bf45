package errutil

import (
	"errors"
	"net/url"
)

// TransportMessage returns the message of a failed HTTP round trip without the request
// URL, which may carry credentials in its query string.
func TransportMessage(err error) string {
	if err == nil {
		return ""
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Err == nil {
			return urlErr.Op + " request failed"
		}
		return TransportMessage(urlErr.Err)
	}
	return err.Error()
}
