package search

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
)

var (
	errInvalidImage  = errors.New("image is not valid base64 image data")
	errImageTooLarge = errors.New("image exceeds the size limit")
)

// decodes a raw base64 string or a data URL and sniffs its MIME type
func decodeImage(raw string) ([]byte, string, error) {
	raw = strings.TrimSpace(raw)
	declared := ""

	if strings.HasPrefix(raw, "data:") {
		header, payload, ok := strings.Cut(raw, ",")
		if !ok || !strings.HasSuffix(header, ";base64") {
			return nil, "", errInvalidImage
		}

		declared = strings.TrimSuffix(strings.TrimPrefix(header, "data:"), ";base64")
		raw = payload
	}

	if base64.StdEncoding.DecodedLen(len(raw)) > MaxImageBytes+2 {
		return nil, "", errImageTooLarge
	}

	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		// some clients strip padding
		data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(raw, "="))
		if err != nil {
			return nil, "", errInvalidImage
		}
	}

	if len(data) == 0 {
		return nil, "", errInvalidImage
	}

	if len(data) > MaxImageBytes {
		return nil, "", errImageTooLarge
	}

	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		if !strings.HasPrefix(declared, "image/") {
			return nil, "", errInvalidImage
		}

		// formats the sniffer does not know, e.g. heic
		mime = declared
	}

	return data, mime, nil
}
