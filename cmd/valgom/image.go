package main

import (
	"encoding/base64"
	"net/http"
	"os"

	"github.com/pkg/errors"
)

// loadImage reads a JPEG or PNG file and encodes it as an inline data URL.
func loadImage(path string) (string, int64, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", 0, errors.Wrap(err, "failed to read image")
	}

	contentType := http.DetectContentType(raw)
	switch contentType {
	case "image/jpeg", "image/png":
	default:
		return "", 0, errors.Errorf("%s is %s, only JPEG and PNG photos are accepted", path, contentType)
	}

	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(raw), int64(len(raw)), nil
}
