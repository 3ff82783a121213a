package entity

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// InputKind discriminates the closed set of shapes an image can arrive in.
type InputKind int

const (
	InputBytes InputKind = iota
	InputDataURI
	InputRemoteURL
)

// RawImageInput is a tagged union over the three upload shapes: an owned
// byte buffer from a multipart form, an inline base64 data URI, or a
// reference to an image hosted elsewhere. It is constructed once by the
// caller and consumed once by the pipeline.
type RawImageInput struct {
	Kind InputKind

	Bytes    []byte
	Filename string
	MIME     string

	DataURI string

	RemoteURL string
}

func BytesInput(data []byte, filename, mime string) RawImageInput {
	return RawImageInput{Kind: InputBytes, Bytes: data, Filename: filename, MIME: mime}
}

func DataURIInput(uri string) RawImageInput {
	return RawImageInput{Kind: InputDataURI, DataURI: uri}
}

func RemoteURLInput(url string) RawImageInput {
	return RawImageInput{Kind: InputRemoteURL, RemoteURL: url}
}

// Payload resolves the raw bytes and MIME type of the input. Data URIs are
// base64 decoded here so validation and the fallback ladder can share one
// buffer. RemoteURL inputs carry no payload.
func (in RawImageInput) Payload() ([]byte, string, error) {
	switch in.Kind {
	case InputBytes:
		return in.Bytes, in.MIME, nil
	case InputDataURI:
		return decodeDataURI(in.DataURI)
	default:
		return nil, "", fmt.Errorf("input kind %d has no payload", in.Kind)
	}
}

// DeclaredSize reports the size used for validation, before any decoding.
// For data URIs this is the decoded length implied by the base64 payload;
// trailing padding is subtracted so the figure is exact at a limit boundary.
func (in RawImageInput) DeclaredSize() int64 {
	switch in.Kind {
	case InputBytes:
		return int64(len(in.Bytes))
	case InputDataURI:
		_, payload, ok := strings.Cut(in.DataURI, ",")
		if !ok {
			return 0
		}
		padding := len(payload) - len(strings.TrimRight(payload, "="))
		return int64(base64.StdEncoding.DecodedLen(len(payload)) - padding)
	default:
		return 0
	}
}

// DeclaredMIME reports the MIME type stated by the caller or embedded in the
// data URI header. It may be empty; the pipeline sniffs the content then.
func (in RawImageInput) DeclaredMIME() string {
	switch in.Kind {
	case InputBytes:
		return in.MIME
	case InputDataURI:
		header, _, ok := strings.Cut(in.DataURI, ",")
		if !ok {
			return ""
		}
		header = strings.TrimPrefix(header, "data:")
		mime, _, _ := strings.Cut(header, ";")
		return mime
	default:
		return ""
	}
}

func decodeDataURI(uri string) ([]byte, string, error) {
	header, payload, ok := strings.Cut(uri, ",")
	if !ok {
		return nil, "", fmt.Errorf("malformed data uri: missing payload separator")
	}
	header = strings.TrimPrefix(header, "data:")
	mime, enc, _ := strings.Cut(header, ";")
	if enc != "base64" {
		return nil, "", fmt.Errorf("malformed data uri: unsupported encoding %q", enc)
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("decoding data uri payload: %w", err)
	}
	return data, mime, nil
}
