package cmd

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/aws/aws-sdk-go/private/protocol/json/jsonutil" // AWS wire format JSON.
	"github.com/pkg/errors"
)

// WriteJSON writes v to w as indented JSON, in the same form the
// Elasticsearch Service client sends and receives it. Unset fields
// are omitted.
func WriteJSON(w io.Writer, v interface{}) error {
	b, err := jsonutil.BuildJSON(v)
	if err != nil {
		return errors.Wrap(err, "error encoding JSON")
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, b, "", "  "); err != nil {
		return errors.Wrap(err, "error encoding JSON")
	}
	buf.WriteByte('\n')
	_, err = buf.WriteTo(w)
	return err
}
