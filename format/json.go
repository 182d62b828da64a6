package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/rdom/dom"
)

type JSONEncoder struct {
	w    io.Writer
	node dom.Node
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(n dom.Node) error {
	e.node = n
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	text, err := json.MarshalIndent(describe(e.node), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(text, '\n'), nil
}
