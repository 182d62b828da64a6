package format

import (
	"io"

	"github.com/dhamidi/rdom/dom"
	"gopkg.in/yaml.v3"
)

type YAMLEncoder struct {
	w    io.Writer
	node dom.Node
}

func NewYAMLEncoder(w io.Writer) *YAMLEncoder {
	return &YAMLEncoder{w: w}
}

func (e *YAMLEncoder) Encode(n dom.Node) error {
	e.node = n
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *YAMLEncoder) MarshalText() ([]byte, error) {
	return yaml.Marshal(describe(e.node))
}
