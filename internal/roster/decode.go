package roster

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/spec-kit/buddy-service/pkg/util/errorutil"
)

// Format names a serialized roster encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromFilename picks the format from a file extension.
func FormatFromFilename(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", errorutil.NewDomainError(CodeUnsupportedFormat,
			"please choose a .json, .yaml or .yml roster file", http.StatusBadRequest,
			map[string]any{"file": filepath.Base(name)})
	}
}

// FormatFromContentType maps an HTTP content type, defaulting to JSON.
func FormatFromContentType(contentType string) Format {
	if strings.Contains(strings.ToLower(contentType), "yaml") {
		return FormatYAML
	}
	return FormatJSON
}

// Decode reads a roster document, keeping key order so that normalization is
// deterministic for a given file.
func Decode(r io.Reader, format Format) (Object, error) {
	var (
		root any
		err  error
	)
	switch format {
	case FormatYAML:
		root, err = decodeYAML(r)
	case FormatJSON, "":
		format = FormatJSON
		root, err = decodeJSON(r)
	default:
		return nil, errorutil.NewDomainError(CodeUnsupportedFormat,
			fmt.Sprintf("unsupported roster format %q", format), http.StatusBadRequest, nil)
	}
	if err != nil {
		return nil, parseFailed(format, err)
	}
	obj, ok := root.(Object)
	if !ok {
		return nil, parseFailed(format, errors.New("top level must be an object of departments"))
	}
	return obj, nil
}

// DecodeBytes is Decode over an in-memory document.
func DecodeBytes(data []byte, format Format) (Object, error) {
	return Decode(bytes.NewReader(data), format)
}

func decodeJSON(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	value, err := decodeJSONValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level value")
	}
	return value, nil
}

func decodeJSONValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}
	switch delim {
	case '{':
		obj := Object{}
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("object key %v is not a string", keyTok)
			}
			value, err := decodeJSONValue(dec)
			if err != nil {
				return nil, err
			}
			obj = obj.set(key, value)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return obj, nil
	case '[':
		list := []any{}
		for dec.More() {
			value, err := decodeJSONValue(dec)
			if err != nil {
				return nil, err
			}
			list = append(list, value)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return list, nil
	default:
		return nil, fmt.Errorf("unexpected delimiter %q", delim)
	}
}

func decodeYAML(r io.Reader) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errors.New("empty document")
	}
	return convertYAML(doc.Content[0])
}

func convertYAML(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.AliasNode:
		return convertYAML(node.Alias)
	case yaml.MappingNode:
		obj := Object{}
		for i := 0; i+1 < len(node.Content); i += 2 {
			value, err := convertYAML(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			obj = obj.set(node.Content[i].Value, value)
		}
		return obj, nil
	case yaml.SequenceNode:
		list := make([]any, 0, len(node.Content))
		for _, child := range node.Content {
			value, err := convertYAML(child)
			if err != nil {
				return nil, err
			}
			list = append(list, value)
		}
		return list, nil
	case yaml.ScalarNode:
		var value any
		if err := node.Decode(&value); err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Line, err)
		}
		return value, nil
	default:
		return nil, fmt.Errorf("line %d: unsupported yaml node", node.Line)
	}
}
