package scenerouter

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BrandonKowalski/scenerouter/pkg/scenerouter/internal"
	"github.com/BrandonKowalski/scenerouter/pkg/scenerouter/scene"
	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a declaration file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", ErrUnsupportedFormat
	}
}

// LoadScenes reads a declaration file and builds its scene tree.
//
// A TOML file looks like:
//
//	grouping = "stack"
//
//	[[scenes]]
//	key = "Home"
//
//	[[scenes]]
//	key = "main"
//	kind = "tabs"
//
//	  [[scenes.children]]
//	  key = "Feed"
//	  props = { title = "Feed" }
func LoadScenes(path string) (*scene.Node, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, NewLoadError("open", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewLoadError("read", path, err)
	}

	file, err := DecodeScenes(data, format)
	if err != nil {
		return nil, NewLoadError("decode", path, err)
	}

	grouping, err := scene.ParseGrouping(file.Grouping)
	if err != nil {
		return nil, NewLoadError("decode", path, err)
	}

	root, err := scene.Build(grouping, file.Scenes...)
	if err != nil {
		return nil, err
	}

	internal.GetInternalLogger().Debug("Loaded scenes", "path", path, "root", root.Key, "grouping", grouping.String())
	return root, nil
}

// DecodeScenes decodes declaration file contents. Unknown fields are
// rejected so typos in keys do not silently drop configuration.
func DecodeScenes(data []byte, format Format) (scene.File, error) {
	var file scene.File

	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &file)
		if err != nil {
			return file, err
		}
		for _, key := range md.Undecoded() {
			if !underProps(key) {
				return file, fmt.Errorf("unknown field %q", key.String())
			}
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&file); err != nil {
			return file, err
		}
	default:
		return file, ErrUnsupportedFormat
	}

	return file, nil
}

// underProps reports whether a TOML key sits inside a props table, whose
// contents are free-form.
func underProps(key toml.Key) bool {
	for _, part := range key {
		if part == "props" {
			return true
		}
	}
	return false
}
