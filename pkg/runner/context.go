package runner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"
)

const contextSeparator = "\n\n"

// MissingContextText is substituted for a context file that does not exist.
func MissingContextText(path string) string {
	return fmt.Sprintf("[missing context file: %s]", path)
}

// ReadContextFile reads one context file as UTF-8 text with line endings
// normalized to "\n". Only fs.ErrNotExist is recovered, as placeholder text.
func ReadContextFile(path string) (text string, missing bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return MissingContextText(path), true, nil
		}
		return "", false, fmt.Errorf("read context file %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return "", false, fmt.Errorf("read context file %s: invalid UTF-8 text", path)
	}
	text = strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return text, false, nil
}

// LoadContext reads every path in order and joins the texts with a blank line.
// No paths yields an empty string.
func LoadContext(paths []string) (string, error) {
	texts := make([]string, 0, len(paths))
	for _, p := range paths {
		text, _, err := ReadContextFile(p)
		if err != nil {
			return "", err
		}
		texts = append(texts, text)
	}
	return strings.Join(texts, contextSeparator), nil
}
