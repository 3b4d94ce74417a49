// Package envfile reads and patches dotenv-style files. The injection engine
// sources its feature toggles from the project .env, so parsing must accept
// the common dialect: comments, export prefixes, and quoted values.
package envfile

import (
	"bufio"
	"fmt"
	"sort"
	"strings"

	"github.com/pagecraft/build-layer/internal/messages"
)

// Parse reads .env content into a key-value map.
// content is the raw file content; returns parsed key/value pairs or an error.
func Parse(content string) (map[string]string, error) {
	env := make(map[string]string)
	if content == "" {
		return env, nil
	}

	scanner := bufio.NewScanner(strings.NewReader(content))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		key, value, ok, err := parseLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf(messages.EnvfileLineErrorFmt, lineNo, err)
		}
		if !ok {
			continue
		}
		env[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf(messages.EnvfileReadFailedFmt, err)
	}
	return env, nil
}

// Patch updates .env content with the provided key/value pairs.
// Existing keys are rewritten in place; missing keys are appended. Keys with
// empty values are skipped. Returns the patched content.
func Patch(content string, updates map[string]string) string {
	var lines []string
	if content != "" {
		lines = strings.Split(content, "\n")
	}

	remaining := make(map[string]string, len(updates))
	for key, value := range updates {
		if value != "" {
			remaining[key] = value
		}
	}

	for i, line := range lines {
		key, _, ok, err := parseLine(line)
		if err != nil || !ok {
			continue
		}
		value, pending := remaining[key]
		if !pending {
			continue
		}
		lines[i] = key + "=" + encodeValue(value)
		delete(remaining, key)
	}

	if len(remaining) > 0 {
		if len(lines) > 0 && lines[len(lines)-1] != "" {
			lines = append(lines, "")
		}
		for _, key := range sortedKeys(remaining) {
			lines = append(lines, key+"="+encodeValue(remaining[key]))
		}
	}

	return strings.Join(lines, "\n")
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// parseLine parses a single .env line and returns key/value when present.
func parseLine(line string) (string, string, bool, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false, nil
	}
	trimmed = strings.TrimSpace(strings.TrimPrefix(trimmed, "export "))
	idx := strings.Index(trimmed, "=")
	if idx <= 0 {
		return "", "", false, fmt.Errorf(messages.EnvfileExpectedKeyValue)
	}
	key := strings.TrimSpace(trimmed[:idx])
	if key == "" {
		return "", "", false, fmt.Errorf(messages.EnvfileExpectedKeyValue)
	}
	value := strings.TrimSpace(trimmed[idx+1:])
	if strings.HasPrefix(value, `"`) || strings.HasPrefix(value, `'`) {
		parsed, err := parseQuoted(value)
		if err != nil {
			return "", "", false, err
		}
		value = parsed
	}
	return key, value, true, nil
}

// parseQuoted decodes a quoted value and validates trailing content.
// Double quotes support backslash escapes; single quotes are literal.
func parseQuoted(value string) (string, error) {
	quote := value[0]
	var body strings.Builder
	escaped := false
	for i := 1; i < len(value); i++ {
		ch := value[i]
		if escaped {
			switch ch {
			case 'n':
				body.WriteByte('\n')
			case 'r':
				body.WriteByte('\r')
			default:
				body.WriteByte(ch)
			}
			escaped = false
			continue
		}
		if quote == '"' && ch == '\\' {
			escaped = true
			continue
		}
		if ch == quote {
			suffix := strings.TrimSpace(value[i+1:])
			if suffix != "" && !strings.HasPrefix(suffix, "#") {
				return "", fmt.Errorf(messages.EnvfileInvalidQuotedSuffix)
			}
			return body.String(), nil
		}
		body.WriteByte(ch)
	}
	return "", fmt.Errorf(messages.EnvfileUnterminatedQuote)
}

// encodeValue escapes and quotes a value when required for .env formatting.
func encodeValue(val string) string {
	if strings.ContainsAny(val, " \t#\n\r\"") {
		val = strings.ReplaceAll(val, "\\", "\\\\")
		val = strings.ReplaceAll(val, "\"", "\\\"")
		val = strings.ReplaceAll(val, "\n", "\\n")
		val = strings.ReplaceAll(val, "\r", "\\r")
		return `"` + val + `"`
	}
	return val
}
