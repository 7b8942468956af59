// Copyright 2026 The libmicrohttpd-go Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logging

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// LogEntry is a structured log entry handed to formatters.
type LogEntry struct {
	// Timestamp is the creation time of the entry.
	Timestamp time.Time
	// Level is the severity of the entry.
	Level LogLevel
	// Message is the formatted log message.
	Message string
	// Fields holds structured key-value pairs attached to the entry.
	Fields map[string]interface{}
}

// Formatter renders a LogEntry into bytes for output.
type Formatter interface {
	Format(entry LogEntry) ([]byte, error)
}

// TextFormatter renders human-readable text logs.
type TextFormatter struct {
	// TimeFormat is the timestamp layout. Empty disables timestamps.
	TimeFormat string
	// ShowLevel controls the "[INFO]"-style level prefix.
	ShowLevel bool
}

// Format renders the entry as a single text line. Fields are emitted in
// sorted key order so output is stable.
func (f *TextFormatter) Format(entry LogEntry) ([]byte, error) {
	var parts []string

	if f.TimeFormat != "" {
		parts = append(parts, entry.Timestamp.Format(f.TimeFormat))
	}
	if f.ShowLevel {
		parts = append(parts, fmt.Sprintf("[%s]", strings.ToUpper(entry.Level.String())))
	}
	parts = append(parts, entry.Message)

	if len(entry.Fields) > 0 {
		keys := make([]string, 0, len(entry.Fields))
		for k := range entry.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		fieldParts := make([]string, 0, len(keys))
		for _, k := range keys {
			fieldParts = append(fieldParts, fmt.Sprintf("%s=%v", k, entry.Fields[k]))
		}
		parts = append(parts, fmt.Sprintf("{%s}", strings.Join(fieldParts, ", ")))
	}

	return []byte(strings.Join(parts, " ") + "\n"), nil
}

// jsonEntry is the wire form of a JSON log line.
type jsonEntry struct {
	Timestamp string                 `json:"timestamp,omitempty"`
	Level     string                 `json:"level"`
	Message   string                 `json:"message"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
}

// JSONFormatter renders structured JSON logs.
type JSONFormatter struct {
	// TimeFormat is the timestamp layout. Defaults to time.RFC3339.
	TimeFormat string
}

// Format renders the entry as one JSON object per line.
func (f *JSONFormatter) Format(entry LogEntry) ([]byte, error) {
	timeFmt := f.TimeFormat
	if timeFmt == "" {
		timeFmt = time.RFC3339
	}

	je := jsonEntry{
		Timestamp: entry.Timestamp.Format(timeFmt),
		Level:     entry.Level.String(),
		Message:   entry.Message,
	}
	if len(entry.Fields) > 0 {
		je.Fields = entry.Fields
	}

	data, err := json.Marshal(je)
	if err != nil {
		// Unmarshalable field values must not lose the message.
		fallback := fmt.Sprintf(`{"level":"%s","message":%q,"error":"json marshal failed"}`+"\n",
			entry.Level.String(), entry.Message)
		return []byte(fallback), nil
	}
	return append(data, '\n'), nil
}
