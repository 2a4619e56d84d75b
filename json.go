// Copyright 2026 The slf4d Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package slf4d

import "encoding/json"

// JSONSerializer emits one JSON object per record, with no array wrapping or
// trailing newline; the caller decides framing (typically newline-delimited
// via the writer).
type JSONSerializer struct{}

// NewJSONSerializer creates a JSON serializer.
func NewJSONSerializer() *JSONSerializer {
	return &JSONSerializer{}
}

type jsonLevel struct {
	Value int    `json:"value"`
	Name  string `json:"name"`
}

type jsonException struct {
	Message            string  `json:"message"`
	SourceFileName     string  `json:"sourceFileName"`
	SourceLineNumber   int     `json:"sourceLineNumber"`
	ExceptionClassName string  `json:"exceptionClassName"`
	StackTrace         *string `json:"stackTrace"`
}

type jsonSource struct {
	ModuleName   string `json:"moduleName"`
	FunctionName string `json:"functionName"`
	FileName     string `json:"fileName"`
	LineNumber   int    `json:"lineNumber"`
}

type jsonRecord struct {
	Level         jsonLevel         `json:"level"`
	Message       string            `json:"message"`
	Timestamp     string            `json:"timestamp"`
	LoggerName    string            `json:"loggerName"`
	Exception     *jsonException    `json:"exception"`
	SourceContext jsonSource        `json:"sourceContext"`
	Attributes    map[string]string `json:"attributes"`
}

// Serialize implements [Serializer].
func (s *JSONSerializer) Serialize(r Record) (string, error) {
	out := jsonRecord{
		Level:      jsonLevel{Value: r.Level.Value, Name: r.Level.Name},
		Message:    r.Message,
		Timestamp:  r.Timestamp.Format(timestampLayout),
		LoggerName: r.LoggerName,
		SourceContext: jsonSource{
			ModuleName:   r.Source.ModuleName,
			FunctionName: r.Source.FunctionName,
			FileName:     r.Source.FileName,
			LineNumber:   r.Source.LineNumber,
		},
		Attributes: r.Attributes,
	}
	if out.Attributes == nil {
		out.Attributes = map[string]string{}
	}
	if e := r.Exception; e != nil {
		je := &jsonException{
			Message:            e.Message,
			SourceFileName:     e.SourceFileName,
			SourceLineNumber:   e.SourceLineNumber,
			ExceptionClassName: e.ExceptionClassName,
		}
		if e.StackTrace != "" {
			st := e.StackTrace
			je.StackTrace = &st
		}
		out.Exception = je
	}

	data, err := json.Marshal(out)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
