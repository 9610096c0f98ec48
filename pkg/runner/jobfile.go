package runner

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// jobSchema constrains job definition files before they reach the
// solver.
const jobSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "solver job",
  "type": "object",
  "required": ["script"],
  "additionalProperties": false,
  "properties": {
    "name":        {"type": "string"},
    "scripts_dir": {"type": "string"},
    "script":      {"type": "string", "minLength": 1},
    "gui":         {"type": "boolean"},
    "args":        {"type": "array", "items": {"type": "string"}},
    "options":     {"type": "object"}
  }
}`

// LoadJob reads a job definition file, validates it against the job
// schema and decodes it.
func LoadJob(path string) (Job, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Job{}, fmt.Errorf("read job file: %w", err)
	}

	schemaLoader := gojsonschema.NewStringLoader(jobSchema)
	documentLoader := gojsonschema.NewBytesLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return Job{}, fmt.Errorf("validate job file: %w", err)
	}

	if !result.Valid() {
		issues := make([]string, 0, len(result.Errors()))
		for _, verr := range result.Errors() {
			issues = append(issues, verr.Field()+": "+verr.Description())
		}

		return Job{}, fmt.Errorf("%w: %s", ErrJobInvalid, strings.Join(issues, "; "))
	}

	var job Job

	decodeErr := json.Unmarshal(raw, &job)
	if decodeErr != nil {
		return Job{}, fmt.Errorf("decode job file: %w", decodeErr)
	}

	return job, nil
}
