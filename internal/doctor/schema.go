package doctor

import "github.com/santhosh-tekuri/jsonschema/v5"

// stateSchema mirrors the typed state document model. Validating the raw
// document against it before the typed decode is what makes the decode
// "strict": enum casing and type mismatches that encoding/json would let
// through get caught here and routed into loose recovery instead.
const stateSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "timezone": {"type": ["string", "null"]},
    "version": {"type": "integer"},
    "settings": {
      "type": ["object", "null"],
      "properties": {
        "auto_prompt_on_empty": {"type": "boolean"},
        "strict_mode": {"type": "boolean"},
        "default_log_days": {"type": "integer"},
        "max_backup_files": {"type": "integer"}
      }
    },
    "days": {
      "type": ["object", "null"],
      "additionalProperties": {
        "type": "object",
        "required": ["title", "status"],
        "properties": {
          "title": {"type": "string"},
          "status": {"enum": ["pending", "done", "skipped", "-"]},
          "note": {"type": ["string", "null"]},
          "created_at": {"type": ["string", "null"]},
          "completed_at": {"type": ["string", "null"]},
          "skipped_at": {"type": ["string", "null"]}
        }
      }
    }
  }
}`

var compiledStateSchema = jsonschema.MustCompileString("state.schema.json", stateSchema)
