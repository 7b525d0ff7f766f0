package compat

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/dshills/spritestorm/internal/sheet"
)

// Version identifies an on-disk sheet schema version.
type Version int

// Known schema versions, oldest first.
const (
	Version1 Version = 1
	Version2 Version = 2
	Version3 Version = 3

	// CurrentVersion is the schema written by WriteSheet.
	CurrentVersion = Version3
)

// Errors returned when reading sheet files.
var (
	// ErrUnknownVersion indicates a file with a version this build cannot read.
	ErrUnknownVersion = errors.New("unknown sheet file version")
)

// envelope is the top-level file structure common to all versions.
type envelope struct {
	Version Version         `json:"version"`
	Sheet   json.RawMessage `json:"sheet"`
}

// ReadSheet reads a sheet file of any supported version and returns it in
// the current model. Paths inside the sheet are returned as stored (usually
// relative); callers resolve them with Sheet.WithAbsolutePaths.
func ReadSheet(path string) (*sheet.Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sheet file: %w", err)
	}
	return DecodeSheet(data)
}

// DecodeSheet decodes raw sheet file contents of any supported version.
func DecodeSheet(data []byte) (*sheet.Sheet, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("parse sheet file: %w", err)
	}

	var v3 v3Sheet
	switch env.Version {
	case Version1:
		var v1 v1Sheet
		if err := json.Unmarshal(env.Sheet, &v1); err != nil {
			return nil, fmt.Errorf("parse version 1 sheet: %w", err)
		}
		v3 = v2ToV3(v1ToV2(v1))
	case Version2:
		var v2 v2Sheet
		if err := json.Unmarshal(env.Sheet, &v2); err != nil {
			return nil, fmt.Errorf("parse version 2 sheet: %w", err)
		}
		v3 = v2ToV3(v2)
	case Version3:
		if err := json.Unmarshal(env.Sheet, &v3); err != nil {
			return nil, fmt.Errorf("parse version 3 sheet: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownVersion, env.Version)
	}

	return v3.toModel(), nil
}

// WriteSheet writes the sheet at the current schema version.
func WriteSheet(path string, s *sheet.Sheet) error {
	data, err := EncodeSheet(s)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write sheet file: %w", err)
	}
	return nil
}

// EncodeSheet serializes the sheet at the current schema version.
func EncodeSheet(s *sheet.Sheet) ([]byte, error) {
	raw, err := json.Marshal(v3FromModel(s))
	if err != nil {
		return nil, fmt.Errorf("encode sheet: %w", err)
	}
	data, err := json.MarshalIndent(envelope{Version: CurrentVersion, Sheet: raw}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode sheet file: %w", err)
	}
	return data, nil
}
