package builtin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

func checkJSON(ctx context.Context, args []string, files []File) (bool, string) {
	var r report
	for _, f := range files {
		if ctx.Err() != nil {
			r.fail("%s", ctx.Err())
			break
		}
		data, err := os.ReadFile(f.Path)
		if err != nil {
			r.fail("%s: %s", f.Name, err)
			continue
		}
		if err := validateJSON(data); err != nil {
			r.fail("%s: Failed to json decode (%s)", f.Name, err)
		}
	}
	return r.result()
}

// validateJSON parses a single JSON value, rejecting duplicate object keys
func validateJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if err := walkValue(dec); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("extra data after the top-level value")
	}
	return nil
}

func walkValue(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("unexpected end of input")
		}
		return err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return nil
	}

	switch delim {
	case '{':
		seen := make(map[string]bool)
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return err
			}
			key, _ := keyTok.(string)
			if seen[key] {
				return fmt.Errorf("duplicate key: %s", key)
			}
			seen[key] = true
			if err := walkValue(dec); err != nil {
				return err
			}
		}
	case '[':
		for dec.More() {
			if err := walkValue(dec); err != nil {
				return err
			}
		}
	}

	// Closing delimiter
	_, err = dec.Token()
	return err
}
