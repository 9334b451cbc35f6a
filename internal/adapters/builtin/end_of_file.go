package builtin

import (
	"bytes"
	"context"
	"os"
)

func fixEndOfFile(ctx context.Context, args []string, files []File) (bool, string) {
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

		fixed := fixLastLine(data)
		if bytes.Equal(fixed, data) {
			continue
		}
		if err := os.WriteFile(f.Path, fixed, 0644); err != nil {
			r.fail("%s: %s", f.Name, err)
			continue
		}
		r.fail("Fixing %s", f.Name)
	}
	return r.result()
}

// fixLastLine leaves data empty or ending in exactly one line ending.
// A file holding only line endings becomes empty.
func fixLastLine(data []byte) []byte {
	if len(data) == 0 {
		return data
	}

	body := bytes.TrimRight(data, "\r\n")
	if len(body) == 0 {
		return []byte{}
	}

	trailing := data[len(body):]
	switch {
	case len(trailing) == 0:
		return append(append([]byte{}, data...), '\n')
	case bytes.HasPrefix(trailing, []byte("\r\n")):
		return append(append([]byte{}, body...), '\r', '\n')
	default:
		return append(append([]byte{}, body...), trailing[0])
	}
}
