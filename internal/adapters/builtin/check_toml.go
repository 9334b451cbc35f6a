package builtin

import (
	"context"
	"errors"
	"os"

	"github.com/pelletier/go-toml/v2"
)

func checkTOML(ctx context.Context, args []string, files []File) (bool, string) {
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

		var v map[string]any
		if err := toml.Unmarshal(data, &v); err != nil {
			var derr *toml.DecodeError
			if errors.As(err, &derr) {
				row, col := derr.Position()
				r.fail("%s: line %d column %d: %s", f.Name, row, col, derr.Error())
				continue
			}
			r.fail("%s: %s", f.Name, err)
		}
	}
	return r.result()
}
