package builtin

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type checkYAMLFlags struct {
	AllowMultipleDocuments bool `short:"m" name:"allow-multiple-documents" help:"Allow yaml files which use the multi-document syntax."`
	Unsafe                 bool `help:"Only check syntax instead of loading the yaml."`
}

func checkYAML(ctx context.Context, args []string, files []File) (bool, string) {
	var flags checkYAMLFlags
	if err := parseArgs("check-yaml", &flags, args); err != nil {
		return true, err.Error() + "\n"
	}

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
		if err := loadYAML(data, flags); err != nil {
			r.fail("%s: %s", f.Name, err)
		}
	}
	return r.result()
}

func loadYAML(data []byte, flags checkYAMLFlags) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	docs := 0
	for {
		var err error
		if flags.Unsafe {
			var node yaml.Node
			err = dec.Decode(&node)
		} else {
			var v any
			err = dec.Decode(&v)
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		docs++
		if docs > 1 && !flags.AllowMultipleDocuments {
			return errors.New("expected a single document in the stream")
		}
	}
}
