package runner

import (
	"errors"
	"fmt"
	"os"
)

// ErrArgumentTooLong is returned when a single filename cannot fit a command line
var ErrArgumentTooLong = errors.New("argument too long")

const (
	maxCommandLength = 1 << 17
	minCommandLength = 1 << 12
	// minBatch keeps batches from becoming tiny when jobs is high
	minBatch = 4
)

// platformMaxLength leaves room for the environment
func platformMaxLength() int {
	n := maxCommandLength
	for _, kv := range os.Environ() {
		n -= len(kv) + 1
	}
	if n < minCommandLength {
		return minCommandLength
	}
	return n
}

// partition splits files into command lines of cmd followed by a batch of
// files. Batches keep the original order, stay under maxLength and hold
// at most ceil(len(files)/jobs) files so jobs workers share the load.
func partition(cmd, files []string, jobs, maxLength int) ([][]string, error) {
	if jobs < 1 {
		jobs = 1
	}
	maxArgs := (len(files) + jobs - 1) / jobs
	if maxArgs < minBatch {
		maxArgs = minBatch
	}

	cmdLength := commandLength(cmd...) + 1
	var batches [][]string
	var batch []string
	total := cmdLength

	for i := 0; i < len(files); {
		argLength := commandLength(files[i]) + 1
		if total+argLength <= maxLength && len(batch) < maxArgs {
			batch = append(batch, files[i])
			total += argLength
			i++
			continue
		}
		if len(batch) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrArgumentTooLong, files[i])
		}
		batches = append(batches, withArgs(cmd, batch))
		batch = nil
		total = cmdLength
	}

	return append(batches, withArgs(cmd, batch)), nil
}

func withArgs(cmd, args []string) []string {
	out := make([]string, 0, len(cmd)+len(args))
	out = append(out, cmd...)
	return append(out, args...)
}

func commandLength(parts ...string) int {
	n := len(parts)
	for _, p := range parts {
		n += len(p)
	}
	return n
}
