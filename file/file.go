package file

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

//Stdin is the path understood by ReadBins as standard input.
const Stdin = "-"

//ReadBins reads one bin per line from filepath. Blank lines and lines
//starting with '#' are skipped, surrounding whitespace is dropped.
func ReadBins(filepath string, stdin io.Reader) ([]string, error) {
	if filepath == Stdin {
		return ScanBins(stdin)
	}
	var (
		f   *os.File
		err error
	)
	if f, err = os.Open(filepath); err != nil {
		return nil, errors.Wrapf(err, "open bin list %s", filepath)
	}
	defer f.Close()
	return ScanBins(f)
}

func ScanBins(r io.Reader) ([]string, error) {
	result := make([]string, 0, 256)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		result = append(result, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "scan bin list")
	}
	return result, nil
}
